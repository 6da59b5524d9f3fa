package universe

import (
	"math/rand"
	"testing"
)

func mustBuild(t testing.TB, seed [][]int) Grid {
	t.Helper()
	g, err := Build(seed)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

func mustNext(t testing.TB, g Grid) Grid {
	t.Helper()
	n, err := NextGeneration(g)
	if err != nil {
		t.Fatalf("next generation: %v", err)
	}
	return n
}

func aliveCount(n [8]Cell) int {
	c := 0
	for _, cell := range n {
		if cell.Alive() {
			c++
		}
	}
	return c
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := Dead
		if n == 2 || n == 3 {
			wantAlive = Alive
		}
		if got := NextState(Alive, n); got != wantAlive {
			t.Errorf("alive with %d neighbours: %v, expected %v", n, got, wantAlive)
		}
		wantDead := Dead
		if n == 3 {
			wantDead = Alive
		}
		if got := NextState(Dead, n); got != wantDead {
			t.Errorf("dead with %d neighbours: %v, expected %v", n, got, wantDead)
		}
	}
}

func TestNextGenerationPreservesDimensions(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, size := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 3}, {40, 20}, {13, 29}} {
		seed := make2D(size[0], size[1])
		for y := range seed {
			for x := range seed[y] {
				seed[y][x] = r.Intn(2)
			}
		}
		g := mustBuild(t, seed)
		n := mustNext(t, g)
		if w, h := n.Dimensions(); w != size[0] || h != size[1] {
			t.Fatalf("%dx%d became %dx%d", size[0], size[1], w, h)
		}
		n.Walk(func(c Cell) {
			at, err := n.At(c.X, c.Y)
			if err != nil || at != c {
				t.Fatalf("cell %+v is not at its position", c)
			}
		})
	}
}

func TestNextGenerationDoesNotTouchCurrent(t *testing.T) {
	g := mustBuild(t, [][]int{
		{0, 1, 0, 0},
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{0, 0, 1, 0},
	})
	before := g.String()
	mustNext(t, g)
	if g.String() != before {
		t.Fatalf("current grid changed:\n%v\nexpected:\n%v", g, before)
	}
}

func TestToroidalAdjacency(t *testing.T) {
	g := mustBuild(t, [][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	n, err := Neighbours(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if left := n[3]; left.X != 2 || left.Y != 0 {
		t.Fatalf("left of column 0 is (%d,%d), expected (2,0)", left.X, left.Y)
	}
	if top := n[1]; top.X != 0 || top.Y != 2 {
		t.Fatalf("top of row 0 is (%d,%d), expected (0,2)", top.X, top.Y)
	}
	if c := aliveCount(n); c != 0 {
		t.Fatalf("corner cell counts %d live neighbours, expected 0", c)
	}

	//on a 3x3 torus every other cell touches the live corner exactly once
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			n, err := Neighbours(g, x, y)
			if err != nil {
				t.Fatal(err)
			}
			if c := aliveCount(n); c != 1 {
				t.Errorf("cell (%d,%d) counts %d live neighbours, expected 1", x, y, c)
			}
		}
	}

	right, _ := Neighbours(g, 2, 0)
	if r := right[4]; r.X != 0 || !r.Alive() {
		t.Fatalf("right of column 2 is %+v, expected the live corner", r)
	}
	bottom, _ := Neighbours(g, 0, 2)
	if b := bottom[6]; b.Y != 0 || !b.Alive() {
		t.Fatalf("bottom of row 2 is %+v, expected the live corner", b)
	}
}

func TestDiagonalWrap(t *testing.T) {
	seed := make2D(5, 5)
	seed[0][0] = 1
	g := mustBuild(t, seed)
	n, _ := Neighbours(g, 4, 4)
	if n[7].X != 0 || n[7].Y != 0 || aliveCount(n) != 1 {
		t.Fatalf("bottom-right of (4,4) is %+v with %d alive", n[7], aliveCount(n))
	}
	n, _ = Neighbours(g, 2, 2)
	if aliveCount(n) != 0 {
		t.Fatalf("centre cell counts %d live neighbours, expected 0", aliveCount(n))
	}
}

func TestNeighboursOutOfRange(t *testing.T) {
	g := mustBuild(t, [][]int{{1}})
	if _, err := Neighbours(g, 1, 0); err == nil {
		t.Fatal("expected an error for an out of range position")
	}
}

func TestAllDeadIsFixedPoint(t *testing.T) {
	g := mustBuild(t, make2D(6, 4))
	for i := 0; i < 10; i++ {
		g = mustNext(t, g)
		if g.LiveCells() != 0 {
			t.Fatalf("step %d: %d live cells on an empty grid", i+1, g.LiveCells())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	g := mustBuild(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c, _ := g.At(x, y)
			n, _ := Neighbours(g, x, y)
			count := aliveCount(n)
			if c.Alive() && count != 3 {
				t.Errorf("block cell (%d,%d) has %d live neighbours, expected 3", x, y, count)
			}
			if !c.Alive() && (count < 1 || count > 2) {
				t.Errorf("dead cell (%d,%d) has %d live neighbours, expected 1-2", x, y, count)
			}
		}
	}
	if n := mustNext(t, g); !n.Equal(g) {
		t.Fatalf("block changed:\n%v", n)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := mustBuild(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	})
	horizontal := mustBuild(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})

	first := mustNext(t, vertical)
	if !first.Equal(horizontal) {
		t.Fatalf("after first step:\n%v\nexpected:\n%v", first, horizontal)
	}
	second := mustNext(t, first)
	if !second.Equal(vertical) {
		t.Fatalf("after second step:\n%v\nexpected:\n%v", second, vertical)
	}
}

func TestGliderCrossesEdges(t *testing.T) {
	tmpl, err := TemplateByName("glider")
	if err != nil {
		t.Fatal(err)
	}
	start := mustBuild(t, tmpl.Seed)
	g := start
	//a glider moves one cell diagonally every 4 generations, 32 generations on an 8x8 torus bring it home
	for i := 0; i < 32; i++ {
		g = mustNext(t, g)
		if g.LiveCells() != 5 {
			t.Fatalf("generation %d has %d live cells, expected 5", i+1, g.LiveCells())
		}
	}
	if !g.Equal(start) {
		t.Fatalf("glider did not return:\n%v", g)
	}
}

func TestDegenerateGrids(t *testing.T) {
	cases := []struct {
		name string
		seed [][]int
		want [][]int
	}{
		//a single cell is its own neighbour eight times
		{"1x1 alive", [][]int{{1}}, [][]int{{0}}},
		{"1x1 dead", [][]int{{0}}, [][]int{{0}}},
		{"3x1 full row", [][]int{{1, 1, 1}}, [][]int{{0, 0, 0}}},
		{"1x3 single", [][]int{{1}, {0}, {0}}, [][]int{{1}, {1}, {1}}},
		{"1x3 full column", [][]int{{1}, {1}, {1}}, [][]int{{0}, {0}, {0}}},
		{"2x2 single", [][]int{{1, 0}, {0, 0}}, [][]int{{0, 0}, {0, 0}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := mustBuild(t, c.seed)
			got := mustNext(t, g)
			want := mustBuild(t, c.want)
			if !got.Equal(want) {
				t.Fatalf("got:\n%v\nexpected:\n%v", got, want)
			}
			again := mustNext(t, g)
			if !again.Equal(got) {
				t.Fatal("result is not deterministic")
			}
		})
	}
}
