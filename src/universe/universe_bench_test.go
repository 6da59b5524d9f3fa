package universe

import (
	"math/rand"
	"testing"
)

const (
	width  = 200
	height = 200
)

func randomSeed(w int, h int) [][]int {
	r := rand.New(rand.NewSource(1))
	seed := make2D(w, h)
	for y := range seed {
		for x := range seed[y] {
			seed[y][x] = r.Intn(2)
		}
	}
	return seed
}

func Benchmark_NextGeneration(b *testing.B) {
	g := mustBuild(b, randomSeed(width, height))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NextGeneration(g); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Step(b *testing.B) {
	u, err := New(randomSeed(width, height), nil)
	if err != nil {
		b.Fatal(err)
	}
	live := 0
	u.RegisterRenderer(RendererFunc(func(g Grid) { live = g.LiveCells() }))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := u.Step(); err != nil {
			b.Fatal(err)
		}
	}
	_ = live
}

func Benchmark_Scheduler(b *testing.B) {
	u, err := New(randomSeed(width, height), nil)
	if err != nil {
		b.Fatal(err)
	}
	stateCh := make(chan Status, 10)
	s := NewScheduler(u, &Options{}, stateCh)
	defer s.Close()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.StepOnce()
		<-stateCh
	}
}
