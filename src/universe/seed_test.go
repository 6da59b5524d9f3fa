package universe

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSeed(t *testing.T) {
	in := `! glider
.#.
..#
###

1, 0, 0
`
	seed, err := ParseSeed(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0, 1, 0}, {0, 0, 1}, {1, 1, 1}, {1, 0, 0}}
	g := mustBuild(t, seed)
	if !g.Equal(mustBuild(t, want)) {
		t.Fatalf("parsed:\n%v", g)
	}
}

func TestParseSeedErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		shape bool
	}{
		{"ragged", "101\n10\n", true},
		{"empty", "! nothing here\n\n", true},
		{"bad char", "10x\n", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(c.in))
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrShape) != c.shape {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestTemplates(t *testing.T) {
	names := TemplateNames()
	want := []string{"blinker", "block", "default", "empty", "glider"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("templates %v, expected %v", names, want)
	}
	for _, n := range names {
		tmpl, err := TemplateByName(n)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Build(tmpl.Seed); err != nil {
			t.Fatalf("template %s: %v", n, err)
		}
	}
	def, _ := TemplateByName("default")
	if w, h := mustBuild(t, def.Seed).Dimensions(); w != 40 || h != 20 {
		t.Fatalf("default board is %dx%d, expected 40x20", w, h)
	}
}

func TestTemplateByNameUnknown(t *testing.T) {
	_, err := TemplateByName("nope")
	if !errors.Is(err, ErrTemplate) {
		t.Fatalf("expected ErrTemplate, got %v", err)
	}
}
