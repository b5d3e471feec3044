package plan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TriM-Organization/bedrock-shape/define"
)

const examplePlan = `
dimension: 0
max_limit: 3
shapes:
  - name: tower
    size: [3, 4, 3]
    origin: [100, 64, -20]
    keep_small: true
    operations:
      - op: fill
        from: [0, 0, 0]
        to: [2, 3, 2]
        block: {name: "minecraft:stone"}
      - op: put
        at: [1, 3, 1]
        block:
          name: "minecraft:oak_stairs"
          states: {weirdo_direction: 0, upside_down_bit: false}
      - op: replace
        block: {name: "minecraft:stone"}
        with: {name: "minecraft:cobblestone"}
    transform:
      rotation: 4
  - name: dome
    size: [5, 5, 5]
    operations:
      - op: sphere
        center: [2, 2, 2]
        radius: 1
        block: {name: "minecraft:glass"}
      - op: remove
        block: {name: "minecraft:glass"}
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(examplePlan))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.DimensionID() != 0 || p.MaxLimit != 3 || len(p.Shapes) != 2 {
		t.Fatalf("Parse returned %+v", p)
	}
	if got := p.Shapes[0].OriginPos(); got != (define.Pos{100, 64, -20}) {
		t.Fatalf("OriginPos() = %v", got)
	}
	if got := p.Shapes[1].OriginPos(); got != (define.Pos{}) {
		t.Fatalf("OriginPos() without origin = %v", got)
	}
}

func TestShapePlan_Build(t *testing.T) {
	p, err := Parse([]byte(examplePlan))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tower, err := p.Shapes[0].Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !tower.Palette().KeepSmall() {
		t.Fatalf("keep_small is lost")
	}
	if got := tower.Count(define.NewBlock("minecraft:cobblestone", nil)); got != 35 {
		t.Fatalf("Count(cobblestone) = %d, want 35", got)
	}
	if tower.Palette().Contains(define.NewBlock("minecraft:stone", nil)) {
		t.Fatalf("stone must be replaced")
	}

	// The top center stays in place after a quarter turn, but faces south now.
	stairs, err := tower.GetBlock(define.Pos{1, 3, 1})
	if err != nil {
		t.Fatalf("GetBlock: %v", err)
	}
	if stairs.Name != "minecraft:oak_stairs" || stairs.States["weirdo_direction"] != int32(2) {
		t.Fatalf("GetBlock = %s", stairs)
	}

	dome, err := p.Shapes[1].Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := dome.Count(define.EmptyBlock); got != 125 {
		t.Fatalf("Count(EmptyBlock) = %d, want 125", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no shapes", "dimension: 0\n"},
		{"unknown dimension", "dimension: 3\nshapes: [{name: a, size: [1, 1, 1]}]\n"},
		{"empty name", "shapes: [{size: [1, 1, 1]}]\n"},
		{"duplicate name", "shapes: [{name: a, size: [1, 1, 1]}, {name: a, size: [1, 1, 1]}]\n"},
		{"short size", "shapes: [{name: a, size: [1, 1]}]\n"},
		{"zero size", "shapes: [{name: a, size: [1, 0, 1]}]\n"},
		{"unknown op", "shapes: [{name: a, size: [1, 1, 1], operations: [{op: carve, block: {name: x}}]}]\n"},
		{"missing block", "shapes: [{name: a, size: [1, 1, 1], operations: [{op: put, at: [0, 0, 0]}]}]\n"},
		{"replace without with", "shapes: [{name: a, size: [1, 1, 1], operations: [{op: replace, block: {name: x}}]}]\n"},
		{"negative radius", "shapes: [{name: a, size: [1, 1, 1], operations: [{op: sphere, center: [0, 0, 0], radius: -1, block: {name: x}}]}]\n"},
		{"bad flip", "shapes: [{name: a, size: [1, 1, 1], transform: {flip: [true]}}]\n"},
	}

	for _, c := range cases {
		if _, err := Parse([]byte(c.raw)); !errors.Is(err, ErrInvalidPlan) {
			t.Errorf("%s: Parse returned %v, want ErrInvalidPlan", c.name, err)
		}
	}
}

func TestBuild_OutOfBounds(t *testing.T) {
	p, err := Parse([]byte("shapes: [{name: a, size: [2, 2, 2], operations: [{op: put, at: [2, 0, 0], block: {name: x}}]}]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err = p.Shapes[0].Build(); !errors.Is(err, define.ErrOutOfBounds) {
		t.Fatalf("Build: got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(examplePlan), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load on a missing file must fail")
	}
	if err := os.WriteFile(path, []byte("shapes: {"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("Load on a broken file: got %v", err)
	}
}
