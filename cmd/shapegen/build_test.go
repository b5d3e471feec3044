package main

import (
	"path/filepath"
	"testing"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-shape/library"
	"github.com/TriM-Organization/bedrock-shape/plan"
)

const testPlan = `
dimension: 0
shapes:
  - name: wall
    size: [4, 2, 1]
    origin: [0, 70, 0]
    operations:
      - op: fill
        from: [0, 0, 0]
        to: [3, 1, 0]
        block: {name: "minecraft:stone"}
  - name: pillar
    size: [1, 3, 1]
    origin: [20, 70, 0]
    operations:
      - op: fill
        from: [0, 0, 0]
        to: [0, 2, 0]
        block: {name: "minecraft:stone"}
`

func TestBuildAndRecordShapes(t *testing.T) {
	p, err := plan.Parse([]byte(testPlan))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	model := define.NewModel(p.DimensionID())
	shapes, err := BuildShapes(p, model)
	if err != nil {
		t.Fatalf("BuildShapes: %v", err)
	}
	if len(shapes) != 2 || shapes[0].Name != "wall" || shapes[1].Name != "pillar" {
		t.Fatalf("BuildShapes returned %d shapes", len(shapes))
	}
	if model.BlockCount() != 11 {
		t.Fatalf("BlockCount() = %d, want 11", model.BlockCount())
	}
	if got := len(model.Chunks()); got != 2 {
		t.Fatalf("model touches %d chunks, want 2", got)
	}

	db, err := library.Open(filepath.Join(t.TempDir(), "shapes.db"), library.Options{NoSync: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.CloseLibraryDB()

	RecordShapes(db, shapes, 1)
	RecordShapes(db, shapes, 2)

	count, err := db.ShapeCount()
	if err != nil || count != 2 {
		t.Fatalf("ShapeCount() = %d, %v", count, err)
	}
	record, err := db.NewShapeRecord("wall", true)
	if err != nil {
		t.Fatalf("NewShapeRecord: %v", err)
	}
	defer record.SaveNOP()
	if record.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", record.Len())
	}
}

func TestBuildShapes_OutOfWorld(t *testing.T) {
	p, err := plan.Parse([]byte("shapes: [{name: a, size: [1, 1, 1], origin: [0, 9999, 0]}]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err = BuildShapes(p, define.NewModel(p.DimensionID())); err == nil {
		t.Fatalf("BuildShapes must fail when a shape is outside of the dimension")
	}
}
