package main

import (
	"fmt"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-shape/plan"
	"github.com/pterm/pterm"
)

// NamedShape is a shape that was built from a plan.
type NamedShape struct {
	Name  string
	Shape *define.Shape
}

// BuildShapes builds every shape of p and places them into model.
func BuildShapes(p *plan.Plan, model *define.Model) (result []NamedShape, err error) {
	for i := range p.Shapes {
		sp := &p.Shapes[i]

		s, err := sp.Build()
		if err != nil {
			return nil, fmt.Errorf("BuildShapes: %v", err)
		}
		if err = model.Place(s, sp.OriginPos()); err != nil {
			return nil, fmt.Errorf("BuildShapes: %s: %v", sp.Name, err)
		}

		pterm.Info.Printf(
			"Shape %s is built (size %v, %d blocks in palette)\n",
			sp.Name, s.Size(), s.Palette().Len(),
		)
		for index, value := range s.Palette().All() {
			pterm.Debug.Printf("\t%d: %s (%d cells)\n", index, value, s.Count(value))
		}

		result = append(result, NamedShape{Name: sp.Name, Shape: s})
	}

	blocks := ModelBlocks(model)
	pterm.Info.Printf(
		"Model writes %d blocks of %d kinds in %d chunks\n",
		model.BlockCount(), len(blocks), len(model.Chunks()),
	)
	for index, value := range blocks {
		pterm.Debug.Printf("\t%d: %s\n", index+1, value)
	}

	return
}

// ModelBlocks returns the blocks that model writes, in the order of
// its block palette. A runtime ID that is not known by the block
// registry is returned as EmptyBlock.
func ModelBlocks(model *define.Model) []define.Block {
	bp := model.BlockPalette()
	result := make([]define.Block, 0, bp.BlockPaletteLen())
	for _, blockRuntimeID := range bp.BlockPalette() {
		b, _ := define.BlockFromRuntimeID(blockRuntimeID)
		result = append(result, b)
	}
	return result
}
