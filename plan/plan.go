package plan

import (
	"fmt"
	"os"

	"github.com/TriM-Organization/bedrock-shape/define"
	operator_define "github.com/TriM-Organization/bedrock-world-operator/define"
	"gopkg.in/yaml.v3"
)

// Plan is a build plan, which describes how to build
// some shapes and where to put them in a world.
type Plan struct {
	Dimension int         `yaml:"dimension"`
	MaxLimit  uint        `yaml:"max_limit"`
	Shapes    []ShapePlan `yaml:"shapes"`
}

// ShapePlan describes how to build a single shape.
type ShapePlan struct {
	Name       string      `yaml:"name"`
	Size       []int       `yaml:"size"`
	Origin     []int       `yaml:"origin"`
	KeepOrder  bool        `yaml:"keep_order"`
	KeepSmall  bool        `yaml:"keep_small"`
	Operations []Operation `yaml:"operations"`
	Transform  *Transform  `yaml:"transform"`
}

// Operation is a single edit on a shape.
// The fields that are used depend on Op.
type Operation struct {
	Op     string     `yaml:"op"`
	From   []int      `yaml:"from"`
	To     []int      `yaml:"to"`
	At     []int      `yaml:"at"`
	Center []int      `yaml:"center"`
	Radius float64    `yaml:"radius"`
	Block  *BlockSpec `yaml:"block"`
	With   *BlockSpec `yaml:"with"`
}

// Transform is the flip and rotation applied
// to a shape after all operations are done.
type Transform struct {
	Flip     []bool `yaml:"flip"`
	Rotation int    `yaml:"rotation"`
}

// BlockSpec is a block written in a plan.
type BlockSpec struct {
	Name   string         `yaml:"name"`
	States map[string]any `yaml:"states"`
}

// Block returns the block that b describes.
func (b BlockSpec) Block() define.Block {
	return define.NewBlock(b.Name, b.States)
}

// Load reads and validates the plan at path.
func Load(path string) (result *Plan, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %v", err)
	}
	result, err = Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}
	return result, nil
}

// Parse decodes and validates a plan from its YAML represents.
func Parse(raw []byte) (result *Plan, err error) {
	result = new(Plan)
	if err = yaml.Unmarshal(raw, result); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if err = result.Validate(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	return result, nil
}

// DimensionID returns the dimension that p places shapes in.
func (p *Plan) DimensionID() operator_define.Dimension {
	return operator_define.Dimension(p.Dimension)
}

// OriginPos returns the world position of the cell (0,0,0) of the shape.
func (s *ShapePlan) OriginPos() define.Pos {
	if len(s.Origin) != 3 {
		return define.Pos{}
	}
	return define.Pos{s.Origin[0], s.Origin[1], s.Origin[2]}
}
