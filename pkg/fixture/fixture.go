// Package fixture loads constant-expression test suites from YAML files and
// runs them against the expression core. A suite describes expression trees
// structurally (operator plus operand list), so fixtures exercise the
// evaluator without involving any source-text parsing.
package fixture

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rdl/compiler-go/pkg/expr"
)

// Suite is one fixture file: a named list of expression cases.
type Suite struct {
	Name  string  `yaml:"name"`
	Cases []*Case `yaml:"cases"`
}

// Case is a single expression with its expected outcome.
type Case struct {
	Name string    `yaml:"name"`
	Expr *NodeSpec `yaml:"expr"`
	Want Expect    `yaml:"want"`
}

// NodeSpec describes one expression node structurally. Op selects the node
// kind; the remaining fields apply per kind (literal value, literal or cast
// width, operand list, assignment destination type).
type NodeSpec struct {
	Op    string      `yaml:"op"`
	Val   string      `yaml:"val,omitempty"`
	Width uint64      `yaml:"width,omitempty"`
	Args  []*NodeSpec `yaml:"args,omitempty"`
	Dest  string      `yaml:"dest,omitempty"`
}

// Expect captures the assertions for a case. Zero-valued fields are not
// checked. Error expects the evaluation to fail with a message containing
// the given substring.
type Expect struct {
	Type  string  `yaml:"type,omitempty"`
	Width uint64  `yaml:"width,omitempty"`
	Int   string  `yaml:"int,omitempty"`
	Bool  *bool   `yaml:"bool,omitempty"`
	Str   *string `yaml:"string,omitempty"`
	Enum  string  `yaml:"enum,omitempty"`
	Error string  `yaml:"error,omitempty"`
}

// Load reads and decodes a suite file. Unknown fields are rejected so stale
// fixtures fail loudly.
func Load(path string) (*Suite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var suite Suite
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	if suite.Name == "" {
		suite.Name = path
	}
	for i, c := range suite.Cases {
		if c == nil || c.Name == "" {
			return nil, fmt.Errorf("fixture: %s: case %d has no name", path, i)
		}
		if c.Expr == nil {
			return nil, fmt.Errorf("fixture: %s: case %s has no expression", path, c.Name)
		}
	}
	return &suite, nil
}

// Run executes every case and returns one error per failing case.
func Run(suite *Suite) []error {
	var failures []error
	for _, c := range suite.Cases {
		if err := c.Run(); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	return failures
}

// Run builds the case's expression tree, evaluates it, and checks the
// expectations.
func (c *Case) Run() error {
	root, err := Build(c.Expr)
	if err != nil {
		return err
	}

	value, err := expr.Evaluate(root)
	if c.Want.Error != "" {
		if err == nil {
			return fmt.Errorf("expected error containing %q, evaluated to %s", c.Want.Error, value)
		}
		if !strings.Contains(err.Error(), c.Want.Error) {
			return fmt.Errorf("expected error containing %q, got %q", c.Want.Error, err.Error())
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if c.Want.Type != "" {
		predicted, err := root.PredictType()
		if err != nil {
			return fmt.Errorf("type prediction failed: %w", err)
		}
		if predicted.TypeName() != c.Want.Type {
			return fmt.Errorf("expected type %s, got %s", c.Want.Type, predicted.TypeName())
		}
	}
	if c.Want.Width != 0 && root.EvalWidth() != c.Want.Width {
		return fmt.Errorf("expected width %d, got %d", c.Want.Width, root.EvalWidth())
	}
	if c.Want.Int != "" {
		want, err := parseInt(c.Want.Int)
		if err != nil {
			return err
		}
		got, ok := value.(expr.IntValue)
		if !ok {
			return fmt.Errorf("expected integer %v, got %s value %s", want, value.Kind(), value)
		}
		if got.Val.Cmp(want) != 0 {
			return fmt.Errorf("expected %v, got %v", want, got.Val)
		}
	}
	if c.Want.Bool != nil {
		got, ok := value.(expr.BoolValue)
		if !ok {
			return fmt.Errorf("expected boolean %v, got %s value %s", *c.Want.Bool, value.Kind(), value)
		}
		if got.Val != *c.Want.Bool {
			return fmt.Errorf("expected %v, got %v", *c.Want.Bool, got.Val)
		}
	}
	if c.Want.Str != nil {
		got, ok := value.(expr.StringValue)
		if !ok {
			return fmt.Errorf("expected string %q, got %s value %s", *c.Want.Str, value.Kind(), value)
		}
		if got.Val != *c.Want.Str {
			return fmt.Errorf("expected %q, got %q", *c.Want.Str, got.Val)
		}
	}
	if c.Want.Enum != "" {
		got, ok := value.(expr.EnumValue)
		if !ok {
			return fmt.Errorf("expected enum %s, got %s value %s", c.Want.Enum, value.Kind(), value)
		}
		if got.Member.String() != c.Want.Enum {
			return fmt.Errorf("expected enum %s, got %s", c.Want.Enum, got.Member)
		}
	}
	return nil
}
