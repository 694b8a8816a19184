package sparsecalc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Op is one of the binary matrix operations offered by the tool.
type Op int

// Operation choices, numbered as in the interactive menu.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
)

// ParseOp accepts a menu number or a name: 1/add, 2/sub, 3/mul.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add", "addition":
		return OpAdd, nil
	case "2", "sub", "subtract", "subtraction":
		return OpSub, nil
	case "3", "mul", "multiply", "multiplication":
		return OpMul, nil
	}
	return 0, fmt.Errorf("invalid operation choice %q", s)
}

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Apply computes a <op> b.
func (o Op) Apply(a, b *sparse.Matrix) (*sparse.Matrix, error) {
	switch o {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	}
	return nil, fmt.Errorf("invalid operation %v", o)
}
