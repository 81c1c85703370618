package parse

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/parse/scan"
	"github.com/fumin/srspoly/poly"
	"github.com/fumin/srspoly/system"
)

// A VarDict assigns each variable name encountered while parsing an
// index in first-appearance order, so that several expressions can be
// parsed into polynomials sharing one variable dictionary.
type VarDict struct {
	names []string
	index map[string]int
}

// NewVarDict returns an empty variable dictionary.
func NewVarDict() *VarDict {
	return &VarDict{index: make(map[string]int)}
}

func (d *VarDict) lookup(name string) int {
	if i, ok := d.index[name]; ok {
		return i
	}
	i := len(d.names)
	d.index[name] = i
	d.names = append(d.names, name)
	return i
}

// Names returns the variable names seen so far, in index order.
func (d *VarDict) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Polynomial parses input as a polynomial expression over the
// rational field, assigning each identifier an index in d and
// allocating a fresh index for any name not yet seen.
func Polynomial(d *VarDict, input string) (*poly.Polynomial[*field.Rat], error) {
	n, err := Parse(scan.NewScanner(bytes.NewBufferString(input)))
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	p, err := evaluate(n, d)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return p, nil
}

// System parses exprs as a list of polynomial expressions over a
// shared, freshly-built variable dictionary, and returns the
// resulting System.
func System(exprs []string) (*system.System, error) {
	d := NewVarDict()
	members := make([]*poly.Polynomial[*field.Rat], len(exprs))
	for i, expr := range exprs {
		p, err := Polynomial(d, expr)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("expr %d: %q", i, expr))
		}
		members[i] = p
	}
	return &system.System{VarDict: d.Names(), Members: members}, nil
}

func evaluate(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	switch n.Token.Type {
	case scan.Parenthesis:
		return evaluateParenthesis(n, d)
	case scan.Operator:
		return evaluateOperator(n, d)
	case scan.Int:
		return evaluateInt(n)
	case scan.Identifier:
		return evaluateIdentifier(n, d)
	default:
		return nil, errors.Errorf("unknown node %#v", n)
	}
}

func evaluateParenthesis(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	if n.Left == nil {
		return nil, errors.Errorf("%#v", n)
	}
	return evaluate(n.Left, d)
}

func evaluateOperator(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	switch n.Token.Text {
	case "+":
		return evaluatePlus(n, d)
	case "-":
		return evaluateMinus(n, d)
	case "*":
		return evaluateMultiply(n, d)
	case "/":
		return evaluateDivide(n)
	case "^":
		return evaluatePower(n, d)
	default:
		return nil, errors.Errorf("%#v", n)
	}
}

func evaluateIdentifier(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	v := d.lookup(n.Token.Text)
	return poly.Var(field.NewRat(0, 1), v, 1), nil
}

func evaluatePlus(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	left, right, err := evaluateLeftRight(n, d)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	z := poly.New(field.NewRat(0, 1))
	z.Add(left, right)
	return z, nil
}

func evaluateMinus(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	left, right, err := evaluateLeftRight(n, d)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	z := poly.New(field.NewRat(0, 1))
	z.Sub(left, right)
	return z, nil
}

func evaluateMultiply(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	left, right, err := evaluateLeftRight(n, d)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	z := poly.New(field.NewRat(0, 1))
	z.Mul(left, right)
	return z, nil
}

// evaluateDivide treats "/" as forming a rational coefficient literal
// out of two integer children, not as general polynomial division.
func evaluateDivide(n *Node) (*poly.Polynomial[*field.Rat], error) {
	if n.Left == nil {
		return nil, errors.Errorf("%#v", n)
	}
	num, err := strconv.ParseInt(n.Left.Token.Text, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	if n.Right == nil {
		return nil, errors.Errorf("%#v", n)
	}
	denom, err := strconv.ParseInt(n.Right.Token.Text, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	p := poly.New(field.NewRat(0, 1), poly.Term[*field.Rat]{Coeff: field.NewRat(num, denom), Vars: nil})
	return p, nil
}

func evaluatePower(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], error) {
	if n.Left == nil {
		return nil, errors.Errorf("%#v", n)
	}
	left, err := evaluate(n.Left, d)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	if n.Right == nil {
		return nil, errors.Errorf("%#v", n)
	}
	exp, err := strconv.Atoi(n.Right.Token.Text)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	if exp < 0 {
		return nil, errors.Errorf("negative exponent: %#v", n)
	}

	f := field.NewRat(0, 1)
	z := poly.Const(f, 1)
	for i := 0; i < exp; i++ {
		next := poly.New(f)
		next.Mul(z, left)
		z = next
	}
	return z, nil
}

func evaluateInt(n *Node) (*poly.Polynomial[*field.Rat], error) {
	i, err := strconv.ParseInt(n.Token.Text, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	p := poly.Const(field.NewRat(0, 1), i)
	return p, nil
}

func evaluateLeftRight(n *Node, d *VarDict) (*poly.Polynomial[*field.Rat], *poly.Polynomial[*field.Rat], error) {
	if n.Left == nil {
		return nil, nil, errors.Errorf("%#v", n)
	}
	left, err := evaluate(n.Left, d)
	if err != nil {
		return nil, nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	if n.Right == nil {
		return nil, nil, errors.Errorf("%#v", n)
	}
	right, err := evaluate(n.Right, d)
	if err != nil {
		return nil, nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	return left, right, nil
}
