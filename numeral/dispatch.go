package numeral

import (
	"errors"
	"fmt"
)

// Op 二元运算符
type Op string

const (
	OpAdd      Op = "add"
	OpSub      Op = "sub"
	OpMul      Op = "mul"
	OpDiv      Op = "div"
	OpFloorDiv Op = "floordiv"
	OpMod      Op = "mod"
	OpPow      Op = "pow"
	OpLsh      Op = "lshift"
	OpRsh      Op = "rshift"
	OpAnd      Op = "and"
	OpOr       Op = "or"
	OpXor      Op = "xor"
)

// Operator applies a binary operator with the receiver on the left.
// Returning ErrUnsupportedOperand means "not my type" and lets Eval try
// the other side; any other error is final.
type Operator interface {
	Apply(op Op, other any) (any, error)
}

// ReverseOperator applies a binary operator with the receiver on the
// right, for when the left operand declined.
type ReverseOperator interface {
	ApplyReverse(op Op, other any) (any, error)
}

// Eval 二元运算符派发协议：先让左操作数尝试，左侧以
// ErrUnsupportedOperand 拒绝后再让右操作数反向尝试，两侧都拒绝才报错。
// 外部类型实现 Operator / ReverseOperator 即可与 Numeral 混合运算。
func Eval(op Op, x, y any) (any, error) {
	if o, ok := x.(Operator); ok {
		r, err := o.Apply(op, y)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrUnsupportedOperand) {
			return nil, err
		}
	}
	if o, ok := y.(ReverseOperator); ok {
		r, err := o.ApplyReverse(op, x)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrUnsupportedOperand) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w type(s) for %q: %T and %T", ErrUnsupportedOperand, op, x, y)
}

// Apply implements Operator for all twelve binary operators.
func (n Numeral) Apply(op Op, other any) (any, error) {
	var (
		r   Numeral
		err error
	)
	switch op {
	case OpAdd:
		r, err = n.Add(other)
	case OpSub:
		r, err = n.Sub(other)
	case OpMul:
		r, err = n.Mul(other)
	case OpDiv:
		r, err = n.Div(other)
	case OpFloorDiv:
		r, err = n.FloorDiv(other)
	case OpMod:
		r, err = n.Mod(other)
	case OpPow:
		r, err = n.Pow(other)
	case OpLsh:
		r, err = n.Lsh(other)
	case OpRsh:
		r, err = n.Rsh(other)
	case OpAnd:
		r, err = n.And(other)
	case OpOr:
		r, err = n.Or(other)
	case OpXor:
		r, err = n.Xor(other)
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ApplyReverse implements ReverseOperator: the other operand is
// converted into the receiver's system and takes the left side.
func (n Numeral) ApplyReverse(op Op, other any) (any, error) {
	o, err := n.convert(other)
	if err != nil {
		return nil, err
	}
	return o.Apply(op, n)
}
