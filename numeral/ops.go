package numeral

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kurosann/radix-core/dec"
)

// convert brings the other operand into the receiver's system. A type
// the system cannot build from becomes ErrUnsupportedOperand so that
// Eval can try the reversed form; parse and domain errors propagate
// as themselves.
func (n Numeral) convert(other any) (Numeral, error) {
	o, err := n.sys.From(other)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			return Numeral{}, fmt.Errorf("%w: %T", ErrUnsupportedOperand, other)
		}
		return Numeral{}, err
	}
	return o, nil
}

func (n Numeral) wrap(d decimal.Decimal) Numeral {
	return n.sys.fromDecimal(d)
}

// comparison

// Cmp 比较大小，返回 -1/0/1
func (n Numeral) Cmp(other any) (int, error) {
	o, err := n.convert(other)
	if err != nil {
		return 0, err
	}
	return n.dec.Cmp(o.dec), nil
}

// Eq 相等比较，无法转换的对象视为不等
func (n Numeral) Eq(other any) bool {
	c, err := n.Cmp(other)
	return err == nil && c == 0
}

// LT 小于
func (n Numeral) LT(other any) (bool, error) {
	c, err := n.Cmp(other)
	return c < 0, err
}

// LTE 小于等于
func (n Numeral) LTE(other any) (bool, error) {
	c, err := n.Cmp(other)
	return c <= 0, err
}

// GT 大于
func (n Numeral) GT(other any) (bool, error) {
	c, err := n.Cmp(other)
	return c > 0, err
}

// GTE 大于等于
func (n Numeral) GTE(other any) (bool, error) {
	c, err := n.Cmp(other)
	return c >= 0, err
}

// unary

// Abs 绝对值
func (n Numeral) Abs() Numeral { return n.wrap(n.dec.Abs()) }

// Neg 取负
func (n Numeral) Neg() Numeral { return n.wrap(n.dec.Neg()) }

// Pos +self，返回自身
func (n Numeral) Pos() Numeral { return n }

// Trunc 向零取整
func (n Numeral) Trunc() Numeral { return n.wrap(n.dec.Truncate(0)) }

// Floor 向负无穷取整
func (n Numeral) Floor() Numeral { return n.wrap(n.dec.Floor()) }

// Ceil 向正无穷取整
func (n Numeral) Ceil() Numeral { return n.wrap(n.dec.Ceil()) }

// Round 四舍六入五成双，places 缺省为 0
func (n Numeral) Round(places ...int32) Numeral {
	var p int32
	if len(places) != 0 {
		p = places[0]
	}
	return n.wrap(n.dec.RoundBank(p))
}

// binary

// Add self + other
func (n Numeral) Add(other any) (Numeral, error) {
	o, err := n.convert(other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrap(dec.Add(n.dec, o.dec)), nil
}

// Sub self - other
func (n Numeral) Sub(other any) (Numeral, error) {
	o, err := n.convert(other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrap(dec.Sub(n.dec, o.dec)), nil
}

// Mul self * other
func (n Numeral) Mul(other any) (Numeral, error) {
	o, err := n.convert(other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrap(dec.Mul(n.dec, o.dec)), nil
}

// Div self / other，真除法，精度由 decimal.DivisionPrecision 决定
func (n Numeral) Div(other any) (Numeral, error) {
	o, err := n.convert(other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrap(dec.Div(n.dec, o.dec)), nil
}

// FloorDiv self // other，商向负无穷取整
func (n Numeral) FloorDiv(other any) (Numeral, error) {
	o, err := n.convert(other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrap(dec.FloorDiv(n.dec, o.dec)), nil
}

// Mod self % other，余数符号跟随除数（floored 语义）
func (n Numeral) Mod(other any) (Numeral, error) {
	o, err := n.convert(other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrap(dec.FloorMod(n.dec, o.dec)), nil
}

// DivMod the pair (self // other, self % other), computed independently.
func (n Numeral) DivMod(other any) (Numeral, Numeral, error) {
	q, err := n.FloorDiv(other)
	if err != nil {
		return Numeral{}, Numeral{}, err
	}
	m, err := n.Mod(other)
	if err != nil {
		return Numeral{}, Numeral{}, err
	}
	return q, m, nil
}

// Pow self ** exponent
func (n Numeral) Pow(exponent any) (Numeral, error) {
	o, err := n.convert(exponent)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrap(dec.Pow(n.dec, o.dec)), nil
}

// PowMod self ** exponent % modulus，模幂要求三个操作数均为整数
func (n Numeral) PowMod(exponent, modulus any) (Numeral, error) {
	e, err := n.convert(exponent)
	if err != nil {
		return Numeral{}, err
	}
	m, err := n.convert(modulus)
	if err != nil {
		return Numeral{}, err
	}
	if !n.IsInteger() || !e.IsInteger() || !m.IsInteger() {
		return Numeral{}, onlyIntegers("pow", n, e, m)
	}
	return n.wrap(dec.PowMod(n.dec, e.dec, m.dec)), nil
}
