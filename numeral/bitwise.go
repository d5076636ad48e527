package numeral

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// 位运算族：两侧操作数的值必须为整数（判断的是数值本身而非输入类型），
// 否则返回 OnlyIntegersError。负数按二进制补码语义处理。

// Invert ~self
func (n Numeral) Invert() (Numeral, error) {
	if !n.IsInteger() {
		return Numeral{}, onlyIntegers("invert", n)
	}
	return n.wrapBig(new(big.Int).Not(n.BigInt())), nil
}

// Lsh self << other
func (n Numeral) Lsh(other any) (Numeral, error) {
	count, err := n.shiftOperand("lshift", other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrapBig(new(big.Int).Lsh(n.BigInt(), count)), nil
}

// Rsh self >> other
func (n Numeral) Rsh(other any) (Numeral, error) {
	count, err := n.shiftOperand("rshift", other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrapBig(new(big.Int).Rsh(n.BigInt(), count)), nil
}

// And self & other
func (n Numeral) And(other any) (Numeral, error) {
	o, err := n.bitwiseOperand("and", other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrapBig(new(big.Int).And(n.BigInt(), o.BigInt())), nil
}

// Or self | other
func (n Numeral) Or(other any) (Numeral, error) {
	o, err := n.bitwiseOperand("or", other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrapBig(new(big.Int).Or(n.BigInt(), o.BigInt())), nil
}

// Xor self ^ other
func (n Numeral) Xor(other any) (Numeral, error) {
	o, err := n.bitwiseOperand("xor", other)
	if err != nil {
		return Numeral{}, err
	}
	return n.wrapBig(new(big.Int).Xor(n.BigInt(), o.BigInt())), nil
}

func (n Numeral) bitwiseOperand(op string, other any) (Numeral, error) {
	o, err := n.convert(other)
	if err != nil {
		return Numeral{}, err
	}
	if !n.IsInteger() || !o.IsInteger() {
		return Numeral{}, onlyIntegers(op, n, o)
	}
	return o, nil
}

func (n Numeral) shiftOperand(op string, other any) (uint, error) {
	o, err := n.bitwiseOperand(op, other)
	if err != nil {
		return 0, err
	}
	count := o.Int64()
	if count < 0 {
		return 0, ErrNegativeShift
	}
	return uint(count), nil
}

func (n Numeral) wrapBig(i *big.Int) Numeral {
	return n.wrap(decimal.NewFromBigInt(i, 0))
}
