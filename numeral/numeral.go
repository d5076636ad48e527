package numeral

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kurosann/radix-core/dec"
)

// Numeral 某个进位制下的不可变数值：规范字符串与其十进制值成对出现，
// 所有运算都产生新值
type Numeral struct {
	sys *System
	dec decimal.Decimal
	str string
}

// From builds a Numeral from a string (parsed), an integer (exact), a
// finite float, or another Numeral. A Numeral from a different system is
// converted through its decimal value, never by digit remapping. Any
// other type reports ErrUnsupportedType so that operator dispatch can
// fall back to the other operand.
func (s *System) From(value any) (Numeral, error) {
	switch v := value.(type) {
	case string:
		return s.Parse(v)
	case int:
		return s.Int(int64(v)), nil
	case int8:
		return s.Int(int64(v)), nil
	case int16:
		return s.Int(int64(v)), nil
	case int32:
		return s.Int(int64(v)), nil
	case int64:
		return s.Int(v), nil
	case byte:
		return s.Int(int64(v)), nil
	case float32:
		return s.Float(float64(v))
	case float64:
		return s.Float(v)
	case Numeral:
		if v.sys == s {
			return v, nil
		}
		return s.fromDecimal(v.dec), nil
	case *Numeral:
		return s.From(*v)
	default:
		// decimal.Decimal / big.Rat / big.Float 等高精度输入暂不支持
		return Numeral{}, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// Must 同 From，失败直接panic
func (s *System) Must(value any) Numeral {
	n, err := s.From(value)
	if err != nil {
		panic(err)
	}
	return n
}

// Int 从整数精确构造
func (s *System) Int(i int64) Numeral {
	return s.fromDecimal(dec.Int(i))
}

// Float 从有限浮点构造，NaN/Inf 返回 ErrNonFinite
func (s *System) Float(f float64) (Numeral, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Numeral{}, fmt.Errorf("%w: cannot convert %v to %s", ErrNonFinite, f, s.name)
	}
	return s.fromDecimal(dec.Float(f)), nil
}

func (s *System) fromDecimal(d decimal.Decimal) Numeral {
	return Numeral{sys: s, dec: d, str: s.encode(d)}
}

// System returns the owning numeral system.
func (n Numeral) System() *System { return n.sys }

// String returns the canonical representation in the owning alphabet.
func (n Numeral) String() string { return n.str }

// Decimal returns the exact decimal value.
func (n Numeral) Decimal() decimal.Decimal { return n.dec }

// Float64 returns the value as a float64.
func (n Numeral) Float64() float64 {
	f, _ := n.dec.Float64()
	return f
}

// Int64 returns the integer part, truncating toward zero.
func (n Numeral) Int64() int64 { return n.dec.IntPart() }

// BigInt returns the integer part, truncating toward zero.
func (n Numeral) BigInt() *big.Int { return n.dec.BigInt() }

// Bool 字符串为空才为假，规范编码下零值渲染为零符号，实际恒为真
func (n Numeral) Bool() bool { return n.str != "" }

// IsInteger reports whether the value has no fractional component.
func (n Numeral) IsInteger() bool { return n.dec.IsInteger() }

func (n Numeral) GoString() string {
	if n.sys == nil {
		return "numeral.Numeral{}"
	}
	return fmt.Sprintf("%s(%q)", n.sys.name, n.str)
}

// MarshalText 编码为规范字符串。不提供 UnmarshalText：裸字符串不携带
// 进位制信息，解码走 System.Parse
func (n Numeral) MarshalText() ([]byte, error) {
	return []byte(n.str), nil
}

func (n Numeral) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.str)), nil
}
