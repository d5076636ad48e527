package dec

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

func Int[T I](i T) decimal.Decimal {
	return decimal.NewFromInt(int64(i))
}
func Float[T F](f T) decimal.Decimal {
	return decimal.NewFromFloat(float64(f))
}
func String(s string) decimal.Decimal {
	if s == "" {
		return Zero
	}
	return decimal.RequireFromString(s)
}

var (
	Zero = decimal.Zero
	One  = decimal.New(1, 0)
)

func Add[T Num, R Num](i1 T, i2 R) decimal.Decimal {
	return N(i1).Add(N(i2))
}
func Sub[T Num, R Num](i1 T, i2 R) decimal.Decimal {
	return N(i1).Sub(N(i2))
}
func Pow[T Num, R Num](i1 T, i2 R) decimal.Decimal {
	return N(i1).Pow(N(i2))
}
func Mul[T Num, R Num](i1 T, i2 R) decimal.Decimal {
	return N(i1).Mul(N(i2))
}
func Div[T Num, R Num](i1 T, i2 R) decimal.Decimal {
	return N(i1).Div(N(i2))
}

// FloorDiv 向负无穷取整的除法
func FloorDiv[T Num, R Num](i1 T, i2 R) decimal.Decimal {
	d1, d2 := N(i1), N(i2)
	q, r := d1.QuoRem(d2, 0)
	if !r.IsZero() && r.Sign() != d2.Sign() {
		q = q.Sub(One)
	}
	return q
}

// FloorMod 余数，符号跟随除数，与 FloorDiv 配对：i1 == FloorDiv*i2 + FloorMod
func FloorMod[T Num, R Num](i1 T, i2 R) decimal.Decimal {
	d1, d2 := N(i1), N(i2)
	return d1.Sub(FloorDiv(d1, d2).Mul(d2))
}

// PowMod 模幂，三个参数都按整数部分取值
func PowMod(d, e, m decimal.Decimal) decimal.Decimal {
	r := new(big.Int).Exp(d.BigInt(), e.BigInt(), m.BigInt())
	return decimal.NewFromBigInt(r, 0)
}

// IsIntegral 数值是否为整数
func IsIntegral[T Num](i T) bool {
	return N(i).IsInteger()
}

// Split 拆为整数部分与小数部分，整数部分向零取整
func Split(d decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	i := d.Truncate(0)
	return i, d.Sub(i)
}

// Cmp 比较，返回 -1/0/1
func Cmp[T Num, R Num](i1 T, i2 R) int {
	return N(i1).Cmp(N(i2))
}

// Eq 等于
func Eq[T Num, R Num](i1 T, i2 R) bool {
	return N(i1).Equal(N(i2))
}

// GT 大于
func GT[T Num, R Num](i1 T, i2 R) bool {
	return N(i1).GreaterThan(N(i2))
}

// GTE 大于等于
func GTE[T Num, R Num](i1 T, i2 R) bool {
	return N(i1).GreaterThanOrEqual(N(i2))
}

// LT 小于
func LT[T Num, R Num](i1 T, i2 R) bool {
	return N(i1).LessThan(N(i2))
}

// LTE 小于等于
func LTE[T Num, R Num](i1 T, i2 R) bool {
	return N(i1).LessThanOrEqual(N(i2))
}

func N(e any) decimal.Decimal {
	switch t := e.(type) {
	case int64:
		return Int(t)
	case int32:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case byte:
		return Int(t)
	case int:
		return Int(t)
	case float64:
		return Float(t)
	case float32:
		return Float(t)
	case string:
		return String(t)
	case decimal.Decimal:
		return t
	default:
		ofA := reflect.ValueOf(e)
		if !ofA.IsValid() || ofA.IsNil() || ofA.IsZero() {
			return Zero
		}
		if s, ok := e.(interface{ String() string }); ok {
			return String(s.String())
		}
		panic(fmt.Sprintf("decimal type is not support: %v", t))
	}
}
