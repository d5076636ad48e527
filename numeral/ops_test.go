package numeral

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		other any
		want  string
	}{
		{name: "same alphabet", left: "ab", other: Duodecimal.Must("ab"), want: "19a"},
		{name: "int operand", left: "a", other: 2, want: "10"},
		{name: "string operand", left: "a", other: "2", want: "10"},
		{name: "float operand", left: "a", other: 0.5, want: "a.6"},
		{name: "cross alphabet", left: "10", other: Senary.Must("10"), want: "16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Duodecimal.Must(tt.left).Add(tt.other)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Add() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddDecimalSum(t *testing.T) {
	// 同一进制相加，十进制值等于两者十进制之和
	a := Duodecimal.Must("982a")
	b := Duodecimal.Must("b3")
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	assert.Equal(t, Duodecimal, sum.System())
	assert.Equal(t, a.Int64()+b.Int64(), sum.Int64())
}

func TestArithmetic(t *testing.T) {
	n := Duodecimal.Int(20)
	sub, _ := n.Sub(6)
	assert.Equal(t, int64(14), sub.Int64())
	mul, _ := n.Mul(3)
	assert.Equal(t, int64(60), mul.Int64())
	div, _ := n.Div(8)
	assert.Equal(t, 2.5, div.Float64())
	pow, _ := Duodecimal.Int(2).Pow(10)
	assert.Equal(t, int64(1024), pow.Int64())
}

// 商向负无穷取整，余数符号跟随除数
func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int64
		quo, rem int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
	}
	for _, tt := range tests {
		q, m, err := Duodecimal.Int(tt.a).DivMod(tt.b)
		if err != nil {
			t.Fatalf("DivMod(%d, %d) error = %v", tt.a, tt.b, err)
		}
		if q.Int64() != tt.quo || m.Int64() != tt.rem {
			t.Errorf("DivMod(%d, %d) = (%d, %d), want (%d, %d)",
				tt.a, tt.b, q.Int64(), m.Int64(), tt.quo, tt.rem)
		}
	}
}

func TestPowMod(t *testing.T) {
	got, err := Duodecimal.Int(3).PowMod(100, 7)
	if err != nil {
		t.Fatalf("PowMod() error = %v", err)
	}
	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(100), big.NewInt(7))
	assert.Equal(t, want.Int64(), got.Int64())

	_, err = Duodecimal.Must(1.5).PowMod(2, 7)
	var oie *OnlyIntegersError
	if !errors.As(err, &oie) {
		t.Fatalf("PowMod() error = %v, want OnlyIntegersError", err)
	}
	assert.Equal(t, "pow", oie.Op)
}

func TestUnary(t *testing.T) {
	v := Duodecimal.Must(-2.5)
	assert.Equal(t, "2.6", v.Abs().String())
	assert.Equal(t, "2.6", v.Neg().String())
	assert.Equal(t, v, v.Pos())
	assert.Equal(t, int64(-2), v.Trunc().Int64())
	assert.Equal(t, int64(-3), v.Floor().Int64())
	assert.Equal(t, int64(-2), v.Ceil().Int64())
}

// 四舍六入五成双
func TestRoundHalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{2.5, 2},
		{3.5, 4},
		{-2.5, -2},
		{2.4, 2},
		{2.6, 3},
	}
	for _, tt := range tests {
		got := Duodecimal.Must(tt.in).Round()
		if got.Int64() != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got.Int64(), tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := Duodecimal.Must("a")
	assert.True(t, a.Eq(10))
	assert.True(t, a.Eq("a"))
	assert.False(t, a.Eq(11))
	assert.False(t, a.Eq(struct{}{}))

	lt, err := a.LT("b")
	assert.NoError(t, err)
	assert.True(t, lt)
	gte, err := a.GTE(10)
	assert.NoError(t, err)
	assert.True(t, gte)

	if _, err := a.Cmp(struct{}{}); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Cmp() error = %v, want ErrUnsupportedOperand", err)
	}
}

// 类型不支持返回 ErrUnsupportedOperand，解析失败原样透出
func TestOperandErrors(t *testing.T) {
	a := Duodecimal.Int(1)
	if _, err := a.Add(struct{}{}); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Add(struct{}{}) error = %v, want ErrUnsupportedOperand", err)
	}
	if _, err := a.Add("+982"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Add(\"+982\") error = %v, want ErrInvalidFormat", err)
	}
}
