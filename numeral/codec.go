package numeral

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kurosann/radix-core/dec"
)

// Parse 解析该进位制下的字符串，前后空白自动去除
//
// 格式：可选的单个前导“-”、一个或多个数字符号、可选的小数分隔符加
// 一个或多个数字符号。其余一律返回 ErrInvalidFormat。
func (s *System) Parse(input string) (Numeral, error) {
	str := strings.TrimSpace(input)
	m := s.pattern.FindStringSubmatch(str)
	if m == nil {
		return Numeral{}, formatErr(s, input)
	}
	neg, intPart, fracPart := m[1] == "-", m[2], m[3]

	// 整数部分按 Horner 精确累加
	bi := new(big.Int)
	base := big.NewInt(int64(s.base))
	idx := new(big.Int)
	for _, r := range intPart {
		bi.Mul(bi, base)
		idx.SetInt64(int64(s.index[s.fold(string(r))]))
		bi.Add(bi, idx)
	}

	var d decimal.Decimal
	if fracPart == "" {
		d = decimal.NewFromBigInt(bi, 0)
	} else {
		// 小数部分浮点累加：从最低位向高位 Horner，得 Σ digit/base^k
		f := 0.0
		runes := []rune(fracPart)
		for i := len(runes) - 1; i >= 0; i-- {
			f = (f + float64(s.index[s.fold(string(runes[i]))])) / float64(s.base)
		}
		fi, _ := new(big.Float).SetInt(bi).Float64()
		if math.IsInf(fi, 0) {
			return Numeral{}, fmt.Errorf("%w: integer part of %q exceeds float64", ErrRange, str)
		}
		d = decimal.NewFromFloat(fi + f)
	}
	if neg {
		d = d.Neg()
	}

	n := Numeral{sys: s, dec: d, str: str}
	if !s.caseSensitive {
		// 规范化：字符串始终由数值重新编码，保证 "982a" 与 "982A" 同形
		n.str = s.encode(d)
	}
	return n, nil
}

// encode 将数值编码为该进位制的规范字符串
func (s *System) encode(d decimal.Decimal) string {
	intPart, frac := dec.Split(d.Abs())
	neg := d.IsNegative()

	var sb strings.Builder
	bi := intPart.BigInt()
	if bi.Sign() != 0 {
		if neg {
			sb.WriteString("-")
		}
		sb.WriteString(s.encodeInt(bi))
	} else {
		// 整数部分为零时渲染零符号，负数渲染为 "-0"，保证非空输出
		if neg {
			sb.WriteString("-")
		}
		sb.WriteString(s.zero)
	}

	if !frac.IsZero() {
		if tail := s.encodeFrac(frac); tail != "" {
			sb.WriteString(s.fracSep)
			sb.WriteString(tail)
		}
	}
	return sb.String()
}

// encodeInt 反复除基取余，高位在前
func (s *System) encodeInt(bi *big.Int) string {
	base := big.NewInt(int64(s.base))
	q := new(big.Int).Set(bi)
	r := new(big.Int)
	var ds []int
	for q.Sign() != 0 {
		q.QuoRem(q, base, r)
		ds = append(ds, int(r.Int64()))
	}
	var b strings.Builder
	for i := len(ds) - 1; i >= 0; i-- {
		b.WriteString(s.digits[ds[i]])
	}
	return b.String()
}

// encodeFrac 反复乘基取整，高位在前。迭代次数以小数部分十进制最短
// 字面量的位数加一位保护位为界；收尾余数大于 0.5 时再补一个单位数字
// （取 > 而非 >=，半开边界的选择固定为此并有用例锁定）。末尾零符号
// 全部去除，去空则整体省略小数部分。
func (s *System) encodeFrac(frac decimal.Decimal) string {
	f, _ := frac.Float64()
	lit := strconv.FormatFloat(f, 'f', -1, 64)
	digits := 0
	if i := strings.IndexByte(lit, '.'); i >= 0 {
		digits = len(lit) - i - 1
	}

	rem := f
	ds := make([]int, 0, digits+2)
	for i := 0; i < digits+1; i++ {
		rem *= float64(s.base)
		q := math.Floor(rem)
		rem -= q
		ds = append(ds, int(q))
	}
	if rem > 0.5 {
		ds = append(ds, 1)
	}

	var b strings.Builder
	for _, i := range ds {
		b.WriteString(s.digits[i])
	}
	return s.rstripZeros(b.String())
}

func (s *System) rstripZeros(str string) string {
	rs := []rune(str)
	i := len(rs)
	for i > 0 && s.fold(string(rs[i-1])) == s.foldedZero {
		i--
	}
	return string(rs[:i])
}
