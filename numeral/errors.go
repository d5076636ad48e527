package numeral

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfig 数字系统配置错误（构造时立刻失败）
	ErrConfig = errors.New("invalid numeral system config")
	// ErrInvalidFormat 字符串不符合该进制的格式
	ErrInvalidFormat = errors.New("invalid format")
	// ErrNonFinite NaN/Inf 输入
	ErrNonFinite = errors.New("non-finite value")
	// ErrRange 整数部分超出 float64 可表示范围（仅在带小数路径出现）
	ErrRange = errors.New("value out of range")
	// ErrUnsupportedType 构造入参类型不支持
	ErrUnsupportedType = errors.New("unsupported value type")
	// ErrUnsupportedOperand 运算对象类型不支持，触发反向运算协议
	ErrUnsupportedOperand = errors.New("unsupported operand")
	// ErrNegativeShift 负的位移量
	ErrNegativeShift = errors.New("negative shift count")
)

// OnlyIntegersError 位运算只允许整数参与
type OnlyIntegersError struct {
	Op     string
	Values []Numeral
}

func (e *OnlyIntegersError) Error() string {
	operands := make([]string, len(e.Values))
	for i, v := range e.Values {
		operands[i] = v.String()
	}
	return fmt.Sprintf("'%s' not allowed unless all arguments are integers: %s",
		e.Op, strings.Join(operands, ", "))
}

func onlyIntegers(op string, values ...Numeral) error {
	return &OnlyIntegersError{Op: op, Values: values}
}

func formatErr(sys *System, input string) error {
	return fmt.Errorf("%w: %q is not a valid %s number", ErrInvalidFormat, strings.TrimSpace(input), sys.name)
}
