package numeral

import (
	"github.com/kurosann/radix-core/logger"
	"github.com/kurosann/radix-core/safe"
)

// ParseSlice 并发解析一批字符串，结果顺序与输入一致，解析失败的
// 错误合并返回
func (s *System) ParseSlice(inputs []string) ([]Numeral, error) {
	values, err := safe.Map(inputs, s.Parse)
	if err != nil {
		logger.Debugf("numeral: parse batch of %d failed: %v", len(inputs), err)
		return nil, err
	}
	return values, nil
}

// Strings 渲染一批数值的规范字符串
func Strings(values []Numeral) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
