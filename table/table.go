package table

import (
	"bytes"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kurosann/radix-core/numeral"
)

// Digits 数字符号表：位值、符号
func Digits(sys *numeral.System) []byte {
	t, buffer := makeTable(digitsRows(sys))
	t.Render()
	return buffer.Bytes()
}

// DigitsHtml 同 Digits，输出 HTML
func DigitsHtml(sys *numeral.System, css ...string) []byte {
	t, buffer := makeTable(digitsRows(sys))
	applyCss(t, css)
	t.RenderHTML()
	return buffer.Bytes()
}

func digitsRows(sys *numeral.System) (table.Row, []table.Row) {
	header := table.Row{"dec", sys.Name()}
	rows := make([]table.Row, 0, sys.Base())
	for i, d := range sys.Digits() {
		rows = append(rows, table.Row{i, d})
	}
	return header, rows
}

// Addition n×n 加法表
func Addition(sys *numeral.System, n int) []byte {
	t, buffer := makeTable(opRows(sys, n, "+", func(i, j int64) int64 { return i + j }))
	t.Render()
	return buffer.Bytes()
}

// Multiplication n×n 乘法表
func Multiplication(sys *numeral.System, n int) []byte {
	t, buffer := makeTable(opRows(sys, n, "×", func(i, j int64) int64 { return i * j }))
	t.Render()
	return buffer.Bytes()
}

func opRows(sys *numeral.System, n int, op string, fn func(i, j int64) int64) (table.Row, []table.Row) {
	header := table.Row{op}
	for j := int64(0); j < int64(n); j++ {
		header = append(header, sys.Int(j).String())
	}
	rows := make([]table.Row, 0, n)
	for i := int64(0); i < int64(n); i++ {
		row := table.Row{sys.Int(i).String()}
		for j := int64(0); j < int64(n); j++ {
			row = append(row, sys.Int(fn(i, j)).String())
		}
		rows = append(rows, row)
	}
	return header, rows
}

// Conversions 换算表：每行一个十进制值，每列一个进位制
func Conversions(decimals []int64, systems ...*numeral.System) []byte {
	t, buffer := makeTable(conversionRows(decimals, systems))
	t.Render()
	return buffer.Bytes()
}

// ConversionsHtml 同 Conversions，输出 HTML
func ConversionsHtml(decimals []int64, systems []*numeral.System, css ...string) []byte {
	t, buffer := makeTable(conversionRows(decimals, systems))
	applyCss(t, css)
	t.RenderHTML()
	return buffer.Bytes()
}

func conversionRows(decimals []int64, systems []*numeral.System) (table.Row, []table.Row) {
	header := table.Row{"dec"}
	for _, sys := range systems {
		header = append(header, sys.Name())
	}
	rows := make([]table.Row, 0, len(decimals))
	for _, d := range decimals {
		row := table.Row{d}
		for _, sys := range systems {
			row = append(row, sys.Int(d).String())
		}
		rows = append(rows, row)
	}
	return header, rows
}

func applyCss(t table.Writer, css []string) {
	if len(css) != 0 {
		t.Style().HTML.CSSClass = css[0]
	}
}

func makeTable(header table.Row, rows []table.Row) (table.Writer, *bytes.Buffer) {
	t := table.NewWriter()
	buffer := bytes.NewBuffer([]byte{})
	t.SetOutputMirror(buffer)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.SetStyle(table.StyleLight)
	return t, buffer
}
