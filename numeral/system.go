package numeral

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Config 定义一个进位制：有序且不重复的数字符号表
type Config struct {
	Name          string // 注册与错误信息中的名称，默认 base<N>
	Digits        string // 数字符号，按位值 0..base-1 排列，每个符号一个 rune
	CaseSensitive bool   // 默认大小写不敏感
	FractionalSep string // 小数分隔符，默认 "."
	GroupSep      string // 分组分隔符，暂不支持，配置即报错
}

// System is the immutable metadata of one positional numeral system:
// the digit table plus everything derived from it (base, digit index
// map, zero symbol, compiled parser). Built once, shared by pointer,
// safe for concurrent use.
type System struct {
	name          string
	digits        []string // index -> symbol, exact as declared
	base          int
	index         map[string]int // folded symbol -> index
	zero          string
	foldedZero    string
	caseSensitive bool
	fracSep       string
	pattern       *regexp.Regexp
}

// NewSystem 根据配置构造进位制元数据
func NewSystem(cfg Config) (*System, error) {
	if cfg.GroupSep != "" {
		return nil, fmt.Errorf("%w: group separators are not supported", ErrConfig)
	}
	sep := cfg.FractionalSep
	if sep == "" {
		sep = "."
	}
	if strings.Contains(cfg.Digits, sep) {
		return nil, fmt.Errorf("%w: cannot include the fractional separator %q within the digits %q",
			ErrConfig, sep, cfg.Digits)
	}
	runes := []rune(cfg.Digits)
	if len(runes) < 2 {
		return nil, fmt.Errorf("%w: at least two digits required, got %q", ErrConfig, cfg.Digits)
	}
	name := cfg.Name
	if name == "" {
		name = fmt.Sprintf("base%d", len(runes))
	}

	s := &System{
		name:          name,
		base:          len(runes),
		caseSensitive: cfg.CaseSensitive,
		fracSep:       sep,
		index:         make(map[string]int, len(runes)),
	}
	for i, r := range runes {
		d := string(r)
		key := s.fold(d)
		if _, ok := s.index[key]; ok {
			return nil, fmt.Errorf("%w: duplicate digit %q in %q", ErrConfig, d, cfg.Digits)
		}
		s.index[key] = i
		s.digits = append(s.digits, d)
	}
	s.zero = s.digits[0]
	s.foldedZero = s.fold(s.zero)

	class := charClass(runes)
	expr := fmt.Sprintf(`^(-)?([%s]+)(?:%s([%s]+))?$`, class, regexp.QuoteMeta(sep), class)
	if !cfg.CaseSensitive {
		expr = "(?i)" + expr
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	s.pattern = pattern
	return s, nil
}

// MustSystem 同 NewSystem，失败直接panic，用于包级声明
func MustSystem(cfg Config) *System {
	s, err := NewSystem(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *System) Name() string        { return s.name }
func (s *System) Base() int           { return s.base }
func (s *System) Zero() string        { return s.zero }
func (s *System) CaseSensitive() bool { return s.caseSensitive }
func (s *System) Separator() string   { return s.fracSep }

// Digit returns the symbol at the given index.
func (s *System) Digit(i int) string { return s.digits[i] }

// Digits returns a copy of the ordered symbol table.
func (s *System) Digits() []string {
	out := make([]string, len(s.digits))
	copy(out, s.digits)
	return out
}

func (s *System) String() string {
	return fmt.Sprintf("%s(base %d)", s.name, s.base)
}

// fold normalizes a symbol for lookup. Unicode case folding, so that
// case-insensitive alphabets treat "982a" and "982A" as the same number.
func (s *System) fold(str string) string {
	if s.caseSensitive {
		return str
	}
	return cases.Fold().String(str)
}

// charClass escapes the digit runes for a character-class position.
func charClass(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		switch r {
		case '\\', '[', ']', '^', '-':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
