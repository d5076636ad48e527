package numeral

import (
	"sort"
	"sync"

	"github.com/kurosann/radix-core/logger"
)

// 内置进位制，纯数据：一张符号表加一个名字
var (
	Duodecimal       = MustSystem(Config{Name: "duodecimal", Digits: "0123456789ab"})
	DuodecimalTE     = MustSystem(Config{Name: "duodecimal-te", Digits: "0123456789te"})
	DuodecimalXE     = MustSystem(Config{Name: "duodecimal-xe", Digits: "0123456789xe"})
	DuodecimalXZ     = MustSystem(Config{Name: "duodecimal-xz", Digits: "0123456789xz"})
	DuodecimalTurned = MustSystem(Config{Name: "duodecimal-turned", Digits: "0123456789↊↋"})
	Quaternary       = MustSystem(Config{Name: "quaternary", Digits: "0123"})
	Quinary          = MustSystem(Config{Name: "quinary", Digits: "01234"})
	Senary           = MustSystem(Config{Name: "senary", Digits: "012345"})
	Vigesimal        = MustSystem(Config{Name: "vigesimal", Digits: "0123456789abcdefghij"})
	VigesimalJK      = MustSystem(Config{Name: "vigesimal-jk", Digits: "0123456789abcdefghjk"})
	Bengali          = MustSystem(Config{Name: "bengali", Digits: "০১২৩৪৫৬৭৮৯"})
	Devanagari       = MustSystem(Config{Name: "devanagari", Digits: "०१२३४५६७८९"})
)

var (
	registryMu sync.RWMutex
	registry   = map[string]*System{}
)

func init() {
	for _, s := range []*System{
		Duodecimal, DuodecimalTE, DuodecimalXE, DuodecimalXZ, DuodecimalTurned,
		Quaternary, Quinary, Senary, Vigesimal, VigesimalJK,
		Bengali, Devanagari,
	} {
		Register(s)
	}
}

// Register 按名称注册进位制，重名覆盖
func Register(sys *System) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[sys.name]; ok {
		logger.Debugf("numeral: overriding registered system %q", sys.name)
	}
	registry[sys.name] = sys
}

// Lookup 按名称查找进位制
func Lookup(name string) (*System, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	return s, ok
}

// Systems 返回所有已注册的名称，按字典序
func Systems() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
