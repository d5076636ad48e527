package safe

import (
	"errors"
	"sync"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/panics"
)

type WaitGroup struct {
	conc.WaitGroup
	mu   sync.Mutex
	errs []error

	Recovered *panics.Recovered
}

func NewWaitGroup() *WaitGroup {
	return &WaitGroup{}
}

func (g *WaitGroup) GoE(f func() error) {
	g.WaitGroup.Go(func() {
		if err := f(); err != nil {
			g.mu.Lock()
			g.errs = append(g.errs, err)
			g.mu.Unlock()
		}
	})
}

// WaitAndRecover 等待并捕获panic
func (g *WaitGroup) WaitAndRecover() error {
	g.Recovered = g.WaitGroup.WaitAndRecover()
	if g.Recovered != nil {
		g.errs = append(g.errs, g.Recovered.AsError())
	}
	if g.errs != nil {
		return errors.Join(g.errs...)
	}
	return nil
}

// GoAndWait 安全启动goroutines并等待
func GoAndWait(fs ...func()) error {
	group := NewWaitGroup()
	for _, fn := range fs {
		group.Go(fn)
	}
	return group.WaitAndRecover()
}

// Map 并发映射，结果顺序与输入一致，错误与panic合并返回
func Map[T, R any](in []T, fn func(T) (R, error)) ([]R, error) {
	var (
		out    []R
		mapErr error
	)
	if err := Try(func() {
		out, mapErr = iter.MapErr(in, func(t *T) (R, error) {
			return fn(*t)
		})
	}); err != nil {
		return nil, err
	}
	if mapErr != nil {
		return nil, mapErr
	}
	return out, nil
}

// Catcher 捕获器
type Catcher struct {
	panics.Catcher
	err error

	Recovered *panics.Recovered
}

// AsError 结果转error
func (c *Catcher) AsError() error {
	if c.err != nil {
		return c.err
	}
	c.Recovered = c.Catcher.Recovered()
	if c.Recovered == nil {
		return nil
	}
	return c.Recovered.AsError()
}

// TryE 带有error的panic错误捕获
func (c *Catcher) TryE(f func() error) {
	c.Try(func() { c.err = f() })
}

// Try panic错误捕获
func Try(f func()) error {
	c := Catcher{}
	c.Try(f)
	return c.AsError()
}

// TryE 带有error的panic错误捕获
func TryE(f func() error) error {
	c := Catcher{}
	c.TryE(f)
	return c.AsError()
}
