package safe

import (
	"errors"
	"strings"
	"testing"
)

func TestMap(t *testing.T) {
	t.Run("保持输入顺序", func(t *testing.T) {
		out, err := Map([]int{1, 2, 3, 4}, func(i int) (int, error) {
			return i * i, nil
		})
		if err != nil {
			t.Fatalf("预期无错误，实际得到: %v", err)
		}
		for i, v := range []int{1, 4, 9, 16} {
			if out[i] != v {
				t.Errorf("Map()[%d] = %v, want %v", i, out[i], v)
			}
		}
	})

	t.Run("错误合并", func(t *testing.T) {
		wantErr := errors.New("bad input")
		_, err := Map([]int{1, 2, 3}, func(i int) (int, error) {
			if i == 2 {
				return 0, wantErr
			}
			return i, nil
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("预期错误 %v，实际得到: %v", wantErr, err)
		}
	})

	t.Run("panic转错误", func(t *testing.T) {
		_, err := Map([]int{1}, func(i int) (int, error) {
			panic("boom")
		})
		if err == nil {
			t.Fatal("预期panic错误")
		}
	})
}

func TestTry(t *testing.T) {
	tests := []struct {
		name    string
		args    func()
		wantErr bool
	}{
		{name: "panic", args: func() {
			panic("panic")
		}, wantErr: true},
		{name: "not problem", args: func() {
		}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Try(tt.args); (err != nil) != tt.wantErr {
				t.Errorf("TryE() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTryE(t *testing.T) {
	tests := []struct {
		name    string
		args    func() error
		wantErr bool
	}{
		{name: "panic", args: func() error {
			panic("panic")
		}, wantErr: true},
		{name: "error", args: func() error {
			return errors.New("error")
		}, wantErr: true},
		{name: "not problem", args: func() error {
			return nil
		}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := TryE(tt.args); (err != nil) != tt.wantErr {
				t.Errorf("TryE() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWaitGroup_WaitAndRecover(t *testing.T) {
	t.Run("没有panic和错误", func(t *testing.T) {
		wg := NewWaitGroup()
		wg.Go(func() {})
		wg.GoE(func() error { return nil })
		if err := wg.WaitAndRecover(); err != nil {
			t.Errorf("预期无错误，实际得到: %v", err)
		}
	})

	t.Run("只有错误", func(t *testing.T) {
		wg := NewWaitGroup()
		expectedErr := errors.New("test error")
		wg.GoE(func() error { return expectedErr })
		err := wg.WaitAndRecover()
		if !errors.Is(err, expectedErr) {
			t.Errorf("预期错误 %v，实际得到: %v", expectedErr, err)
		}
	})

	t.Run("只有panic", func(t *testing.T) {
		wg := NewWaitGroup()
		wg.Go(func() { panic("test panic") })
		err := wg.WaitAndRecover()
		if err == nil || err.Error() != "panic: test panic" {
			t.Errorf("预期panic错误，实际得到: %v", err)
		}
	})

	t.Run("并发错误全部聚合", func(t *testing.T) {
		wg := NewWaitGroup()
		errs := make([]error, 8)
		for i := range errs {
			errs[i] = errors.New("worker failed")
			e := errs[i]
			wg.GoE(func() error { return e })
		}
		err := wg.WaitAndRecover()
		for i, e := range errs {
			if !errors.Is(err, e) {
				t.Errorf("缺少第%d个错误: %v", i, err)
			}
		}
	})

	t.Run("混合错误和panic", func(t *testing.T) {
		wg := NewWaitGroup()
		err1 := errors.New("error 1")
		err2 := errors.New("error 2")

		wg.GoE(func() error { return err1 })
		wg.Go(func() { panic("test panic") })
		wg.GoE(func() error { return err2 })

		err := wg.WaitAndRecover()
		if !errors.Is(err, err1) || !errors.Is(err, err2) {
			t.Errorf("预期包含 %v 和 %v，实际得到: %v", err1, err2, err)
		}
		if !strings.Contains(err.Error(), "panic: test panic") {
			t.Errorf("预期包含panic信息，实际得到: %v", err)
		}
	})
}

func TestGoAndWait(t *testing.T) {
	t.Run("正常执行", func(t *testing.T) {
		if err := GoAndWait(func() {}); err != nil {
			t.Errorf("预期无错误，实际得到: %v", err)
		}
	})

	t.Run("单个panic", func(t *testing.T) {
		err := GoAndWait(func() { panic("test panic") })
		if err == nil {
			t.Fatalf("预期错误，实际得到: %v", err)
		}
	})

	t.Run("多个panic混合", func(t *testing.T) {
		err := GoAndWait(
			func() { panic("panic1") },
			func() {},
			func() { panic("panic2") },
		)

		if err == nil {
			t.Fatalf("预期错误，实际得到: %v", err)
		}
	})
}
