package async

import (
	"context"
	"sync"
)

// Futureは一度だけ確定する非同期の結果
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Goはfnを別goroutineで実行し、戻り値でFutureを確定させる。
func Go[T any](fn func() T) *Future[T] {
	f := NewFuture[T]()
	go func() {
		f.Resolve(fn())
	}()
	return f
}

// Resolveは最初の呼び出しだけ有効。2回目以降はfalse。
func (f *Future[T]) Resolve(v T) bool {
	settled := false
	f.once.Do(func() {
		f.value = v
		close(f.done)
		settled = true
	})
	return settled
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Waitは確定まで待つ。ctxが先に終わった場合は待つのをやめるだけで、処理自体は止めない。
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Valueはブロックしない。未確定ならfalse。
func (f *Future[T]) Value() (T, bool) {
	select {
	case <-f.done:
		return f.value, true
	default:
		var zero T
		return zero, false
	}
}
