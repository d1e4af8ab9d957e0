package translator

import (
	"context"
	"fmt"
)

// guarded runs fn and converts a panic into a failed result, so a misbehaving
// client library surfaces as an ordinary provider error.
func guarded(name string, fn func() (*ServiceResult, error)) (res *ServiceResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
			res = &ServiceResult{ServiceName: name, Error: err.Error()}
		}
	}()
	return fn()
}

// callBlocking runs fn for libraries that take no context. It returns
// ctx.Err() as soon as ctx is done; fn is left to finish on its own.
// A panic inside fn is reported as an error.
func callBlocking(ctx context.Context, fn func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type outcome struct {
		text string
		err  error
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("provider panic: %v", r)}
			}
		}()
		text, err := fn()
		done <- outcome{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case o := <-done:
		return o.text, o.err
	}
}
