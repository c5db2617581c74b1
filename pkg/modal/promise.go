package modal

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Promise is the pending outcome of a Show or Hide call. It settles at most
// once; later Resolve or Reject calls are ignored.
type Promise struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   error
}

func newPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Done is closed once the promise settles.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has a value or an error.
func (p *Promise) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Value returns the settled value and error without blocking. Before the
// promise settles both are zero.
func (p *Promise) Value() (any, error) {
	if !p.Settled() {
		return nil, nil
	}
	return p.value, p.err
}

// Await blocks until the promise settles or ctx is done. A promise
// abandoned by Remove never settles, so callers that may race a Remove
// should pass a cancellable ctx.
func (p *Promise) Await(ctx context.Context) (any, error) {
	if p.Settled() {
		return p.value, p.err
	}
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Promise) resolve(value any) {
	p.once.Do(func() {
		p.value = value
		close(p.done)
	})
}

func (p *Promise) reject(err error) {
	if err == nil {
		err = ErrRejected
	}
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Await returns a command that waits for p and reports the outcome through
// fn. Use it from Update to resume once the user answers a dialog:
//
//	p, err := mgr.Show(confirmID, modal.Args{"title": "Delete?"})
//	if err != nil {
//		return m, nil
//	}
//	return m, modal.Await(m.ctx, p, func(v any, err error) tea.Msg {
//		return confirmedMsg{ok: v == true, err: err}
//	})
func Await(ctx context.Context, p *Promise, fn func(any, error) tea.Msg) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		return fn(p.Await(ctx))
	}
}
