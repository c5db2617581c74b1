package modal

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type answeredMsg struct {
	value any
	err   error
}

func TestPromise_SettlesOnce(t *testing.T) {
	p := newPromise()
	if p.Settled() {
		t.Fatalf("new promise settled")
	}

	p.resolve(1)
	p.resolve(2)
	p.reject(errors.New("late"))

	select {
	case <-p.Done():
	default:
		t.Fatalf("Done not closed after resolve")
	}
	v, err := p.Await(context.Background())
	if err != nil || v != 1 {
		t.Fatalf("Await = %v, %v; want 1, nil", v, err)
	}
}

func TestPromise_Value(t *testing.T) {
	p := newPromise()
	if v, err := p.Value(); v != nil || err != nil {
		t.Fatalf("Value before settling = %v, %v; want nil, nil", v, err)
	}
	p.resolve("done")
	if v, err := p.Value(); v != "done" || err != nil {
		t.Fatalf("Value = %v, %v; want done, nil", v, err)
	}

	rejected := newPromise()
	rejected.reject(nil)
	if v, err := rejected.Value(); v != nil || !errors.Is(err, ErrRejected) {
		t.Fatalf("Value = %v, %v; want nil, ErrRejected", v, err)
	}
}

func TestPromise_AwaitSettledIgnoresCancelledContext(t *testing.T) {
	p := newPromise()
	p.resolve("ok")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if v, err := p.Await(ctx); err != nil || v != "ok" {
		t.Fatalf("Await = %v, %v; want ok, nil", v, err)
	}
}

func TestAwaitCmd(t *testing.T) {
	p := newPromise()
	cmd := Await(context.Background(), p, func(v any, err error) tea.Msg {
		return answeredMsg{value: v, err: err}
	})
	if cmd == nil {
		t.Fatalf("Await returned a nil command")
	}

	p.resolve("yes")
	msg, ok := cmd().(answeredMsg)
	if !ok || msg.value != "yes" || msg.err != nil {
		t.Fatalf("msg = %#v, want answeredMsg{yes}", msg)
	}

	if Await(context.Background(), nil, nil) != nil {
		t.Fatalf("Await(nil promise) returned a command")
	}
}

func TestAwaitCmd_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd := Await(ctx, newPromise(), func(v any, err error) tea.Msg {
		return answeredMsg{value: v, err: err}
	})

	msg := cmd().(answeredMsg)
	if !errors.Is(msg.err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", msg.err)
	}
}
