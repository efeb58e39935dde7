package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProviderFIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	text, err := m.Complete(context.Background(), Request{User: "a"})
	if err != nil || text != "first" {
		t.Fatalf("got (%q, %v)", text, err)
	}
	text, err = m.Complete(context.Background(), Request{User: "b"})
	if err != nil || text != "second" {
		t.Fatalf("got (%q, %v)", text, err)
	}

	if m.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", m.CallCount())
	}
	if m.Calls[0].User != "a" || m.Calls[1].User != "b" {
		t.Fatalf("calls not recorded in order: %+v", m.Calls)
	}
}

func TestMockProviderExhausted(t *testing.T) {
	m := NewMockProvider()

	_, err := m.Complete(context.Background(), Request{User: "a"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMockProviderCannedError(t *testing.T) {
	m := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := m.Complete(context.Background(), Request{User: "a"})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}
