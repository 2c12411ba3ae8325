package logging

import (
	"context"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for _, debug := range []bool{false, true} {
		if logger := NewLogger(debug); logger == nil {
			t.Fatalf("logger cannot be nil, debug %v", debug)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	logger1 := DefaultLogger()
	if logger1 == nil {
		t.Fatal("logger cannot be nil")
	}

	logger2 := DefaultLogger()
	if logger1 != logger2 {
		t.Errorf("expected %#v got %#v", logger1, logger2)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if logger := FromContext(ctx); logger != DefaultLogger() {
		t.Errorf("expected default logger for an empty context")
	}

	logger1 := NewLogger(true).Named("session")
	ctx = WithLogger(ctx, logger1)

	logger2 := FromContext(ctx)
	if logger1 != logger2 {
		t.Errorf("expected %#v got %#v", logger1, logger2)
	}
}
