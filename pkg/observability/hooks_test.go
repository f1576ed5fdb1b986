package observability

import (
	"context"
	"testing"
	"time"
)

type testBuildHooks struct {
	starts    int
	completes int
}

func (h *testBuildHooks) OnBuildStart(context.Context, string, int) { h.starts++ }
func (h *testBuildHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {
	h.completes++
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopBuildHooks{}
	h.OnBuildStart(ctx, "GND", 12)
	h.OnBuildComplete(ctx, "GND", 11, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Build() should return NoopBuildHooks by default")
	}

	custom := &testBuildHooks{}
	SetBuildHooks(custom)
	if Build() != BuildHooks(custom) {
		t.Error("SetBuildHooks should set custom hooks")
	}

	Build().OnBuildStart(context.Background(), "GND", 3)
	Build().OnBuildComplete(context.Background(), "GND", 2, time.Millisecond, nil)
	if custom.starts != 1 || custom.completes != 1 {
		t.Errorf("hooks received %d starts, %d completes; want 1 each", custom.starts, custom.completes)
	}

	// Nil registrations are ignored.
	SetBuildHooks(nil)
	if Build() != BuildHooks(custom) {
		t.Error("SetBuildHooks(nil) should keep the previous hooks")
	}

	Reset()
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Reset() should restore NoopBuildHooks")
	}
}
