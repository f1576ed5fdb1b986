// Package observability provides hooks for instrumenting air-wire builds.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about per-net build runs; the
// library itself stays free of logging and metrics frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Callers that drive builds emit the events:
//
//	observability.Build().OnBuildStart(ctx, net, pointCount)
//	// ... compute air wires ...
//	observability.Build().OnBuildComplete(ctx, net, wireCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from air-wire build runs.
type BuildHooks interface {
	// OnBuildStart records the start of one net's computation.
	OnBuildStart(ctx context.Context, net string, pointCount int)

	// OnBuildComplete records the end of one net's computation.
	OnBuildComplete(ctx context.Context, net string, wireCount int, duration time.Duration, err error)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string, int)                        {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any builds run.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
}
