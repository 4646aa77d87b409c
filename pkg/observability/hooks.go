// Package observability provides hooks for metrics, tracing, and logging.
//
// Generation code reports events through registered hooks instead of
// depending on an observability backend. Defaults are no-ops; a binary
// registers its own implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myGenerationHooks{})
//	    observability.SetOutputHooks(&myOutputHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generation().OnCaseStart(ctx, id, name)
//	// ... build graphs ...
//	observability.Generation().OnCaseComplete(ctx, id, name, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generation Hooks
// =============================================================================

// GenerationHooks receives events from test case generation.
type GenerationHooks interface {
	// OnCaseStart is called before a test case draws its parameters.
	OnCaseStart(ctx context.Context, id int, name string)

	// OnCaseComplete is called once per case, successful or not.
	OnCaseComplete(ctx context.Context, id int, name string, edges int, duration time.Duration, err error)

	// OnRedraw reports how many candidates the duplicate-avoidance loop
	// rejected for a case. It is only called when that number is positive.
	OnRedraw(ctx context.Context, id int, redraws int)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events about generated files.
type OutputHooks interface {
	// OnWrite records a completed file write.
	OnWrite(ctx context.Context, path string, size int)

	// OnVerify records the result of re-checking one case against a manifest.
	OnVerify(ctx context.Context, id int, match bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnCaseStart(context.Context, int, string) {}
func (NoopGenerationHooks) OnCaseComplete(context.Context, int, string, int, time.Duration, error) {
}
func (NoopGenerationHooks) OnRedraw(context.Context, int, int) {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnWrite(context.Context, string, int) {}
func (NoopOutputHooks) OnVerify(context.Context, int, bool)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	outputHooks     OutputHooks     = NoopOutputHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup before any generation.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
	outputHooks = NoopOutputHooks{}
}
