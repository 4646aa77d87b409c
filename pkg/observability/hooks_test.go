package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerationHooks{}
	g.OnCaseStart(ctx, 3, "tree")
	g.OnCaseComplete(ctx, 3, "tree", 9, time.Millisecond, nil)
	g.OnCaseComplete(ctx, 9, "bounded-tree", 0, time.Millisecond, errors.New("boom"))
	g.OnRedraw(ctx, 10, 2)

	o := NoopOutputHooks{}
	o.OnWrite(ctx, "out/prompt_inputs/3.in", 64)
	o.OnVerify(ctx, 3, true)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	customGen := &testGenerationHooks{}
	SetGenerationHooks(customGen)
	if Generation() != customGen {
		t.Error("SetGenerationHooks should set custom hooks")
	}

	customOut := &testOutputHooks{}
	SetOutputHooks(customOut)
	if Output() != customOut {
		t.Error("SetOutputHooks should set custom hooks")
	}

	Reset()
	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Reset() should restore NoopGenerationHooks")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Reset() should restore NoopOutputHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGenerationHooks{}
	SetGenerationHooks(custom)
	SetGenerationHooks(nil)

	if Generation() != custom {
		t.Error("SetGenerationHooks(nil) should be ignored")
	}
}

type testGenerationHooks struct{ NoopGenerationHooks }
type testOutputHooks struct{ NoopOutputHooks }
