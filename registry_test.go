//go:build !tinylog_direct

package tinylog

import (
	"sync"
	"testing"
)

type event struct {
	kind  string
	level Level
	msg   string
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) sink(kind string) Sink {
	return func(rec Record) {
		r.add(kind, &rec)
	}
}

func (r *recorder) extension() Extension {
	return func(rec *Record) {
		r.add("extension", rec)
	}
}

func (r *recorder) add(kind string, rec *Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{kind: kind, level: rec.Level(), msg: rec.Message()})
}

func (r *recorder) snapshot() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event(nil), r.events...)
}

// isolate swaps the process-wide slots and gate for fresh ones and restores
// them when the test ends.
func isolate(t *testing.T, fallback *sinkHandle, g *gate) {
	t.Helper()
	savedSlots, savedLevels := slots, levels
	slots = newRegistry(fallback)
	levels = g
	t.Cleanup(func() {
		slots, levels = savedSlots, savedLevels
	})
}

func TestRegistryDefaultInstalledOnce(t *testing.T) {
	fallback := &sinkHandle{fn: func(Record) {}}
	r := newRegistry(fallback)

	const workers = 32
	results := make([]*sinkHandle, workers)
	var start, wg sync.WaitGroup
	start.Add(1)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start.Wait()
			results[i] = r.sinkOrDefault()
		}(i)
	}
	start.Done()
	wg.Wait()

	for i, got := range results {
		if got != fallback {
			t.Fatalf("worker %d observed %p, want the default handle %p", i, got, fallback)
		}
	}
	if r.sink.Load() != fallback {
		t.Fatalf("slot does not hold the default handle")
	}
}

func TestRegistryWithoutDefaultStaysEmpty(t *testing.T) {
	r := newRegistry(nil)
	if h := r.sinkOrDefault(); h != nil {
		t.Fatalf("expected no sink, got %p", h)
	}
	if r.sink.Load() != nil {
		t.Fatalf("slot should stay empty without a default")
	}
}

func TestRegistryExplicitSinkNotReplacedByDefault(t *testing.T) {
	rec := &recorder{}
	fallback := &sinkHandle{fn: rec.sink("default")}
	r := newRegistry(fallback)

	r.register(rec.sink("explicit"))
	r.dispatch(NewRecord(InfoLevel, "one"))
	r.dispatch(NewRecord(InfoLevel, "two"))

	for _, ev := range rec.snapshot() {
		if ev.kind != "explicit" {
			t.Fatalf("default sink used after explicit registration: %+v", ev)
		}
	}
}

func TestRegistryExplicitSinkWinsAfterDefault(t *testing.T) {
	rec := &recorder{}
	r := newRegistry(&sinkHandle{fn: rec.sink("default")})

	r.dispatch(NewRecord(InfoLevel, "before"))
	r.register(rec.sink("explicit"))
	r.dispatch(NewRecord(InfoLevel, "after"))

	events := rec.snapshot()
	if len(events) != 2 {
		t.Fatalf("unexpected events: %+v", events)
	}
	if events[0].kind != "default" || events[1].kind != "explicit" {
		t.Fatalf("unexpected sink order: %+v", events)
	}
}

func TestRegistryLastWriteWins(t *testing.T) {
	rec := &recorder{}
	r := newRegistry(nil)
	r.register(rec.sink("A"))
	r.register(rec.sink("B"))

	for i := 0; i < 10; i++ {
		r.dispatch(NewRecord(WarnLevel, "msg %d", i))
	}
	events := rec.snapshot()
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.kind != "B" {
			t.Fatalf("dispatch after re-registration reached %s", ev.kind)
		}
	}
}

func TestRegistryNilSinkSilencesDispatch(t *testing.T) {
	rec := &recorder{}
	r := newRegistry(&sinkHandle{fn: rec.sink("default")})
	r.register(nil)
	r.dispatch(NewRecord(ErrorLevel, "dropped"))
	if events := rec.snapshot(); len(events) != 0 {
		t.Fatalf("nil registration should silence dispatch, got %+v", events)
	}
}

func TestRegistryExtensionHasNoDefault(t *testing.T) {
	r := newRegistry(&sinkHandle{fn: func(Record) {}})
	r.sinkOrDefault()
	if ext := r.currentExtension(); ext != nil {
		t.Fatalf("extension slot should stay empty")
	}
}

func TestRegistryConcurrentRegisterAndDispatch(t *testing.T) {
	rec := &recorder{}
	r := newRegistry(&sinkHandle{fn: rec.sink("default")})
	sinks := []Sink{rec.sink("A"), rec.sink("B"), rec.sink("C")}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.register(sinks[(i+j)%len(sinks)])
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.dispatch(NewRecord(InfoLevel, "x"))
			}
		}()
	}
	wg.Wait()

	r.register(sinks[2])
	before := len(rec.snapshot())
	r.dispatch(NewRecord(InfoLevel, "final"))
	events := rec.snapshot()
	if len(events) != before+1 || events[len(events)-1].kind != "C" {
		t.Fatalf("final dispatch did not reach the last registered sink: %+v", events[before:])
	}
}
