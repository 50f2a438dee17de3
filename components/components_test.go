package components

import (
	"errors"
	"testing"
	"time"

	"github.com/yohamta/donburi"
)

func TestTimerTick(t *testing.T) {
	const dt = 1.0 / 60.0

	tests := []struct {
		name      string
		duration  time.Duration
		repeating bool
		ticks     int
		wantFires int
	}{
		{name: "one shot fires once", duration: 100 * time.Millisecond, ticks: 60, wantFires: 1},
		{name: "zero duration fires on first tick", duration: 0, ticks: 3, wantFires: 1},
		{name: "repeating fires every cycle", duration: 250 * time.Millisecond, repeating: true, ticks: 60, wantFires: 4},
		{name: "not yet", duration: time.Second, ticks: 30, wantFires: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(tt.duration, tt.repeating)
			fires := 0
			for i := 0; i < tt.ticks; i++ {
				if timer.Tick(dt) {
					fires++
				}
			}
			if fires != tt.wantFires {
				t.Errorf("fired %d times, want %d", fires, tt.wantFires)
			}
		})
	}
}

func TestTimerExactBoundary(t *testing.T) {
	timer := NewTimer(600*time.Millisecond, false)
	for i := 0; i < 35; i++ {
		if timer.Tick(1.0 / 60.0) {
			t.Fatalf("fired early at tick %d", i+1)
		}
	}
	if !timer.Tick(1.0 / 60.0) {
		t.Fatal("did not fire on tick 36")
	}
	if !timer.Finished() || timer.Remaining() != 0 {
		t.Errorf("Finished=%v Remaining=%v", timer.Finished(), timer.Remaining())
	}
}

func TestEntityRef(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(Transform)

	var ref EntityRef
	if _, ok := ref.Entry(w); ok {
		t.Fatal("zero ref resolved")
	}

	ref.Set(e)
	if !ref.Is(e) {
		t.Fatal("ref does not point at e")
	}
	if _, ok := ref.Entry(w); !ok {
		t.Fatal("live ref did not resolve")
	}

	w.Remove(e)
	if _, ok := ref.Entry(w); ok {
		t.Fatal("ref to removed entity resolved")
	}

	ref.Clear()
	if ref.IsSet() || ref.Is(e) {
		t.Fatal("cleared ref still set")
	}
}

func TestParcelStackRemoveByIdentity(t *testing.T) {
	w := donburi.NewWorld()
	a, b, c := w.Create(StackSlot), w.Create(StackSlot), w.Create(StackSlot)
	s := ParcelStackData{Slots: []donburi.Entity{a, b, c}, Capacity: 3}

	if !s.Full() {
		t.Fatal("three of three should be full")
	}
	if !s.Remove(b) {
		t.Fatal("Remove(b) = false")
	}
	if s.Remove(b) {
		t.Fatal("second Remove(b) = true")
	}
	if s.Len() != 2 || s.IndexOf(a) != 0 || s.IndexOf(c) != 1 {
		t.Fatalf("slots after removal = %v", s.Slots)
	}
	if top, ok := s.Top(); !ok || top != c {
		t.Fatalf("Top = %v, %v", top, ok)
	}
}

func TestParseAgentCode(t *testing.T) {
	tests := []struct {
		in      string
		want    AgentCode
		wantErr bool
	}{
		{in: "PostNord", want: PostNord},
		{in: "dhl", want: DHL},
		{in: " BRING ", want: Bring},
		{in: "budbee", want: Budbee},
		{in: "ups", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAgentCode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAgent) {
					t.Fatalf("err = %v, want ErrUnknownAgent", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseAgentCode(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestQueueDrain(t *testing.T) {
	var q Queue[int]
	q.Push(1)
	q.Push(2)
	got := q.Drain()
	q.Push(3)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Drain = %v", got)
	}
	if q.Len() != 1 {
		t.Fatalf("Len after re-push = %d", q.Len())
	}
}
