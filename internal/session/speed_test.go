package session

import (
	"testing"
	"time"
)

func TestComputeSpeed(t *testing.T) {
	start := time.Unix(0, 0)
	if got := ComputeSpeed(start, start.Add(time.Minute), 40); got != 40 {
		t.Fatalf("expected 40 WPM, got %d", got)
	}
	if got := ComputeSpeed(start, start.Add(30*time.Second), 4); got != 8 {
		t.Fatalf("expected 8 WPM, got %d", got)
	}
	if got := ComputeSpeed(start, start.Add(time.Minute), 0); got != 0 {
		t.Fatalf("expected 0 WPM for no words, got %d", got)
	}
}

func TestComputeSpeedFloorsElapsed(t *testing.T) {
	start := time.Unix(0, 0)
	same := ComputeSpeed(start, start, 3)
	if same != 180 {
		t.Fatalf("expected zero elapsed to use the one second floor, got %d", same)
	}
	backwards := ComputeSpeed(start, start.Add(-time.Second), 3)
	if backwards != same {
		t.Fatalf("expected negative elapsed to use the floor, got %d", backwards)
	}
}

func TestComputeSpeedMonotonic(t *testing.T) {
	start := time.Unix(0, 0)
	prev := ComputeSpeed(start, start, 25)
	for d := 500 * time.Millisecond; d <= 3*time.Minute; d += 700 * time.Millisecond {
		cur := ComputeSpeed(start, start.Add(d), 25)
		if cur > prev {
			t.Fatalf("speed increased with elapsed time at %s: %d > %d", d, cur, prev)
		}
		prev = cur
	}
	end := start.Add(47 * time.Second)
	prev = ComputeSpeed(start, end, 0)
	for words := 1; words <= 100; words++ {
		cur := ComputeSpeed(start, end, words)
		if cur < prev {
			t.Fatalf("speed decreased with word count at %d: %d < %d", words, cur, prev)
		}
		prev = cur
	}
}
