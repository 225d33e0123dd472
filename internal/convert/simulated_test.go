package convert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msto63/bookfab/internal/workspace"
)

func TestDefaultConfig(t *testing.T) {
	if got := DefaultConfig().Delay; got != 2*time.Second {
		t.Errorf("Delay = %v, want 2s", got)
	}
}

func TestSimulated_AlwaysSucceeds(t *testing.T) {
	s := NewSimulated(Config{Delay: 10 * time.Millisecond}, nil)

	res, err := s.Convert(context.Background(), workspace.Job{ID: "job-1", Text: "Hello"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.JobID != "job-1" {
		t.Errorf("JobID = %q, want job-1", res.JobID)
	}
	if res.Engine != "simulated" {
		t.Errorf("Engine = %q, want simulated", res.Engine)
	}
	if res.Elapsed < 10*time.Millisecond {
		t.Errorf("Elapsed = %v, want at least the delay", res.Elapsed)
	}
}

func TestSimulated_Cancelled(t *testing.T) {
	s := NewSimulated(Config{Delay: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Convert(ctx, workspace.Job{ID: "job-2"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestSimulated_NegativeDelay(t *testing.T) {
	s := NewSimulated(Config{Delay: -time.Second}, nil)
	if s.Delay() != 0 {
		t.Errorf("Delay() = %v, want 0", s.Delay())
	}
}

func TestSimulated_ImplementsSynthesizer(t *testing.T) {
	var _ Synthesizer = NewSimulated(DefaultConfig(), nil)
}
