package memory

import (
	"context"
	"testing"
	"time"
)

func TestStateStore_AddDailyVolume(t *testing.T) {
	s := NewStateStore()
	ctx := context.Background()

	total, err := s.AddDailyVolume(ctx, "client-1", "2026-08-28", 9500, time.Hour)
	if err != nil {
		t.Fatalf("AddDailyVolume() error = %v", err)
	}
	if total != 9500 {
		t.Errorf("total = %v, want 9500", total)
	}

	total, _ = s.AddDailyVolume(ctx, "client-1", "2026-08-28", 9200, time.Hour)
	if total != 18700 {
		t.Errorf("total = %v, want 18700", total)
	}

	// Different day starts a fresh counter.
	total, _ = s.AddDailyVolume(ctx, "client-1", "2026-08-29", 100, time.Hour)
	if total != 100 {
		t.Errorf("total = %v, want 100", total)
	}

	// Different client is independent.
	total, _ = s.AddDailyVolume(ctx, "client-2", "2026-08-28", 50, time.Hour)
	if total != 50 {
		t.Errorf("total = %v, want 50", total)
	}
}

func TestStateStore_IncrNearThreshold(t *testing.T) {
	s := NewStateStore()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		count, err := s.IncrNearThreshold(ctx, "client-1", "2026-08-28", time.Hour)
		if err != nil {
			t.Fatalf("IncrNearThreshold() error = %v", err)
		}
		if count != want {
			t.Errorf("count = %d, want %d", count, want)
		}
	}
}

func TestStateStore_ExpiredCounterResets(t *testing.T) {
	s := NewStateStore()
	ctx := context.Background()

	s.AddDailyVolume(ctx, "client-1", "2026-08-28", 9500, -time.Second)

	total, _ := s.AddDailyVolume(ctx, "client-1", "2026-08-28", 100, time.Hour)
	if total != 100 {
		t.Errorf("total = %v, want 100 after expiry", total)
	}
}
