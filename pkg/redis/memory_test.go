package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestMemory_SetGetExpire(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMemoryWithClock(clock.Now)
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatal(err)
	}
	if got, err := m.Get(ctx, "k"); err != nil || got != "v" {
		t.Fatalf("Get() = %q, %v", got, err)
	}

	clock.Advance(time.Minute)
	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestMemory_AppendRefreshesTTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMemoryWithClock(clock.Now)
	ctx := context.Background()

	_ = m.Append(ctx, "l", 10*time.Minute, "a", "b")
	clock.Advance(9 * time.Minute)
	_ = m.Append(ctx, "l", 10*time.Minute, "c")
	clock.Advance(9 * time.Minute)

	got, _ := m.List(ctx, "l")
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("List() = %v, want [a b c]", got)
	}

	clock.Advance(time.Minute)
	if ok, _ := m.Exists(ctx, "l"); ok {
		t.Fatal("list should have expired")
	}
	if got, _ := m.List(ctx, "l"); len(got) != 0 {
		t.Fatalf("List() after expiry = %v", got)
	}
}

func TestMemory_Delete(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()
	_ = m.Set(ctx, "k", "v", 0)
	_ = m.Delete(ctx, "k")
	if ok, _ := m.Exists(ctx, "k"); ok {
		t.Fatal("key still exists after Delete")
	}
}
