package cache

import (
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("key", "value")

	got, found := c.Get("key")
	if !found {
		t.Fatal("Expected a hit")
	}
	if got.(string) != "value" {
		t.Errorf("Expected value, got %v", got)
	}
}

func TestCache_Miss(t *testing.T) {
	c := New(time.Minute)
	if _, found := c.Get("absent"); found {
		t.Error("Expected a miss")
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New(time.Minute)
	c.SetWithTTL("key", "value", 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	if _, found := c.Get("key"); found {
		t.Error("Expected expired entry to be evicted")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New(time.Minute)
	c.Set("key", "value")
	c.Clear("key")

	if _, found := c.Get("key"); found {
		t.Error("Expected cleared entry to be gone")
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := New(time.Minute)
	c.Set("key", "old")
	c.Set("key", "new")

	got, found := c.Get("key")
	if !found || got.(string) != "new" {
		t.Errorf("Expected overwritten value, got %v found=%v", got, found)
	}
}
