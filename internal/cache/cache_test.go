package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(filepath.Join(t.TempDir(), "build-cache.db"))
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCacheSetGet(t *testing.T) {
	c := newTestCache(t)

	if err := c.Set("refs:kodeks1:abc", []byte("body")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := c.Get("refs:kodeks1:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "body" {
		t.Errorf("expected 'body', got %q", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := newTestCache(t)

	got, err := c.Get("absent")
	if err != nil {
		t.Fatalf("a miss is not an error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on miss, got %q", got)
	}
}

func TestCacheReplaceAndDelete(t *testing.T) {
	c := newTestCache(t)

	if err := c.Set("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := c.Set("k", []byte("two")); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("expected replacement value, got %q", got)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatal(err)
	}
	got, err = c.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %q", got)
	}
}

func TestCachePurge(t *testing.T) {
	c := newTestCache(t)

	if err := c.Set("fresh", []byte("x")); err != nil {
		t.Fatal(err)
	}
	// Nothing is older than an hour yet.
	if err := c.Purge(time.Hour); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get("fresh")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Error("fresh entry purged")
	}

	// A zero age purges everything written before now.
	if err := c.Purge(-time.Minute); err != nil {
		t.Fatal(err)
	}
	got, err = c.Get("fresh")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("expected entry to be purged")
	}
}
