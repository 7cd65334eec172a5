package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketBurst(t *testing.T) {
	// A tiny refill rate keeps the bucket effectively static during the test.
	tb := NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d within burst was denied", i+1)
		}
	}
	if tb.Allow() {
		t.Error("request beyond burst capacity was allowed")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	if !tb.Allow() {
		t.Fatal("first request denied")
	}
	if tb.Allow() {
		t.Fatal("bucket should be empty")
	}

	// At 100 tokens/s, 50ms is enough to earn a token back.
	time.Sleep(50 * time.Millisecond)
	if !tb.Allow() {
		t.Error("bucket did not refill")
	}
}
