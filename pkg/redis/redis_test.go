package redis

import (
	"context"
	"errors"
	"os"
	"testing"
)

// Requiere un Redis real: HANGMAN_TEST_REDIS_ADDR=localhost:6379
func newTestClient(t *testing.T) *RedisClient {
	t.Helper()

	addr := os.Getenv("HANGMAN_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HANGMAN_TEST_REDIS_ADDR not set")
	}

	client, err := NewRedisClient(context.Background(), addr, "", 15)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	t.Cleanup(func() {
		client.client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func TestReplaceAndRandomWord(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.ReplaceWords(ctx, "word", []string{"gopher", "channel"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := client.ReplaceWords(ctx, "word", []string{"gopher"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	count, err := client.WordCount(ctx, "word")
	if err != nil || count != 1 {
		t.Errorf("Expected 1 word after replace, got %d (%v)", count, err)
	}

	word, err := client.RandomWord(ctx, "word")
	if err != nil || word != "gopher" {
		t.Errorf("Expected gopher, got %q (%v)", word, err)
	}
}

func TestRandomWordEmptyList(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.RandomWord(context.Background(), "phrase"); !errors.Is(err, ErrEmptyList) {
		t.Errorf("Expected ErrEmptyList, got %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	client := newTestClient(t)

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("Expected healthy, got %v", err)
	}
}
