package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/backsoul/hangman/pkg/models"
)

type fakeStore struct {
	lists   map[string][]string
	healthy bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{lists: map[string][]string{}, healthy: true}
}

func (f *fakeStore) ReplaceWords(_ context.Context, category string, list []string) error {
	f.lists[category] = append([]string(nil), list...)
	return nil
}

func (f *fakeStore) RandomWord(_ context.Context, category string) (string, error) {
	list := f.lists[category]
	if len(list) == 0 {
		return "", errors.New("empty")
	}
	return list[0], nil
}

func (f *fakeStore) WordCount(_ context.Context, category string) (int, error) {
	return len(f.lists[category]), nil
}

func (f *fakeStore) HealthCheck(context.Context) error {
	if !f.healthy {
		return errors.New("down")
	}
	return nil
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWordsFromFile(t *testing.T) {
	store := newFakeStore()
	svc := NewWordService(store)
	path := writeList(t, "Gopher\nnot valid!\nchannel\n")

	if err := svc.LoadWordsFromFile(context.Background(), models.CategoryWord, path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"gopher", "channel"}
	if !reflect.DeepEqual(store.lists["word"], want) {
		t.Errorf("Expected %v, got %v", want, store.lists["word"])
	}

	count, err := svc.GetWordCount(context.Background(), models.CategoryWord)
	if err != nil || count != 2 {
		t.Errorf("Expected count 2, got %d (%v)", count, err)
	}

	word, err := svc.RandomWord(context.Background(), models.CategoryWord)
	if err != nil || word != "gopher" {
		t.Errorf("Expected gopher, got %q (%v)", word, err)
	}
}

func TestLoadWordsFromFileErrors(t *testing.T) {
	svc := NewWordService(newFakeStore())

	if err := svc.LoadWordsFromFile(context.Background(), models.CategoryWord, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
	if err := svc.LoadWordsFromFile(context.Background(), models.CategoryWord, writeList(t, "\n123\n")); err == nil {
		t.Error("Expected error for file without valid entries")
	}
}

func TestEnsureLoadedSkipsFilledCategory(t *testing.T) {
	store := newFakeStore()
	store.lists["phrase"] = []string{"hello world"}
	svc := NewWordService(store)

	if err := svc.EnsureLoaded(context.Background(), models.CategoryPhrase, writeList(t, "other phrase\n")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(store.lists["phrase"], []string{"hello world"}) {
		t.Errorf("Expected list untouched, got %v", store.lists["phrase"])
	}

	if err := svc.ReloadWords(context.Background(), models.CategoryPhrase, writeList(t, "other phrase\n")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(store.lists["phrase"], []string{"other phrase"}) {
		t.Errorf("Expected reloaded list, got %v", store.lists["phrase"])
	}
}

func TestWordServiceHealthCheck(t *testing.T) {
	store := newFakeStore()
	svc := NewWordService(store)
	if err := svc.HealthCheck(context.Background()); err != nil {
		t.Errorf("Expected healthy, got %v", err)
	}

	store.healthy = false
	if err := svc.HealthCheck(context.Background()); err == nil {
		t.Error("Expected health check error")
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := NewSessionService()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	current := start
	svc.now = func() time.Time { return current }

	session := svc.CreateSession(models.CategoryWord, 6)
	if session.ID == "" || session.Status != models.SessionActive {
		t.Fatalf("Expected active session with ID, got %+v", session)
	}

	if err := svc.AddGuess(session.ID, "t", "correct", 6); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := svc.AddTimeout(session.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	current = start.Add(30 * time.Second)
	if err := svc.FinishSession(session.ID, models.SessionWon); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := svc.GetSession(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.SessionWon || len(got.Guesses) != 1 || got.Timeouts != 1 {
		t.Errorf("Unexpected session state: %+v", got)
	}
	if got.Duration(current) != 30*time.Second {
		t.Errorf("Expected 30s duration, got %v", got.Duration(current))
	}

	if err := svc.AddGuess(session.ID, "e", "correct", 6); err == nil {
		t.Error("Expected error adding guess to finished session")
	}
}

func TestGetSessionUnknown(t *testing.T) {
	if _, err := NewSessionService().GetSession("nope"); err == nil {
		t.Error("Expected error for unknown session")
	}
}
