package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/backsoul/hangman/pkg/config"
	"github.com/backsoul/hangman/pkg/models"
)

func TestInitWordSourceFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		WordsFile:   filepath.Join(dir, "words.txt"),
		PhrasesFile: filepath.Join(dir, "phrases.txt"),
	}

	source, closeSources, err := initWordSource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closeSources()

	phrase, err := source.RandomWord(context.Background(), models.CategoryPhrase)
	if err != nil || phrase != "test phrase" {
		t.Errorf("Expected %q, got %q (%v)", "test phrase", phrase, err)
	}
}

func TestInitWordSourceReturnsFileError(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		// un directorio se abre pero no se puede leer como lista
		WordsFile:   dir,
		PhrasesFile: filepath.Join(dir, "phrases.txt"),
	}

	source, closeSources, err := initWordSource(context.Background(), cfg)
	if err == nil {
		t.Fatal("Expected error for unreadable word list")
	}
	if source != nil || closeSources != nil {
		t.Errorf("Expected no source on error, got %v", source)
	}
}
