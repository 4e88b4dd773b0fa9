package words

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"

	"github.com/backsoul/hangman/pkg/models"
)

// Listas por defecto cuando falta el archivo
var (
	DefaultWords   = []string{"python", "hangman", "programming"}
	DefaultPhrases = []string{"test phrase"}
)

// Último recurso cuando la lista cargada quedó vacía
const (
	fallbackWord   = "hangman"
	fallbackPhrase = "test phrase"
)

// FileSource carga las listas desde archivos de texto al crearse
type FileSource struct {
	lists map[models.Category][]string
	rng   *rand.Rand
}

// NewFileSource carga las listas de palabras y frases. Un archivo que no existe
// no es un error: se usa la lista por defecto.
func NewFileSource(wordsPath, phrasesPath string, rng *rand.Rand) (*FileSource, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	wordList, err := LoadList(wordsPath, DefaultWords)
	if err != nil {
		return nil, err
	}
	phraseList, err := LoadList(phrasesPath, DefaultPhrases)
	if err != nil {
		return nil, err
	}

	return &FileSource{
		lists: map[models.Category][]string{
			models.CategoryWord:   wordList,
			models.CategoryPhrase: phraseList,
		},
		rng: rng,
	}, nil
}

// LoadList lee un archivo de lista; si no existe devuelve una copia de defaults
func LoadList(path string, defaults []string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("⚠️ %s no encontrado, usando lista por defecto", path)
			return append([]string(nil), defaults...), nil
		}
		return nil, fmt.Errorf("error abriendo %s: %w", path, err)
	}
	defer file.Close()

	list, err := ParseList(file)
	if err != nil {
		return nil, fmt.Errorf("error cargando %s: %w", path, err)
	}

	log.Printf("📂 %d entradas cargadas desde %s", len(list), path)
	return list, nil
}

// RandomWord elige una entrada al azar de la categoría
func (s *FileSource) RandomWord(_ context.Context, category models.Category) (string, error) {
	list := s.lists[category]

	switch category {
	case models.CategoryWord:
		if len(list) == 0 {
			return fallbackWord, nil
		}
	case models.CategoryPhrase:
		if len(list) == 0 {
			return fallbackPhrase, nil
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCategory, category)
	}

	return list[s.rng.IntN(len(list))], nil
}

// Count cantidad de entradas cargadas para la categoría
func (s *FileSource) Count(category models.Category) int {
	return len(s.lists[category])
}
