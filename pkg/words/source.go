// Package words provee las fuentes de secretos para las partidas.
package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/backsoul/hangman/pkg/models"
)

var (
	ErrNoWord              = errors.New("no word available")
	ErrUnsupportedCategory = errors.New("unsupported category")
)

// Source entrega un secreto en minúsculas para la categoría pedida
type Source interface {
	RandomWord(ctx context.Context, category models.Category) (string, error)
}

// SourceFunc adapta una función a Source
type SourceFunc func(ctx context.Context, category models.Category) (string, error)

func (f SourceFunc) RandomWord(ctx context.Context, category models.Category) (string, error) {
	return f(ctx, category)
}

// Valid indica si el texto sirve como secreto: solo letras y espacios, al menos una letra
func Valid(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ':
		default:
			return false
		}
	}
	return hasLetter
}

// Normalize recorta y pasa a minúsculas
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseList lee una entrada por línea, ignorando líneas vacías e inválidas
func ParseList(r io.Reader) ([]string, error) {
	var list []string

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		entry := Normalize(scanner.Text())
		if entry == "" {
			continue
		}
		if !Valid(entry) {
			log.Printf("⚠️ Entrada inválida en la línea %d: %q", line, entry)
			continue
		}
		list = append(list, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error leyendo lista: %w", err)
	}

	return list, nil
}
