package words

import (
	"context"
	"fmt"
	"log"

	"github.com/backsoul/hangman/pkg/models"
)

// Chain prueba las fuentes en orden y devuelve la primera palabra válida
type Chain []Source

func (c Chain) RandomWord(ctx context.Context, category models.Category) (string, error) {
	for i, source := range c {
		word, err := source.RandomWord(ctx, category)
		if err != nil {
			log.Printf("⚠️ Fuente %d falló para %s: %v", i, category, err)
			continue
		}

		word = Normalize(word)
		if !Valid(word) {
			log.Printf("⚠️ Fuente %d devolvió una entrada inválida: %q", i, word)
			continue
		}
		return word, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoWord, category)
}
