package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/backsoul/hangman/pkg/models"
	"github.com/backsoul/hangman/pkg/words"
)

// WordStore almacenamiento de listas de palabras; lo implementa redis.RedisClient
type WordStore interface {
	ReplaceWords(ctx context.Context, category string, list []string) error
	RandomWord(ctx context.Context, category string) (string, error)
	WordCount(ctx context.Context, category string) (int, error)
	HealthCheck(ctx context.Context) error
}

// WordService maneja la lógica de negocio para las listas de palabras
type WordService struct {
	store WordStore
}

// NewWordService crea una nueva instancia del servicio
func NewWordService(store WordStore) *WordService {
	return &WordService{
		store: store,
	}
}

// LoadWordsFromFile carga la lista de una categoría desde un archivo de texto
func (s *WordService) LoadWordsFromFile(ctx context.Context, category models.Category, filePath string) error {
	log.Printf("📂 Cargando %s desde: %s", category, filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("error leyendo archivo: %w", err)
	}
	defer file.Close()

	list, err := words.ParseList(file)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("el archivo %s no tiene entradas válidas", filePath)
	}

	if err := s.store.ReplaceWords(ctx, string(category), list); err != nil {
		return fmt.Errorf("error cargando palabras a Redis: %w", err)
	}

	log.Printf("✅ %d entradas de %s cargadas exitosamente", len(list), category)
	return nil
}

// RandomWord obtiene una palabra aleatoria; implementa words.Source
func (s *WordService) RandomWord(ctx context.Context, category models.Category) (string, error) {
	word, err := s.store.RandomWord(ctx, string(category))
	if err != nil {
		return "", fmt.Errorf("error obteniendo palabra aleatoria: %w", err)
	}
	return words.Normalize(word), nil
}

// GetWordCount obtiene el número de entradas de la categoría
func (s *WordService) GetWordCount(ctx context.Context, category models.Category) (int, error) {
	count, err := s.store.WordCount(ctx, string(category))
	if err != nil {
		return 0, fmt.Errorf("error obteniendo conteo de palabras: %w", err)
	}
	return count, nil
}

// HealthCheck verifica que el servicio esté funcionando
func (s *WordService) HealthCheck(ctx context.Context) error {
	if err := s.store.HealthCheck(ctx); err != nil {
		return fmt.Errorf("error en health check de Redis: %w", err)
	}
	return nil
}

// EnsureLoaded carga la lista desde el archivo solo si la categoría está vacía
func (s *WordService) EnsureLoaded(ctx context.Context, category models.Category, filePath string) error {
	count, err := s.GetWordCount(ctx, category)
	if err == nil && count > 0 {
		log.Printf("✅ Ya hay %d entradas de %s en Redis", count, category)
		return nil
	}
	return s.LoadWordsFromFile(ctx, category, filePath)
}

// ReloadWords recarga la lista de una categoría desde el archivo
func (s *WordService) ReloadWords(ctx context.Context, category models.Category, filePath string) error {
	log.Printf("🔄 Recargando %s...", category)

	if err := s.LoadWordsFromFile(ctx, category, filePath); err != nil {
		return fmt.Errorf("error recargando palabras: %w", err)
	}

	return nil
}
