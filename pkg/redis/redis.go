package redis

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// ErrEmptyList la lista de palabras no existe o está vacía
var ErrEmptyList = errors.New("word list is empty")

// RedisClient estructura para manejar conexiones con Redis
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient crea una nueva instancia del cliente Redis y verifica la conexión
func NewRedisClient(ctx context.Context, addr, password string, db int) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Verificar conexión
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("error conectando a Redis en %s: %w", addr, err)
	}

	log.Println("✅ Conexión exitosa a Redis")

	return &RedisClient{client: rdb}, nil
}

func wordsKey(category string) string {
	return fmt.Sprintf("hangman:words:%s", category)
}

// ReplaceWords reemplaza la lista de una categoría por las palabras dadas
func (r *RedisClient) ReplaceWords(ctx context.Context, category string, words []string) error {
	key := wordsKey(category)

	members := make([]interface{}, len(words))
	for i, w := range words {
		members[i] = w
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(members) > 0 {
			pipe.SAdd(ctx, key, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error guardando palabras de %s: %w", category, err)
	}

	log.Printf("📚 %d palabras guardadas en %s", len(words), key)
	return nil
}

// RandomWord obtiene una palabra aleatoria de la categoría
func (r *RedisClient) RandomWord(ctx context.Context, category string) (string, error) {
	word, err := r.client.SRandMember(ctx, wordsKey(category)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: %s", ErrEmptyList, category)
		}
		return "", fmt.Errorf("error obteniendo palabra aleatoria: %w", err)
	}
	return word, nil
}

// WordCount obtiene el número de palabras de la categoría
func (r *RedisClient) WordCount(ctx context.Context, category string) (int, error) {
	count, err := r.client.SCard(ctx, wordsKey(category)).Result()
	if err != nil {
		return 0, fmt.Errorf("error obteniendo conteo de palabras: %w", err)
	}
	return int(count), nil
}

// Close cierra la conexión con Redis
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// HealthCheck verifica que Redis esté funcionando
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
