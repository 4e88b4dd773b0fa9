package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/backsoul/hangman/pkg/config"
	"github.com/backsoul/hangman/pkg/handlers"
	"github.com/backsoul/hangman/pkg/models"
	"github.com/backsoul/hangman/pkg/redis"
	"github.com/backsoul/hangman/pkg/services"
	"github.com/backsoul/hangman/pkg/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error en la configuración: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSources, err := initWordSource(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Error preparando fuentes de palabras: %v", err)
	}
	defer closeSources()

	sessionService := services.NewSessionService()
	consoleHandler := handlers.NewConsoleHandler(source, sessionService, handlers.ConsoleConfig{
		Lives:     cfg.Lives,
		TimeLimit: cfg.TimeLimit,
	}, os.Stdin, os.Stdout)

	if _, err := consoleHandler.Play(ctx); err != nil {
		log.Printf("❌ Error en la partida: %v", err)
		closeSources()
		os.Exit(1)
	}
}

// initWordSource arma la cadena de fuentes: Redis, API y archivos locales, en ese orden.
// Los archivos siempre están al final porque nunca fallan.
// Si falla, las conexiones ya abiertas se cierran antes de devolver el error.
func initWordSource(ctx context.Context, cfg *config.Config) (words.Source, func(), error) {
	var chain words.Chain
	closers := []func() error{}

	if cfg.RedisAddr != "" {
		log.Printf("🔌 Conectando a Redis en %s...", cfg.RedisAddr)
		redisClient, err := redis.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("⚠️ Redis no disponible, se omite: %v", err)
		} else {
			closers = append(closers, redisClient.Close)
			wordService := services.NewWordService(redisClient)
			loadInitialWords(ctx, wordService, cfg)
			chain = append(chain, wordService)
		}
	}

	if cfg.WordAPIURL != "" {
		log.Printf("🌐 Usando API de palabras: %s", cfg.WordAPIURL)
		chain = append(chain, words.NewAPISource(cfg.WordAPIURL, cfg.WordLength, cfg.WordAPITimeout, nil))
	}

	closed := false
	closeAll := func() {
		if closed {
			return
		}
		closed = true
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("⚠️ Error cerrando conexión: %v", err)
			}
		}
	}

	fileSource, err := words.NewFileSource(cfg.WordsFile, cfg.PhrasesFile, nil)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("error cargando listas locales: %w", err)
	}
	chain = append(chain, fileSource)

	return chain, closeAll, nil
}

func loadInitialWords(ctx context.Context, wordService *services.WordService, cfg *config.Config) {
	log.Println("📚 Cargando listas iniciales...")

	files := map[models.Category]string{
		models.CategoryWord:   cfg.WordsFile,
		models.CategoryPhrase: cfg.PhrasesFile,
	}
	for category, path := range files {
		if err := wordService.EnsureLoaded(ctx, category, path); err != nil {
			log.Printf("⚠️ Error cargando %s: %v", category, err)
		}
	}
}
