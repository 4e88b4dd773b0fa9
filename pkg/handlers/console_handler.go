package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/backsoul/hangman/pkg/game"
	"github.com/backsoul/hangman/pkg/models"
	"github.com/backsoul/hangman/pkg/services"
	"github.com/backsoul/hangman/pkg/words"
)

const quitCommand = "quit"

// ConsoleConfig parámetros de la partida
type ConsoleConfig struct {
	Lives     int
	TimeLimit time.Duration
	// Clock opcional; por defecto el reloj del sistema
	Clock game.Clock
}

// ConsoleHandler maneja la partida en la terminal
type ConsoleHandler struct {
	source         words.Source
	sessionService *services.SessionService
	cfg            ConsoleConfig
	in             io.Reader
	out            io.Writer
}

// NewConsoleHandler crea una nueva instancia del handler
func NewConsoleHandler(source words.Source, sessionService *services.SessionService, cfg ConsoleConfig, in io.Reader, out io.Writer) *ConsoleHandler {
	if cfg.Lives <= 0 {
		cfg.Lives = game.DefaultLives
	}
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = game.DefaultTimeLimit
	}
	if cfg.Clock == nil {
		cfg.Clock = game.SystemClock
	}
	return &ConsoleHandler{
		source:         source,
		sessionService: sessionService,
		cfg:            cfg,
		in:             in,
		out:            out,
	}
}

// Play juega una partida completa. Termina al ganar, perder, con "quit",
// al cerrarse la entrada o al cancelarse el contexto.
func (h *ConsoleHandler) Play(ctx context.Context) (*models.GameSession, error) {
	lines, stop := readLines(h.in)
	defer stop()

	h.println("Welcome to Hangman!")
	h.println("Select level:")
	for i, level := range models.Levels {
		h.printf("%d. %s\n", i+1, level.Name)
	}

	choice, ok := h.prompt(ctx, lines, "Enter choice (1 or 2): ")
	if !ok {
		h.println("\nGame interrupted. The word was: unknown")
		now := time.Now()
		return &models.GameSession{
			Lives:     h.cfg.Lives,
			Status:    models.SessionInterrupted,
			StartTime: now,
			EndTime:   &now,
			Guesses:   []models.GuessRecord{},
		}, nil
	}

	category := models.SelectLevel(choice).Category
	h.printf("I'm thinking of a %s...\n", category)

	secret, err := h.source.RandomWord(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo secreto: %w", err)
	}

	g, err := game.New(secret, h.cfg.Lives, game.WithClock(h.cfg.Clock))
	if err != nil {
		return nil, fmt.Errorf("error creando partida: %w", err)
	}

	session := h.sessionService.CreateSession(category, h.cfg.Lives)
	g.StartTimer(h.cfg.TimeLimit)

	for !g.IsOver() {
		h.render(g)

		input, ok := h.prompt(ctx, lines, "Guess a letter: ")
		if !ok {
			h.printf("\nGame interrupted. The word was: %s\n", g.Secret())
			h.finish(session, models.SessionInterrupted)
			return session, nil
		}

		guess := strings.ToLower(strings.TrimSpace(input))
		if guess == quitCommand {
			h.printf("Game ended. The word was: %s\n", g.Secret())
			h.finish(session, models.SessionQuit)
			return session, nil
		}

		if !isSingleLetter(guess) {
			h.println("Please enter a single letter.")
			continue
		}

		if g.CheckTimeout() {
			h.println("Time's up! Life deducted.")
			if err := h.sessionService.AddTimeout(session.ID); err != nil {
				log.Printf("⚠️ Error registrando timeout: %v", err)
			}
			if g.IsOver() {
				break
			}
		}

		outcome := g.GuessLetter(guess)
		if err := h.sessionService.AddGuess(session.ID, guess, outcome.String(), g.Lives()); err != nil {
			log.Printf("⚠️ Error registrando intento: %v", err)
		}

		switch outcome {
		case game.AlreadyGuessed:
			h.println("You already guessed that letter.")
		case game.Correct:
			h.println("Good guess!")
		case game.Incorrect:
			h.println("Wrong guess!")
		}

		// el límite es por intento: cada intento abre una ventana nueva,
		// no solo los timeouts
		g.StartTimer(h.cfg.TimeLimit)
	}

	if g.IsWon() {
		h.printf("\n🎉 Congratulations! You won! The word was: %s\n", g.Secret())
		h.finish(session, models.SessionWon)
	} else {
		h.printf("\n💀 Game over! The word was: %s\n", g.Secret())
		h.finish(session, models.SessionLost)
	}

	return session, nil
}

func (h *ConsoleHandler) render(g *game.Game) {
	h.printf("\nWord: %s\n", g.Display())
	h.printf("Lives: %d\n", g.Lives())
	h.printf("Time remaining: %.1fs\n", g.RemainingTime().Seconds())
	h.printf("Guessed letters: %s\n", strings.Join(g.GuessedLetters(), ", "))
}

func (h *ConsoleHandler) finish(session *models.GameSession, status string) {
	if err := h.sessionService.FinishSession(session.ID, status); err != nil {
		log.Printf("⚠️ Error cerrando sesión: %v", err)
	}
}

func (h *ConsoleHandler) prompt(ctx context.Context, lines <-chan string, text string) (string, bool) {
	h.printf("%s", text)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

func (h *ConsoleHandler) println(text string) {
	fmt.Fprintln(h.out, text)
}

func (h *ConsoleHandler) printf(format string, args ...interface{}) {
	fmt.Fprintf(h.out, format, args...)
}

// readLines lee la entrada en una goroutine para que una cancelación no quede
// bloqueada esperando una línea. Si la goroutine está dentro de Scan cuando se
// llama a stop, queda bloqueada hasta la próxima línea o el fin de la entrada;
// con una sola partida por proceso no importa.
func readLines(r io.Reader) (<-chan string, func()) {
	lines := make(chan string)
	done := make(chan struct{})

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	return lines, func() { close(done) }
}

func isSingleLetter(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}
