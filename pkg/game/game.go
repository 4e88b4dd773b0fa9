package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultLives vidas iniciales de una partida
	DefaultLives = 6
	// DefaultTimeLimit tiempo permitido por intento
	DefaultTimeLimit = 15 * time.Second

	hiddenSymbol = '_'
)

var (
	ErrEmptySecret  = errors.New("secret has no letters")
	ErrInvalidLives = errors.New("lives must be positive")
)

// Status estado de la partida
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in_progress"
	}
}

// Outcome resultado de un intento
type Outcome int

const (
	Invalid Outcome = iota
	AlreadyGuessed
	Correct
	Incorrect
	// Finished la partida ya terminó y el intento no se aplicó
	Finished
)

func (o Outcome) String() string {
	switch o {
	case AlreadyGuessed:
		return "already_guessed"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Finished:
		return "finished"
	default:
		return "invalid"
	}
}

// Game representa el estado de una partida de ahorcado
type Game struct {
	secret    []rune
	guessed   map[rune]bool
	lives     int
	timeLimit time.Duration
	timerAt   time.Time
	clock     Clock
}

// Option configura una partida al crearla
type Option func(*Game)

// WithClock reemplaza el reloj del sistema
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// New crea una nueva partida con el secreto en minúsculas y sin intentos
func New(secret string, lives int, opts ...Option) (*Game, error) {
	if lives <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLives, lives)
	}

	normalized := []rune(strings.ToLower(secret))
	hasLetter := false
	for _, r := range normalized {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return nil, fmt.Errorf("%w: %q", ErrEmptySecret, secret)
	}

	g := &Game{
		secret:    normalized,
		guessed:   make(map[rune]bool),
		lives:     lives,
		timeLimit: DefaultTimeLimit,
		clock:     SystemClock,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// StartTimer inicia (o reinicia) la cuenta regresiva del intento actual
func (g *Game) StartTimer(limit time.Duration) {
	g.timerAt = g.clock.Now()
	g.timeLimit = limit
}

// CheckTimeout descuenta una vida si se agotó el tiempo y abre una nueva ventana.
// Cada llamada puede descontar otra vida si vuelve a pasar el límite.
func (g *Game) CheckTimeout() bool {
	if g.timerAt.IsZero() || g.IsOver() {
		return false
	}

	now := g.clock.Now()
	if now.Sub(g.timerAt) <= g.timeLimit {
		return false
	}

	g.lives--
	g.timerAt = now
	return true
}

// RemainingTime tiempo restante del intento actual
func (g *Game) RemainingTime() time.Duration {
	if g.timerAt.IsZero() {
		return g.timeLimit
	}

	remaining := g.timeLimit - g.clock.Now().Sub(g.timerAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// GuessLetter aplica un intento. La validación de la entrada es responsabilidad
// del llamador; cualquier cosa que no sea una sola letra devuelve Invalid.
func (g *Game) GuessLetter(input string) Outcome {
	if utf8.RuneCountInString(input) != 1 {
		return Invalid
	}
	letter, _ := utf8.DecodeRuneInString(input)
	if !unicode.IsLetter(letter) {
		return Invalid
	}
	letter = unicode.ToLower(letter)

	if g.IsOver() {
		return Finished
	}
	if g.guessed[letter] {
		return AlreadyGuessed
	}

	g.guessed[letter] = true

	for _, r := range g.secret {
		if r == letter {
			return Correct
		}
	}

	g.lives--
	return Incorrect
}

// Mask vista parcial del secreto, un símbolo por carácter
func (g *Game) Mask() []rune {
	mask := make([]rune, len(g.secret))
	for i, r := range g.secret {
		switch {
		case !unicode.IsLetter(r):
			mask[i] = ' '
		case g.guessed[r]:
			mask[i] = r
		default:
			mask[i] = hiddenSymbol
		}
	}
	return mask
}

// Display máscara separada por espacios, tal como se muestra al jugador
func (g *Game) Display() string {
	mask := g.Mask()
	symbols := make([]string, len(mask))
	for i, r := range mask {
		symbols[i] = string(r)
	}
	return strings.Join(symbols, " ")
}

// GuessedLetters letras intentadas en orden alfabético
func (g *Game) GuessedLetters() []string {
	letters := make([]string, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, string(r))
	}
	sort.Strings(letters)
	return letters
}

func (g *Game) Secret() string {
	return string(g.secret)
}

func (g *Game) Lives() int {
	return g.lives
}

// IsWon verdadero cuando no queda ninguna letra oculta
func (g *Game) IsWon() bool {
	for _, r := range g.secret {
		if unicode.IsLetter(r) && !g.guessed[r] {
			return false
		}
	}
	return true
}

func (g *Game) IsLost() bool {
	return g.lives <= 0
}

func (g *Game) IsOver() bool {
	return g.IsWon() || g.IsLost()
}

// Status estado actual; una partida ganada nunca se reporta como perdida
func (g *Game) Status() Status {
	switch {
	case g.IsWon():
		return Won
	case g.IsLost():
		return Lost
	default:
		return InProgress
	}
}
