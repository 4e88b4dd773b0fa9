package models

import "time"

// Estados posibles de una sesión
const (
	SessionActive      = "active"
	SessionWon         = "won"
	SessionLost        = "lost"
	SessionQuit        = "quit"
	SessionInterrupted = "interrupted"
)

// GameSession representa una partida de un jugador
type GameSession struct {
	ID        string        `json:"id"`
	Category  Category      `json:"category"`
	Lives     int           `json:"lives"`
	Status    string        `json:"status"`
	StartTime time.Time     `json:"startTime"`
	EndTime   *time.Time    `json:"endTime,omitempty"`
	Guesses   []GuessRecord `json:"guesses"`
	Timeouts  int           `json:"timeouts"`
}

// GuessRecord intento realizado por el jugador
type GuessRecord struct {
	Letter    string    `json:"letter"`
	Outcome   string    `json:"outcome"`
	LivesLeft int       `json:"livesLeft"`
	Timestamp time.Time `json:"timestamp"`
}

// Duration tiempo total de la sesión, hasta ahora si sigue activa
func (s *GameSession) Duration(now time.Time) time.Duration {
	if s.EndTime != nil {
		return s.EndTime.Sub(s.StartTime)
	}
	return now.Sub(s.StartTime)
}
