package services

import (
	"fmt"
	"log"
	"time"

	"github.com/backsoul/hangman/pkg/models"
	"github.com/google/uuid"
)

// SessionService lleva el registro de las partidas del proceso. No persiste nada.
type SessionService struct {
	sessions map[string]*models.GameSession
	now      func() time.Time
}

// NewSessionService crea una nueva instancia del servicio de sesiones
func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[string]*models.GameSession),
		now:      time.Now,
	}
}

// CreateSession crea una nueva sesión para una partida
func (s *SessionService) CreateSession(category models.Category, lives int) *models.GameSession {
	session := &models.GameSession{
		ID:        uuid.New().String(),
		Category:  category,
		Lives:     lives,
		Status:    models.SessionActive,
		StartTime: s.now(),
		Guesses:   []models.GuessRecord{},
	}
	s.sessions[session.ID] = session

	log.Printf("✅ Nueva sesión creada (ID: %s, %s, %d vidas)", session.ID, category, lives)
	return session
}

// GetSession obtiene una sesión por ID
func (s *SessionService) GetSession(sessionID string) (*models.GameSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("sesión no encontrada: %s", sessionID)
	}
	return session, nil
}

// AddGuess agrega un intento a la sesión
func (s *SessionService) AddGuess(sessionID, letter, outcome string, livesLeft int) error {
	session, err := s.activeSession(sessionID)
	if err != nil {
		return err
	}

	session.Guesses = append(session.Guesses, models.GuessRecord{
		Letter:    letter,
		Outcome:   outcome,
		LivesLeft: livesLeft,
		Timestamp: s.now(),
	})
	return nil
}

// AddTimeout registra una vida perdida por tiempo
func (s *SessionService) AddTimeout(sessionID string) error {
	session, err := s.activeSession(sessionID)
	if err != nil {
		return err
	}

	session.Timeouts++
	return nil
}

// FinishSession cierra la sesión con el estado final
func (s *SessionService) FinishSession(sessionID, status string) error {
	session, err := s.activeSession(sessionID)
	if err != nil {
		return err
	}

	now := s.now()
	session.Status = status
	session.EndTime = &now

	log.Printf("🏁 Sesión %s terminada: %s (%d intentos, %d timeouts, %s)",
		session.ID, status, len(session.Guesses), session.Timeouts, session.Duration(now).Round(time.Second))
	return nil
}

func (s *SessionService) activeSession(sessionID string) (*models.GameSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionActive {
		return nil, fmt.Errorf("la sesión %s ya terminó (%s)", sessionID, session.Status)
	}
	return session, nil
}
