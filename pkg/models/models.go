package models

import (
	"strconv"
	"strings"
)

// Category tipo de secreto a adivinar
type Category string

const (
	CategoryWord   Category = "word"
	CategoryPhrase Category = "phrase"
)

// Level nivel elegido en el menú inicial
type Level struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// Levels niveles disponibles, en el orden en que se muestran
var Levels = []Level{
	{Name: "Basic (Word)", Category: CategoryWord},
	{Name: "Intermediate (Phrase)", Category: CategoryPhrase},
}

// SelectLevel devuelve el nivel numerado (desde 1) que eligió el jugador.
// Cualquier otra entrada cae en el último nivel.
func SelectLevel(choice string) Level {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err == nil && n >= 1 && n <= len(Levels) {
		return Levels[n-1]
	}
	return Levels[len(Levels)-1]
}
