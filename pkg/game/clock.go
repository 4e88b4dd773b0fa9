package game

import "time"

// Clock fuente de tiempo de la partida; en pruebas se reemplaza por un reloj falso
type Clock interface {
	Now() time.Time
}

// SystemClock reloj real basado en time.Now
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
