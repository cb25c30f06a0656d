package models

// Situation names as the server sends them.
const (
	SituationReceived   = "Recibido"
	SituationInProgress = "En curso"
	SituationPending    = "Pendiente"
)

// DefaultSituationColor is used for any situation not listed below.
const DefaultSituationColor = "#9E9E9E"

var situationColors = map[string]string{
	SituationReceived:   "#FFA500",
	SituationInProgress: "#4CAF50",
	SituationPending:    "#FF5722",
}

// SituationColor maps a situation name to its tag color (hex RGB).
func SituationColor(situation string) string {
	if c, ok := situationColors[situation]; ok {
		return c
	}
	return DefaultSituationColor
}
