package services

import "ride-view-service/internal/domain"

// NarrateLegStatus translates a leg's technical status code into the
// customer-facing phrase shown next to a stop. Total: codes without a
// phrase (including unknown ones) narrate to the empty string.
func NarrateLegStatus(status string) string {
	switch status {
	case domain.LegStarted:
		return "left behind"
	case domain.LegCompleted:
		return "visited"
	default:
		return ""
	}
}
