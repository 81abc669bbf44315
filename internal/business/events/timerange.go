package events

import (
	"strings"

	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
)

const (
	MsgEndBeforeStart = "L'heure de fin doit être ultérieure à l'heure de début"
	MsgInvalidTime    = "L'heure n'est pas valide"
)

type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ValidateTimeRange checks that end is strictly later than start. Either value
// being empty means there is nothing to compare yet, which is valid.
func ValidateTimeRange(start, end string) ValidationResult {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return ValidationResult{Valid: true}
	}

	startTime, err := datetime.ExtractClockTime(start)
	if err != nil {
		return ValidationResult{Reason: MsgInvalidTime}
	}

	endTime, err := datetime.ExtractClockTime(end)
	if err != nil {
		return ValidationResult{Reason: MsgInvalidTime}
	}

	if !datetime.IsLaterThan(endTime, startTime) {
		return ValidationResult{Reason: MsgEndBeforeStart}
	}

	return ValidationResult{Valid: true}
}
