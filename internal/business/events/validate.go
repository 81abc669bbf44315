package events

import (
	"strings"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/validator"
)

const (
	MsgRequired        = "Le champ est obligatoire"
	MsgPositive        = "Veuillez choisir un nombre positif supérieur ou égal à un"
	MsgDateInPast      = "Veuillez choisir une date dans le futur"
	MsgDateOutOfWindow = "Veuillez choisir une date dans la limite"
	MsgInvalidDate     = "La date n'est pas valide"
	MsgTooFewSeats     = "Le nombre de places ne peut pas être inférieur au nombre d'inscrits"
)

// CheckEventInput records field errors for an event about to be created or
// updated.
func CheckEventInput(v *validator.Validator, info *model.EventCreate, now time.Time) {
	v.Check(strings.TrimSpace(info.Name) != "", "name", MsgRequired)
	v.Check(strings.TrimSpace(info.Description) != "", "description", MsgRequired)
	v.Check(info.MaxNumParticipants >= 1, "maxNumParticipants", MsgPositive)
	v.Check(info.CategoryID != 0, "categoryId", MsgRequired)

	v.Check(strings.TrimSpace(info.Location.Country) != "", "location.country", MsgRequired)
	v.Check(strings.TrimSpace(info.Location.City) != "", "location.city", MsgRequired)
	v.Check(strings.TrimSpace(info.Location.Address) != "", "location.address", MsgRequired)

	if strings.TrimSpace(info.Date) == "" {
		v.AddError("date", MsgRequired)
	} else if date, err := datetime.ParseDate(info.Date); err != nil {
		v.AddError("date", MsgInvalidDate)
	} else if !datetime.IsWithinBookingWindow(date, now) {
		first, _ := datetime.BookingWindow(now)
		if date.Before(first) {
			v.AddError("date", MsgDateInPast)
		} else {
			v.AddError("date", MsgDateOutOfWindow)
		}
	}

	v.Check(strings.TrimSpace(info.StartTime) != "", "startTime", MsgRequired)
	v.Check(strings.TrimSpace(info.EndTime) != "", "endTime", MsgRequired)

	if res := ValidateTimeRange(info.StartTime, info.EndTime); !res.Valid {
		v.AddError("endTime", res.Reason)
	}
}
