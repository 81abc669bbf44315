package datetime

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Locale holds the words used when rendering dates and durations. Values are
// copied, never shared.
type Locale struct {
	tag       language.Tag
	months    [12]string
	connector string
	hour      [2]string
	minute    [2]string
}

var localeMatcher = language.NewMatcher([]language.Tag{language.French})

func FrenchLocale() Locale {
	return Locale{
		tag: language.MustParse("fr-FR"),
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		connector: "à",
		hour:      [2]string{"heure", "heures"},
		minute:    [2]string{"minute", "minutes"},
	}
}

// LocaleFor resolves a BCP 47 tag. French is the only display locale.
func LocaleFor(tag string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", tag, err)
	}

	if _, _, confidence := localeMatcher.Match(t); confidence == language.No {
		return Locale{}, fmt.Errorf("unsupported locale %q", tag)
	}

	return FrenchLocale(), nil
}

func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return l.months[m-1]
}

func (l Locale) unit(forms [2]string, n int) string {
	if n == 1 {
		return forms[0]
	}
	return forms[1]
}
