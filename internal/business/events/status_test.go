package events

import (
	"testing"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func event(id int64, date, category, country string) *model.Event {
	return &model.Event{
		ID:           id,
		CategoryName: category,
		EventCreate: model.EventCreate{
			Name:     "event",
			Date:     date,
			Location: model.Location{Country: country},
		},
	}
}

func TestClassify(t *testing.T) {
	canceledToday := event(4, "2025-03-01", "", "")
	canceledToday.Canceled = true

	tests := []struct {
		name  string
		event *model.Event
		want  model.Status
	}{
		{name: "today", event: event(1, "2025-03-01", "", ""), want: model.StatusToday},
		{name: "yesterday", event: event(2, "2025-02-28", "", ""), want: model.StatusPast},
		{name: "tomorrow", event: event(3, "2025-03-02", "", ""), want: model.StatusUpcoming},
		{name: "canceled wins over today", event: canceledToday, want: model.StatusCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.event, refNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyUsesLocalCalendarDay(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	lateEvening := time.Date(2025, time.March, 1, 23, 30, 0, 0, time.UTC).In(paris)

	got, err := Classify(event(1, "2025-03-02", "", ""), lateEvening)
	require.NoError(t, err)
	assert.Equal(t, model.StatusToday, got)
}

func TestClassifyMalformedDate(t *testing.T) {
	_, err := Classify(event(1, "someday", "", ""), refNow)
	assert.Error(t, err)
}

func TestClassifyExactlyOneStatus(t *testing.T) {
	statuses := []model.Status{model.StatusToday, model.StatusUpcoming, model.StatusPast, model.StatusCanceled}

	for _, date := range []string{"2024-12-31", "2025-02-28", "2025-03-01", "2025-03-02", "2026-01-01"} {
		for _, canceled := range []bool{false, true} {
			e := event(1, date, "", "")
			e.Canceled = canceled

			matches := 0
			for _, s := range statuses {
				if MatchesStatusFilter(e, s, refNow) {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "%s canceled=%v", date, canceled)
		}
	}
}

func TestMatchesStatusFilter(t *testing.T) {
	e := event(1, "2025-03-10", "", "")

	assert.True(t, MatchesStatusFilter(e, model.StatusUpcoming, refNow))
	assert.False(t, MatchesStatusFilter(e, model.StatusPast, refNow))
	assert.False(t, MatchesStatusFilter(e, model.Status("Soon"), refNow))
	assert.False(t, MatchesStatusFilter(event(2, "bad", "", ""), model.StatusUpcoming, refNow))
}
