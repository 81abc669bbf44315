package events

import (
	"testing"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/stretchr/testify/assert"
)

func ids(events []*model.Event) []int64 {
	res := make([]int64, len(events))
	for i, e := range events {
		res[i] = e.ID
	}
	return res
}

func sampleEvents() []*model.Event {
	canceled := event(5, "2025-03-15", "Music", "France")
	canceled.Canceled = true

	return []*model.Event{
		event(1, "2025-03-10", "Music", "France"),
		event(2, "2025-03-05", "Sport", "Morocco"),
		event(3, "2025-02-01", "Music", "Morocco"),
		event(4, "2025-03-01", "Art", "France"),
		canceled,
		event(6, "2025-03-05", "Music", "France"),
	}
}

func franceAndCanceledSpain() []*model.Event {
	spain := event(2, "2025-01-01", "Art", "Spain")
	spain.Canceled = true

	return []*model.Event{
		event(1, "2025-03-01", "Music", "France"),
		spain,
	}
}

func TestApplyFiltersAndSorts(t *testing.T) {
	tests := []struct {
		name     string
		events   []*model.Event
		criteria model.FilterCriteria
		want     []int64
	}{
		{
			name:     "no criteria keeps everything ascending",
			criteria: model.FilterCriteria{},
			want:     []int64{3, 4, 2, 6, 1, 5},
		},
		{
			name:     "descending keeps ties in input order",
			criteria: model.FilterCriteria{SortOrder: model.SortDesc},
			want:     []int64{5, 1, 2, 6, 4, 3},
		},
		{
			name:     "unknown sort order is ascending",
			criteria: model.FilterCriteria{SortOrder: "random"},
			want:     []int64{3, 4, 2, 6, 1, 5},
		},
		{
			name:     "category and upcoming",
			criteria: model.FilterCriteria{Categories: []string{"Music"}, Status: model.StatusUpcoming, SortOrder: model.SortAsc},
			want:     []int64{6, 1},
		},
		{
			name:     "country",
			criteria: model.FilterCriteria{Countries: []string{"Morocco"}},
			want:     []int64{3, 2},
		},
		{
			name:     "several categories and countries",
			criteria: model.FilterCriteria{Categories: []string{"Art", "Sport"}, Countries: []string{"France", "Morocco"}},
			want:     []int64{4, 2},
		},
		{
			name:     "today",
			criteria: model.FilterCriteria{Status: model.StatusToday},
			want:     []int64{4},
		},
		{
			name:     "canceled",
			criteria: model.FilterCriteria{Status: model.StatusCanceled},
			want:     []int64{5},
		},
		{
			name:     "country keeps the French event out of a canceled Spanish one",
			events:   franceAndCanceledSpain(),
			criteria: model.FilterCriteria{Countries: []string{"France"}, SortOrder: model.SortAsc},
			want:     []int64{1},
		},
		{
			name:     "unknown status matches nothing",
			criteria: model.FilterCriteria{Status: "Soon"},
			want:     []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := tt.events
			if events == nil {
				events = sampleEvents()
			}
			got := Apply(events, tt.criteria, refNow)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sampleEvents()
	before := ids(in)

	_ = Apply(in, model.FilterCriteria{SortOrder: model.SortDesc, Categories: []string{"Music"}}, refNow)

	assert.Equal(t, before, ids(in))
}

func TestApplyIsIdempotent(t *testing.T) {
	criteria := model.FilterCriteria{Countries: []string{"France"}, SortOrder: model.SortDesc}

	once := Apply(sampleEvents(), criteria, refNow)
	twice := Apply(once, criteria, refNow)

	assert.Equal(t, ids(once), ids(twice))
}

func TestApplyResultIsSubsetSatisfyingCriteria(t *testing.T) {
	criteria := model.FilterCriteria{Categories: []string{"Music"}, Countries: []string{"France"}, Status: model.StatusUpcoming}

	for _, e := range Apply(sampleEvents(), criteria, refNow) {
		assert.Equal(t, "Music", e.CategoryName)
		assert.Equal(t, "France", e.Location.Country)
		assert.True(t, MatchesStatusFilter(e, model.StatusUpcoming, refNow))
	}
}

func TestApplyUnreadableDatesSortLast(t *testing.T) {
	in := []*model.Event{
		event(1, "garbage", "", ""),
		event(2, "2025-03-05", "", ""),
		event(3, "2025-03-02", "", ""),
	}

	assert.Equal(t, []int64{3, 2, 1}, ids(Apply(in, model.FilterCriteria{}, refNow)))
	assert.Equal(t, []int64{2, 3, 1}, ids(Apply(in, model.FilterCriteria{SortOrder: model.SortDesc}, refNow)))
}

func TestApplyDashboardScenario(t *testing.T) {
	in := []*model.Event{
		event(1, "2025-03-10", "Music", "France"),
		event(2, "2025-03-05", "Sport", "France"),
		event(3, "2025-02-01", "Music", "France"),
	}

	got := Apply(in, model.DefaultFilterCriteria(), refNow)
	assert.Equal(t, []int64{2, 1}, ids(got))
}
