package events

import (
	"sort"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
)

type sortItem struct {
	event *model.Event
	ts    time.Time
	ok    bool
}

// Apply keeps the events matching every criterion and orders them by date.
// Ties keep their input order and events with unreadable dates go last. The
// input slice is left untouched.
func Apply(events []*model.Event, criteria model.FilterCriteria, now time.Time) []*model.Event {
	categories := toSet(criteria.Categories)
	countries := toSet(criteria.Countries)

	items := make([]sortItem, 0, len(events))
	for _, e := range events {
		if len(categories) != 0 {
			if _, ok := categories[e.CategoryName]; !ok {
				continue
			}
		}

		if len(countries) != 0 {
			if _, ok := countries[e.Location.Country]; !ok {
				continue
			}
		}

		if criteria.Status != "" && !MatchesStatusFilter(e, criteria.Status, now) {
			continue
		}

		ts, err := datetime.ParseTimestamp(e.Date)
		items = append(items, sortItem{event: e, ts: ts, ok: err == nil})
	}

	desc := criteria.SortOrder == model.SortDesc
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.ok || !b.ok {
			return a.ok && !b.ok
		}
		if desc {
			return a.ts.After(b.ts)
		}
		return a.ts.Before(b.ts)
	})

	res := make([]*model.Event, len(items))
	for i, it := range items {
		res[i] = it.event
	}

	return res
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
