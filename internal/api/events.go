package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Bourichi-Taha/Everlasting-client/internal/business/events"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/validator"
)

const msgUnknownCategory = "Catégorie inconnue"

type eventReq struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	MaxNumParticipants int    `json:"maxNumParticipants"`
	Date               string `json:"date"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	CategoryID         int64  `json:"categoryId"`
	Image              string `json:"image"`
	Location           struct {
		Country       string `json:"country"`
		StateProvince string `json:"stateProvince"`
		City          string `json:"city"`
		Address       string `json:"address"`
		PostalCode    string `json:"postalCode"`
	} `json:"location"`
}

func (req *eventReq) toEventCreate() *model.EventCreate {
	return &model.EventCreate{
		Name:               strings.TrimSpace(req.Name),
		Description:        strings.TrimSpace(req.Description),
		MaxNumParticipants: req.MaxNumParticipants,
		Date:               normalizeRequestDate(req.Date),
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		CategoryID:         req.CategoryID,
		ImagePath:          req.Image,
		Location: model.Location{
			Country:       strings.TrimSpace(req.Location.Country),
			StateProvince: strings.TrimSpace(req.Location.StateProvince),
			City:          strings.TrimSpace(req.Location.City),
			Address:       strings.TrimSpace(req.Location.Address),
			PostalCode:    strings.TrimSpace(req.Location.PostalCode),
		},
	}
}

// normalizeRequestDate turns picker output such as "2025-03-01T23:00:00.000Z"
// (2 March picked in France) into "2025-03-02". Anything unreadable is kept
// as sent and rejected by validation.
func normalizeRequestDate(s string) string {
	in := datetime.RawDate(s)
	if d, err := datetime.ParsePickedDate(s); err == nil {
		in = datetime.StructuredDate(d.Year, d.Month, d.Day)
	}

	normalized, err := datetime.NormalizeDate(in)
	if err != nil {
		return s
	}
	return normalized
}

func parseFilterCriteria(r *http.Request) model.FilterCriteria {
	q := r.URL.Query()

	return model.FilterCriteria{
		Categories: nonEmpty(q["category"]),
		Countries:  nonEmpty(q["country"]),
		Status:     model.Status(q.Get("status")),
		SortOrder:  model.SortOrder(q.Get("sort")),
	}
}

func nonEmpty(values []string) []string {
	var res []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

// writeEvents renders a list. An event that cannot be displayed is logged
// and left out rather than failing the whole list.
func (a *Api) writeEvents(w http.ResponseWriter, r *http.Request, list []*model.Event) {
	mapper := eventMapper(a.now(), a.locale)

	resp := make([]*eventResp, 0, len(list))
	for _, e := range list {
		item, err := mapper(e)
		if err != nil {
			a.logger.Warnw("skipping event that cannot be displayed", "id", e.ID, "err", err)
			continue
		}
		resp = append(resp, item)
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) writeEvent(w http.ResponseWriter, r *http.Request, status int, event *model.Event) {
	resp, err := eventMapper(a.now(), a.locale)(event)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("map event: %w", err))
		return
	}

	if err := a.writeJSON(w, status, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := a.eventsService.ListEvents(r.Context(), parseFilterCriteria(r), a.now())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("list events: %w", err))
		return
	}

	a.writeEvents(w, r, list)
}

func (a *Api) ownEventsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	list, err := a.eventsService.ListOwnEvents(r.Context(), id, a.now())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("list own events: %w", err))
		return
	}

	a.writeEvents(w, r, list)
}

func (a *Api) registeredEventsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	list, err := a.eventsService.ListRegisteredEvents(r.Context(), id, a.now())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("list registered events: %w", err))
		return
	}

	a.writeEvents(w, r, list)
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	event, err := a.eventsService.GetEvent(r.Context(), id)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	a.writeEvent(w, r, http.StatusOK, event)
}

// readEventInput decodes and validates a create or update body. It writes the
// error response itself and returns nil in that case.
func (a *Api) readEventInput(w http.ResponseWriter, r *http.Request) *model.EventCreate {
	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return nil
	}

	info := req.toEventCreate()

	v := validator.New()
	events.CheckEventInput(v, info, a.now())

	if info.CategoryID != 0 {
		if _, err := a.categories.GetCategoryByID(r.Context(), a.db, info.CategoryID); err != nil {
			if !errors.Is(err, model.ErrNoRecord) {
				a.serverErrorResponse(w, r, err)
				return nil
			}
			v.AddError("categoryId", msgUnknownCategory)
		}
	}

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return nil
	}

	return info
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	info := a.readEventInput(w, r)
	if info == nil {
		return
	}

	created, err := a.eventsService.CreateEvent(r.Context(), uid, info)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	event, err := a.eventsService.GetEvent(r.Context(), created.ID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get created event: %w", err))
		return
	}

	a.writeEvent(w, r, http.StatusCreated, event)
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := idParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	info := a.readEventInput(w, r)
	if info == nil {
		return
	}

	if err := a.eventsService.UpdateEvent(r.Context(), uid, id, info, a.now()); err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	event, err := a.eventsService.GetEvent(r.Context(), id)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get updated event: %w", err))
		return
	}

	a.writeEvent(w, r, http.StatusOK, event)
}

func (a *Api) cancelEventHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := idParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.eventsService.CancelEvent(r.Context(), uid, id); err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type subscriptionReq struct {
	EventID int64 `json:"eventId"`
}

func (a *Api) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	a.subscription(w, r, a.eventsService.Subscribe)
}

func (a *Api) unsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	a.subscription(w, r, a.eventsService.Unsubscribe)
}

func (a *Api) subscription(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, userID, eventID int64) error,
) {
	uid, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &subscriptionReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.EventID > 0, "eventId", events.MsgRequired)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := action(r.Context(), uid, req.EventID); err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) validateTimesHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	res := events.ValidateTimeRange(req.StartTime, req.EndTime)
	if err := a.writeJSON(w, http.StatusOK, res, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
