package api

import (
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/business/events"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
)

type userResp struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func mapToUserResp(user *model.User) *userResp {
	return &userResp{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

type categoryResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type locationResp struct {
	Country       string `json:"country"`
	StateProvince string `json:"stateProvince"`
	City          string `json:"city"`
	Address       string `json:"address"`
	PostalCode    string `json:"postalCode"`
}

type eventResp struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Location           locationResp `json:"location"`
	MaxNumParticipants int          `json:"maxNumParticipants"`
	RegisteredNumber   int          `json:"registeredNumber"`
	RegisteredIDs      []int64      `json:"registeredIds"`
	Date               string       `json:"date"`
	StartTime          string       `json:"startTime"`
	EndTime            string       `json:"endTime"`
	Duration           string       `json:"duration"`
	OwnerID            int64        `json:"ownerId"`
	OwnerName          string       `json:"ownerName,omitempty"`
	CategoryID         int64        `json:"categoryId"`
	CategoryName       string       `json:"categoryName"`
	Image              string       `json:"image,omitempty"`
	StatusName         model.Status `json:"statusName"`
	StatusLabel        string       `json:"statusLabel"`
	DateTimeLabel      string       `json:"dateTimeLabel"`
	DurationLabel      string       `json:"durationLabel"`
	Editable           bool         `json:"editable"`
	Full               bool         `json:"full"`
	StartTimePicker    string       `json:"startTimePicker,omitempty"`
	EndTimePicker      string       `json:"endTimePicker,omitempty"`
}

// pickerValue renders a stored time the way the form time pickers expect
// it. Unreadable values give "".
func pickerValue(date datetime.CalendarDate, stored string) string {
	t, err := datetime.ExtractClockTime(stored)
	if err != nil {
		return ""
	}
	return datetime.PickerTimestamp(t, date.In(time.UTC))
}

func eventMapper(now time.Time, locale datetime.Locale) func(*model.Event) (*eventResp, error) {
	return func(e *model.Event) (*eventResp, error) {
		status, err := events.Classify(e, now)
		if err != nil {
			return nil, err
		}

		date, err := datetime.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}

		dateTime, err := datetime.FormatDateTime(e.Date, e.StartTime, locale)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}

		duration, err := datetime.FormatDuration(e.Duration, locale)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}

		registered := e.RegisteredIDs
		if registered == nil {
			registered = []int64{}
		}

		return &eventResp{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Location: locationResp{
				Country:       e.Location.Country,
				StateProvince: e.Location.StateProvince,
				City:          e.Location.City,
				Address:       e.Location.Address,
				PostalCode:    e.Location.PostalCode,
			},
			MaxNumParticipants: e.MaxNumParticipants,
			RegisteredNumber:   e.RegisteredNumber(),
			RegisteredIDs:      registered,
			Date:               e.Date,
			StartTime:          e.StartTime,
			EndTime:            e.EndTime,
			Duration:           e.Duration,
			OwnerID:            e.OwnerID,
			OwnerName:          e.OwnerName,
			CategoryID:         e.CategoryID,
			CategoryName:       e.CategoryName,
			Image:              e.ImagePath,
			StatusName:         status,
			StatusLabel:        status.Label(),
			DateTimeLabel:      dateTime,
			DurationLabel:      duration,
			Editable:           events.Editable(e, now),
			Full:               e.IsFull(),
			StartTimePicker:    pickerValue(date, e.StartTime),
			EndTimePicker:      pickerValue(date, e.EndTime),
		}, nil
	}
}
