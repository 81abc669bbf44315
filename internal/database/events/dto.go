package events

import (
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
)

type eventDTO struct {
	ID                 int64
	Name               string
	Description        string
	MaxNumParticipants int
	Date               string
	StartTime          string
	EndTime            string
	Duration           string
	ImagePath          string
	Canceled           bool
	OwnerID            int64
	OwnerName          string
	CategoryID         int64
	CategoryName       string
	LocationID         int64 `db:"location_id"`
	Country            string
	StateProvince      string
	City               string
	Address            string
	PostalCode         string
	RegisteredIDs      []int64 `db:"registered_ids"`
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		ID:            dto.ID,
		OwnerID:       dto.OwnerID,
		OwnerName:     dto.OwnerName,
		CategoryName:  dto.CategoryName,
		Canceled:      dto.Canceled,
		RegisteredIDs: dto.RegisteredIDs,
		EventCreate: model.EventCreate{
			Name:               dto.Name,
			Description:        dto.Description,
			MaxNumParticipants: dto.MaxNumParticipants,
			Date:               dto.Date,
			StartTime:          dto.StartTime,
			EndTime:            dto.EndTime,
			Duration:           dto.Duration,
			CategoryID:         dto.CategoryID,
			ImagePath:          dto.ImagePath,
			Location: model.Location{
				ID:            dto.LocationID,
				Country:       dto.Country,
				StateProvince: dto.StateProvince,
				City:          dto.City,
				Address:       dto.Address,
				PostalCode:    dto.PostalCode,
			},
		},
	}
}
