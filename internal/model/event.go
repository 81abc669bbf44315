package model

type Location struct {
	ID            int64
	Country       string
	StateProvince string
	City          string
	Address       string
	PostalCode    string
}

type EventCreate struct {
	Name               string
	Description        string
	MaxNumParticipants int
	// Date is "YYYY-MM-DD".
	Date string
	// StartTime and EndTime are "HH:MM:SS".
	StartTime  string
	EndTime    string
	Duration   string
	CategoryID int64
	ImagePath  string
	Location   Location
}

type Event struct {
	ID            int64
	OwnerID       int64
	OwnerName     string
	CategoryName  string
	Canceled      bool
	RegisteredIDs []int64
	EventCreate
}

func (e *Event) RegisteredNumber() int {
	return len(e.RegisteredIDs)
}

func (e *Event) IsRegistered(userID int64) bool {
	for _, id := range e.RegisteredIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (e *Event) IsFull() bool {
	return e.RegisteredNumber() >= e.MaxNumParticipants
}

// EventsFilter selects events at the storage level.
type EventsFilter struct {
	OwnerID      int64
	RegisteredID int64
}
