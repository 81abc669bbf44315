package ctl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"gopkg.in/yaml.v3"
)

// fileEvent is an event as exported by the API.
type fileEvent struct {
	ID                 int64   `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	Description        string  `json:"description" yaml:"description"`
	MaxNumParticipants int     `json:"maxNumParticipants" yaml:"maxNumParticipants"`
	RegisteredIDs      []int64 `json:"registeredIds" yaml:"registeredIds"`
	Date               string  `json:"date" yaml:"date"`
	StartTime          string  `json:"startTime" yaml:"startTime"`
	EndTime            string  `json:"endTime" yaml:"endTime"`
	Duration           string  `json:"duration" yaml:"duration"`
	CategoryName       string  `json:"categoryName" yaml:"categoryName"`
	StatusName         string  `json:"statusName" yaml:"statusName"`
	Location           struct {
		Country string `json:"country" yaml:"country"`
		City    string `json:"city" yaml:"city"`
	} `json:"location" yaml:"location"`
}

func (f *fileEvent) toModel() *model.Event {
	return &model.Event{
		ID:            f.ID,
		CategoryName:  f.CategoryName,
		Canceled:      model.Status(f.StatusName) == model.StatusCanceled,
		RegisteredIDs: f.RegisteredIDs,
		EventCreate: model.EventCreate{
			Name:               f.Name,
			Description:        f.Description,
			MaxNumParticipants: f.MaxNumParticipants,
			Date:               f.Date,
			StartTime:          f.StartTime,
			EndTime:            f.EndTime,
			Duration:           f.Duration,
			Location: model.Location{
				Country: f.Location.Country,
				City:    f.Location.City,
			},
		},
	}
}

// loadEvents reads a JSON or YAML list of events, picked by file extension.
func loadEvents(path string) ([]*model.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []*fileEvent
	if isYAML(path) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	res := make([]*model.Event, len(raw))
	for i, e := range raw {
		res[i] = e.toModel()
	}

	return res, nil
}

type criteriaFile struct {
	Categories []string `yaml:"categories"`
	Countries  []string `yaml:"countries"`
	Status     string   `yaml:"status"`
	Sort       string   `yaml:"sort"`
}

// loadCriteria reads a YAML filter preset. Missing keys fall back to the
// dashboard defaults.
func loadCriteria(path string) (model.FilterCriteria, error) {
	criteria := model.DefaultFilterCriteria()

	data, err := os.ReadFile(path)
	if err != nil {
		return criteria, err
	}

	var preset criteriaFile
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return criteria, fmt.Errorf("decode %s: %w", path, err)
	}

	criteria.Categories = preset.Categories
	criteria.Countries = preset.Countries
	if preset.Status != "" {
		criteria.Status = parseStatus(preset.Status)
	}
	if preset.Sort != "" {
		criteria.SortOrder = model.SortOrder(preset.Sort)
	}

	return criteria, nil
}

// parseStatus maps "all" to no status filter.
func parseStatus(s string) model.Status {
	if strings.EqualFold(s, "all") {
		return ""
	}
	return model.Status(s)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
