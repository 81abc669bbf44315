package ctl

import (
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/business/events"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
	"github.com/urfave/cli"
)

var List = cli.Command{
	Name:  "list",
	Usage: "Filters and sorts an exported event list",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "file",
			Usage: "JSON or YAML file with the events",
		},
		&cli.StringFlag{
			Name:  "criteria",
			Usage: "YAML filter preset",
		},
		&cli.StringSliceFlag{
			Name:  "category",
			Usage: "Keep only these categories",
		},
		&cli.StringSliceFlag{
			Name:  "country",
			Usage: "Keep only these countries",
		},
		&cli.StringFlag{
			Name:  "status",
			Usage: "Upcoming, Today, Past, Canceled or all",
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "asc or desc",
		},
		&cli.StringFlag{
			Name:  "now",
			Usage: "Reference time, RFC 3339",
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "Display locale",
			Value: "fr-FR",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
	},
	Action: listEvents,
}

func listEvents(c *cli.Context) error {
	logger, err := newLogger(c.Bool("debug"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	path := c.String("file")
	if path == "" {
		return cli.NewExitError("--file is required", 2)
	}

	now := time.Now()
	if s := c.String("now"); s != "" {
		if now, err = time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("parse --now: %w", err)
		}
	}

	locale, err := datetime.LocaleFor(c.String("locale"))
	if err != nil {
		return err
	}

	criteria := model.DefaultFilterCriteria()
	if p := c.String("criteria"); p != "" {
		if criteria, err = loadCriteria(p); err != nil {
			return err
		}
	}
	if v := c.StringSlice("category"); len(v) != 0 {
		criteria.Categories = v
	}
	if v := c.StringSlice("country"); len(v) != 0 {
		criteria.Countries = v
	}
	if c.IsSet("status") {
		criteria.Status = parseStatus(c.String("status"))
	}
	if c.IsSet("sort") {
		criteria.SortOrder = model.SortOrder(c.String("sort"))
	}

	all, err := loadEvents(path)
	if err != nil {
		return err
	}
	logger.Debugw("loaded events", "file", path, "count", len(all), "criteria", criteria)

	selected := events.Apply(all, criteria, now)
	if len(selected) == 0 {
		fmt.Fprintln(c.App.Writer, "nothing found")
		return nil
	}

	for _, e := range selected {
		line, err := describe(e, now, locale)
		if err != nil {
			logger.Warnw("skipping unreadable event", "id", e.ID, "err", err)
			continue
		}
		fmt.Fprintln(c.App.Writer, line)
	}

	return nil
}

func describe(e *model.Event, now time.Time, locale datetime.Locale) (string, error) {
	status, err := events.Classify(e, now)
	if err != nil {
		return "", err
	}

	when, err := datetime.FormatDateTime(e.Date, e.StartTime, locale)
	if err != nil {
		return "", err
	}

	duration, err := datetime.FormatDuration(e.Duration, locale)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		when, e.Name, e.CategoryName, e.Location.Country, status.Label(), duration), nil
}
