package ctl

import (
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/business/events"
	"github.com/urfave/cli"
)

var CheckTimes = cli.Command{
	Name:      "check-times",
	Usage:     "Checks that an end time is later than a start time",
	ArgsUsage: "START END",
	Action:    checkTimes,
}

func checkTimes(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.NewExitError("expected START and END", 2)
	}

	res := events.ValidateTimeRange(c.Args().Get(0), c.Args().Get(1))
	if !res.Valid {
		return cli.NewExitError(res.Reason, 1)
	}

	fmt.Fprintln(c.App.Writer, "ok")
	return nil
}
