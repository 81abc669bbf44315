package main

import (
	"fmt"
	"os"

	"github.com/Bourichi-Taha/Everlasting-client/internal/ctl"
	"github.com/urfave/cli"
)

var version = "(unknown)"

func main() {
	app := cli.App{
		Name:    "eventsctl",
		Usage:   "Offline tools for event lists",
		Version: version,
		Commands: []cli.Command{
			ctl.List,
			ctl.CheckTimes,
			ctl.Token,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
