package ctl

import (
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/jwt"
	"github.com/urfave/cli"
)

var Token = cli.Command{
	Name:  "token",
	Usage: "Mints an access token for a user",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:  "user",
			Usage: "User ID",
		},
		&cli.StringFlag{
			Name:   "secret",
			Usage:  "Signing secret",
			EnvVar: "SECRET",
		},
		&cli.DurationFlag{
			Name:  "ttl",
			Usage: "Token lifetime",
			Value: 20 * time.Minute,
		},
	},
	Action: mintToken,
}

func mintToken(c *cli.Context) error {
	if c.Int64("user") <= 0 {
		return cli.NewExitError("--user is required", 2)
	}
	if c.String("secret") == "" {
		return cli.NewExitError("--secret or SECRET is required", 2)
	}

	token, err := jwt.NewManager(c.String("secret"), c.Duration("ttl")).CreateToken(c.Int64("user"))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, token)
	return nil
}
