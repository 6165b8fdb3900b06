package server

import "github.com/urfave/cli/v2"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "serve team and player reports over HTTP, with the enabled background workers",
		Action: func(c *cli.Context) error {
			Run()
			return nil
		},
	}
}
