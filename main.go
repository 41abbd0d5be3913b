package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

var commands []*cli.Command

func main() {
	app := &cli.App{
		Name:                   "espresso",
		Usage:                  "Tooling for the Espresso programming language",
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Commands:               commands,
	}

	err := app.Run(os.Args)
	if err != nil {
		panic(err)
	}
}
