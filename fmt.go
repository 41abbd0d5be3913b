package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
	"github.com/vyPal/Espresso/lib/project"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "fmt",
		Usage:     "Rewrite Espresso source in its canonical form",
		Category:  "inspect",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write the result back to the file instead of stdout",
			},
		},
		Action: fmtCmd,
	})
}

func fmtCmd(c *cli.Context) error {
	filename := c.Args().First()
	if filename == "" {
		conf, err := project.GetEsConf(".")
		if err != nil {
			return cli.Exit(color.RedString("Error: no file specified and no project found"), 1)
		}
		filename = conf.Main
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	program, err := parser.New(lexer.New(string(src))).ParseProgram()
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	var out strings.Builder
	for _, stmt := range program.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}

	if c.Bool("write") {
		if err := os.WriteFile(filename, []byte(out.String()), 0644); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}
		return nil
	}

	fmt.Print(out.String())
	return nil
}
