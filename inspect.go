package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
	"github.com/vyPal/Espresso/lib/project"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "lex",
		Usage:     "Print the token stream of an Espresso source file",
		Category:  "inspect",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Lex a string instead of a file",
			},
		},
		Action: lexCmd,
	}, &cli.Command{
		Name:      "parse",
		Usage:     "Parse an Espresso source file and print the syntax tree",
		Category:  "inspect",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Parse a string instead of a file",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Dump the AST as indented JSON",
			},
		},
		Action: parseCmd,
	})
}

// readSource resolves the source text for a command: the --input-str
// flag, the file argument, or the project's main file from esconf.yaml.
func readSource(c *cli.Context) (string, error) {
	if s := c.String("input-str"); s != "" {
		return s, nil
	}

	filename := c.Args().First()
	if filename == "" {
		conf, err := project.GetEsConf(".")
		if err != nil {
			return "", errors.Wrap(err, "no file specified and no project found")
		}
		filename = conf.Main
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", filename)
	}
	return string(src), nil
}

func lexCmd(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	illegal := false
	l := lexer.New(src)
	for tok := l.NextToken(); tok.Type != lexer.EOF; tok = l.NextToken() {
		if tok.Type == lexer.Illegal {
			illegal = true
			color.Yellow("%s", tok)
		} else {
			fmt.Println(tok)
		}
	}

	if illegal {
		return cli.Exit(color.RedString("Error: source contains illegal tokens"), 1)
	}
	return nil
}

func parseCmd(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	program, err := parser.New(lexer.New(src)).ParseProgram()
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(program); err != nil {
			return cli.Exit(color.RedString("Error encoding AST: %s", err), 1)
		}
		return nil
	}

	for _, stmt := range program.Statements {
		fmt.Println(stmt.String())
	}
	return nil
}
