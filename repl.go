package main

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
)

const prompt = ">> "

func init() {
	commands = append(commands, &cli.Command{
		Name:     "repl",
		Usage:    "Start an interactive Espresso session",
		Category: "repl",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ast",
				Aliases: []string{"a"},
				Usage:   "Parse each line and print the syntax tree instead of tokens",
			},
		},
		Action: repl,
	})
}

func repl(c *cli.Context) error {
	username := "there"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	fmt.Print("\x1B[2J\x1B[1;1H")
	fmt.Printf("Hello %s. This is the Espresso programming language\nFeel free to type in commands\n\n", username)

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return in.Err()
		}

		line := in.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}

		if c.Bool("ast") {
			printProgram(line)
		} else {
			printTokens(line)
		}
	}
}

func printTokens(line string) {
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != lexer.EOF; tok = l.NextToken() {
		if tok.Type == lexer.Illegal {
			color.Yellow("%s", tok)
		} else {
			fmt.Println(tok)
		}
	}
}

func printProgram(line string) {
	program, err := parser.New(lexer.New(line)).ParseProgram()
	if err != nil {
		color.Red("%s", err)
		return
	}
	fmt.Println(program.String())
}
