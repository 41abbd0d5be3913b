package main

import (
	"fmt"
	"os"
	"path"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/project"
	"github.com/vyPal/Espresso/util"
)

const starterSource = "let add = fn(x, y) {\n\tx + y;\n};\n\nadd(2, 3);\n"

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new Espresso project",
		Category:  "project",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Use the default configuration without prompting",
			},
		},
		Action: initProject,
	})
}

func initProject(c *cli.Context) error {
	rootDir := c.Args().First()
	if rootDir == "" {
		rootDir = "."
	}

	if _, err := os.Stat(rootDir); !os.IsNotExist(err) {
		files, err := os.ReadDir(rootDir)
		if err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}

		if len(files) > 0 && !c.Bool("yes") {
			if !util.PromptYN("The directory is not empty, continue?", false) {
				return nil
			}
		}
	} else {
		if err := os.Mkdir(rootDir, 0755); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}

		fmt.Println("Created directory:", rootDir)
	}

	if _, err := os.Stat(path.Join(rootDir, "src")); os.IsNotExist(err) {
		if err := os.Mkdir(path.Join(rootDir, "src"), 0755); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}

		fmt.Println("Created directory:", path.Join(rootDir, "src"))
	}

	mainFile := path.Join(rootDir, "src", "main.esp")
	if _, err := os.Stat(mainFile); os.IsNotExist(err) {
		if err := os.WriteFile(mainFile, []byte(starterSource), 0644); err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}

		fmt.Println("Created file:", mainFile)
	}

	conf := project.EsConf{}
	if c.Bool("yes") || util.PromptYN("Use default configuration?", false) {
		conf.CreateDefault(path.Base(rootDir))
	} else {
		conf.CreateDefault(path.Base(rootDir))
		conf.Name = util.PromptString("Project name", conf.Name)
		conf.Description = util.PromptString("Project description", conf.Description)
		conf.Version = util.PromptString("Project version", conf.Version)
		conf.Main = util.PromptString("Main file", conf.Main)
		conf.Author = util.PromptString("Author", conf.Author)
		conf.License = util.PromptString("License", conf.License)

		if _, err := util.Parse(conf.Version); err != nil {
			return cli.Exit(color.RedString("Error: invalid project version: %s", conf.Version), 1)
		}
	}

	if err := conf.Save(path.Join(rootDir, "esconf.yaml"), false); err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	fmt.Println("Created file:", path.Join(rootDir, "esconf.yaml"))
	color.Green("Project initialized successfully!")
	return nil
}
