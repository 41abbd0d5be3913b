// Package project reads and writes esconf.yaml, the Espresso project file.
package project

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vyPal/Espresso/util"
)

// EsConf mirrors esconf.yaml. Main is the source file commands fall
// back to when invoked without a file argument.
type EsConf struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Main        string `yaml:"main"`
	SourceDir   string `yaml:"source"`
	Author      string `yaml:"author"`
	License     string `yaml:"license"`
}

// CreateDefault fills c with the defaults for a project called name.
func (c *EsConf) CreateDefault(name string) {
	if name == "" || name == "." {
		name = "NewProject"
	}
	c.Name = name
	c.Description = "A new Espresso project"
	c.Version = "1.0.0"
	c.Main = "src/main.esp"
	c.SourceDir = "src"
	c.Author = "Anonymous"
	c.License = "MIT"
}

// Save writes c to filepath. An existing file is only replaced when
// overwrite is set or the user confirms at the prompt.
func (c *EsConf) Save(filepath string, overwrite bool) error {
	if _, err := os.Stat(filepath); !os.IsNotExist(err) {
		if !overwrite && !util.PromptYN(filepath+" already exists. Overwrite?", false) {
			return nil
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding project config")
	}

	if err := os.WriteFile(filepath, yml, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", filepath)
	}

	return nil
}

// GetEsConf loads esconf.yaml from dir.
func GetEsConf(dir string) (EsConf, error) {
	file, err := os.Open(path.Join(dir, "esconf.yaml"))
	if err != nil {
		return EsConf{}, errors.Wrapf(err, "opening project config in %s", dir)
	}
	defer file.Close()

	var conf EsConf
	if err := yaml.NewDecoder(file).Decode(&conf); err != nil {
		return EsConf{}, errors.Wrap(err, "decoding project config")
	}

	return conf, nil
}
