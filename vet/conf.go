package vet

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/qiniu/x/errors"
	"gopkg.in/yaml.v3"
)

// ConfFileName is the config file looked up in checked directories.
const ConfFileName = "safefmt.cfg"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// -----------------------------------------------------------------------------

// Config drives the checker. Funcs maps a printf-style function (a
// qualified pkg.Name or a bare local name) to the index of its format
// argument; everything after that index is a formatting argument.
// Ignore lists file basenames to skip.
type Config struct {
	Funcs  map[string]int `json:"funcs" yaml:"funcs"`
	Ignore []string       `json:"ignore" yaml:"ignore"`
}

// DefaultConfig covers the fmt/log printf family and the safefmt API.
func DefaultConfig() *Config {
	return &Config{
		Funcs: map[string]int{
			"fmt.Printf":  0,
			"fmt.Sprintf": 0,
			"fmt.Errorf":  0,
			"fmt.Fprintf": 1,

			"log.Printf": 0,
			"log.Fatalf": 0,
			"log.Panicf": 0,

			"safefmt.Printf":      0,
			"safefmt.Sprintf":     0,
			"safefmt.MustSprintf": 0,
			"safefmt.Fprintf":     1,
		},
	}
}

// LoadConfig reads a config file (JSON, or YAML for .yaml/.yml) and
// merges it over the defaults.
func LoadConfig(file string) (conf *Config, err error) {
	b, err := os.ReadFile(file)
	if err != nil {
		err = errors.NewWith(err, `os.ReadFile(file)`, -2, "os.ReadFile", file)
		return
	}
	conf = DefaultConfig()
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, conf)
	default:
		err = json.Unmarshal(b, conf)
	}
	if err != nil {
		err = errors.NewWith(err, `unmarshal(b, conf)`, -2, "vet.LoadConfig", file)
		conf = nil
	}
	return
}

func (c *Config) ignored(name string) bool {
	for _, ig := range c.Ignore {
		if ig == name {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
