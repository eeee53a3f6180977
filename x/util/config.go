package util

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is GURPS Manager base configuration
type Config struct {
	Server  Server  `yaml:"server"`
	Manager Manager `yaml:"manager"`
}

type Server struct {
	Bind          string `yaml:"bind"`
	Dsn           string `yaml:"dsn"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Manager struct {
	SiteName    string `yaml:"siteName"`
	Description string `yaml:"description"`
	Maintainer  struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"maintainer"`
}

// Load loads manager config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Println("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Println("failed to load configuration file:", err)
		return err
	}

	return nil
}
