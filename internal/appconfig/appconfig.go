package appconfig

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

var validate = validator.New()

// Config holds all configuration details
type Config struct {
	Host     string         `yaml:"host"`
	BasePath string         `yaml:"basePath"`
	Database DatabaseConfig `yaml:"database"`
	Pulsar   PulsarConfig   `yaml:"pulsar"`
}

// DatabaseConfig defines the MongoDB connection details
type DatabaseConfig struct {
	URI      string `yaml:"uri" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	Usuarios string `yaml:"usuarios"`
	Grupos   string `yaml:"grupos"`
}

// PulsarConfig defines the messaging system connection details. An empty URL
// disables event publishing.
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
}

// LoadConfig loads and parses the configuration from a given file path. The
// file is rendered as a template against the process environment first, so
// values like {{ .MONGO_URI }} are filled in before unmarshalling.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is required")
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file template: %w", err)
	}

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		return nil, fmt.Errorf("error executing config file template: %w", err)
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if config.Database.Usuarios == "" {
		config.Database.Usuarios = "usuarios"
	}
	if config.Database.Grupos == "" {
		config.Database.Grupos = "grupos"
	}

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
