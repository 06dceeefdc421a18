package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyDatabasePath      = "database.path"
	KeyDefaultCollection = "workspace.default_collection"
	KeyServePort         = "serve.port"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Workspace WorkspaceConfig `mapstructure:"workspace" validate:"required"`
	Serve     ServeConfig     `mapstructure:"serve"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type WorkspaceConfig struct {
	// DefaultCollection is created on first use when the workspace is empty.
	DefaultCollection string `mapstructure:"default_collection" validate:"required"`
}

type ServeConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# travelog configuration
database:
  path: "./travelog.db"

workspace:
  default_collection: "Travel Logs"

serve:
  port: 8080
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "./travelog.db")
	v.SetDefault(KeyDefaultCollection, "Travel Logs")
	v.SetDefault(KeyServePort, 8080)
}
