package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"csc/input"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	CascadeConfig struct {
		InsideLink  InsideLink           `yaml:"inside_link" validate:"gte=0"`
		RootElement bool                 `yaml:"root_element"`
		Direction   Direction            `yaml:"direction" validate:"gte=0"`
		WritingMode WritingMode          `yaml:"writing_mode" validate:"gte=0"`
		Environment map[string]string    `yaml:"environment"`
		Registered  []input.Registration `yaml:"registered" validate:"dive"`
	}

	OutputConfig struct {
		Format       OutputFormat `yaml:"format" validate:"gte=0"`
		ShowCascade  bool         `yaml:"show_cascade"`
		Sort         bool         `yaml:"sort"`
		NameTemplate string       `yaml:"name_template" validate:"required"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Cascade   CascadeConfig  `yaml:"cascade"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// OutputNameTemplateFieldName is yaml name of OutputConfig.NameTemplate, the
// template is expanded per result and has to survive configuration
// processing intact.
const OutputNameTemplateFieldName TemplateFieldName = "name_template"

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// Defaults returns cascade settings as defaults for input documents.
func (c *CascadeConfig) Defaults() input.Defaults {
	def := input.Defaults{
		Root:        c.RootElement,
		Direction:   c.Direction.String(),
		WritingMode: c.WritingMode.String(),
		Env:         c.Environment,
		Registered:  c.Registered,
	}
	if c.InsideLink != InsideLinkNone {
		def.InsideLink = c.InsideLink.String()
	}
	return def
}

// decode reads YAML data over cfg. Unknown fields are errors, so typos in
// configuration file do not go unnoticed.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

func check(cfg *Config) error {
	if err := gencfg.Sanitize(cfg); err != nil {
		return err
	}
	return gencfg.Validate(cfg)
}

// LoadConfiguration expands embedded configuration template, decodes file
// at path (if any) on top of it and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	defaults, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}

	cfg := &Config{}
	if err := decode(defaults, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}

	what := "configuration template"
	if path != "" {
		what = "configuration file"
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process %s: %w", what, err)
		}
	}
	if err := check(cfg); err != nil {
		return nil, fmt.Errorf("failed to process %s: %w", what, err)
	}
	return cfg, nil
}

// Prepare returns expanded default configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump serializes cfg, output could be loaded back with LoadConfiguration.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
