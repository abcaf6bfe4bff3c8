package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/translatable/pkg/field"
)

const (
	DefaultConfigPath = "/etc/translatable"
	ConfigFileName    = "translatable.yml"

	DefaultLocaleKey = "locale"
	DefaultAppLocale = "en"
)

var identifierRgx = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// FieldConfig declares a translatable field on a resource
type FieldConfig struct {
	Name        string   `yaml:"name" json:"name"`
	Attribute   string   `yaml:"attribute" json:"attribute"`
	SingleLine  bool     `yaml:"single_line" json:"single_line"`
	Rich        bool     `yaml:"rich" json:"rich"`
	IndexLocale string   `yaml:"index_locale" json:"index_locale"`
	Locales     []string `yaml:"locales" json:"locales"`
}

// AttributeName returns the configured attribute or the one derived from the name
func (f FieldConfig) AttributeName() string {
	if f.Attribute != "" {
		return f.Attribute
	}
	return field.AttributeFromName(f.Name)
}

// ResourceConfig declares an editable resource and where its translations live
type ResourceConfig struct {
	Name              string        `yaml:"name" json:"name"`
	TranslationsTable string        `yaml:"translations_table" json:"translations_table"`
	ForeignKey        string        `yaml:"foreign_key" json:"foreign_key"`
	Fields            []FieldConfig `yaml:"fields" json:"fields"`
}

// TranslatableConfig holds all configuration settings
type TranslatableConfig struct {
	// Locales are the locale codes offered by translatable fields, in display order
	Locales []string `yaml:"locales" json:"locales"`

	// LocaleKey is the column holding a translation row's locale
	LocaleKey string `yaml:"locale_key" json:"locale_key"`

	// AppLocale is the UI locale used when a request expresses no preference
	AppLocale string `yaml:"app_locale" json:"app_locale"`

	// Labels override the display label of a locale code
	Labels map[string]string `yaml:"labels" json:"labels"`

	// Resources are the resources exposed by the admin API
	Resources []ResourceConfig `yaml:"resources" json:"resources"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *TranslatableConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *TranslatableConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *TranslatableConfig {
	return &TranslatableConfig{
		Locales:   []string{},
		LocaleKey: DefaultLocaleKey,
		AppLocale: DefaultAppLocale,
		Labels:    map[string]string{},
		sources:   make(map[string]string),
	}
}

// Path returns the config file location, honouring TRANSLATABLE_CONFIG_PATH
func Path() string {
	configPath := os.Getenv("TRANSLATABLE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return filepath.Join(configPath, ConfigFileName)
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*TranslatableConfig, error) {
	return LoadFile(Path())
}

// LoadFile loads configuration from the given file and environment variables.
// A missing file leaves the defaults in place.
func LoadFile(path string) (*TranslatableConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}
	config.configFilePath = path

	if data, err := os.ReadFile(path); err == nil {
		var fileConfig TranslatableConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"locales", "locale_key", "app_locale", "labels", "resources",
	}
}

func (c *TranslatableConfig) applyFileConfig(file *TranslatableConfig) {
	if len(file.Locales) > 0 {
		c.Locales = file.Locales
		c.sources["locales"] = "file"
	}
	if file.LocaleKey != "" {
		c.LocaleKey = file.LocaleKey
		c.sources["locale_key"] = "file"
	}
	if file.AppLocale != "" {
		c.AppLocale = file.AppLocale
		c.sources["app_locale"] = "file"
	}
	if len(file.Labels) > 0 {
		c.Labels = file.Labels
		c.sources["labels"] = "file"
	}
	if len(file.Resources) > 0 {
		c.Resources = file.Resources
		c.sources["resources"] = "file"
	}
}

func (c *TranslatableConfig) applyEnvConfig() {
	if val := os.Getenv("TRANSLATABLE_LOCALES"); val != "" {
		c.Locales = splitAndTrim(val)
		c.sources["locales"] = "environment"
	}
	if val := os.Getenv("TRANSLATABLE_LOCALE_KEY"); val != "" {
		c.LocaleKey = val
		c.sources["locale_key"] = "environment"
	}
	if val := os.Getenv("TRANSLATABLE_APP_LOCALE"); val != "" {
		c.AppLocale = val
		c.sources["app_locale"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *TranslatableConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *TranslatableConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// FieldConfig projects the settings translatable fields read on construction
func (c *TranslatableConfig) FieldConfig() field.Config {
	return field.Config{
		Locales:   append([]string(nil), c.Locales...),
		LocaleKey: c.LocaleKey,
	}
}

// Resource returns the resource with the given name
func (c *TranslatableConfig) Resource(name string) (ResourceConfig, bool) {
	for _, r := range c.Resources {
		if r.Name == name {
			return r, true
		}
	}
	return ResourceConfig{}, false
}

// Validate validates the configuration
func (c *TranslatableConfig) Validate() error {
	seen := make(map[string]bool)
	for _, code := range c.Locales {
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("invalid locale %q: %w", code, err)
		}
		if seen[code] {
			return fmt.Errorf("duplicate locale: %s", code)
		}
		seen[code] = true
	}

	if !identifierRgx.MatchString(c.LocaleKey) {
		return fmt.Errorf("invalid locale_key: %q", c.LocaleKey)
	}

	if c.AppLocale != "" {
		if _, err := language.Parse(c.AppLocale); err != nil {
			return fmt.Errorf("invalid app_locale %q: %w", c.AppLocale, err)
		}
	}

	resources := make(map[string]bool)
	for _, r := range c.Resources {
		if r.Name == "" {
			return fmt.Errorf("resource name is required")
		}
		if resources[r.Name] {
			return fmt.Errorf("duplicate resource: %s", r.Name)
		}
		resources[r.Name] = true

		if !identifierRgx.MatchString(r.TranslationsTable) {
			return fmt.Errorf("resource %s: invalid translations_table: %q", r.Name, r.TranslationsTable)
		}
		if !identifierRgx.MatchString(r.ForeignKey) {
			return fmt.Errorf("resource %s: invalid foreign_key: %q", r.Name, r.ForeignKey)
		}
		for _, f := range r.Fields {
			if !identifierRgx.MatchString(f.AttributeName()) {
				return fmt.Errorf("resource %s: invalid field attribute: %q", r.Name, f.AttributeName())
			}
		}
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *TranslatableConfig) Attributes() []Attribute {
	resourceNames := make([]string, 0, len(c.Resources))
	for _, r := range c.Resources {
		resourceNames = append(resourceNames, r.Name)
	}
	labels := make([]string, 0, len(c.Labels))
	for _, code := range c.Locales {
		if label, ok := c.Labels[code]; ok {
			labels = append(labels, code+"="+label)
		}
	}

	return []Attribute{
		{Name: "locales", Value: strings.Join(c.Locales, ","), Source: c.Source("locales")},
		{Name: "locale_key", Value: c.LocaleKey, Source: c.Source("locale_key")},
		{Name: "app_locale", Value: c.AppLocale, Source: c.Source("app_locale")},
		{Name: "labels", Value: strings.Join(labels, ","), Source: c.Source("labels")},
		{Name: "resources", Value: strings.Join(resourceNames, ","), Source: c.Source("resources")},
	}
}

// FormatText returns a text representation of the configuration
func (c *TranslatableConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *TranslatableConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
