package taglog

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

var (
	// ErrLoadSettings indicates a settings provider could not produce a
	// snapshot.
	ErrLoadSettings = errors.New("load settings")
	// ErrInvalidSettings indicates settings data could not be parsed.
	ErrInvalidSettings = errors.New("invalid settings")
)

// Settings is an immutable configuration snapshot for a [Logger].
//
// Console and History enable the two sinks, TagHeader and Timestamp control
// message decoration, and DefaultTags is the active tag set installed by
// [Logger.Apply]. A snapshot is plain data; filtering logic lives in
// [Registry] and [Logger].
type Settings struct {
	// Console enables writing to the console sink.
	Console bool `env:"TAGLOG_CONSOLE" envDefault:"true" yaml:"console" json:"console"`
	// History enables recording to the history transcript.
	History bool `env:"TAGLOG_HISTORY" envDefault:"true" yaml:"history" json:"history"`
	// TagHeader prefixes messages with their tag list.
	TagHeader bool `env:"TAGLOG_TAG_HEADER" envDefault:"true" yaml:"tagHeader" json:"tagHeader"`
	// Timestamp prefixes messages with local wall-clock time.
	Timestamp bool `env:"TAGLOG_TIMESTAMP" envDefault:"false" yaml:"timestamp" json:"timestamp"`
	// DefaultTags is the active tag set after applying the snapshot, in
	// order. The [Force] tag is always added on apply.
	DefaultTags []string `env:"TAGLOG_TAGS" envSeparator:"," yaml:"defaultTags" json:"defaultTags"`
}

// DefaultSettings returns the snapshot used when no provider is configured:
// both sinks and the tag header on, timestamps off, no default tags beyond
// [Force].
func DefaultSettings() Settings {
	return Settings{
		Console:   true,
		History:   true,
		TagHeader: true,
	}
}

// Provider supplies the current persisted settings. Where the data comes
// from (environment, file, embedded resource) is the provider's concern.
type Provider interface {
	CurrentSettings() (Settings, error)
}

// ProviderFunc adapts a function to the [Provider] interface.
type ProviderFunc func() (Settings, error)

// CurrentSettings calls f.
func (f ProviderFunc) CurrentSettings() (Settings, error) {
	return f()
}

// Static returns a [Provider] that always yields s.
func Static(s Settings) Provider {
	return ProviderFunc(func() (Settings, error) {
		return s, nil
	})
}

// EnvProvider reads settings from TAGLOG_* environment variables.
//
// Recognized variables: TAGLOG_CONSOLE, TAGLOG_HISTORY, TAGLOG_TAG_HEADER,
// TAGLOG_TIMESTAMP (booleans) and TAGLOG_TAGS (comma-separated tag list).
// Unset variables take the [DefaultSettings] values.
type EnvProvider struct{}

// CurrentSettings parses the environment into a snapshot.
func (EnvProvider) CurrentSettings() (Settings, error) {
	var s Settings

	err := env.Parse(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrLoadSettings, err)
	}

	return s, nil
}

// ParseSettings parses a YAML settings document. Omitted fields keep the
// [DefaultSettings] values. [SettingsSchema] describes the accepted shape.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return s, nil
}

// FileProvider reads YAML settings from a file on every load.
type FileProvider struct {
	// Path is the settings file location.
	Path string
}

// CurrentSettings reads and parses the settings file.
func (p FileProvider) CurrentSettings() (Settings, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrLoadSettings, err)
	}

	return ParseSettings(data)
}
