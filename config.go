package taglog

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// boolCompletions are the values offered for boolean settings flags.
var boolCompletions = []string{"true", "false"}

// Flags holds CLI flag names for logger configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Console   string
	History   string
	TagHeader string
	Timestamp string
	Tags      string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:    f,
		Settings: DefaultSettings(),
	}
}

// Config holds CLI flag values for logger configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewLogger] to create a configured
// [Logger].
type Config struct {
	Settings Settings
	Flags    Flags
}

// NewConfig returns a new [Config] with default flag names and
// [DefaultSettings] values. Use [Config.RegisterFlags] to add CLI flags, or
// set values directly.
func NewConfig() *Config {
	f := Flags{
		Console:   "log-console",
		History:   "log-history",
		TagHeader: "log-tag-header",
		Timestamp: "log-timestamp",
		Tags:      "log-tags",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Settings.Console, c.Flags.Console, c.Settings.Console,
		"write log lines to the console")
	flags.BoolVar(&c.Settings.History, c.Flags.History, c.Settings.History,
		"record log lines in the in-memory history")
	flags.BoolVar(&c.Settings.TagHeader, c.Flags.TagHeader, c.Settings.TagHeader,
		"prefix log lines with their tag list")
	flags.BoolVar(&c.Settings.Timestamp, c.Flags.Timestamp, c.Settings.Timestamp,
		"prefix log lines with wall-clock time")
	flags.StringSliceVar(&c.Settings.DefaultTags, c.Flags.Tags, c.Settings.DefaultTags,
		"tags active by default, e.g. NET,DB")
}

// RegisterCompletions registers shell completions for logging flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	boolFlags := []string{
		c.Flags.Console,
		c.Flags.History,
		c.Flags.TagHeader,
		c.Flags.Timestamp,
	}

	for _, name := range boolFlags {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(boolCompletions, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Tags, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Tags, err)
	}

	return nil
}

// NewLogger creates a [Logger] with the flag values applied, plus any
// further options.
func (c *Config) NewLogger(opts ...Option) *Logger {
	return New(append([]Option{WithSettings(c.Settings)}, opts...)...)
}
