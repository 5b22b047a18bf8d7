package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/laher/periodic/dateparser"
	"github.com/laher/periodic/period"
)

// NoteConfig describes where one kind of periodic note lives and how it is named.
type NoteConfig struct {
	Folder string `mapstructure:"folder" json:"folder" toml:"folder" yaml:"folder"`
	Format string `mapstructure:"format" json:"format" toml:"format" yaml:"format"`
	Title  string `mapstructure:"title" json:"title" toml:"title" yaml:"title"`
}

type Config struct {
	BaseDir      string     `mapstructure:"base_dir" json:"base_dir" toml:"base_dir" yaml:"base_dir"`
	WeekStartsOn int        `mapstructure:"week_starts_on" json:"week_starts_on" toml:"week_starts_on" yaml:"week_starts_on"`
	Daily        NoteConfig `mapstructure:"daily" json:"daily" toml:"daily" yaml:"daily"`
	Weekly       NoteConfig `mapstructure:"weekly" json:"weekly" toml:"weekly" yaml:"weekly"`
	Monthly      NoteConfig `mapstructure:"monthly" json:"monthly" toml:"monthly" yaml:"monthly"`
	Quarterly    NoteConfig `mapstructure:"quarterly" json:"quarterly" toml:"quarterly" yaml:"quarterly"`
	Yearly       NoteConfig `mapstructure:"yearly" json:"yearly" toml:"yearly" yaml:"yearly"`
}

var defaultNotes = map[period.Kind]NoteConfig{
	period.Daily:     {Format: "yyyy-MM-dd", Title: "EEEE, d MMMM yyyy"},
	period.Weekly:    {Format: "RRRR-'W'II", Title: "'Week' I, RRRR"},
	period.Monthly:   {Format: "yyyy-MM", Title: "MMMM yyyy"},
	period.Quarterly: {Format: "yyyy-'Q'q", Title: "qqq yyyy"},
	period.Yearly:    {Format: "yyyy", Title: "yyyy"},
}

func setDefaults(v *viper.Viper) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	v.SetDefault("base_dir", filepath.Join(homeDir, "notes"))
	v.SetDefault("week_starts_on", int(time.Monday))
	for kind, nc := range defaultNotes {
		v.SetDefault(string(kind)+".folder", nc.Folder)
		v.SetDefault(string(kind)+".format", nc.Format)
		v.SetDefault(string(kind)+".title", nc.Title)
	}
	return nil
}

// weeklyDefaults names weeks by ISO tokens only when weeks start on Monday,
// since ISO weeks run Monday to Sunday.
func weeklyDefaults(weekStart time.Weekday) NoteConfig {
	if weekStart == time.Monday {
		return defaultNotes[period.Weekly]
	}
	return NoteConfig{Format: "YYYY-'W'ww", Title: "'Week' w, YYYY"}
}

// loadConfig reads cfgFile, or config.{toml,yaml} under ~/.config/periodic
// when cfgFile is empty. A missing default file is not an error.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	if err := setDefaults(v); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix("PERIODIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		v.AddConfigPath(filepath.Join(homeDir, ".config", "periodic"))
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	weekly := weeklyDefaults(time.Weekday(v.GetInt("week_starts_on")))
	v.SetDefault("weekly.format", weekly.Format)
	v.SetDefault("weekly.title", weekly.Title)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.WeekStartsOn < 0 || c.WeekStartsOn > 6 {
		return fmt.Errorf("week_starts_on must be between 0 (Sunday) and 6 (Saturday), got %d", c.WeekStartsOn)
	}
	if c.BaseDir == "" {
		return errors.New("base_dir must not be empty")
	}
	for _, kind := range period.Kinds {
		if c.Note(kind).Format == "" {
			return fmt.Errorf("%s.format must not be empty", kind)
		}
	}
	return nil
}

// Note returns the settings for one kind of note.
func (c Config) Note(kind period.Kind) NoteConfig {
	switch kind {
	case period.Daily:
		return c.Daily
	case period.Weekly:
		return c.Weekly
	case period.Monthly:
		return c.Monthly
	case period.Quarterly:
		return c.Quarterly
	case period.Yearly:
		return c.Yearly
	}
	return NoteConfig{}
}

func (c Config) weekStart() time.Weekday {
	return time.Weekday(c.WeekStartsOn)
}

func (c Config) parserFactory() *dateparser.Factory {
	return dateparser.NewFactory(dateparser.Options{WeekStartsOn: c.weekStart()})
}
