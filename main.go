package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/laher/periodic/period"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	cfg     Config
	now     func() time.Time
}

func newApp() *app {
	return &app{v: viper.New(), now: time.Now}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "periodic",
		Short: "Find and create periodic notes",
		Long: `periodic works out where daily, weekly, monthly, quarterly and yearly
notes live inside a notes directory, and creates them.

Folders and names are date templates such as "yyyy/MM" or "yyyy-MM-dd".
A folder without date tokens is used as a literal name.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
			flags := cmd.Root().PersistentFlags()
			if err := a.v.BindPFlag("base_dir", flags.Lookup("base-dir")); err != nil {
				return err
			}
			if err := a.v.BindPFlag("week_starts_on", flags.Lookup("week-starts-on")); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			log.Printf("base dir: %s", cfg.BaseDir)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.config/periodic/config.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	flags.String("base-dir", "", "notes directory (default $HOME/notes)")
	flags.Int("week-starts-on", int(time.Monday), "first day of the week, 0 (Sunday) to 6 (Saturday)")

	rootCmd.AddCommand(
		newPathCmd(a),
		newNewCmd(a),
		newShowCmd(a),
		newDaysCmd(a),
		newHeadingsCmd(a),
		newKindsCmd(a),
		newStatusesCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}

var errBadDate = errors.New("unrecognised date")

var dateLayouts = []string{"2006-01-02", "2006/01/02", "20060102"}

// parseDate accepts today, yesterday, tomorrow or a calendar date.
func parseDate(s string, now time.Time) (time.Time, error) {
	switch s {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (want today, yesterday, tomorrow or YYYY-MM-DD)", errBadDate, s)
}

// selectPeriod resolves the optional date argument and --kind flag.
func (a *app) selectPeriod(kindName string, args []string) (period.Period, error) {
	kind, err := period.ParseKind(kindName)
	if err != nil {
		return period.Period{}, err
	}
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	t, err := parseDate(arg, a.now())
	if err != nil {
		return period.Period{}, err
	}
	return a.cfg.periodFor(kind, t)
}
