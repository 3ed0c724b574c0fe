package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/tweakreg/internal/app"
	"github.com/dshills/tweakreg/internal/config/entry"
	"github.com/dshills/tweakreg/internal/logging"
)

// Configuration keys. Each is also a persistent flag and a TWEAKREG_*
// environment variable.
const (
	keySettings    = "settings"
	keyDefinitions = "definitions"
	keyLogLevel    = "log-level"
	keyLogFormat   = "log-format"
)

// cli holds state shared by the subcommands of one invocation.
type cli struct {
	v   *viper.Viper
	app *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	c.v.SetEnvPrefix("TWEAKREG")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "tweakreg",
		Short: "Inspect and change feature toggles",
		Long: `tweakreg manages a registry of typed feature toggles.

Values are read from and written to a settings file whose extension
selects the format (.json, .toml, .yaml). Each toggle may be bound to a
key chord such as "X,F" or "LSHIFT,X,F".`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.app != nil {
				c.app.Close()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(keySettings, "tweakreg.json", "settings file (.json, .toml, .yaml)")
	flags.String(keyDefinitions, "", "extra entry definitions (.yaml, .lua)")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(keyLogFormat, "console", "log format (console, json)")
	_ = c.v.BindPFlags(flags)

	cmd.AddCommand(
		c.listCmd(),
		c.getCmd(),
		c.setCmd(),
		c.resetCmd(),
		c.toggleCmd(),
		c.pressCmd(),
		c.conflictsCmd(),
		c.watchCmd(),
	)
	return cmd
}

// open builds the application before any subcommand runs.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(c.v.GetString(keyLogLevel)),
		Format: logging.ParseFormat(c.v.GetString(keyLogFormat)),
		Output: cmd.ErrOrStderr(),
	})

	out := cmd.OutOrStdout()
	a, err := app.New(app.Options{
		SettingsPath:    c.v.GetString(keySettings),
		DefinitionsPath: c.v.GetString(keyDefinitions),
		Logger:          &log,
		Messenger: entry.MessengerFunc(func(text string) {
			fmt.Fprintln(out, text)
		}),
	})
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

// mutate runs fn and saves the settings file if it succeeded.
func (c *cli) mutate(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	return c.app.Save()
}

func printValue(w io.Writer, info app.EntryInfo) {
	fmt.Fprintf(w, "%s = %s\n", info.Key, info.Value)
}
