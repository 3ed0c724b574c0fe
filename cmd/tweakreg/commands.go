package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/tweakreg/internal/app"
	"github.com/dshills/tweakreg/internal/config/notify"
)

func (c *cli) listCmd() *cobra.Command {
	var (
		modified bool
		tag      string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries with their values and chords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var entries []app.EntryInfo
			switch {
			case tag != "":
				entries = c.app.ByTag(tag)
			case search != "":
				entries = c.app.Search(search)
			default:
				entries = c.app.Entries()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tVALUE\tDEFAULT\tCHORD\tNAME")
			for _, e := range entries {
				if modified && !e.Modified {
					continue
				}
				mark := ""
				if e.Modified {
					mark = "*"
				}
				chord := e.Chord
				if chord == "" {
					chord = "-"
				}
				fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%s\n", e.Key, e.Value, mark, e.Default, chord, e.DisplayName)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&modified, "modified", false, "only entries that differ from their default")
	cmd.Flags().StringVar(&tag, "tag", "", "only entries with this tag")
	cmd.Flags().StringVar(&search, "search", "", "only entries matching this text")
	return cmd
}

func (c *cli) getCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Show the value of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.app.Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !verbose {
				fmt.Fprintln(out, info.Value)
				return nil
			}

			fmt.Fprintf(out, "Key:         %s\n", info.Key)
			fmt.Fprintf(out, "Name:        %s\n", info.DisplayName)
			fmt.Fprintf(out, "Type:        %s\n", info.Type)
			fmt.Fprintf(out, "Value:       %s\n", info.Value)
			fmt.Fprintf(out, "Default:     %s\n", info.Default)
			fmt.Fprintf(out, "Modified:    %t\n", info.Modified)
			fmt.Fprintf(out, "Chord:       %s\n", info.Chord)
			if len(info.Tags) > 0 {
				fmt.Fprintf(out, "Tags:        %s\n", strings.Join(info.Tags, ", "))
			}
			if info.Description != "" {
				fmt.Fprintf(out, "\n%s\n", info.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show all details")
	return cmd
}

func (c *cli) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set an entry and save the settings file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.mutate(func() error { return c.app.Set(args[0], args[1]) }); err != nil {
				return err
			}
			info, err := c.app.Lookup(args[0])
			if err != nil {
				return err
			}
			printValue(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset [KEY]",
		Short: "Restore an entry, or all entries, to the default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all && len(args) > 0:
				return errors.New("give either KEY or --all, not both")
			case all:
				return c.mutate(func() error {
					c.app.ResetAll()
					return nil
				})
			case len(args) == 1:
				if err := c.mutate(func() error { return c.app.Reset(args[0]) }); err != nil {
					return err
				}
				info, err := c.app.Lookup(args[0])
				if err != nil {
					return err
				}
				printValue(cmd.OutOrStdout(), info)
				return nil
			default:
				return errors.New("give KEY or --all")
			}
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "reset every entry")
	return cmd
}

func (c *cli) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle KEY",
		Short: "Flip a boolean entry and save the settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			err := c.mutate(func() error {
				var err error
				on, err = c.app.Toggle(args[0])
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", args[0], on)
			return nil
		},
	}
}

func (c *cli) pressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press CHORD",
		Short: "Dispatch a key chord as if it were pressed",
		Long: `Dispatch a key chord as if its keys were held in the order written,
with the last key pressed last. Bound entries run their action: boolean
entries toggle and print a message. The settings file is saved if any
action ran.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fired, err := c.app.Press(args[0])
			if err != nil {
				return err
			}
			if len(fired) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no binding for %s\n", args[0])
				return nil
			}
			return c.app.Save()
		},
	}
}

func (c *cli) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List entries bound to the same chord",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, conflict := range c.app.Conflicts() {
				fmt.Fprintln(cmd.OutOrStdout(), conflict)
			}
			return nil
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the settings file on change and print changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			sub := c.app.Subscribe(func(ch notify.Change) {
				fmt.Fprintf(out, "%s = %v (%s)\n", ch.Key, ch.Value, ch.Source)
			})
			defer sub.Unsubscribe()

			if err := c.app.Watch(ctx); err != nil {
				return err
			}
			fmt.Fprintf(out, "watching %s\n", c.app.SettingsPath())

			<-ctx.Done()
			return nil
		},
	}
}
