package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	rc "github.com/reoring/recordcheck"
	"github.com/reoring/recordcheck/fleet"
	"github.com/reoring/recordcheck/i18n"
)

// errInvalid is returned when at least one record failed validation.
var errInvalid = errors.New("validation failed")

type cli struct {
	logLevel string
	lang     string
	strict   bool
	asJSON   bool

	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:           "recordcheck",
		Short:         "Validate space fleet records",
		Long:          `recordcheck validates station, contact, crew and mission records against their schemas and cross-field rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&c.lang, "lang", "", "message language (en, ja); falls back to $RECORDCHECK_LANG")
	pf.BoolVar(&c.strict, "strict", false, "report undeclared keys as errors")
	pf.BoolVar(&c.asJSON, "json", false, "print reports as JSON")

	root.AddCommand(c.demoCmd(), c.validateCmd(), c.schemaCmd(), c.kindsCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", c.logLevel)
	}
	c.log = newLogger(cmd.ErrOrStderr(), level)

	lang := c.lang
	if lang == "" {
		lang = os.Getenv("RECORDCHECK_LANG")
	}
	if lang != "" {
		i18n.SetLanguage(lang)
	}
	return nil
}

// newLogger writes text logs to w and renames the "error" key to "err".
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

func (c *cli) options() rc.Options {
	var opt rc.Options
	if c.strict {
		opt.Unknown = rc.Policy(rc.UnknownStrict)
	}
	return opt
}

func lookupKind(name string) (fleet.Kind, error) {
	k, ok := fleet.Lookup(name)
	if !ok {
		return fleet.Kind{}, fmt.Errorf("unknown record kind %q (want one of %v)", name, fleet.Names())
	}
	return k, nil
}

func (c *cli) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, n := range fleet.Names() {
				k, _ := fleet.Lookup(n)
				fmt.Fprintf(out, "%-8s %s\n", n, k.Schema.Name())
			}
			return nil
		},
	}
}
