package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	rc "github.com/reoring/recordcheck"
	"github.com/reoring/recordcheck/fleet"
)

const separator = "========================================"

func (c *cli) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the station, contact and mission scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			var reports []reportJSON
			for _, sc := range fleet.Scenarios() {
				k, err := lookupKind(sc.Kind)
				if err != nil {
					return err
				}
				r := rc.Validate(cmd.Context(), k.Schema, sc.Input, c.options())
				c.logReport(sc.Title, r)
				if c.asJSON {
					reports = append(reports, toJSON(sc.Title, r))
					continue
				}

				fmt.Fprintln(out, separator)
				fmt.Fprintf(out, "%s (%s)\n", sc.Title, r.Name())
				if !r.OK() {
					fmt.Fprintln(errOut, "Expected validation error:")
					fmt.Fprintln(errOut, indent(rc.Render(r)))
					continue
				}
				summary, err := k.Summary(r.Record())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Valid %s created:\n%s\n", sc.Kind, summary)
			}
			if c.asJSON {
				return writeJSON(out, reports)
			}
			return nil
		},
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
