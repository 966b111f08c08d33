package main

import (
	"fmt"

	"github.com/spf13/cobra"

	rc "github.com/reoring/recordcheck"
	"github.com/reoring/recordcheck/source"
)

func (c *cli) validateCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "validate <kind> [file...]",
		Short: "Validate records read from JSON or YAML files",
		Long: `Validate every record in the given files against the schema of <kind>.
A file may hold one object, an array of objects or (YAML) several documents.
Without files, or with "-", records are read from stdin in --format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(args[0])
			if err != nil {
				return err
			}
			files := args[1:]
			if len(files) == 0 {
				files = []string{"-"}
			}

			var reports []reportJSON
			failed, total := 0, 0
			for _, f := range files {
				recs, err := c.read(cmd, f, format)
				if err != nil {
					return fmt.Errorf("%s: %w", f, err)
				}
				for i, raw := range recs {
					src := fmt.Sprintf("%s#%d", f, i)
					r := rc.Validate(cmd.Context(), k.Schema, raw, c.options())
					c.logReport(src, r)
					total++
					if !r.OK() {
						failed++
					}
					if c.asJSON {
						reports = append(reports, toJSON(src, r))
						continue
					}
					status := "ok"
					if !r.OK() {
						status = "invalid"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n%s\n", src, status, rc.Render(r))
				}
			}
			if c.asJSON {
				if err := writeJSON(cmd.OutOrStdout(), reports); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d records", errInvalid, failed, total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "stdin format (json, yaml)")
	return cmd
}

func (c *cli) read(cmd *cobra.Command, file, format string) ([]map[string]any, error) {
	if file != "-" {
		c.log.Debug("reading records", "file", file, "format", source.FormatOf(file))
		return source.File(file)
	}
	f, err := source.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	c.log.Debug("reading records", "file", "stdin", "format", f)
	return source.Records(f, cmd.InOrStdin())
}
