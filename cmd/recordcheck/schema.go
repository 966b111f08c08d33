package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/recordcheck/jsonschema"
)

func (c *cli) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <kind>",
		Short: "Print the JSON Schema of a record kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), jsonschema.FromRecord(k.Schema))
		},
	}
}
