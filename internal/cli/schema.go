package cli

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/genebar/pkg/seed"
)

// NewSchemaCmd returns the command printing the seed dataset JSON schema.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of seed datasets",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return seed.WriteSchema(cc.OutOrStdout())
		},
	}
}
