package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/frahmantamala/hr-mock/api"
	"github.com/spf13/cobra"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI document of the mocked endpoint",
	Long:  `Validate the embedded OpenAPI document and print it as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := api.Load(cmd.Context())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode openapi document: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
