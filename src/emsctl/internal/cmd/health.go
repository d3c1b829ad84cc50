package cmd

import (
	"context"

	"github.com/bitswalk/ems/src/emsctl/internal/output"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	Long:  `Checks the health status of the EMS server.`,
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	resp, err := c.Health(ctx)
	if err != nil {
		return err
	}

	return output.PrintFormatted(getOutputFormat(), resp, func() error {
		output.PrintTable(
			[]string{"FIELD", "VALUE"},
			[][]string{
				{"Status", resp.Status},
				{"Timestamp", resp.Timestamp},
			},
		)
		return nil
	})
}
