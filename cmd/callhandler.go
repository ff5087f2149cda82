package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwks/cupi/pkg/output"
)

var callHandlerCmd = &cobra.Command{
	Use:   "callhandler",
	Short: "Call handler commands",
}

var callHandlerTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List call handler templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		templates, err := client.ListCallHandlerTemplates(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list call handler templates: %w", err)
		}

		formatter := output.New(format)
		rows := make([][]string, 0, len(templates))
		for _, tmpl := range templates {
			rows = append(rows, []string{tmpl.DisplayName, tmpl.ObjectID})
		}
		return formatter.Table([]string{"NAME", "OBJECT ID"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(callHandlerCmd)
	callHandlerCmd.AddCommand(callHandlerTemplatesCmd)

	output.AddFormatFlag(callHandlerTemplatesCmd)
}
