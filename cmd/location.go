package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwks/cupi/pkg/output"
)

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Connection location commands",
}

var locationOIDCmd = &cobra.Command{
	Use:   "oid",
	Short: "Show the owner location ObjectId",
	Long:  "Display the owner location ObjectId, required when creating schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		oid, err := client.GetOwnerLocationObjectID(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get owner location: %w", err)
		}

		fmt.Println(oid)
		return nil
	},
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connection locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		locations, err := client.ListConnectionLocations(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list locations: %w", err)
		}

		formatter := output.New(format)
		rows := make([][]string, 0, len(locations))
		for _, loc := range locations {
			rows = append(rows, []string{loc.DisplayName, loc.HostAddress, loc.ObjectID})
		}
		return formatter.Table([]string{"NAME", "HOST", "OBJECT ID"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(locationCmd)
	locationCmd.AddCommand(locationOIDCmd)
	locationCmd.AddCommand(locationListCmd)

	output.AddFormatFlag(locationListCmd)
}
