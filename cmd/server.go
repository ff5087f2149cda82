package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwks/cupi/pkg/output"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server information commands",
}

var serverInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show Unity Connection server information",
	Long:  "Display the server node record and installed product version",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		info, err := client.GetServerInfo(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get server info: %w", err)
		}

		formatter := output.New(format)
		if formatter.IsJSON() {
			return formatter.Output(info)
		}

		return formatter.Table(
			[]string{"FIELD", "VALUE"},
			[][]string{
				{"Product", info.Product.Name},
				{"Version", info.Product.Version},
				{"Server Name", info.Server.ServerName},
				{"IP Address", info.Server.IPAddress},
				{"State", info.Server.ServerState},
				{"Object ID", info.Server.ObjectID},
			},
		)
	},
}

var serverPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check REST API reachability and credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		status, err := client.Ping(context.Background())
		if err != nil {
			return fmt.Errorf("server unreachable: %w", err)
		}

		fmt.Printf("HTTP %d\n", status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverInfoCmd)
	serverCmd.AddCommand(serverPingCmd)

	output.AddFormatFlag(serverInfoCmd)
}
