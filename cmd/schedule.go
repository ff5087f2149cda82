package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwks/cupi/pkg/output"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule management commands",
	Long:  "Commands for managing Unity Connection schedules and schedule sets",
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		refs, err := client.ListScheduleRefs(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list schedules: %w", err)
		}

		formatter := output.New(format)
		rows := make([][]string, 0, len(refs))
		for _, ref := range refs {
			rows = append(rows, []string{ref.Name, ref.ObjectID})
		}
		return formatter.Table([]string{"NAME", "OBJECT ID"}, rows)
	},
}

var scheduleSetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List schedule sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		refs, err := client.ListScheduleSetRefs(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list schedule sets: %w", err)
		}

		formatter := output.New(format)
		rows := make([][]string, 0, len(refs))
		for _, ref := range refs {
			rows = append(rows, []string{ref.Name, ref.ObjectID})
		}
		return formatter.Table([]string{"NAME", "OBJECT ID"}, rows)
	},
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show <object-id>",
	Short: "Show a schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		schedule, err := client.GetSchedule(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get schedule: %w", err)
		}

		formatter := output.New(format)
		if formatter.IsJSON() {
			return formatter.Output(schedule)
		}

		return formatter.Table(
			[]string{"FIELD", "VALUE"},
			[][]string{
				{"Name", schedule.DisplayName},
				{"Object ID", schedule.ObjectID},
				{"Owner Location", schedule.OwnerLocationObjectID},
				{"Holiday", fmt.Sprintf("%t", schedule.IsHoliday)},
			},
		)
	},
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <display-name>",
	Short: "Add a schedule",
	Long: `Create a schedule set with the given display name. The owner
location is discovered automatically unless --owner-location is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		displayName := args[0]
		ownerLocation, _ := cmd.Flags().GetString("owner-location")

		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := context.Background()

		if ownerLocation == "" {
			ownerLocation, err = client.GetOwnerLocationObjectID(ctx)
			if err != nil {
				return fmt.Errorf("failed to discover owner location: %w", err)
			}
		}

		oid, err := client.AddSchedule(ctx, displayName, ownerLocation)
		if err != nil {
			return fmt.Errorf("failed to add schedule: %w", err)
		}

		fmt.Printf("Schedule %q created with ObjectId %s\n", displayName, oid)
		return nil
	},
}

var scheduleRmCmd = &cobra.Command{
	Use:   "rm <object-id>",
	Short: "Remove a schedule set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteScheduleSet(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to remove schedule set: %w", err)
		}

		fmt.Printf("Schedule set %s removed\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleSetsCmd)
	scheduleCmd.AddCommand(scheduleShowCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleRmCmd)

	scheduleAddCmd.Flags().String("owner-location", "", "owner location ObjectId")

	output.AddFormatFlag(scheduleListCmd)
	output.AddFormatFlag(scheduleSetsCmd)
	output.AddFormatFlag(scheduleShowCmd)
}
