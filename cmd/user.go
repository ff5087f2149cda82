package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwks/cupi/pkg/cupi"
	"github.com/bwks/cupi/pkg/output"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
	Long:  "Commands for managing Unity Connection users (subscribers)",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}
		query, _ := cmd.Flags().GetString("query")

		client, err := newClient()
		if err != nil {
			return err
		}

		var opts *cupi.ListOptions
		if query != "" {
			opts = &cupi.ListOptions{Query: query}
		}

		users, err := client.ListUsers(context.Background(), opts)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		formatter := output.New(format)
		rows := make([][]string, 0, len(users))
		for _, user := range users {
			rows = append(rows, []string{user.Alias, user.DisplayName, user.DtmfAccessID, user.ObjectID})
		}
		return formatter.Table([]string{"ALIAS", "NAME", "EXTENSION", "OBJECT ID"}, rows)
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <object-id>",
	Short: "Show a user",
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

		user, err := client.GetUser(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		formatter := output.New(format)
		if formatter.IsJSON() {
			return formatter.Output(user)
		}

		return formatter.Table(
			[]string{"FIELD", "VALUE"},
			[][]string{
				{"Alias", user.Alias},
				{"Name", user.DisplayName},
				{"Extension", user.DtmfAccessID},
				{"Object ID", user.ObjectID},
				{"Call Handler", user.CallHandlerObjectID},
			},
		)
	},
}

var userTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List user templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		refs, err := client.ListUserTemplates(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list user templates: %w", err)
		}

		formatter := output.New(format)
		rows := make([][]string, 0, len(refs))
		for _, ref := range refs {
			rows = append(rows, []string{ref.Name, ref.ObjectID})
		}
		return formatter.Table([]string{"ALIAS", "OBJECT ID"}, rows)
	},
}

var userAddCmd = &cobra.Command{
	Use:   "add <alias> <extension>",
	Short: "Add a user from a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias, extension := args[0], args[1]
		template, _ := cmd.Flags().GetString("template")

		client, err := newClient()
		if err != nil {
			return err
		}

		oid, err := client.AddUser(context.Background(), alias, extension, template)
		if err != nil {
			return fmt.Errorf("failed to add user: %w", err)
		}

		fmt.Printf("User %q created with ObjectId %s\n", alias, oid)
		return nil
	},
}

var userRmCmd = &cobra.Command{
	Use:   "rm <object-id>",
	Short: "Remove a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteUser(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to remove user: %w", err)
		}

		fmt.Printf("User %s removed\n", args[0])
		return nil
	},
}

var userHandlerCmd = &cobra.Command{
	Use:   "handler <object-id>",
	Short: "Show the ObjectId of a user's call handler",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		oid, err := client.GetUserCallHandlerObjectID(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get call handler: %w", err)
		}

		fmt.Println(oid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userTemplatesCmd)
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userRmCmd)
	userCmd.AddCommand(userHandlerCmd)

	userListCmd.Flags().String("query", "", "CUPI filter expression, e.g. '(Alias is operator)'")
	userAddCmd.Flags().String("template", "voicemailusertemplate", "user template alias")

	output.AddFormatFlag(userListCmd)
	output.AddFormatFlag(userShowCmd)
	output.AddFormatFlag(userTemplatesCmd)
}
