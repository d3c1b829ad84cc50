package cmd

import (
	"context"
	"fmt"

	"github.com/bitswalk/ems/src/emsctl/internal/client"
	"github.com/bitswalk/ems/src/emsctl/internal/output"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage user accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user account with an explicit role",
	RunE:  runAdminCreate,
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	RunE:  runAdminList,
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDelete,
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Look up user accounts",
}

var userGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a user account by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserGet,
}

func init() {
	adminCmd.AddCommand(adminCreateCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminDeleteCmd)

	userCmd.AddCommand(userGetCmd)

	adminCreateCmd.Flags().String("name", "", "Display name (required)")
	adminCreateCmd.Flags().String("email", "", "Email address (required)")
	adminCreateCmd.Flags().String("password", "", "Password")
	adminCreateCmd.Flags().String("role", "admin", "Account role")
	adminCreateCmd.MarkFlagRequired("name")
	adminCreateCmd.MarkFlagRequired("email")
}

func runAdminCreate(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	role, _ := cmd.Flags().GetString("role")

	if password == "" {
		var err error
		if password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	req := client.CreateAdminRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}

	user, err := c.CreateAdmin(ctx, req)
	if err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(user)
	}

	output.PrintMessage(fmt.Sprintf("Account %q created with role %s (ID: %s)", user.Name, user.Role, user.ID))
	return nil
}

func runAdminList(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	users, err := c.ListUsers(ctx)
	if err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(users)
	}

	if len(users) == 0 {
		output.PrintMessage("No user accounts found.")
		return nil
	}

	rows := make([][]string, len(users))
	for i, user := range users {
		rows[i] = []string{user.ID, user.Name, user.Email, user.Role}
	}
	output.PrintTable([]string{"ID", "NAME", "EMAIL", "ROLE"}, rows)
	return nil
}

func runAdminDelete(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	if err := c.DeleteAdmin(ctx, args[0]); err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(map[string]string{"message": "User deleted", "id": args[0]})
	}

	output.PrintMessage(fmt.Sprintf("User %s deleted.", args[0]))
	return nil
}

func runUserGet(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	summary, err := c.GetUser(ctx, args[0])
	if err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(summary)
	}

	output.PrintTable(
		[]string{"FIELD", "VALUE"},
		[][]string{
			{"ID", summary.ID},
			{"Name", summary.Name},
			{"Email", summary.Email},
			{"Role", summary.Role},
		},
	)
	return nil
}
