package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bitswalk/ems/src/emsctl/internal/config"
	"github.com/bitswalk/ems/src/emsctl/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  `Creates a new user account on the EMS server.`,
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the EMS server",
	Long:  `Authenticates with the EMS server and stores the session locally.`,
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from the EMS server",
	Long:  `Removes the locally stored session.`,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current session information",
	Long:  `Displays the locally stored session details.`,
	RunE:  runWhoami,
}

func init() {
	registerCmd.Flags().StringP("name", "n", "", "Display name")
	registerCmd.Flags().StringP("email", "e", "", "Email address")
	registerCmd.Flags().StringP("password", "p", "", "Password")

	loginCmd.Flags().StringP("email", "e", "", "Email address")
	loginCmd.Flags().StringP("password", "p", "", "Password")
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()
	return string(bytePassword), nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	var err error
	if name == "" {
		if name, err = promptLine("Name: "); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = promptLine("Email: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	c := getClient()
	ctx := context.Background()

	user, err := c.Register(ctx, name, email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(user)
	}

	output.PrintMessage(fmt.Sprintf("Account created for %s (%s). Run 'emsctl login' to sign in.", user.Name, user.Email))
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	var err error
	if email == "" {
		if email, err = promptLine("Email: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	c := getClient()
	ctx := context.Background()

	resp, err := c.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	serverURL := viper.GetString("server.url")
	session := &config.Session{
		AccessToken: resp.AccessToken,
		UserID:      resp.ID,
		Role:        resp.Role,
		Email:       resp.Email,
		ServerURL:   serverURL,
	}

	if err := config.SaveSession(session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	// Pick up the fresh token for any follow-up calls in this process
	c.Token = resp.AccessToken

	if getOutputFormat() == "json" {
		return output.PrintJSON(map[string]interface{}{
			"message": "Login successful",
			"name":    resp.Name,
			"email":   resp.Email,
			"role":    resp.Role,
			"server":  serverURL,
		})
	}

	output.PrintMessage(fmt.Sprintf("Logged in as %s (%s) on %s", resp.Name, resp.Role, serverURL))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := config.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(map[string]string{"message": "Logged out"})
	}

	output.PrintMessage("Logged out successfully.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(session)
	}

	output.PrintTable(
		[]string{"FIELD", "VALUE"},
		[][]string{
			{"Email", session.Email},
			{"Role", session.Role},
			{"User ID", session.UserID},
			{"Server", session.ServerURL},
		},
	)
	return nil
}
