// Package cmd implements the emsctl command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/bitswalk/ems/src/common/cli"
	"github.com/bitswalk/ems/src/common/version"
	"github.com/bitswalk/ems/src/emsctl/internal/client"
	"github.com/bitswalk/ems/src/emsctl/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Configuration file path
	cfgFile string

	// Output format (json or table)
	outputFormat string

	// API client instance
	apiClient *client.Client
)

// Linker variables - set via ldflags at build time
var (
	Version        = "dev"
	ReleaseName    = "Ledger"
	ReleaseVersion = "0.0.0"
	BuildDate      = "unknown"
	GitCommit      = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "emsctl",
	Short: "EMS CLI Client",
	Long: `emsctl is the command-line client for the EMS platform.

It communicates with the emsd API server to manage user accounts
and employee records.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config init for version command without --server flag
		if cmd.Name() == "version" && !cmd.Flags().Changed("server") {
			return nil
		}
		return initConfig()
	},
}

// Execute runs the root command
func Execute() {
	VersionInfo.Version = Version
	VersionInfo.ReleaseName = ReleaseName
	VersionInfo.ReleaseVersion = ReleaseVersion
	VersionInfo.BuildDate = BuildDate
	VersionInfo.GitCommit = GitCommit

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "~/.emsctl/emsctl.yaml")

	rootCmd.PersistentFlags().StringP("server", "s", "", "EMS server URL (default: http://localhost:8000)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json")

	cli.RegisterLogFlags(rootCmd)

	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))

	viper.SetDefault("server.url", "http://localhost:8000")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(userCmd)
}

func initConfig() error {
	opts := cli.ConfigOptions{
		ConfigName: "emsctl",
		ConfigType: "yaml",
		EnvPrefix:  "EMSCTL",
		SearchPaths: []string{
			"/etc/emsctl",
			"~/.emsctl",
		},
	}
	opts.ConfigFile = cfgFile

	return cli.InitConfig(opts)
}

// getClient returns the API client, creating it if needed.
// It loads the stored session for authentication.
func getClient() *client.Client {
	if apiClient == nil {
		serverURL := viper.GetString("server.url")
		apiClient = client.New(serverURL)

		// Load stored session
		session, err := config.LoadSession()
		if err == nil && session.AccessToken != "" {
			apiClient.Token = session.AccessToken
		}
	}
	return apiClient
}

// getOutputFormat returns the current output format
func getOutputFormat() string {
	return outputFormat
}

// requireSession ensures a stored session exists before a protected
// command runs. The server still has the final say on token validity.
func requireSession() (*config.Session, error) {
	session, err := config.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("not logged in, run 'emsctl login' first")
	}
	return session, nil
}
