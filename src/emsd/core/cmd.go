// Package core provides the core command and server functionality for emsd.
package core

import (
	"fmt"
	"os"

	"github.com/bitswalk/ems/src/common/cli"
	"github.com/bitswalk/ems/src/common/logs"
	"github.com/bitswalk/ems/src/common/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Global logger instance
	log *logs.Logger

	// Configuration file path
	cfgFile string
)

// Linker variables - these are set via ldflags at build time
// They must be initialized as empty strings or literals for ldflags to work
var (
	Version        = "dev"
	ReleaseName    = "Ledger"
	ReleaseVersion = "0.0.0"
	BuildDate      = "unknown"
	GitCommit      = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "emsd",
	Short: "EMS API Server",
	Long: `emsd is the employee management API server.

It exposes the REST API on port 8000 used by the emsctl client and the
web dashboard to manage user accounts and employee records.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command
func Execute() {
	// Populate VersionInfo from linker variables
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
	// Configuration file flag
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "/etc/emsd/emsd.yaml")

	// Server flags
	rootCmd.Flags().IntP("port", "p", 8000, "Port to listen on")
	rootCmd.Flags().StringP("bind", "b", "0.0.0.0", "Address to bind to")
	rootCmd.Flags().String("cors-origin", "http://localhost:3000", "Allowed CORS origin for the web dashboard")

	// Logging flags (using common helper)
	cli.RegisterLogFlags(rootCmd)

	// Database flags
	rootCmd.Flags().String("db-path", "~/.emsd/emsd.db", "Path to persist database on shutdown")

	// Auth flags
	rootCmd.Flags().Int("token-ttl", 60, "Access token lifetime in minutes")

	// Bind flags to viper
	_ = viper.BindPFlag("server.port", rootCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.bind", rootCmd.Flags().Lookup("bind"))
	_ = viper.BindPFlag("server.cors_origin", rootCmd.Flags().Lookup("cors-origin"))
	_ = viper.BindPFlag("database.path", rootCmd.Flags().Lookup("db-path"))
	_ = viper.BindPFlag("auth.token_ttl", rootCmd.Flags().Lookup("token-ttl"))

	// Set defaults
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.bind", "0.0.0.0")
	viper.SetDefault("server.cors_origin", "http://localhost:3000")
	viper.SetDefault("database.path", "~/.emsd/emsd.db")
	viper.SetDefault("auth.token_ttl", 60)

	// Security defaults
	viper.SetDefault("security.key_path", "~/.emsd/master.key")
	viper.SetDefault("security.rate_limit.enabled", true)
	viper.SetDefault("security.rate_limit.auth_per_min", 10)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	opts := cli.ConfigOptions{
		ConfigName: "emsd",
		ConfigType: "yaml",
		EnvPrefix:  "EMSD",
		SearchPaths: []string{
			"/etc/emsd",
			"~/.emsd",
		},
	}
	opts.ConfigFile = cfgFile

	if err := cli.InitConfig(opts); err != nil {
		return err
	}

	// Initialize logger using common helper
	log = cli.InitLogger("emsd")

	return nil
}
