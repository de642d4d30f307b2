// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

// Environment variables used when the credential flags are not given.
const (
	EnvUser     = "FINTRACK_USER"
	EnvPassword = "FINTRACK_PASSWORD"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	DataFile  string
	User      string
	Password  string
	LogLevel  string
	LogFormat string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// container's logger once configuration is loaded.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the dependencies of the running command.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A personal finance tracker for income, expenses and budgets.",
		Long: `fintrack records income and expense transactions per user, tracks monthly
budgets by category and prints summary, budget, time series and category reports.
Data is kept in a single pipe-delimited text file.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			Log.Info("Welcome to fintrack!")
			Log.Info("Use --help to see available commands, or 'fintrack shell' for the interactive menu")
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			c, err := container.NewContainer(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			AppContainer = c
			Log = c.GetLogger()
			return nil
		},
	}

	// SharedFlags holds the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataFile, "data-file", "f", "", "Data file (default users.txt)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.User, "user", "u", "", "Username (or "+EnvUser+")")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Password, "password", "p", "", "Password (or "+EnvPassword+")")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
}

// LoadConfig loads the configuration and applies the persistent flag overrides.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	ApplyFlags(cfg, SharedFlags)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyFlags overrides configuration values with the flags that were set.
func ApplyFlags(cfg *config.Config, flags CommonFlags) {
	if flags.DataFile != "" {
		cfg.Data.File = flags.DataFile
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
}

// Credentials returns the username and password from the flags, falling back to the
// environment.
func Credentials() (string, string) {
	user := SharedFlags.User
	if user == "" {
		user = config.GetEnv(EnvUser, "")
	}
	password := SharedFlags.Password
	if password == "" {
		password = config.GetEnv(EnvPassword, "")
	}
	return user, password
}

// Container returns the application container or an error when the root
// pre-run has not initialized it.
func Container() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return AppContainer, nil
}
