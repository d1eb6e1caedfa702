// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/camt-report/internal/config"
	"fjacquet/camt-report/internal/container"
	"fjacquet/camt-report/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
	LogLevel string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the container's
	// logger once configuration has been loaded.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "camt-report",
		Short: "A CLI tool to decode and report on ISO 20022 CAMT.053 bank statements.",
		Long: `camt-report decodes camt.053.001.02 Bank-to-Customer Statement XML files into a
typed model and prints readable reports, validates files, and exports entries to CSV.

Logs are written to stderr; reports go to stdout unless --output is given.`,
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	if Cmd.PersistentFlags().Lookup("input") != nil {
		return
	}
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Override the configured log level")
}

func initialize(cmd *cobra.Command, args []string) error {
	envFile, envErr := config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	SetContainer(c)
	if a, ok := c.GetLogger().(*logging.LogrusAdapter); ok {
		a.SetOutput(cmd.ErrOrStderr())
	}

	if envErr != nil {
		Log.WithError(envErr).Warn("Error loading .env file", logging.Field{Key: logging.FieldFile, Value: envFile})
	} else if envFile != "" {
		Log.Debug("Loaded environment variables", logging.Field{Key: logging.FieldFile, Value: envFile})
	}
	return nil
}

// SetContainer installs the application container and its logger
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}

// GetContainer returns the container built from configuration, or nil before the root
// command has run.
func GetContainer() *container.Container {
	return appContainer
}

// RequireContainer returns the container or an error when it was not initialized
func RequireContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return appContainer, nil
}
