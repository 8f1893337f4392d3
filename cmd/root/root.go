// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/ccstmt-csv/internal/config"
	"fjacquet/ccstmt-csv/internal/container"
	"fjacquet/ccstmt-csv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	ConfigFile string
	Validate   bool
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ccstmt-csv",
		Short: "Extract cardholder details from credit-card statement PDFs to CSV.",
		Long: `ccstmt-csv extracts cardholder name, last 4 card digits, statement period,
payment due date and total amount due from credit-card statement PDFs.

Each "Cardholder Name:" header in the statement starts a new record; the
records are written to CSV (or XLSX) and printed as a table.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ccstmt-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: initContainer,
	}

	// SharedFlags holds the persistent flags of every command
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (directory for batch)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.ccstmt-csv, .ccstmt-csv and .)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate the PDF opens before extraction")
}

// initContainer loads configuration and wires the dependencies once per
// process. A container installed with SetContainer is kept.
func initContainer(cmd *cobra.Command, args []string) error {
	if appContainer != nil {
		return nil
	}

	config.LoadEnv(Log)

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	SetContainer(c)
	return nil
}

// SetContainer installs c as the application container and adopts its
// logger.
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}

// GetContainer returns the application container, or nil before the root
// command ran.
func GetContainer() *container.Container {
	return appContainer
}

// GetConfig returns the loaded configuration, or nil before the root command
// ran.
func GetConfig() *config.Config {
	if appContainer == nil {
		return nil
	}
	return appContainer.GetConfig()
}
