package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fspick/fspick/internal/config"
	"github.com/fspick/fspick/internal/dialog"
	"github.com/fspick/fspick/internal/tui"
)

var (
	cfgFile      string
	initialDir   string
	verbose      bool
	quiet        bool
	globalConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fspick",
	Short: "An interactive file picker for the terminal",
	Long: `fspick is an interactive terminal dialog for picking files and
directories. It browses the filesystem with browser-style back/forward
history, validates the selection for the requested operation, and can
create directories inline. The chosen path is printed to stdout, which
makes fspick usable from shell scripts:

  vim "$(fspick)"
  tar czf backup.tgz "$(fspick dir)"
  curl -o "$(fspick save)" https://example.com/file`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(dialog.SelectFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.fspick/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&initialDir, "initial", "i", "", "directory the dialog opens in (default is the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging()

	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Redirect all logs to file to prevent UI interference
	logDir := filepath.Join(os.TempDir(), "fspick")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.Warnf("Failed to create log directory %s: %v", logDir, err)
	} else {
		logFile := filepath.Join(logDir, "app.log")
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", logFile, err)
		} else {
			logrus.SetOutput(file)
		}
	}

	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// effectiveInitialDir resolves the starting directory from flag, config
// and working directory, in that order.
func effectiveInitialDir() string {
	if initialDir != "" {
		return initialDir
	}
	if globalConfig.General.InitialDirectory != "" {
		return globalConfig.General.InitialDirectory
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// runPicker runs one dialog session in the given mode and prints the
// selected path on confirm. Cancelling exits with status 1 so scripts
// can distinguish the two outcomes.
func runPicker(mode dialog.OperationMode) error {
	ctrl := dialog.NewController(effectiveInitialDir())
	ctrl.SetShowHidden(globalConfig.General.ShowHidden)
	ctrl.Open(mode)

	model := tui.NewPickerModel(ctrl)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	if _, err := program.Run(); err != nil {
		return err
	}

	if result, ok := ctrl.Result(); ok {
		fmt.Println(result)
		return nil
	}

	os.Exit(1)
	return nil
}
