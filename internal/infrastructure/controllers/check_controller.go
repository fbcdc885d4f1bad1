package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depcheck/internal/domain/commands"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// CheckController handles the "check" subcommand and the root invocation with
// a requirements file argument.
type CheckController struct {
	command commands.Compare
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Compare) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check <requirements_file>",
		Short: "Compare pinned requirements against the package index",
		Long: `Compare every pinned package in a requirements file against the
latest version published on the package index.

Each package becomes one report row classifying the distance between
the pinned and the latest version: match, major, minor, patch or n/a.
Without --output the report is printed as an aligned table; with
--output it is written as a CSV file.`,
	}
}

// Execute runs the comparison and renders the report.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return errors.New("missing required argument: path to the requirements file")
	}

	settings, settingsErr := it.loadSettings(cmd)
	if settingsErr != nil {
		return settingsErr
	}

	report, execErr := it.command.Execute(ctx, settings, commands.CompareOptions{
		ManifestPath: args[0],
	})
	if execErr != nil {
		return execErr
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Println(report.Table())
		return nil
	}

	path := entities.ResolveOutputPath(output)
	if saveErr := report.SaveCSV(path); saveErr != nil {
		logger.Errorf("Failed to write report to %q, printing it instead", path)
		fmt.Println(report.Table())
		return saveErr
	}

	logger.Infof("Report written to %s", path)
	return nil
}

// loadSettings resolves the settings file, then layers CLI overrides on top.
func (it *CheckController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if configPath == "" {
		if found, findErr := entities.FindSettingsFile(); findErr == nil {
			configPath = found
		}
	}

	var settings *entities.Settings
	if configPath == "" {
		logger.Debug("No settings file found, using defaults")
		settings = entities.DefaultSettings()
	} else {
		logger.Infof("Using settings file: %s", configPath)
		loaded, loadErr := entities.NewSettings(configPath)
		if loadErr != nil {
			return nil, loadErr
		}
		settings = loaded
	}

	if resolver, _ := cmd.Flags().GetString("resolver"); resolver != "" {
		settings.Resolver = resolver
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		settings.Workers = workers
	}
	if timeout, _ := cmd.Flags().GetInt("timeout"); timeout > 0 {
		settings.QueryTimeoutSeconds = timeout
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "",
		"Write the report as CSV to this file or directory instead of stdout")
	cmd.Flags().String("resolver", "",
		"Index resolver to query (pypi, pip)")
	cmd.Flags().Int("workers", 0,
		"Number of concurrent index queries (default from settings)")
	cmd.Flags().Int("timeout", 0,
		"Per-query timeout in seconds (default from settings)")
}
