package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/speechprint/pkg/cli"
)

var (
	// Global flags
	cfgFile      string
	profileName  string
	outputFile   string
	inputFile    string
	formatOutput string
	verbose      bool

	// Global configuration
	globalConfig *cli.Config

	// configLoadErr stores the error from loading the config for deferred
	// reporting, so commands that never touch profiles still run.
	configLoadErr error
)

var rootCmd = &cobra.Command{
	Use:   "speechprint",
	Short: "Binary audio fingerprints for speech",
	Long: `speechprint - compute binary fingerprints of WAV recordings.

Two algorithms are available:
  fbe       band energies over a Bark filterbank, one bit row per frame
  landmark  spectrogram tile maxima, one bit per tile

Parameters come from, in increasing precedence: built-in defaults, the
current (or -p) profile, a parameter file given with -f, and command flags.
Profiles are stored in ~/.speechprint/config.yaml.

Examples:
  # Fingerprint a file with the default parameters
  speechprint fbe speech.wav

  # Override parameters from a file and one flag, show the bits
  speechprint fbe -f params.yaml --bands 21 --display speech.wav

  # Save a profile and make it the default
  speechprint profile add narrow -f narrow.yaml --rate 8000
  speechprint profile use narrow

  # Landmarks for a directory of files, four at a time, as JSON
  speechprint landmark --jobs 4 --format json -o out.json data/*.wav`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.speechprint/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "profile name to use")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "parameter file (YAML or JSON, - for stdin)")
	rootCmd.PersistentFlags().StringVar(&formatOutput, "format", "yaml", "output format: yaml, json, msgpack, raw")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	globalConfig, configLoadErr = cli.LoadConfigWithPath(cfgFile)
}

// getConfig returns the profile store.
func getConfig() (*cli.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := cli.LoadConfigWithPath(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// resolveProfile returns the -p profile or the current one. Without an
// explicit -p, an unreadable config only logs a warning and defaults apply.
func resolveProfile() (*cli.Profile, error) {
	cfg, err := getConfig()
	if err != nil {
		if profileName != "" {
			return nil, err
		}
		slog.Warn("using built-in defaults", "error", err)
		return nil, nil
	}
	p, err := cfg.ResolveProfile(profileName)
	if err != nil {
		return nil, err
	}
	if p != nil {
		slog.Debug("using profile", "name", p.Name)
	}
	return p, nil
}

// outputResult writes result in the --format format to -o or stdout.
func outputResult(result any) error {
	format, err := cli.ParseOutputFormat(formatOutput)
	if err != nil {
		return err
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		File:   outputFile,
	})
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
