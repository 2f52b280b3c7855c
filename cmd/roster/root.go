// Root command for the roster CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/pkg/roster"
)

// Global flag values.
var (
	flagConfigDir string
	flagInput     string
	flagJSON      bool
	flagVerbose   bool
)

// configInput and configLogLevel hold values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var (
	configInput    string
	configLogLevel string
)

// logger is the CLI-wide structured logger, also handed to the registry
// as its event sink.
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Roster inspects multi-key-indexed record sets",
	Long: `Roster loads a YAML record set into an in-memory registry indexed by
name and UUID, and runs lookups, projections, and deletions against it.

The registry lives only for the duration of one invocation; roster never
writes anything back to the input file.`,
	Version:       roster.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configInput = cfg.GetString(cfgKeyInput)
		configLogLevel = cfg.GetString(cfgKeyLogLevel)
		initLogger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "input YAML file (default: $(CWD)/roster.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(checkCmd)
}

// initLogger builds the stderr logger. --verbose forces debug;
// otherwise the config.yaml log_level applies.
func initLogger() {
	level := parseLevel(configLogLevel)
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}

// parseLevel maps a config.yaml log_level string to a slog level,
// defaulting to warn.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > ROSTER_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveInput returns the input file following the precedence
// flag > config.yaml input > ROSTER_INPUT env > $(CWD)/roster.yaml.
func resolveInput() (string, error) {
	return paths.ResolveInputFile(flagInput, configInput)
}
