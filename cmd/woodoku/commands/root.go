package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/woodoku/internal/config"
	"svw.info/woodoku/internal/printer"
)

var (
	version string
	commit  string
	date    string

	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "woodoku",
	Short: "Woodoku - block placement puzzle on a 9x9 board",
	Long: `Woodoku places shapes on a 9x9 board. Completed rows, columns and
3x3 boxes are cleared and scored, with bonuses for clearing several groups
at once and for consecutive clearing placements.

Run the JSON game server with "woodoku serve", play unattended games with
"woodoku simulate", or list the shape catalog with "woodoku shapes".`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to woodoku.yml (defaults apply when omitted)")
}

// loadConfig returns the file configuration, or the defaults without --config.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, printer.Error(
			"failed to load configuration",
			err.Error(),
			[]string{fmt.Sprintf("Check the file:\n  %s", configPath)},
		)
	}
	return cfg, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)}))
}
