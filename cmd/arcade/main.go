// arcade plays sprite arcade games in the terminal, in a desktop window
// or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Log destination (default: ~/.arcade/arcade.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/sprite-arcade/internal/games/carshoot"
	_ "github.com/vovakirdan/sprite-arcade/internal/games/roadrace"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// envDefaults seeds flag defaults from ARCADE_* variables. A bad value is
// reported when the command runs.
var envDefaults, envErr = config.LoadEnv()

// logCloser closes the log file opened by setupLogging, if any.
var logCloser io.Closer

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Sprite Arcade - shoot cars and dodge traffic in your terminal",
	Long: `Sprite Arcade runs small sprite games in the terminal, in a desktop
window, or for remote players over SSH.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play carshoot
  arcade play roadrace --window
  arcade menu
  arcade serve --ssh :2222
  arcade scores roadrace`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second) [$ARCADE_FPS]")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envDefaults.DBPath, "Path to scores database [$ARCADE_DB]")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error [$ARCADE_LOG_LEVEL]")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envDefaults.LogFile, "Log file, \"-\" for stderr [$ARCADE_LOG_FILE]")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging installs the default logger. The terminal belongs to the
// game, so logs go to a file unless the server is running or "-" is given.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if envErr != nil {
		return envErr
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	toStderr := flagLogFile == "-" ||
		(cmd.Name() == "serve" && !cmd.Flags().Changed("log-file") && os.Getenv("ARCADE_LOG_FILE") == "")
	if !toStderr {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return err
		}
		logCloser = f
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	log.SetDefault(logger)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand log path: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
