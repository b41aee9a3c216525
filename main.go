package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tris/internal"
	"github.com/rocketscienceinc/tris/internal/config"
)

var configPath string

var (
	rootCmd = &cobra.Command{
		Use:          "tris",
		Short:        "Play tic-tac-toe against a minimax bot",
		SilenceUsage: true,
		RunE:         runPlay,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game on the terminal",
		RunE:  runPlay,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Compare plain minimax and alpha-beta on the empty board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := initLogger(initConfig())
			return app.RunBench(logger, cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "path to the YAML config file")
	rootCmd.AddCommand(playCmd, benchCmd)
}

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config.
func initConfig() *config.Config {
	return config.MustLoad(configPath)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
