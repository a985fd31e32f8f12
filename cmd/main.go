package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/JJ-Intelligence/N-In-A-Row/pkg/comms"
	"github.com/JJ-Intelligence/N-In-A-Row/pkg/config"
	"github.com/JJ-Intelligence/N-In-A-Row/pkg/console"
	"github.com/JJ-Intelligence/N-In-A-Row/pkg/game"
	"github.com/JJ-Intelligence/N-In-A-Row/pkg/session"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", getEnvOrDefault("GAME_CONFIG", "config.yaml"), "Path to the YAML config file")
	boardSize  = flag.Int("boardSize", 0, "Board size, overrides the config when set")
	connect    = flag.Int("connect", 0, "Marks in a row needed to win, overrides the config when set")
	logLevel   = flag.String("logLevel", "", "Log level (debug, info, warn, error)")
	output     = flag.String("output", "", "Output format: text or json")
	sessionID  = flag.String("session", "", "Session ID (uuid) to tag logs with, generated when empty")
)

// getEnvOrDefault tries to get an Environment variable or returns a default
// if it doesn't exist
func getEnvOrDefault(key, def string) string {
	env, ok := os.LookupEnv(key)
	if ok {
		return env
	}
	return def
}

// loadConfig reads the config file and environment, then applies any flags
// that were set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.ParseConfig(*configPath)
	if err != nil {
		return nil, err
	}
	if *boardSize > 0 {
		cfg.BoardSize = *boardSize
	}
	if *connect > 0 {
		cfg.Connect = *connect
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *output != "" {
		cfg.Output = *output
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	return zapConfig.Build()
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log, _ := zap.NewProduction()
		log.Fatal("Invalid configuration", zap.Error(err))
	}
	log, err := newLogger(cfg)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	rules, _ := cfg.Rules()

	var (
		input    *console.Input
		observer game.Observer
	)
	if cfg.Output == config.OutputJSON {
		input = console.NewInput(os.Stdin, io.Discard)
		observer = comms.NewWriter(os.Stdout, log)
	} else {
		input = console.NewInput(os.Stdin, os.Stdout)
		observer = console.NewDisplay(os.Stdout)
	}

	s, err := session.New(*sessionID, rules, input, input, observer, log)
	if err != nil {
		log.Fatal("Unable to start session", zap.Error(err))
	}

	log.Info("Starting session",
		zap.Int("boardSize", rules.Size),
		zap.Int("connect", rules.Connect),
		zap.String("output", cfg.Output),
	)
	if _, err := s.Run(); err != nil {
		observer.Notify(comms.ErrorResponse{Reason: err.Error()})
		if errors.Is(err, io.EOF) {
			log.Info("Input closed, ending session")
			return
		}
		log.Error("Session failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
