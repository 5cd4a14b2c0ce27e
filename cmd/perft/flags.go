package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	depth      = flag.Int("depth", 3, "Number of plies to enumerate")
	workers    = flag.Int("workers", 1, "Goroutines dividing the root moves")
	promote    = flag.String("promote", "queen", "Promotion kind: queen, rook, bishop, knight (or Q, R, B, N)")
	blackFirst = flag.Bool("black", false, "Black moves first")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	showStats  = flag.Bool("stats", false, "Summarise subtree sizes per root move")
	hashSize   = flag.Int("hash", 0, "Transposition table entries (0 = off)")
	verbose    = flag.Bool("v", false, "Debug logging")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	kind, err := chess.ParseKind(*promote)
	if err != nil {
		return fmt.Errorf("-promote: %w", err)
	}

	cfg.Rules.PromoteTo = kind
	if *blackFirst {
		cfg.Rules.StartingPlayer = chess.Black
	}
	cfg.Perft.Depth = *depth
	cfg.Perft.Workers = *workers
	cfg.Perft.JSONFormat = *jsonOutput
	cfg.Perft.Stats = *showStats
	cfg.Perft.HashEntries = *hashSize

	cfg.LogLevel = *logLevel
	if *verbose {
		cfg.LogLevel = "debug"
	}
	return cfg.Validate()
}
