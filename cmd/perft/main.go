// perft counts the positions reachable from the standard array, split by
// root move. It exercises the rules engine end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/setup"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	log.SetHandler(cli.New(os.Stderr))

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		log.WithError(err).Error("invalid options")
		os.Exit(2)
	}
	log.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.WithError(err).Error("perft failed")
		os.Exit(1)
	}
}

// run enumerates the standard array to the configured depth and writes the
// result to cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config) error {
	b := cfg.NewBoard()
	setup.Standard(b)

	log.WithField("config", cfg.String()).Debug("starting")
	start := time.Now()

	r := &output.Report{
		Depth:     cfg.Perft.Depth,
		ToMove:    b.ToMove.String(),
		Promotion: b.Promotion().String(),
	}
	if cfg.Perft.Depth == 0 {
		r.Nodes = 1
	} else {
		var opts []perft.DivideOption
		var table *hashing.SyncTable
		if cfg.Perft.HashEntries > 0 {
			table = hashing.NewSyncTable(cfg.Perft.HashEntries)
			opts = append(opts, perft.WithCache(table))
		}

		entries, err := perft.Divide(ctx, b, cfg.Perft.Depth, cfg.Perft.Workers, opts...)
		if err != nil {
			return err
		}
		r.Divide = entries
		r.Nodes = perft.Total(entries)
		if cfg.Perft.Stats && len(entries) > 0 {
			summary, err := perft.Summarize(entries)
			if err != nil {
				return err
			}
			r.Stats = &summary
		}
		if table != nil {
			log.WithFields(log.Fields{
				"entries": table.Len(),
				"hits":    table.Hits(),
			}).Debug("transposition table")
		}
	}

	log.WithFields(log.Fields{
		"depth":   r.Depth,
		"nodes":   r.Nodes,
		"elapsed": time.Since(start).String(),
	}).Info("done")

	w := output.NewWriter(cfg)
	if err := w.WriteReport(r); err != nil {
		return err
	}
	return w.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts positions reachable from the standard starting array.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
