package main

import (
	"context"
	"fmt"
	"io"
	"log"
	mathrand "math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/cyber-temple/internal/config"
	"github.com/tatianab/cyber-temple/internal/engine"
	"github.com/tatianab/cyber-temple/internal/game"
	"github.com/tatianab/cyber-temple/internal/journal"
	"github.com/tatianab/cyber-temple/internal/observer"
	"github.com/tatianab/cyber-temple/internal/records"
	"github.com/tatianab/cyber-temple/internal/tui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI; log lines go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "cyber-temple")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	rules, err := cfg.Rules()
	if err != nil {
		fmt.Printf("Error loading tuning: %v\n", err)
		os.Exit(1)
	}
	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}

	eng, err := engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.Model, mathrand.New(mathrand.NewSource(seed)))
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}
	defer eng.Close()
	if !eng.Online() {
		log.Printf("no GEMINI_API_KEY, playing offline")
	}

	var pubs []journal.Publisher
	if cfg.ObserveAddr != "" {
		hub := observer.NewHub()
		go hub.Run(ctx)
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.ObserveAddr); err != nil {
				log.Printf("observer: %v", err)
			}
		}()
		pubs = append(pubs, hub)
	}
	jr := journal.New(cfg.JournalDir, pubs...)
	defer jr.Close()

	var store *records.Store
	if cfg.RecordsDSN != "" {
		store, err = records.Open(ctx, cfg.RecordsDSN)
		if err != nil {
			fmt.Printf("Error opening records: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	g := game.New(eng,
		game.WithRules(rules),
		game.WithRand(mathrand.New(mathrand.NewSource(seed+1))),
		game.WithObserver(jr),
	)

	onFinish := func(defeated bool, g *game.Game) {
		if store == nil {
			return
		}
		outcome := records.OutcomeQuit
		if defeated {
			outcome = records.OutcomeDefeat
		}
		s := g.Stats()
		_, err := store.Record(ctx, records.Run{
			Outcome:     outcome,
			Day:         s.Day,
			Couples:     len(g.Couples()),
			Money:       s.Money,
			Reputation:  s.Reputation,
			Cultivation: s.Cultivation,
		})
		if err != nil {
			log.Printf("records: %v", err)
		}
	}

	if err := tui.Run(g, onFinish); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if store != nil {
		printBest(ctx, store)
	}
}

func printBest(ctx context.Context, store *records.Store) {
	best, err := store.Best(ctx, 5)
	if err != nil || len(best) == 0 {
		return
	}
	fmt.Println("Best runs:")
	for i, r := range best {
		fmt.Printf("%d. %d couples by day %d (%s, %s)\n", i+1, r.Couples, r.Day, r.Outcome, r.FinishedAt.Format(time.DateOnly))
	}
}
