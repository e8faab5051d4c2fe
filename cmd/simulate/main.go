// Command simulate plays the game with a fixed policy and prints the log.
// It uses the same engine as the terminal game, so with GEMINI_API_KEY set
// every night is generated live.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	mathrand "math/rand"
	"time"

	"github.com/tatianab/cyber-temple/internal/config"
	"github.com/tatianab/cyber-temple/internal/engine"
	"github.com/tatianab/cyber-temple/internal/game"
	"github.com/tatianab/cyber-temple/internal/journal"
	"github.com/tatianab/cyber-temple/internal/models"
)

const maxDays = 10

type printer struct{}

func (printer) Logged(day int, phase models.Phase, e models.LogEntry) {
	fmt.Printf("[day %d %s] %s\n", day, phase, e.Text)
}

func (printer) PhaseChanged(day int, from, to models.Phase) {
	fmt.Printf("--- %s -> %s ---\n", from, to)
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	rules, err := cfg.Rules()
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}

	eng, err := engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.Model, mathrand.New(mathrand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer eng.Close()

	jr := journal.New(cfg.JournalDir)
	defer jr.Close()

	g := game.New(eng,
		game.WithRules(rules),
		game.WithRand(mathrand.New(mathrand.NewSource(seed+1))),
		game.WithObserver(printer{}),
		game.WithObserver(jr),
	)

	s := &sim{ctx: ctx, g: g}
	s.must(g.Start())
	s.do(g.BeginDay())

	for g.Stats().Day <= maxDays && g.Phase() != models.PhaseGameOver {
		s.day()
		s.night()
		if g.Phase() == models.PhaseCombat {
			s.fight()
		}
	}

	st := g.Stats()
	fmt.Printf("\nFinished on day %d (%s): %d couples, %d incense, reputation %d, cultivation %d\n",
		st.Day, g.Phase(), len(g.Couples()), st.Money, st.Reputation, st.Cultivation)
}

type sim struct {
	ctx context.Context
	g   *game.Game
}

// do awaits the tasks of an action. Rejections are expected from a naive
// policy and only logged.
func (s *sim) do(tasks []game.Task, err error) bool {
	if err != nil {
		log.Printf("rejected: %v", err)
		return false
	}
	if err := game.Await(s.ctx, s.g, tasks...); err != nil {
		log.Fatalf("Await: %v", err)
	}
	return true
}

func (s *sim) must(err error) {
	if err != nil {
		log.Fatalf("unexpected: %v", err)
	}
}

func (s *sim) chores() {
	g := s.g
	if g.MilestoneSatisfied() {
		s.must(g.ClaimMilestone())
	}
	for _, m := range g.Mails() {
		if !m.Resolved && len(m.Options) > 0 {
			s.must(g.ReplyMail(m.ID, 0))
		}
	}
}

func (s *sim) day() {
	g := s.g
	s.chores()
	st := g.Stats()
	if st.Energy >= 2*g.Rules().EnergyCostClass {
		s.do(g.Travel(game.DestUniversity))
		s.do(g.AttendClass(st.Day % len(models.Classes())))
		if g.PendingEvent() != nil {
			s.must(g.ResolveEvent())
		}
		s.must(g.Back())
	}
	if g.Stats().Money > 600 {
		s.do(g.Travel(game.DestShop))
		if err := g.Buy(models.ShopItems()[0].ID); err != nil {
			log.Printf("rejected: %v", err)
		}
		s.must(g.Back())
	}
}

func (s *sim) night() {
	g := s.g
	if !s.do(g.Travel(game.DestBar)) {
		return
	}
	if g.Romance() != nil {
		s.romance()
	}
	if g.Bar().Visitor() != nil {
		s.must(g.ReceiveVisitor())
	}
	for _, st := range g.Staff() {
		if !st.IsHired && st.Cost < g.Stats().Money-300 {
			s.must(g.HireStaff(st.ID))
			break
		}
	}

	for _, c := range g.Bar().Customers() {
		if !c.Served {
			s.serve(c)
		}
	}

	for g.Stats().Energy >= g.Rules().EnergyCostMatch {
		customers := g.Bar().Customers()
		if len(customers) < 2 {
			break
		}
		s.must(g.ToggleSelect(customers[0].ID))
		s.must(g.ToggleSelect(customers[1].ID))
		s.do(g.AttemptMatch())
		if last := g.Bar().LastMatch(); last != nil && !last.Success {
			// A failed pair stays seated; retrying it would loop.
			break
		}
	}
	s.chores()
	if !s.do(g.CloseBar()) {
		log.Fatalf("the bar would not close")
	}
}

// serve pours one layer of the customer's favorite flavor.
func (s *sim) serve(c models.Customer) {
	g := s.g
	s.must(g.Serve(c.ID))
	ing := models.Ingredients()[0]
	for _, in := range models.Ingredients() {
		if in.Flavor == c.DrinkPreference {
			ing = in
			break
		}
	}
	s.must(g.Pour(ing.ID))
	s.do(g.MakeDrink())
	s.must(g.CloseMixer())
}

func (s *sim) romance() {
	g := s.g
	for range 2 {
		r := g.Romance()
		if len(r.Options()) == 0 {
			break
		}
		best := 0
		for i, o := range r.Options() {
			if o.Impact == models.ImpactPositive {
				best = i
			}
		}
		s.do(g.Reply(best))
	}
	s.must(g.LeaveRomance())
}

func (s *sim) fight() {
	g := s.g
	for g.Phase() == models.PhaseCombat {
		c := g.Combat()
		var (
			tasks []game.Task
			err   error
		)
		if c.PlayerHP() < c.Enemy().Attack*2 {
			tasks, err = g.Heal()
		} else {
			tasks, err = g.Attack()
		}
		if errors.Is(err, game.ErrCombatOver) {
			return
		}
		s.do(tasks, err)
	}
}
