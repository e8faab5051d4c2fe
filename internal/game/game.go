// Package game holds the coordination core of the bar: the phase machine,
// the stats economy, the day cycle, milestones and the interaction loops.
//
// A Game is owned by one goroutine. Actions that need generated content
// return Tasks; a Task runs anywhere and yields an Effect, which the owner
// applies with Apply in whatever order the tasks complete.
package game

import (
	"context"
	mathrand "math/rand"
	"time"

	"github.com/tatianab/cyber-temple/internal/models"
)

// ContentProvider supplies generated content. Implementations never fail:
// they fall back to local tables instead.
type ContentProvider interface {
	GenerateCustomers(ctx context.Context, count, day int) []models.Customer
	CalculateMatch(ctx context.Context, a, b models.Customer) models.MatchResult
	EvaluateDrink(ctx context.Context, c models.Customer, ingredients []models.Ingredient) models.DrinkVerdict
	GenerateDialogue(ctx context.Context, p models.Persona, lastAction string) models.Dialogue
	GenerateEnemy(ctx context.Context, day int) models.EnemyProfile
	GenerateEvent(ctx context.Context, subject string) models.RandomEvent
	GenerateMail(ctx context.Context, coupleNames string, day int) *models.Mail
	GenerateConsultationMail(ctx context.Context, day int) models.Mail
}

// Observer is told about every log entry and phase change.
type Observer interface {
	Logged(day int, phase models.Phase, e models.LogEntry)
	PhaseChanged(day int, from, to models.Phase)
}

type Option func(*Game)

func WithRules(r models.Rules) Option {
	return func(g *Game) { g.rules = r }
}

// WithRand injects the random source; tests use a fixed seed.
func WithRand(r *mathrand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

func WithObserver(o Observer) Option {
	return func(g *Game) { g.observers = append(g.observers, o) }
}

// Game is the whole session state.
type Game struct {
	rules     models.Rules
	provider  ContentProvider
	rng       *mathrand.Rand
	observers []Observer

	phase         models.Phase
	stats         models.PlayerStats
	log           *models.LogBook
	upgrades      []models.BarUpgrade
	staff         []models.Staff
	loveInterests []models.LoveInterest
	milestones    []models.Milestone
	announced     map[string]bool
	mails         []models.Mail
	couples       []models.MatchResult
	attempts      []models.MatchResult

	bar     *Bar
	mixer   *Mixer
	combat  *Combat
	romance *Romance
	event   *models.RandomEvent
}

func New(provider ContentProvider, opts ...Option) *Game {
	g := &Game{
		rules:    models.DefaultRules(),
		provider: provider,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.phase = models.PhaseStartScreen
	g.stats = g.rules.InitialStats()
	g.log = models.NewLogBook(g.rules.LogCapacity)
	g.upgrades = models.BarUpgrades()
	g.staff = models.StaffRoster()
	g.loveInterests = models.LoveInterests()
	g.milestones = models.Milestones()
	g.announced = make(map[string]bool)
	g.mails = nil
	g.couples = nil
	g.attempts = nil
	g.bar = nil
	g.mixer = nil
	g.combat = nil
	g.romance = nil
	g.event = nil
}

// Apply runs an effect produced by a Task.
func (g *Game) Apply(e Effect) {
	if e != nil {
		e(g)
	}
}

// UpdateStats is the single entry point for stat mutation. Only the stats
// present in the patch change; nothing is clamped here.
func (g *Game) UpdateStats(patch models.StatsPatch) {
	g.stats.Apply(patch)
	g.checkMilestones()
}

func (g *Game) addLog(text string, typ models.LogType) {
	e := g.log.Add(text, typ)
	for _, o := range g.observers {
		o.Logged(g.stats.Day, g.phase, e)
	}
}

func (g *Game) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Game) Phase() models.Phase       { return g.phase }
func (g *Game) Stats() models.PlayerStats { return g.stats }
func (g *Game) Rules() models.Rules       { return g.rules }
func (g *Game) Log() []models.LogEntry    { return g.log.Entries() }

func (g *Game) Upgrades() []models.BarUpgrade {
	return append([]models.BarUpgrade(nil), g.upgrades...)
}

func (g *Game) Staff() []models.Staff {
	return append([]models.Staff(nil), g.staff...)
}

func (g *Game) LoveInterests() []models.LoveInterest {
	return append([]models.LoveInterest(nil), g.loveInterests...)
}

func (g *Game) Mails() []models.Mail {
	return append([]models.Mail(nil), g.mails...)
}

// Couples returns the successful matches of the session.
func (g *Game) Couples() []models.MatchResult {
	return append([]models.MatchResult(nil), g.couples...)
}

// MatchHistory returns every match attempt, failed ones included.
func (g *Game) MatchHistory() []models.MatchResult {
	return append([]models.MatchResult(nil), g.attempts...)
}

func (g *Game) UnreadMail() int {
	n := 0
	for _, m := range g.mails {
		if !m.IsRead {
			n++
		}
	}
	return n
}

// Bar returns the open bar session, or nil outside NIGHT_BAR.
func (g *Game) Bar() *Bar { return g.bar }

// Mixer returns the open bartending mini-game, or nil.
func (g *Game) Mixer() *Mixer { return g.mixer }

// Combat returns the current or most recent encounter, or nil.
func (g *Game) Combat() *Combat { return g.combat }

// Romance returns the open dialogue, or nil.
func (g *Game) Romance() *Romance { return g.romance }

// PendingEvent returns the unresolved university event, or nil.
func (g *Game) PendingEvent() *models.RandomEvent { return g.event }
