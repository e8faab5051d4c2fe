package game

import (
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

// transitions lists every legal move of the phase machine. GAME_OVER has
// none; Restart is the only way out.
var transitions = map[models.Phase][]models.Phase{
	models.PhaseStartScreen:   {models.PhaseStoryIntro},
	models.PhaseStoryIntro:    {models.PhaseDayMap},
	models.PhaseDayMap:        {models.PhaseDayUniversity, models.PhaseDayShop, models.PhaseDayHome, models.PhaseNightBar},
	models.PhaseDayUniversity: {models.PhaseDayMap},
	models.PhaseDayShop:       {models.PhaseDayMap},
	models.PhaseDayHome:       {models.PhaseDayMap},
	models.PhaseNightBar:      {models.PhaseCombat, models.PhaseDayMap},
	models.PhaseCombat:        {models.PhaseDayMap, models.PhaseGameOver},
}

// CanTransition reports whether the machine allows from -> to.
func CanTransition(from, to models.Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

func (g *Game) transition(to models.Phase) error {
	if !CanTransition(g.phase, to) {
		return fmt.Errorf("%s -> %s: %w", g.phase, to, ErrIllegalTransition)
	}
	from := g.phase
	g.phase = to
	for _, o := range g.observers {
		o.PhaseChanged(g.stats.Day, from, to)
	}
	return nil
}

func (g *Game) require(p models.Phase) error {
	if g.phase != p {
		return fmt.Errorf("in %s, need %s: %w", g.phase, p, ErrIllegalTransition)
	}
	return nil
}

// Destination is a place on the day map.
type Destination int

const (
	DestUniversity Destination = iota
	DestShop
	DestHome
	DestBar
)

var destPhases = map[Destination]models.Phase{
	DestUniversity: models.PhaseDayUniversity,
	DestShop:       models.PhaseDayShop,
	DestHome:       models.PhaseDayHome,
	DestBar:        models.PhaseNightBar,
}

// Start leaves the title screen.
func (g *Game) Start() error {
	return g.transition(models.PhaseStoryIntro)
}

// BeginDay acknowledges the story intro and starts day one.
func (g *Game) BeginDay() ([]Task, error) {
	if err := g.transition(models.PhaseDayMap); err != nil {
		return nil, err
	}
	return g.startOfDay(), nil
}

// Travel moves from the day map to a destination. Going to the bar opens
// it for the night.
func (g *Game) Travel(d Destination) ([]Task, error) {
	to, ok := destPhases[d]
	if !ok {
		return nil, fmt.Errorf("destination %d: %w", d, ErrNotFound)
	}
	if g.phase != models.PhaseDayMap {
		return nil, fmt.Errorf("%s -> %s: %w", g.phase, to, ErrIllegalTransition)
	}
	if err := g.transition(to); err != nil {
		return nil, err
	}
	if to == models.PhaseNightBar {
		return g.openBar(), nil
	}
	return nil, nil
}

// Back returns from a day sub-screen to the map.
func (g *Game) Back() error {
	switch g.phase {
	case models.PhaseDayUniversity, models.PhaseDayShop, models.PhaseDayHome:
	default:
		return fmt.Errorf("back from %s: %w", g.phase, ErrIllegalTransition)
	}
	if g.event != nil {
		return ErrBusy
	}
	return g.transition(models.PhaseDayMap)
}

// CloseBar ends the night. An encounter roll decides between a fight and
// the end of the day.
func (g *Game) CloseBar() ([]Task, error) {
	if err := g.require(models.PhaseNightBar); err != nil {
		return nil, err
	}
	if g.mixer != nil || g.romance != nil {
		return nil, ErrBusy
	}
	g.bar = nil
	if g.rollCombat() {
		if err := g.transition(models.PhaseCombat); err != nil {
			return nil, err
		}
		g.addLog("Alert: someone is attacking the tree of fate!", models.LogCombat)
		return g.startCombat(), nil
	}
	return g.endOfDay()
}

// Restart wipes the session after a defeat.
func (g *Game) Restart() error {
	if g.phase != models.PhaseGameOver {
		return fmt.Errorf("restart from %s: %w", g.phase, ErrIllegalTransition)
	}
	from := g.phase
	g.reset()
	for _, o := range g.observers {
		o.PhaseChanged(g.stats.Day, from, g.phase)
	}
	return nil
}
