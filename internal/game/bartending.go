package game

import (
	"context"
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

// MixerState is where the bartending mini-game stands.
type MixerState int

const (
	MixerMixing MixerState = iota
	MixerTasting
	MixerDone
)

// Mixer is the bartending mini-game for one customer.
type Mixer struct {
	customer models.Customer
	layers   []models.Ingredient
	state    MixerState
	verdict  models.DrinkVerdict
	earnings int
}

func (m *Mixer) Customer() models.Customer { return m.customer }
func (m *Mixer) State() MixerState         { return m.state }

func (m *Mixer) Layers() []models.Ingredient {
	return append([]models.Ingredient(nil), m.layers...)
}

// Verdict and Earnings are meaningful once the state is MixerDone.
func (m *Mixer) Verdict() models.DrinkVerdict { return m.verdict }
func (m *Mixer) Earnings() int                { return m.earnings }

// LayerCost sums the cost of the poured ingredients.
func (m *Mixer) LayerCost() int {
	total := 0
	for _, in := range m.layers {
		total += in.Cost
	}
	return total
}

// Serve opens the mini-game for a customer. It does not touch the match
// selection.
func (g *Game) Serve(customerID string) error {
	if err := g.require(models.PhaseNightBar); err != nil {
		return err
	}
	if g.mixer != nil || g.romance != nil {
		return ErrBusy
	}
	i, ok := g.bar.find(customerID)
	if !ok {
		return ErrNotFound
	}
	if g.bar.customers[i].Served {
		return ErrAlreadyServed
	}
	g.mixer = &Mixer{customer: g.bar.customers[i]}
	return nil
}

// Pour adds an ingredient to the glass.
func (g *Game) Pour(ingredientID string) error {
	m := g.mixer
	if m == nil || m.state != MixerMixing {
		return ErrBusy
	}
	if len(m.layers) >= g.rules.MaxLayers {
		return ErrMixerFull
	}
	for _, in := range models.Ingredients() {
		if in.ID == ingredientID {
			m.layers = append(m.layers, in)
			return nil
		}
	}
	return ErrNotFound
}

// Dump empties the glass.
func (g *Game) Dump() error {
	if g.mixer == nil || g.mixer.state != MixerMixing {
		return ErrBusy
	}
	g.mixer.layers = nil
	return nil
}

// CancelServe walks away from the customer before the drink is made.
func (g *Game) CancelServe() error {
	if g.mixer == nil || g.mixer.state != MixerMixing {
		return ErrBusy
	}
	g.mixer = nil
	return nil
}

// MakeDrink freezes the glass and asks the customer for a verdict.
// Satisfaction is decided here from the flavors; the provider only words
// the comment.
func (g *Game) MakeDrink() ([]Task, error) {
	m := g.mixer
	if m == nil || m.state != MixerMixing {
		return nil, ErrBusy
	}
	if len(m.layers) == 0 {
		return nil, ErrEmptyMixer
	}
	m.state = MixerTasting
	customer, layers := m.customer, m.Layers()
	return []Task{func(ctx context.Context) Effect {
		v := g.provider.EvaluateDrink(ctx, customer, layers)
		return func(g *Game) { g.settleDrink(m, v) }
	}}, nil
}

func (g *Game) settleDrink(m *Mixer, v models.DrinkVerdict) {
	v.Satisfied = models.Satisfies(m.customer.DrinkPreference, m.layers)
	earnings := m.LayerCost() * 3
	if v.Satisfied {
		earnings += g.rng.Intn(g.rules.TipRange) + g.rules.TipMin
	}
	m.verdict = v
	m.earnings = earnings
	m.state = MixerDone

	if v.Satisfied {
		paid := earnings
		if g.hasStaffEffect(models.EffectMoneyBoost) {
			paid = earnings * 12 / 10
			g.addLog("Staff bonus! Extra tips collected.", models.LogInfo)
		}
		g.addLog(fmt.Sprintf("%s loved the drink! Earned %d incense.", m.customer.Name, paid), models.LogSuccess)
		g.UpdateStats(models.StatsPatch{
			models.StatMoney:      g.stats.Money + paid,
			models.StatReputation: g.stats.Reputation + 5,
		})
	} else {
		g.addLog(fmt.Sprintf("%s is not impressed by the drink...", m.customer.Name), models.LogFailure)
		g.UpdateStats(g.stats.Plus(models.StatMoney, earnings))
	}

	if g.bar != nil {
		if i, ok := g.bar.find(m.customer.ID); ok {
			g.bar.customers[i].Served = true
		}
	}
	m.layers = nil
}

// CloseMixer dismisses a finished mini-game.
func (g *Game) CloseMixer() error {
	if g.mixer == nil || g.mixer.state != MixerDone {
		return ErrBusy
	}
	g.mixer = nil
	return nil
}

func (g *Game) hasStaffEffect(effect string) bool {
	for _, s := range g.staff {
		if s.IsHired && s.Effect == effect {
			return true
		}
	}
	return false
}
