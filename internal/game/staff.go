package game

import (
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

func (g *Game) staffIndex(id string) (int, bool) {
	for i, s := range g.staff {
		if s.ID == id {
			return i, true
		}
	}
	return -1, false
}

// HireStaff puts someone on the payroll for the rest of the session.
func (g *Game) HireStaff(id string) error {
	if err := g.require(models.PhaseNightBar); err != nil {
		return err
	}
	i, ok := g.staffIndex(id)
	if !ok {
		return ErrNotFound
	}
	s := g.staff[i]
	if s.IsHired {
		return ErrAlreadyHired
	}
	if g.stats.Money < s.Cost {
		return ErrNotEnoughMoney
	}
	g.staff[i].IsHired = true
	g.addLog(fmt.Sprintf("Hired %s!", s.Name), models.LogSuccess)
	g.UpdateStats(g.stats.Plus(models.StatMoney, -s.Cost))
	return nil
}

// InteractStaff chats briefly with a hired staff member. The energy cost is
// not checked, so energy can drop below zero.
func (g *Game) InteractStaff(id string) error {
	if err := g.require(models.PhaseNightBar); err != nil {
		return err
	}
	i, ok := g.staffIndex(id)
	if !ok {
		return ErrNotFound
	}
	s := &g.staff[i]
	if !s.IsHired {
		return ErrNotHired
	}
	line := s.Lines[g.rng.Intn(len(s.Lines))]
	s.Affinity += 5
	g.addLog(fmt.Sprintf("%s: %q", s.Name, line), models.LogRomance)
	g.UpdateStats(g.stats.Plus(models.StatEnergy, -g.rules.EnergyCostStaff))
	return nil
}

// BuyUpgrade pays for a decoration and makes it the active one of its
// type. Choosing the already-active decoration is free and changes nothing.
func (g *Game) BuyUpgrade(id string) error {
	if err := g.require(models.PhaseNightBar); err != nil {
		return err
	}
	idx := -1
	for i, u := range g.upgrades {
		if u.ID == id {
			idx = i
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	up := g.upgrades[idx]
	if up.Active {
		return nil
	}
	if up.Price > g.stats.Money {
		return ErrNotEnoughMoney
	}
	activateUpgrade(g.upgrades, id)
	g.addLog(fmt.Sprintf("Decor changed to %s", up.Name), models.LogSuccess)
	if up.Price > 0 {
		g.UpdateStats(g.stats.Plus(models.StatMoney, -up.Price))
	}
	return nil
}

// activateUpgrade turns id on and every sibling of the same type off.
func activateUpgrade(ups []models.BarUpgrade, id string) {
	var typ models.UpgradeType
	for _, u := range ups {
		if u.ID == id {
			typ = u.Type
		}
	}
	for i := range ups {
		if ups[i].Type == typ {
			ups[i].Active = ups[i].ID == id
		}
	}
}

// ActiveUpgrade returns the active decoration of a type.
func (g *Game) ActiveUpgrade(t models.UpgradeType) (models.BarUpgrade, bool) {
	for _, u := range g.upgrades {
		if u.Type == t && u.Active {
			return u, true
		}
	}
	return models.BarUpgrade{}, false
}
