package game

import (
	"context"
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

// AttendClass sits through a course. Usually it raises the course's stat by
// one; sometimes an event interrupts it and must be resolved instead.
func (g *Game) AttendClass(index int) ([]Task, error) {
	if err := g.require(models.PhaseDayUniversity); err != nil {
		return nil, err
	}
	classes := models.Classes()
	if index < 0 || index >= len(classes) {
		return nil, ErrNotFound
	}
	if g.event != nil {
		return nil, ErrBusy
	}
	if g.stats.Energy < g.rules.EnergyCostClass {
		return nil, ErrNotEnoughEnergy
	}
	cls := classes[index]
	g.UpdateStats(g.stats.Plus(models.StatEnergy, -g.rules.EnergyCostClass))

	if g.chance(g.rules.ClassEventChance) {
		placeholder := models.RandomEvent{Title: "Incoming signal..."}
		g.event = &placeholder
		return []Task{func(ctx context.Context) Effect {
			ev := g.provider.GenerateEvent(ctx, cls.Name)
			return func(g *Game) {
				if g.event == &placeholder {
					g.event = &ev
				}
			}
		}}, nil
	}

	g.addLog(fmt.Sprintf("Studied hard in %s: %s +1", cls.Name, cls.Stat), models.LogInfo)
	g.UpdateStats(g.stats.Plus(cls.Stat, 1))
	return nil, nil
}

// EventPasses reports whether the player's stats clear the event's check.
func EventPasses(ev models.RandomEvent, stats models.PlayerStats) bool {
	stat, need := models.StatLogic, 10
	if ev.StatCheck != nil {
		if ev.StatCheck.Stat != "" {
			stat = ev.StatCheck.Stat
		}
		if ev.StatCheck.Value != 0 {
			need = ev.StatCheck.Value
		}
	}
	return stats.Get(stat) >= need
}

// ResolveEvent settles the pending class event against the stat check.
func (g *Game) ResolveEvent() error {
	ev := g.event
	if ev == nil {
		return ErrNotFound
	}
	if ev.ID == "" {
		return ErrBusy
	}
	g.event = nil
	if !EventPasses(*ev, g.stats) {
		g.addLog(ev.FailText, models.LogFailure)
		return nil
	}
	g.addLog(ev.SuccessText, models.LogSuccess)
	if ev.Rewards.Stat != "" {
		v := ev.Rewards.Value
		if v == 0 {
			v = 5
		}
		g.addLog(fmt.Sprintf("Stat up: %s +%d", ev.Rewards.Stat, v), models.LogInfo)
		g.UpdateStats(g.stats.Plus(ev.Rewards.Stat, v))
	}
	return nil
}

// Buy purchases a shop item. Energy purchases are capped at max energy.
func (g *Game) Buy(itemID string) error {
	if err := g.require(models.PhaseDayShop); err != nil {
		return err
	}
	var item *models.ShopItem
	for _, it := range models.ShopItems() {
		if it.ID == itemID {
			item = &it
		}
	}
	if item == nil {
		return ErrNotFound
	}
	if g.stats.Money < item.Price {
		return ErrNotEnoughMoney
	}
	patch := models.StatsPatch{models.StatMoney: g.stats.Money - item.Price}
	eff := item.Effect
	if eff.Stat == models.StatEnergy {
		patch[models.StatEnergy] = min(g.stats.MaxEnergy, g.stats.Energy+eff.Value)
	} else {
		patch[eff.Stat] = g.stats.Get(eff.Stat) + eff.Value
	}
	g.addLog(fmt.Sprintf("Bought %s", item.Name), models.LogSuccess)
	g.UpdateStats(patch)
	return nil
}

// Rest naps at home, up to the daily limit.
func (g *Game) Rest() error {
	if err := g.require(models.PhaseDayHome); err != nil {
		return err
	}
	if g.stats.RestCount >= g.rules.MaxRestPerDay {
		return ErrRestLimit
	}
	g.addLog("Took a nap. Feeling refreshed!", models.LogInfo)
	g.UpdateStats(models.StatsPatch{
		models.StatEnergy:    min(g.stats.MaxEnergy, g.stats.Energy+g.rules.RestEnergy),
		models.StatRestCount: g.stats.RestCount + 1,
	})
	return nil
}
