package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/tatianab/cyber-temple/internal/models"
)

// Bar is one night's matchmaking session.
type Bar struct {
	customers []models.Customer
	selected  []string
	pending   map[string]bool
	recruits  int
	seating   int
	visitor   *models.SpecialNPC
	last      *models.MatchResult
}

func (b *Bar) Customers() []models.Customer {
	return append([]models.Customer(nil), b.customers...)
}

// Selected returns the selected customer ids in selection order.
func (b *Bar) Selected() []string {
	return append([]string(nil), b.selected...)
}

func (b *Bar) IsSelected(id string) bool { return slices.Contains(b.selected, id) }

// Pending reports whether the customer is part of an unresolved match.
func (b *Bar) Pending(id string) bool { return b.pending[id] }

// Visitor is the special guest waiting to be received, if any.
func (b *Bar) Visitor() *models.SpecialNPC { return b.visitor }

// LastMatch is the most recent resolved match of the night.
func (b *Bar) LastMatch() *models.MatchResult { return b.last }

func (b *Bar) find(id string) (int, bool) {
	for i, c := range b.customers {
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (b *Bar) remove(ids ...string) {
	b.customers = slices.DeleteFunc(b.customers, func(c models.Customer) bool {
		return slices.Contains(ids, c.ID)
	})
	b.selected = slices.DeleteFunc(b.selected, func(id string) bool {
		return slices.Contains(ids, id)
	})
}

// openBar seats the first guests of the night and rolls for a visit.
func (g *Game) openBar() []Task {
	g.addLog("Night falls. The Yue Lao bar is open.", models.LogInfo)
	g.bar = &Bar{pending: make(map[string]bool)}
	bar := g.bar

	count := g.rng.Intn(3) + 4
	bar.seating = count
	day := g.stats.Day
	tasks := []Task{func(ctx context.Context) Effect {
		batch := g.provider.GenerateCustomers(ctx, count, day)
		return func(g *Game) {
			bar.seating = 0
			if g.bar != bar {
				return
			}
			for _, c := range batch {
				if len(bar.customers) >= g.rules.MaxCustomers {
					break
				}
				bar.customers = append(bar.customers, c)
			}
		}
	}}

	npcs := models.SpecialNPCs()
	switch {
	case g.chance(g.rules.NPCVisitChance):
		npc := npcs[g.rng.Intn(len(npcs))]
		bar.visitor = &npc
		g.addLog(fmt.Sprintf("%s, %s, has dropped by.", npc.Name, npc.Title), models.LogNPC)
	case day%2 == 0 || g.chance(g.rules.LoveVisitChance):
		var unlocked []int
		for i, li := range g.loveInterests {
			if li.Unlocked {
				unlocked = append(unlocked, i)
			}
		}
		if len(unlocked) > 0 {
			li := g.loveInterests[unlocked[g.rng.Intn(len(unlocked))]]
			g.addLog(fmt.Sprintf("%s walked into the bar!", li.Name), models.LogRomance)
			tasks = append(tasks, g.openRomance(romanceLove, li.ID, li.Persona(), introLine(li)))
		}
	}
	return tasks
}

// ReceiveVisitor greets the special guest and collects the reward.
func (g *Game) ReceiveVisitor() error {
	if err := g.require(models.PhaseNightBar); err != nil {
		return err
	}
	if g.bar.visitor == nil {
		return ErrNotFound
	}
	npc := *g.bar.visitor
	g.bar.visitor = nil
	g.addLog(fmt.Sprintf("%s: %q", npc.Name, npc.Dialogue), models.LogNPC)
	g.addLog(fmt.Sprintf("Reward: %s +%d", npc.Reward.Stat, npc.Reward.Value), models.LogSuccess)
	g.UpdateStats(g.stats.Plus(npc.Reward.Stat, npc.Reward.Value))
	return nil
}

// Recruit calls one more customer in from the street. Seats promised to
// guests still on their way count as taken.
func (g *Game) Recruit() ([]Task, error) {
	if err := g.require(models.PhaseNightBar); err != nil {
		return nil, err
	}
	bar := g.bar
	if g.stats.Energy < g.rules.EnergyCostRecruit {
		return nil, ErrNotEnoughEnergy
	}
	if len(bar.customers)+bar.seating+bar.recruits >= g.rules.MaxCustomers {
		return nil, ErrRosterFull
	}
	g.UpdateStats(g.stats.Plus(models.StatEnergy, -g.rules.EnergyCostRecruit))
	bar.recruits++
	day := g.stats.Day
	return []Task{func(ctx context.Context) Effect {
		batch := g.provider.GenerateCustomers(ctx, 1, day)
		return func(g *Game) {
			bar.recruits--
			if g.bar != bar || len(batch) == 0 || len(bar.customers) >= g.rules.MaxCustomers {
				return
			}
			bar.customers = append(bar.customers, batch[0])
			g.addLog("A new guest pushes the door open.", models.LogInfo)
		}
	}}, nil
}

// ToggleSelect selects or deselects a customer for matching. A third
// selection is rejected and leaves the selection as it was.
func (g *Game) ToggleSelect(id string) error {
	if err := g.require(models.PhaseNightBar); err != nil {
		return err
	}
	bar := g.bar
	if _, ok := bar.find(id); !ok {
		return ErrNotFound
	}
	if i := slices.Index(bar.selected, id); i >= 0 {
		bar.selected = slices.Delete(bar.selected, i, i+1)
		return nil
	}
	if bar.pending[id] {
		return ErrBusy
	}
	if len(bar.selected) >= 2 {
		return ErrSelection
	}
	bar.selected = append(bar.selected, id)
	return nil
}

// AttemptMatch pairs the two selected customers. The energy is paid up
// front; the verdict arrives with the returned task.
func (g *Game) AttemptMatch() ([]Task, error) {
	if err := g.require(models.PhaseNightBar); err != nil {
		return nil, err
	}
	bar := g.bar
	if len(bar.selected) != 2 {
		return nil, ErrSelection
	}
	if g.stats.Energy < g.rules.EnergyCostMatch {
		return nil, ErrNotEnoughEnergy
	}
	i, _ := bar.find(bar.selected[0])
	j, _ := bar.find(bar.selected[1])
	a, b := bar.customers[i], bar.customers[j]

	g.UpdateStats(g.stats.Plus(models.StatEnergy, -g.rules.EnergyCostMatch))
	bar.selected = nil
	bar.pending[a.ID] = true
	bar.pending[b.ID] = true

	return []Task{func(ctx context.Context) Effect {
		res := g.provider.CalculateMatch(ctx, a, b)
		return func(g *Game) { g.resolveMatch(bar, a, b, res) }
	}}, nil
}

func (g *Game) resolveMatch(bar *Bar, a, b models.Customer, res models.MatchResult) {
	delete(bar.pending, a.ID)
	delete(bar.pending, b.ID)
	g.attempts = append(g.attempts, res)
	bar.last = &res

	if !res.Success {
		g.addLog(fmt.Sprintf("The red thread snapped: %s and %s had nothing to say to each other.", a.Name, b.Name), models.LogFailure)
		g.UpdateStats(g.stats.Plus(models.StatEnergy, -g.rules.MatchFailPenalty))
		return
	}

	bar.remove(a.ID, b.ID)
	g.couples = append(g.couples, res)
	g.addLog(fmt.Sprintf("Red thread tied! %s & %s. +%d incense, +%d cultivation.",
		a.Name, b.Name, g.rules.MatchRewardMoney, g.rules.MatchRewardCultivation), models.LogSuccess)
	g.UpdateStats(models.StatsPatch{
		models.StatMoney:       g.stats.Money + g.rules.MatchRewardMoney,
		models.StatCultivation: g.stats.Cultivation + g.rules.MatchRewardCultivation,
		models.StatReputation:  g.stats.Reputation + g.rules.MatchRewardReputation,
	})
}

// Charisma is the player's charisma including hired staff bonuses.
func (g *Game) Charisma() int {
	c := g.stats.Charisma
	for _, s := range g.staff {
		if s.IsHired && s.Effect == models.EffectCharismaBoost {
			c += 5
		}
	}
	return c
}
