package game

import (
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

// ActiveMilestone is the first unclaimed milestone. Once everything is
// claimed it is the last one, and done is true.
func (g *Game) ActiveMilestone() (m models.Milestone, done bool) {
	for _, m := range g.milestones {
		if !m.Claimed {
			return m, false
		}
	}
	return g.milestones[len(g.milestones)-1], true
}

// MilestoneSatisfied evaluates the active milestone against the live stats.
func (g *Game) MilestoneSatisfied() bool {
	m, _ := g.ActiveMilestone()
	return m.Condition(g.stats, len(g.couples))
}

// ClaimMilestone pays out the active milestone. It fails without effect if
// the milestone is already claimed or not yet reached.
func (g *Game) ClaimMilestone() error {
	m, done := g.ActiveMilestone()
	if done || m.Claimed {
		return ErrAlreadyClaimed
	}
	if !m.Condition(g.stats, len(g.couples)) {
		return ErrNotSatisfied
	}
	for i := range g.milestones {
		if g.milestones[i].ID == m.ID {
			g.milestones[i].Claimed = true
		}
	}
	g.addLog(fmt.Sprintf("Milestone reached: %s! %s +%d", m.Title, m.Reward.Stat, m.Reward.Value), models.LogSuccess)
	g.UpdateStats(g.stats.Plus(m.Reward.Stat, m.Reward.Value))
	return nil
}

// checkMilestones logs once when the active milestone becomes claimable.
func (g *Game) checkMilestones() {
	m, done := g.ActiveMilestone()
	if done || g.announced[m.ID] || !m.Condition(g.stats, len(g.couples)) {
		return
	}
	g.announced[m.ID] = true
	g.addLog(fmt.Sprintf("Milestone ready to claim: %s", m.Title), models.LogSuccess)
}

func (g *Game) Milestones() []models.Milestone {
	return append([]models.Milestone(nil), g.milestones...)
}
