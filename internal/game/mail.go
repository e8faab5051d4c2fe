package game

import (
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

func (g *Game) mailIndex(id string) (int, bool) {
	for i, m := range g.mails {
		if m.ID == id {
			return i, true
		}
	}
	return -1, false
}

// OpenMail marks a letter read and returns it.
func (g *Game) OpenMail(id string) (models.Mail, error) {
	i, ok := g.mailIndex(id)
	if !ok {
		return models.Mail{}, ErrNotFound
	}
	g.mails[i].IsRead = true
	return g.mails[i], nil
}

// ReplyMail answers a letter with one of its options. A letter can only be
// answered once.
func (g *Game) ReplyMail(id string, option int) error {
	i, ok := g.mailIndex(id)
	if !ok {
		return ErrNotFound
	}
	m := &g.mails[i]
	if m.Resolved {
		return ErrResolved
	}
	if option < 0 || option >= len(m.Options) {
		return ErrNotFound
	}
	opt := m.Options[option]
	m.Resolved = true
	m.IsRead = true

	g.addLog(fmt.Sprintf("Replied to %q: %s", m.Subject, opt.Text), models.LogMail)
	switch opt.Impact {
	case models.ImpactPositive:
		rep, cult := 10, 20
		if m.Type == models.MailConsultation {
			rep, cult = 20, 10
		}
		g.addLog(fmt.Sprintf("Good advice! Reputation +%d, cultivation +%d.", rep, cult), models.LogSuccess)
		g.UpdateStats(models.StatsPatch{
			models.StatReputation:  g.stats.Reputation + rep,
			models.StatCultivation: g.stats.Cultivation + cult,
		})
	case models.ImpactNegative:
		g.addLog("That reply went down badly. Reputation -10.", models.LogFailure)
		g.UpdateStats(g.stats.Plus(models.StatReputation, -10))
	}
	return nil
}
