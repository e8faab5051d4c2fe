package game

import (
	"context"
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

// startOfDay announces the day and requests the morning mail: feedback from
// a random subset of couples plus one consultation. The day does not wait
// for the letters.
func (g *Game) startOfDay() []Task {
	day := g.stats.Day
	g.addLog(fmt.Sprintf("Day %d. Another hopeful day.", day), models.LogInfo)

	var tasks []Task
	for _, c := range g.couples {
		if !g.chance(g.rules.FeedbackMailChance) {
			continue
		}
		names := c.CoupleNames()
		tasks = append(tasks, func(ctx context.Context) Effect {
			mail := g.provider.GenerateMail(ctx, names, day)
			return func(g *Game) {
				if mail == nil {
					return
				}
				g.receiveMail(*mail)
				g.addLog("A new thank-you letter arrived!", models.LogMail)
			}
		})
	}
	tasks = append(tasks, func(ctx context.Context) Effect {
		mail := g.provider.GenerateConsultationMail(ctx, day)
		return func(g *Game) {
			g.receiveMail(mail)
			g.addLog("A letter asking for love advice arrived.", models.LogMail)
		}
	})
	return tasks
}

func (g *Game) receiveMail(m models.Mail) {
	g.mails = append([]models.Mail{m}, g.mails...)
}

// SalaryDue is what the hired staff cost per day.
func (g *Game) SalaryDue() int {
	total := 0
	for _, s := range g.staff {
		if s.IsHired {
			total += s.Salary
		}
	}
	return total
}

// endOfDay pays wages, restores energy, advances the day and starts the
// next one. Money may go negative.
func (g *Game) endOfDay() ([]Task, error) {
	if err := g.transition(models.PhaseDayMap); err != nil {
		return nil, err
	}
	salary := g.SalaryDue()
	if salary > 0 {
		g.addLog(fmt.Sprintf("Paid staff wages: -%d incense", salary), models.LogInfo)
	}
	g.UpdateStats(models.StatsPatch{
		models.StatDay:       g.stats.Day + 1,
		models.StatEnergy:    g.stats.MaxEnergy,
		models.StatRestCount: 0,
		models.StatMoney:     g.stats.Money - salary,
	})
	g.addLog("The day is over.", models.LogInfo)
	return g.startOfDay(), nil
}

// rollCombat decides whether closing the bar leads to a fight.
func (g *Game) rollCombat() bool {
	hit := g.chance(g.rules.CombatChance)
	if n := g.rules.CombatEveryNDays; n > 0 && g.stats.Day%n == 0 {
		return true
	}
	return hit
}
