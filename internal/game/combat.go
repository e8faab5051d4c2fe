package game

import (
	"context"
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

// Turn is the state of the combat loop.
type Turn int

const (
	TurnPlayer Turn = iota
	TurnEnemy
	TurnVictory
	TurnDefeat
)

// Combat is one encounter. The numbers are fixed when it starts; only the
// enemy's name and description come from the provider.
type Combat struct {
	enemy      models.Enemy
	playerHP   int
	playerMax  int
	turn       Turn
	enemyTurns int
	lines      []string
}

func (c *Combat) Enemy() models.Enemy { return c.enemy }
func (c *Combat) PlayerHP() int       { return c.playerHP }
func (c *Combat) PlayerMaxHP() int    { return c.playerMax }
func (c *Combat) Turn() Turn          { return c.turn }

// EnemyTurns counts the enemy's actions so far.
func (c *Combat) EnemyTurns() int { return c.enemyTurns }

func (c *Combat) Lines() []string { return append([]string(nil), c.lines...) }

func (c *Combat) Over() bool { return c.turn == TurnVictory || c.turn == TurnDefeat }

func (c *Combat) say(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

// EnemyFor builds the day's opponent around a generated profile.
func EnemyFor(day int, p models.EnemyProfile) models.Enemy {
	hp := 50 + day*10
	return models.Enemy{EnemyProfile: p, HP: hp, MaxHP: hp, Attack: 5 + day}
}

// PlayerDamage is what one attack deals at the given cultivation.
func PlayerDamage(cultivation int) int {
	return 10 + cultivation/5
}

func (g *Game) startCombat() []Task {
	day := g.stats.Day
	c := &Combat{
		enemy:     EnemyFor(day, models.EnemyProfile{Name: "Unknown Signal"}),
		playerHP:  100 + g.stats.Cultivation,
		playerMax: 100 + g.stats.Cultivation,
	}
	g.combat = c
	return []Task{func(ctx context.Context) Effect {
		p := g.provider.GenerateEnemy(ctx, day)
		return func(g *Game) {
			c.enemy.EnemyProfile = p
			c.say("Under attack! %s appears!", p.Name)
		}
	}}
}

// Attack hits the enemy. A surviving enemy strikes back once.
func (g *Game) Attack() ([]Task, error) {
	c, err := g.playerTurn()
	if err != nil {
		return nil, err
	}
	dmg := PlayerDamage(g.stats.Cultivation)
	c.enemy.HP = max(0, c.enemy.HP-dmg)
	c.say("You fire a fate wave for %d damage!", dmg)
	g.addLog(fmt.Sprintf("You hit %s for %d.", c.enemy.Name, dmg), models.LogCombat)
	if c.enemy.HP <= 0 {
		return g.winCombat(c)
	}
	return nil, g.enemyTurn(c)
}

// Heal restores a fixed amount of HP, then the enemy strikes.
func (g *Game) Heal() ([]Task, error) {
	c, err := g.playerTurn()
	if err != nil {
		return nil, err
	}
	c.playerHP += g.rules.HealAmount
	c.say("You sip a Meng Po latte and recover %d HP.", g.rules.HealAmount)
	return nil, g.enemyTurn(c)
}

func (g *Game) playerTurn() (*Combat, error) {
	if err := g.require(models.PhaseCombat); err != nil {
		return nil, err
	}
	c := g.combat
	if c.Over() {
		return nil, ErrCombatOver
	}
	if c.turn != TurnPlayer {
		return nil, ErrNotYourTurn
	}
	return c, nil
}

func (g *Game) enemyTurn(c *Combat) error {
	c.turn = TurnEnemy
	c.enemyTurns++
	dmg := c.enemy.Attack
	c.playerHP = max(0, c.playerHP-dmg)
	c.say("%s attacks for %d mental damage!", c.enemy.Name, dmg)
	if c.playerHP <= 0 {
		c.turn = TurnDefeat
		g.addLog("You were overwhelmed. The tree of fate falls.", models.LogCombat)
		return g.transition(models.PhaseGameOver)
	}
	c.turn = TurnPlayer
	return nil
}

func (g *Game) winCombat(c *Combat) ([]Task, error) {
	c.turn = TurnVictory
	g.addLog("Threat cleared!", models.LogSuccess)
	g.UpdateStats(g.stats.Plus(models.StatCultivation, g.rules.VictoryCultivation))
	return g.endOfDay()
}
