package models

import "fmt"

// Rules holds the economy constants. A tuning file is decoded over
// DefaultRules, so fields it leaves out keep their defaults.
type Rules struct {
	MaxEnergy         int `yaml:"max_energy"`
	StartingMoney     int `yaml:"starting_money"`
	StartingStat      int `yaml:"starting_stat"`
	MaxRestPerDay     int `yaml:"max_rest_per_day"`
	RestEnergy        int `yaml:"rest_energy"`
	EnergyCostClass   int `yaml:"energy_cost_class"`
	EnergyCostRecruit int `yaml:"energy_cost_recruit"`
	EnergyCostMatch   int `yaml:"energy_cost_match"`
	EnergyCostStaff   int `yaml:"energy_cost_staff"`
	MatchFailPenalty  int `yaml:"match_fail_penalty"`
	MaxCustomers      int `yaml:"max_customers"`
	MaxLayers         int `yaml:"max_layers"`
	LogCapacity       int `yaml:"log_capacity"`

	MatchRewardMoney       int `yaml:"match_reward_money"`
	MatchRewardCultivation int `yaml:"match_reward_cultivation"`
	MatchRewardReputation  int `yaml:"match_reward_reputation"`

	TipMin   int `yaml:"tip_min"`
	TipRange int `yaml:"tip_range"`

	CombatChance       float64 `yaml:"combat_chance"`
	CombatEveryNDays   int     `yaml:"combat_every_n_days"`
	FeedbackMailChance float64 `yaml:"feedback_mail_chance"`
	ClassEventChance   float64 `yaml:"class_event_chance"`
	NPCVisitChance     float64 `yaml:"npc_visit_chance"`
	LoveVisitChance    float64 `yaml:"love_visit_chance"`

	VictoryCultivation int `yaml:"victory_cultivation"`
	HealAmount         int `yaml:"heal_amount"`
}

// DefaultRules returns the stock balance of the game.
func DefaultRules() Rules {
	return Rules{
		MaxEnergy:         100,
		StartingMoney:     500,
		StartingStat:      10,
		MaxRestPerDay:     2,
		RestEnergy:        30,
		EnergyCostClass:   25,
		EnergyCostRecruit: 5,
		EnergyCostMatch:   20,
		EnergyCostStaff:   5,
		MatchFailPenalty:  10,
		MaxCustomers:      8,
		MaxLayers:         5,
		LogCapacity:       DefaultLogCapacity,

		MatchRewardMoney:       200,
		MatchRewardCultivation: 30,
		MatchRewardReputation:  20,

		TipMin:   50,
		TipRange: 80,

		CombatChance:       0.3,
		CombatEveryNDays:   3,
		FeedbackMailChance: 0.3,
		ClassEventChance:   0.15,
		NPCVisitChance:     0.15,
		LoveVisitChance:    0.3,

		VictoryCultivation: 50,
		HealAmount:         20,
	}
}

// InitialStats is the stat vector of a fresh session.
func (r Rules) InitialStats() PlayerStats {
	return PlayerStats{
		Energy:    r.MaxEnergy,
		Money:     r.StartingMoney,
		Day:       1,
		MaxEnergy: r.MaxEnergy,
		Logic:     r.StartingStat,
		Wisdom:    r.StartingStat,
		Charisma:  r.StartingStat,
	}
}

// Validate rejects rules the game cannot run with: sizes that must be
// positive, negative costs and probabilities outside [0,1].
func (r Rules) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"max_energy", r.MaxEnergy},
		{"max_customers", r.MaxCustomers},
		{"max_layers", r.MaxLayers},
		{"tip_range", r.TipRange},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", f.name, f.v)
		}
	}

	nonNegative := []struct {
		name string
		v    int
	}{
		{"max_rest_per_day", r.MaxRestPerDay},
		{"energy_cost_class", r.EnergyCostClass},
		{"energy_cost_recruit", r.EnergyCostRecruit},
		{"energy_cost_match", r.EnergyCostMatch},
		{"energy_cost_staff", r.EnergyCostStaff},
		{"combat_every_n_days", r.CombatEveryNDays},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", f.name, f.v)
		}
	}

	chances := []struct {
		name string
		p    float64
	}{
		{"combat_chance", r.CombatChance},
		{"feedback_mail_chance", r.FeedbackMailChance},
		{"class_event_chance", r.ClassEventChance},
		{"npc_visit_chance", r.NPCVisitChance},
		{"love_visit_chance", r.LoveVisitChance},
	}
	for _, c := range chances {
		if c.p < 0 || c.p > 1 {
			return fmt.Errorf("%s must be within [0,1], got %g", c.name, c.p)
		}
	}
	return nil
}
