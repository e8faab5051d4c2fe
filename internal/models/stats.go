package models

import "fmt"

// Stat names one field of PlayerStats.
type Stat string

const (
	StatEnergy      Stat = "energy"
	StatMoney       Stat = "money"
	StatCultivation Stat = "cultivation"
	StatReputation  Stat = "reputation"
	StatDay         Stat = "day"
	StatMaxEnergy   Stat = "max_energy"
	StatRestCount   Stat = "rest_count"
	StatLogic       Stat = "logic"
	StatWisdom      Stat = "wisdom"
	StatCharisma    Stat = "charisma"
)

// Stats lists every stat in display order.
var Stats = []Stat{
	StatEnergy, StatMoney, StatCultivation, StatReputation, StatDay,
	StatMaxEnergy, StatRestCount, StatLogic, StatWisdom, StatCharisma,
}

// ParseStat accepts the snake_case name or the camelCase spelling used by
// generated content.
func ParseStat(s string) (Stat, error) {
	switch s {
	case "maxEnergy":
		return StatMaxEnergy, nil
	case "restCount":
		return StatRestCount, nil
	}
	for _, st := range Stats {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stat %q", s)
}

// UnmarshalText lets yaml and json decode a Stat through ParseStat.
func (s *Stat) UnmarshalText(text []byte) error {
	st, err := ParseStat(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// PlayerStats is the player's resource and attribute vector.
type PlayerStats struct {
	Energy      int `yaml:"energy"`
	Money       int `yaml:"money"`
	Cultivation int `yaml:"cultivation"`
	Reputation  int `yaml:"reputation"`
	Day         int `yaml:"day"`
	MaxEnergy   int `yaml:"max_energy"`
	RestCount   int `yaml:"rest_count"`
	Logic       int `yaml:"logic"`
	Wisdom      int `yaml:"wisdom"`
	Charisma    int `yaml:"charisma"`
}

func (p *PlayerStats) ref(s Stat) *int {
	switch s {
	case StatEnergy:
		return &p.Energy
	case StatMoney:
		return &p.Money
	case StatCultivation:
		return &p.Cultivation
	case StatReputation:
		return &p.Reputation
	case StatDay:
		return &p.Day
	case StatMaxEnergy:
		return &p.MaxEnergy
	case StatRestCount:
		return &p.RestCount
	case StatLogic:
		return &p.Logic
	case StatWisdom:
		return &p.Wisdom
	case StatCharisma:
		return &p.Charisma
	}
	return nil
}

// Get returns the value of s. Unknown stats read as zero.
func (p PlayerStats) Get(s Stat) int {
	if f := p.ref(s); f != nil {
		return *f
	}
	return 0
}

// Plus returns a patch adding delta to the current value of s.
func (p PlayerStats) Plus(s Stat, delta int) StatsPatch {
	return StatsPatch{s: p.Get(s) + delta}
}

// StatsPatch is a partial update: only the stats present change.
type StatsPatch map[Stat]int

// With returns a copy of the patch with s set to v.
func (sp StatsPatch) With(s Stat, v int) StatsPatch {
	out := make(StatsPatch, len(sp)+1)
	for k, val := range sp {
		out[k] = val
	}
	out[s] = v
	return out
}

// Apply merges the patch into p. Stats outside the closed set are ignored.
func (p *PlayerStats) Apply(patch StatsPatch) {
	for s, v := range patch {
		if f := p.ref(s); f != nil {
			*f = v
		}
	}
}

// Milestone is a one-time achievement. Claimed never flips back.
type Milestone struct {
	ID        string
	Title     string
	Desc      string
	Condition func(stats PlayerStats, matches int) bool
	Reward    Reward
	Claimed   bool
}
