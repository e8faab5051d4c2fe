package game

import (
	"context"
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
)

type romanceKind int

const (
	romanceLove romanceKind = iota
	romanceStaff
)

// Line is one utterance in a dialogue history.
type Line struct {
	FromPlayer bool
	Text       string
}

// Romance is an open conversation. It only ends when the player leaves.
type Romance struct {
	kind     romanceKind
	targetID string
	persona  models.Persona
	start    int
	affinity int
	history  []Line
	options  []models.DialogueOption
	waiting  bool
}

func (r *Romance) Persona() models.Persona { return r.persona }
func (r *Romance) Affinity() int           { return r.affinity }

// Delta is the affinity gained or lost so far in this conversation.
func (r *Romance) Delta() int { return r.affinity - r.start }

func (r *Romance) History() []Line { return append([]Line(nil), r.history...) }

func (r *Romance) Options() []models.DialogueOption {
	return append([]models.DialogueOption(nil), r.options...)
}

// Waiting reports whether the next line is still being written.
func (r *Romance) Waiting() bool { return r.waiting }

// ImpactDelta is the affinity change of a reply.
func ImpactDelta(i models.Impact) int {
	switch i {
	case models.ImpactPositive:
		return 10
	case models.ImpactNegative:
		return -5
	}
	return 0
}

func introLine(li models.LoveInterest) string {
	if li.FirstMeeting {
		return fmt.Sprintf("(%s, %s, walks in)\n%s", li.Title, li.Description, li.OpeningLine)
	}
	return li.OpeningLine
}

func (g *Game) openRomance(kind romanceKind, id string, p models.Persona, opening string) Task {
	r := &Romance{
		kind:     kind,
		targetID: id,
		persona:  p,
		start:    p.Affinity,
		affinity: p.Affinity,
		history:  []Line{{Text: opening}},
		waiting:  true,
	}
	g.romance = r
	return func(ctx context.Context) Effect {
		d := g.provider.GenerateDialogue(ctx, p, opening)
		return func(g *Game) {
			r.options = d.Options
			r.waiting = false
		}
	}
}

// ChatWithStaff opens a conversation with a hired staff member.
func (g *Game) ChatWithStaff(id string) ([]Task, error) {
	if err := g.require(models.PhaseNightBar); err != nil {
		return nil, err
	}
	if g.mixer != nil || g.romance != nil {
		return nil, ErrBusy
	}
	i, ok := g.staffIndex(id)
	if !ok {
		return nil, ErrNotFound
	}
	s := g.staff[i]
	if !s.IsHired {
		return nil, ErrNotHired
	}
	opening := s.Lines[g.rng.Intn(len(s.Lines))]
	return []Task{g.openRomance(romanceStaff, s.ID, s.Persona(), opening)}, nil
}

// Reply picks one of the offered options and asks for the next line.
func (g *Game) Reply(index int) ([]Task, error) {
	r := g.romance
	if r == nil || r.waiting {
		return nil, ErrBusy
	}
	if index < 0 || index >= len(r.options) {
		return nil, ErrNotFound
	}
	opt := r.options[index]
	r.history = append(r.history, Line{FromPlayer: true, Text: opt.Text})
	r.options = nil
	r.affinity += ImpactDelta(opt.Impact)
	r.waiting = true

	p := r.persona
	p.Affinity = r.affinity
	return []Task{func(ctx context.Context) Effect {
		d := g.provider.GenerateDialogue(ctx, p, opt.Text)
		return func(g *Game) {
			r.history = append(r.history, Line{Text: d.Text})
			r.options = d.Options
			r.waiting = false
		}
	}}, nil
}

// LeaveRomance ends the conversation and books the net affinity change on
// the character.
func (g *Game) LeaveRomance() error {
	r := g.romance
	if r == nil {
		return ErrNotFound
	}
	g.romance = nil
	delta := r.Delta()
	switch r.kind {
	case romanceLove:
		for i := range g.loveInterests {
			if g.loveInterests[i].ID == r.targetID {
				g.loveInterests[i].Affinity += delta
				g.loveInterests[i].FirstMeeting = false
			}
		}
	case romanceStaff:
		if i, ok := g.staffIndex(r.targetID); ok {
			g.staff[i].Affinity += delta
		}
	}
	g.addLog(fmt.Sprintf("Parted ways with %s (affinity %+d).", r.persona.Name, delta), models.LogRomance)
	return nil
}
