package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/tatianab/cyber-temple/internal/models"
)

type customerWire struct {
	Name            string        `json:"name"`
	Gender          string        `json:"gender"`
	Age             int           `json:"age"`
	Job             string        `json:"job"`
	MBTI            string        `json:"mbti"`
	Appearance      string        `json:"appearance"`
	Bio             string        `json:"bio"`
	Requirement     string        `json:"requirement"`
	Mood            string        `json:"mood"`
	DrinkPreference models.Flavor `json:"drinkPreference"`
	DrinkHint       string        `json:"drinkHint"`
}

type optionWire struct {
	ID     string        `json:"id"`
	Text   string        `json:"text"`
	Impact models.Impact `json:"impact"`
}

func toOptions(ws []optionWire) []models.DialogueOption {
	out := make([]models.DialogueOption, len(ws))
	for i, w := range ws {
		id := w.ID
		if id == "" {
			id = fmt.Sprintf("o%d", i+1)
		}
		out[i] = models.DialogueOption{ID: id, Text: w.Text, Impact: w.Impact}
	}
	return out
}

type rewardWire struct {
	Stat  models.Stat `json:"stat"`
	Value int         `json:"value"`
}

type eventWire struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StatCheck   *rewardWire `json:"statCheck"`
	SuccessText string      `json:"successText"`
	FailText    string      `json:"failText"`
	Rewards     rewardWire  `json:"rewards"`
}

type mailWire struct {
	SenderName string       `json:"senderName"`
	Subject    string       `json:"subject"`
	Content    string       `json:"content"`
	Options    []optionWire `json:"options"`
}

// GenerateCustomers returns up to count fresh customers.
func (e *Engine) GenerateCustomers(ctx context.Context, count, day int) []models.Customer {
	if count <= 0 {
		return nil
	}
	var wire []customerWire
	data := struct{ Count, Day int }{count, day}
	if err := e.ask(ctx, e.lively, "customers.txt", data, customersSchema, &wire); err != nil {
		warn("customers", err)
		return e.fallbackCustomers(count)
	}
	if len(wire) > count {
		wire = wire[:count]
	}
	out := make([]models.Customer, len(wire))
	for i, w := range wire {
		out[i] = models.Customer{
			ID:              uuid.NewString(),
			Name:            w.Name,
			Gender:          w.Gender,
			Age:             w.Age,
			Job:             w.Job,
			MBTI:            w.MBTI,
			Appearance:      w.Appearance,
			Bio:             w.Bio,
			Requirement:     w.Requirement,
			Mood:            w.Mood,
			DrinkPreference: w.DrinkPreference,
			DrinkHint:       w.DrinkHint,
			IsRegular:       e.float() > 0.8,
		}
	}
	return out
}

// fallbackCustomers draws from the table without repeats until it runs out.
func (e *Engine) fallbackCustomers(count int) []models.Customer {
	pool := e.tables.Customers
	order := e.perm(len(pool))
	out := make([]models.Customer, count)
	for i := range out {
		c := pool[order[i%len(order)]]
		c.ID = uuid.NewString()
		out[i] = c
	}
	return out
}

// MatchScore is the offline compatibility heuristic. variance is added
// before clamping to [0, 100].
func MatchScore(a, b string, variance int) int {
	score := 50
	if len(a) == 4 && len(b) == 4 {
		if a[1] == b[1] {
			score += 15
		}
		if a[0] != b[0] {
			score += 10
		}
		if a[3] != b[3] {
			score -= 5
		}
	}
	return min(100, max(0, score+variance))
}

// CalculateMatch rates a pair.
func (e *Engine) CalculateMatch(ctx context.Context, a, b models.Customer) models.MatchResult {
	res := models.MatchResult{CoupleID: uuid.NewString(), Partner1Name: a.Name, Partner2Name: b.Name}

	pa, _ := json.Marshal(a)
	pb, _ := json.Marshal(b)
	var wire struct {
		Score       int    `json:"score"`
		Description string `json:"description"`
		Success     bool   `json:"success"`
	}
	data := struct{ A, B string }{string(pa), string(pb)}
	if err := e.ask(ctx, e.model, "match.txt", data, matchSchema, &wire); err != nil {
		warn("match", err)
		res.Score = MatchScore(a.MBTI, b.MBTI, e.intn(40)-10)
		res.Success = res.Score >= 60
		lines := e.tables.Match.Failure
		if res.Success {
			lines = e.tables.Match.Success
		}
		res.Description = e.pick(lines) + " (offline forecast)"
		return res
	}
	res.Score = min(100, max(0, wire.Score))
	res.Success = wire.Success
	res.Description = wire.Description
	return res
}

// EvaluateDrink words the customer's reaction. Satisfaction is always decided
// locally from the flavors.
func (e *Engine) EvaluateDrink(ctx context.Context, c models.Customer, ingredients []models.Ingredient) models.DrinkVerdict {
	satisfied := models.Satisfies(c.DrinkPreference, ingredients)

	flavors := make([]string, len(ingredients))
	for i, in := range ingredients {
		flavors[i] = string(in.Flavor)
	}
	var wire struct {
		Comment string `json:"comment"`
	}
	data := struct {
		Name, Preference, Flavors string
		Satisfied                 bool
	}{c.Name, string(c.DrinkPreference), strings.Join(flavors, ", "), satisfied}
	if err := e.ask(ctx, e.model, "drink.txt", data, drinkSchema, &wire); err != nil {
		warn("drink", err)
		lines := e.tables.Drink.Sad
		if satisfied {
			lines = e.tables.Drink.Happy
		}
		return models.DrinkVerdict{Comment: e.pick(lines), Satisfied: satisfied}
	}
	return models.DrinkVerdict{Comment: wire.Comment, Satisfied: satisfied}
}

// GenerateDialogue voices a character's next line.
func (e *Engine) GenerateDialogue(ctx context.Context, p models.Persona, lastAction string) models.Dialogue {
	var wire struct {
		Text    string       `json:"text"`
		Options []optionWire `json:"options"`
	}
	data := struct {
		models.Persona
		LastAction string
	}{p, lastAction}
	if err := e.ask(ctx, e.model, "dialogue.txt", data, dialogueSchema, &wire); err != nil {
		warn("dialogue", err)
		d := e.tables.Dialogue
		return models.Dialogue{Text: fmt.Sprintf(d.Text, p.Name), Options: slices.Clone(d.Options)}
	}
	return models.Dialogue{Text: wire.Text, Options: toOptions(wire.Options)}
}

// GenerateEnemy names the night's attacker.
func (e *Engine) GenerateEnemy(ctx context.Context, day int) models.EnemyProfile {
	var wire struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := e.ask(ctx, e.model, "enemy.txt", struct{ Day int }{day}, enemySchema, &wire); err != nil {
		warn("enemy", err)
		return e.tables.Enemy
	}
	return models.EnemyProfile{Name: wire.Name, Description: wire.Description}
}

// GenerateEvent invents an interruption for a class.
func (e *Engine) GenerateEvent(ctx context.Context, subject string) models.RandomEvent {
	var wire eventWire
	if err := e.ask(ctx, e.model, "event.txt", struct{ Subject string }{subject}, eventSchema, &wire); err != nil {
		warn("event", err)
		ev := e.tables.Events[e.intn(len(e.tables.Events))]
		if ev.StatCheck != nil {
			sc := *ev.StatCheck
			ev.StatCheck = &sc
		}
		ev.ID = uuid.NewString()
		return ev
	}
	ev := models.RandomEvent{
		ID:          uuid.NewString(),
		Title:       wire.Title,
		Description: wire.Description,
		SuccessText: wire.SuccessText,
		FailText:    wire.FailText,
		Rewards:     models.Reward{Stat: wire.Rewards.Stat, Value: wire.Rewards.Value},
	}
	if sc := wire.StatCheck; sc != nil {
		ev.StatCheck = &models.StatCheck{Stat: sc.Stat, Value: sc.Value}
	}
	return ev
}

// GenerateMail writes a letter from a matched couple.
func (e *Engine) GenerateMail(ctx context.Context, coupleNames string, day int) *models.Mail {
	var wire mailWire
	data := struct {
		Names string
		Day   int
	}{coupleNames, day}
	if err := e.ask(ctx, e.model, "mail.txt", data, mailSchema, &wire); err != nil {
		warn("mail", err)
		m := e.fallbackMail(e.tables.Mails, day)
		m.SenderNames = coupleNames
		m.Type = models.MailFeedback
		return &m
	}
	return &models.Mail{
		ID:          uuid.NewString(),
		SenderNames: coupleNames,
		Subject:     wire.Subject,
		Content:     wire.Content,
		DayReceived: day,
		Options:     toOptions(wire.Options),
		Type:        models.MailFeedback,
	}
}

// GenerateConsultationMail writes a stranger's plea for advice.
func (e *Engine) GenerateConsultationMail(ctx context.Context, day int) models.Mail {
	var wire mailWire
	if err := e.ask(ctx, e.model, "consultation.txt", struct{ Day int }{day}, mailSchema, &wire); err != nil {
		warn("consultation", err)
		m := e.fallbackMail(e.tables.Consultations, day)
		m.Type = models.MailConsultation
		return m
	}
	sender := wire.SenderName
	if sender == "" {
		sender = "Anonymous"
	}
	return models.Mail{
		ID:          uuid.NewString(),
		SenderNames: sender,
		Subject:     wire.Subject,
		Content:     wire.Content,
		DayReceived: day,
		Options:     toOptions(wire.Options),
		Type:        models.MailConsultation,
	}
}

func (e *Engine) fallbackMail(pool []models.Mail, day int) models.Mail {
	m := pool[e.intn(len(pool))]
	m.ID = uuid.NewString()
	m.DayReceived = day
	m.Options = slices.Clone(m.Options)
	return m
}
