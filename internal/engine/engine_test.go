package engine

import (
	"context"
	mathrand "math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/tatianab/cyber-temple/internal/game"
	"github.com/tatianab/cyber-temple/internal/models"
)

var _ game.ContentProvider = (*Engine)(nil)

func newOffline(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(context.Background(), "", "gemini-2.5-flash", mathrand.New(mathrand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if e.Online() {
		t.Fatal("Expected an offline engine without an API key")
	}
	return e
}

func TestOfflineCustomers(t *testing.T) {
	e := newOffline(t)
	ctx := context.Background()

	for _, n := range []int{1, 4, 30} {
		cs := e.GenerateCustomers(ctx, n, 1)
		if len(cs) != n {
			t.Fatalf("Expected %d customers, got %d", n, len(cs))
		}
		seen := map[string]bool{}
		for _, c := range cs {
			if c.ID == "" || seen[c.ID] {
				t.Errorf("Customer %q has a missing or duplicate id", c.Name)
			}
			seen[c.ID] = true
			if !slices.Contains(models.Flavors, c.DrinkPreference) {
				t.Errorf("Customer %q prefers unknown flavor %q", c.Name, c.DrinkPreference)
			}
			if len(c.MBTI) != 4 {
				t.Errorf("Customer %q has MBTI %q", c.Name, c.MBTI)
			}
		}
	}
}

func TestMatchScore(t *testing.T) {
	cases := []struct {
		a, b     string
		variance int
		want     int
	}{
		{"INFJ", "INFJ", 0, 65},
		{"ENFP", "INTJ", 0, 70},
		{"ESTP", "INFJ", 0, 55},
		{"ENFP", "INTJ", 29, 99},
		{"ENFP", "INTJ", 40, 100},
		{"ISTJ", "ESFP", -100, 0},
		{"", "INTJ", 0, 50},
	}
	for _, c := range cases {
		if got := MatchScore(c.a, c.b, c.variance); got != c.want {
			t.Errorf("MatchScore(%q, %q, %d) = %d, want %d", c.a, c.b, c.variance, got, c.want)
		}
	}
}

func TestOfflineMatch(t *testing.T) {
	e := newOffline(t)
	a := models.Customer{Name: "A", MBTI: "ENFP"}
	b := models.Customer{Name: "B", MBTI: "INTJ"}
	for range 50 {
		res := e.CalculateMatch(context.Background(), a, b)
		if res.Score < 60 || res.Score > 100 {
			t.Fatalf("Score %d outside the heuristic's range for this pair", res.Score)
		}
		if res.Success != (res.Score >= 60) {
			t.Errorf("Success %v does not follow score %d", res.Success, res.Score)
		}
		if res.CoupleID == "" || res.CoupleNames() != "A & B" {
			t.Errorf("Unexpected identity %+v", res)
		}
		if !strings.HasSuffix(res.Description, "(offline forecast)") {
			t.Errorf("Unexpected description %q", res.Description)
		}
	}
}

func TestEvaluateDrinkFollowsFlavors(t *testing.T) {
	e := newOffline(t)
	c := models.Customer{Name: "Nezha", DrinkPreference: models.FlavorRefreshing}
	cases := []struct {
		ids  []string
		want bool
	}{
		{[]string{"base_1"}, false},
		{[]string{"base_1", "mix_1"}, true},
		{[]string{"gar_4"}, true},
		{nil, false},
	}
	byID := map[string]models.Ingredient{}
	for _, in := range models.Ingredients() {
		byID[in.ID] = in
	}
	for _, tc := range cases {
		var ins []models.Ingredient
		for _, id := range tc.ids {
			ins = append(ins, byID[id])
		}
		v := e.EvaluateDrink(context.Background(), c, ins)
		if v.Satisfied != tc.want {
			t.Errorf("%v: satisfied = %v, want %v", tc.ids, v.Satisfied, tc.want)
		}
		if v.Comment == "" {
			t.Errorf("%v: empty comment", tc.ids)
		}
	}
}

func TestOfflineMailAndDialogue(t *testing.T) {
	e := newOffline(t)
	ctx := context.Background()

	m := e.GenerateMail(ctx, "A & B", 4)
	if m == nil || m.SenderNames != "A & B" || m.DayReceived != 4 || m.Type != models.MailFeedback || len(m.Options) == 0 {
		t.Errorf("Unexpected feedback mail %+v", m)
	}
	c := e.GenerateConsultationMail(ctx, 2)
	if c.ID == "" || c.Type != models.MailConsultation || c.DayReceived != 2 {
		t.Errorf("Unexpected consultation %+v", c)
	}
	c.Options[0].Text = "changed"
	if again := e.tables.Consultations; slices.ContainsFunc(again, func(m models.Mail) bool { return m.Options[0].Text == "changed" }) {
		t.Error("Fallback mail shares options with the table")
	}

	d := e.GenerateDialogue(ctx, models.Persona{Name: "Amy"}, "hello")
	if !strings.Contains(d.Text, "Amy") || len(d.Options) != 3 {
		t.Errorf("Unexpected dialogue %+v", d)
	}
	if ev := e.GenerateEvent(ctx, "logic"); ev.ID == "" || ev.Title == "" {
		t.Errorf("Unexpected event %+v", ev)
	}
	if en := e.GenerateEnemy(ctx, 3); en.Name == "" {
		t.Error("Expected a fallback enemy name")
	}
}

func TestDecodeCustomers(t *testing.T) {
	good := "```json\n" + `[{"name":"Chang'e_Space","gender":"female","age":28,"job":"Commander","mbti":"ISFP",
		"appearance":"Spacesuit","bio":"Lonely.","requirement":"Likes rabbits.","mood":"sad",
		"drinkPreference":"refreshing","drinkHint":"Cold as the moon."}]` + "\n```"
	var cs []customerWire
	if err := decode(good, customersSchema, &cs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cs) != 1 || cs[0].DrinkPreference != models.FlavorRefreshing || cs[0].Age != 28 {
		t.Errorf("Unexpected customers %+v", cs)
	}

	bad := []string{
		`[]`,
		`[{"name":"X","gender":"female","age":1,"job":"","mbti":"ISFP","appearance":"","bio":"","requirement":"","mood":"","drinkPreference":"salty","drinkHint":""}]`,
		`[{"name":"X","gender":"female","age":1,"job":"","mbti":"ABCD","appearance":"","bio":"","requirement":"","mood":"","drinkPreference":"sweet","drinkHint":""}]`,
		`[{"name":"X"}]`,
		`not json`,
	}
	for _, b := range bad {
		if err := decode(b, customersSchema, &cs); err == nil {
			t.Errorf("Expected %q to be rejected", b)
		}
	}
}

func TestDecodeEvent(t *testing.T) {
	doc := `{"title":"Pop quiz","description":"Surprise!","statCheck":{"stat":"wisdom","value":18},
		"successText":"Aced it.","failText":"Blanked.","rewards":{"stat":"reputation","value":12}}`
	var ev eventWire
	if err := decode(doc, eventSchema, &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.StatCheck == nil || ev.StatCheck.Stat != models.StatWisdom || ev.Rewards.Stat != models.StatReputation {
		t.Errorf("Unexpected event %+v", ev)
	}

	if err := decode(`{"title":"x","description":"","successText":"","failText":"","rewards":{"stat":"money","value":1}}`, eventSchema, &ev); err == nil {
		t.Error("Expected a money reward to be rejected")
	}
}

func TestDecodeMatch(t *testing.T) {
	var m struct {
		Score int `json:"score"`
	}
	if err := decode(`{"score":"high","description":"x","success":true}`, matchSchema, &m); err == nil {
		t.Error("Expected a string score to be rejected")
	}
	if err := decode(`{"score":72,"description":"x","success":true}`, matchSchema, &m); err != nil || m.Score != 72 {
		t.Errorf("Expected score 72, got %d (%v)", m.Score, err)
	}
}

func TestFallbackTables(t *testing.T) {
	tb, err := loadTables()
	if err != nil {
		t.Fatalf("loadTables: %v", err)
	}
	for _, ev := range tb.Events {
		if ev.StatCheck == nil || ev.Rewards.Stat == "" {
			t.Errorf("Event %q lacks a check or reward", ev.Title)
		}
	}
	for _, m := range append(slices.Clone(tb.Mails), tb.Consultations...) {
		if len(m.Options) == 0 {
			t.Errorf("Mail %q has no options", m.Subject)
		}
	}
	if len(tb.Match.Success) == 0 || len(tb.Match.Failure) == 0 || len(tb.Drink.Happy) == 0 || len(tb.Drink.Sad) == 0 {
		t.Error("Missing line tables")
	}
}
