package game

import (
	"context"
	"errors"
	"fmt"
	mathrand "math/rand"
	"sync/atomic"
	"testing"

	"github.com/tatianab/cyber-temple/internal/models"
)

type fakeProvider struct {
	seq       atomic.Int64
	matchOK   bool
	evalSays  bool
	eventStat models.Stat
}

func (f *fakeProvider) next() string {
	return fmt.Sprintf("id-%d", f.seq.Add(1))
}

func (f *fakeProvider) GenerateCustomers(_ context.Context, count, day int) []models.Customer {
	out := make([]models.Customer, count)
	for i := range out {
		out[i] = models.Customer{
			ID:              f.next(),
			Name:            fmt.Sprintf("Guest %d-%d", day, i),
			MBTI:            "INFJ",
			DrinkPreference: models.FlavorSweet,
		}
	}
	return out
}

func (f *fakeProvider) CalculateMatch(_ context.Context, a, b models.Customer) models.MatchResult {
	score := 20
	if f.matchOK {
		score = 90
	}
	return models.MatchResult{Score: score, Success: f.matchOK, CoupleID: f.next(), Partner1Name: a.Name, Partner2Name: b.Name}
}

func (f *fakeProvider) EvaluateDrink(context.Context, models.Customer, []models.Ingredient) models.DrinkVerdict {
	return models.DrinkVerdict{Comment: "Hm.", Satisfied: f.evalSays}
}

func (f *fakeProvider) GenerateDialogue(_ context.Context, p models.Persona, _ string) models.Dialogue {
	return models.Dialogue{
		Text: p.Name + " smiles.",
		Options: []models.DialogueOption{
			{ID: "1", Text: "Kind words", Impact: models.ImpactPositive},
			{ID: "2", Text: "Small talk", Impact: models.ImpactNeutral},
			{ID: "3", Text: "Rude remark", Impact: models.ImpactNegative},
		},
	}
}

func (f *fakeProvider) GenerateEnemy(context.Context, int) models.EnemyProfile {
	return models.EnemyProfile{Name: "Glitch Wraith", Description: "Static with teeth."}
}

func (f *fakeProvider) GenerateEvent(_ context.Context, subject string) models.RandomEvent {
	ev := models.RandomEvent{ID: f.next(), Title: subject, SuccessText: "Nailed it.", FailText: "Oops.", Rewards: models.Reward{Stat: models.StatWisdom}}
	if f.eventStat != "" {
		ev.StatCheck = &models.StatCheck{Stat: f.eventStat, Value: 12}
	}
	return ev
}

func (f *fakeProvider) GenerateMail(_ context.Context, names string, day int) *models.Mail {
	return &models.Mail{ID: f.next(), SenderNames: names, Subject: "Thanks", DayReceived: day, Type: models.MailFeedback,
		Options: []models.DialogueOption{{Text: "Congratulations!", Impact: models.ImpactPositive}}}
}

func (f *fakeProvider) GenerateConsultationMail(_ context.Context, day int) models.Mail {
	return models.Mail{ID: f.next(), SenderNames: "Anonymous", Subject: "Help", DayReceived: day, Type: models.MailConsultation,
		Options: []models.DialogueOption{
			{Text: "Be honest", Impact: models.ImpactPositive},
			{Text: "Wait and see", Impact: models.ImpactNeutral},
			{Text: "Give up", Impact: models.ImpactNegative},
		}}
}

// quietRules switches off every random interruption.
func quietRules() models.Rules {
	r := models.DefaultRules()
	r.CombatChance = 0
	r.CombatEveryNDays = 0
	r.FeedbackMailChance = 0
	r.ClassEventChance = 0
	r.NPCVisitChance = 0
	r.LoveVisitChance = 0
	return r
}

func newTestGame(t *testing.T, p *fakeProvider, r models.Rules) *Game {
	t.Helper()
	return New(p, WithRules(r), WithRand(mathrand.New(mathrand.NewSource(1))))
}

func run(t *testing.T, g *Game, tasks []Task, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("action failed: %v", err)
	}
	if err := Await(context.Background(), g, tasks...); err != nil {
		t.Fatalf("Await: %v", err)
	}
}

func toMap(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	tasks, err := g.BeginDay()
	run(t, g, tasks, err)
}

func travel(t *testing.T, g *Game, d Destination) {
	t.Helper()
	tasks, err := g.Travel(d)
	run(t, g, tasks, err)
}

func toBar(t *testing.T, g *Game) {
	t.Helper()
	toMap(t, g)
	travel(t, g, DestBar)
}

func TestNewGameStats(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	want := models.PlayerStats{Energy: 100, Money: 500, Day: 1, MaxEnergy: 100, Logic: 10, Wisdom: 10, Charisma: 10}
	if g.Stats() != want {
		t.Errorf("Expected %+v, got %+v", want, g.Stats())
	}
	if g.Phase() != models.PhaseStartScreen {
		t.Errorf("Expected START_SCREEN, got %s", g.Phase())
	}
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		from, to models.Phase
		ok       bool
	}{
		{models.PhaseStartScreen, models.PhaseStoryIntro, true},
		{models.PhaseStartScreen, models.PhaseDayMap, false},
		{models.PhaseDayMap, models.PhaseNightBar, true},
		{models.PhaseDayShop, models.PhaseDayHome, false},
		{models.PhaseNightBar, models.PhaseCombat, true},
		{models.PhaseNightBar, models.PhaseGameOver, false},
		{models.PhaseCombat, models.PhaseGameOver, true},
		{models.PhaseGameOver, models.PhaseStartScreen, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.ok)
		}
	}

	g := newTestGame(t, &fakeProvider{}, quietRules())
	if _, err := g.Travel(DestShop); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Expected ErrIllegalTransition from the title screen, got %v", err)
	}
	if g.Phase() != models.PhaseStartScreen {
		t.Errorf("Rejected travel changed the phase to %s", g.Phase())
	}
}

func TestEndOfDayPaysWages(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	g.staff[0].IsHired = true // Susu, salary 50
	toBar(t, g)
	g.UpdateStats(models.StatsPatch{models.StatEnergy: 40, models.StatRestCount: 2})

	tasks, err := g.CloseBar()
	run(t, g, tasks, err)

	s := g.Stats()
	if s.Money != 450 || s.Day != 2 || s.Energy != 100 || s.RestCount != 0 {
		t.Errorf("Expected money 450, day 2, energy 100, rest 0; got %+v", s)
	}
	if g.Phase() != models.PhaseDayMap {
		t.Errorf("Expected DAY_MAP, got %s", g.Phase())
	}
	if g.Bar() != nil {
		t.Error("Expected the bar to be closed")
	}
}

func TestDaysOnlyMoveForward(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toMap(t, g)
	for want := 2; want <= 6; want++ {
		tasks, err := g.Travel(DestBar)
		run(t, g, tasks, err)
		if r := g.Romance(); r != nil {
			if err := g.LeaveRomance(); err != nil {
				t.Fatalf("LeaveRomance: %v", err)
			}
		}
		tasks, err = g.CloseBar()
		run(t, g, tasks, err)
		if g.Stats().Day != want {
			t.Fatalf("Expected day %d, got %d", want, g.Stats().Day)
		}
	}
}

func TestSelection(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toBar(t, g)
	cs := g.Bar().Customers()
	if len(cs) < 4 || len(cs) > 6 {
		t.Fatalf("Expected 4 to 6 customers, got %d", len(cs))
	}
	for _, c := range cs[:2] {
		if err := g.ToggleSelect(c.ID); err != nil {
			t.Fatalf("ToggleSelect: %v", err)
		}
	}
	if err := g.ToggleSelect(cs[2].ID); !errors.Is(err, ErrSelection) {
		t.Errorf("Expected ErrSelection for a third pick, got %v", err)
	}
	if got := g.Bar().Selected(); len(got) != 2 || got[0] != cs[0].ID || got[1] != cs[1].ID {
		t.Errorf("Selection changed after rejection: %v", got)
	}
	if err := g.ToggleSelect(cs[0].ID); err != nil {
		t.Fatalf("ToggleSelect: %v", err)
	}
	if got := g.Bar().Selected(); len(got) != 1 || got[0] != cs[1].ID {
		t.Errorf("Expected only %s selected, got %v", cs[1].ID, got)
	}
}

func selectTwo(t *testing.T, g *Game) (models.Customer, models.Customer) {
	t.Helper()
	cs := g.Bar().Customers()
	for _, c := range cs[:2] {
		if err := g.ToggleSelect(c.ID); err != nil {
			t.Fatalf("ToggleSelect: %v", err)
		}
	}
	return cs[0], cs[1]
}

func TestMatchNeedsEnergy(t *testing.T) {
	g := newTestGame(t, &fakeProvider{matchOK: true}, quietRules())
	toBar(t, g)
	selectTwo(t, g)
	g.UpdateStats(models.StatsPatch{models.StatEnergy: 15})
	before := g.Stats()

	if _, err := g.AttemptMatch(); !errors.Is(err, ErrNotEnoughEnergy) {
		t.Fatalf("Expected ErrNotEnoughEnergy, got %v", err)
	}
	if g.Stats() != before {
		t.Errorf("Rejected match changed stats: %+v", g.Stats())
	}
	if len(g.Bar().Selected()) != 2 || len(g.Couples()) != 0 {
		t.Error("Rejected match changed the bar")
	}
}

func TestMatchSuccess(t *testing.T) {
	g := newTestGame(t, &fakeProvider{matchOK: true}, quietRules())
	toBar(t, g)
	a, b := selectTwo(t, g)
	n := len(g.Bar().Customers())

	tasks, err := g.AttemptMatch()
	if err != nil {
		t.Fatalf("AttemptMatch: %v", err)
	}
	if !g.Bar().Pending(a.ID) || g.Stats().Energy != 80 {
		t.Error("Expected energy paid and the pair pending before the verdict")
	}
	run(t, g, tasks, nil)

	s := g.Stats()
	if s.Money != 700 || s.Cultivation != 30 || s.Reputation != 20 || s.Energy != 80 {
		t.Errorf("Unexpected stats after success: %+v", s)
	}
	if len(g.Bar().Customers()) != n-2 {
		t.Errorf("Expected the couple to leave, %d customers remain", len(g.Bar().Customers()))
	}
	if _, ok := g.Bar().find(b.ID); ok {
		t.Error("Matched customer still seated")
	}
	if c := g.Couples(); len(c) != 1 || c[0].CoupleNames() != a.Name+" & "+b.Name {
		t.Errorf("Unexpected couples: %+v", c)
	}
}

func TestMatchFailure(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toBar(t, g)
	selectTwo(t, g)
	n := len(g.Bar().Customers())

	tasks, err := g.AttemptMatch()
	run(t, g, tasks, err)

	if e := g.Stats().Energy; e != 70 {
		t.Errorf("Expected energy 70 after a failed match, got %d", e)
	}
	if len(g.Couples()) != 0 || len(g.MatchHistory()) != 1 {
		t.Errorf("Expected one failed attempt and no couples")
	}
	if len(g.Bar().Customers()) != n || len(g.Bar().Selected()) != 0 {
		t.Error("Failed match should keep both customers and clear the selection")
	}
}

func TestRecruitCapacity(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toBar(t, g)
	for len(g.Bar().Customers()) < g.Rules().MaxCustomers {
		tasks, err := g.Recruit()
		run(t, g, tasks, err)
	}
	energy := g.Stats().Energy
	if _, err := g.Recruit(); !errors.Is(err, ErrRosterFull) {
		t.Errorf("Expected ErrRosterFull, got %v", err)
	}
	if g.Stats().Energy != energy {
		t.Error("Rejected recruit cost energy")
	}
}

func TestRecruitWhileGuestsArrive(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toMap(t, g)
	opening, err := g.Travel(DestBar)
	if err != nil {
		t.Fatalf("Travel: %v", err)
	}

	var recruits []Task
	accepted := 0
	for {
		tasks, err := g.Recruit()
		if errors.Is(err, ErrRosterFull) {
			break
		}
		if err != nil {
			t.Fatalf("Recruit: %v", err)
		}
		accepted++
		recruits = append(recruits, tasks...)
	}
	if accepted > 4 {
		t.Fatalf("Accepted %d recruits while at least 4 guests were on their way", accepted)
	}
	run(t, g, append(opening, recruits...), nil)

	seated := len(g.Bar().Customers())
	if seated != g.Rules().MaxCustomers {
		t.Errorf("Expected a full bar, got %d guests", seated)
	}
	if first := seated - accepted; first < 4 || first > 6 {
		t.Errorf("Paid recruits were turned away: %d seated, %d recruited", seated, accepted)
	}
	if want := 100 - accepted*g.Rules().EnergyCostRecruit; g.Stats().Energy != want {
		t.Errorf("Expected energy %d, got %d", want, g.Stats().Energy)
	}
}

func TestBartending(t *testing.T) {
	p := &fakeProvider{evalSays: false}
	g := newTestGame(t, p, quietRules())
	toBar(t, g)
	c := g.Bar().Customers()[0]

	if err := g.Serve(c.ID); err != nil {
		t.Fatalf("Serve: %v", err)
	}
	// 18 + 10 + 2, with the sweet syrup matching the customer.
	for _, id := range []string{"base_4", "mix_3", "gar_1"} {
		if err := g.Pour(id); err != nil {
			t.Fatalf("Pour %s: %v", id, err)
		}
	}
	if cost := g.Mixer().LayerCost(); cost != 30 {
		t.Fatalf("Expected cost 30, got %d", cost)
	}
	tasks, err := g.MakeDrink()
	run(t, g, tasks, err)

	m := g.Mixer()
	if !m.Verdict().Satisfied {
		t.Error("Satisfaction must follow the flavors, not the provider")
	}
	earned := g.Stats().Money - 500
	if earned < 140 || earned >= 220 {
		t.Errorf("Expected earnings in [140, 220), got %d", earned)
	}
	if g.Stats().Reputation != 5 {
		t.Errorf("Expected reputation 5, got %d", g.Stats().Reputation)
	}
	if err := g.CloseMixer(); err != nil {
		t.Fatalf("CloseMixer: %v", err)
	}
	if err := g.Serve(c.ID); !errors.Is(err, ErrAlreadyServed) {
		t.Errorf("Expected ErrAlreadyServed, got %v", err)
	}
}

func TestBartendingUnsatisfied(t *testing.T) {
	g := newTestGame(t, &fakeProvider{evalSays: true}, quietRules())
	toBar(t, g)
	c := g.Bar().Customers()[0]
	if err := g.Serve(c.ID); err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if err := g.Pour("base_1"); err != nil {
		t.Fatalf("Pour: %v", err)
	}
	tasks, err := g.MakeDrink()
	run(t, g, tasks, err)

	if g.Mixer().Verdict().Satisfied {
		t.Error("A strong drink cannot satisfy a sweet tooth")
	}
	if s := g.Stats(); s.Money != 545 || s.Reputation != 0 {
		t.Errorf("Expected money 545 and reputation 0, got %+v", s)
	}
}

func TestMixerLimits(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toBar(t, g)
	if err := g.Serve(g.Bar().Customers()[0].ID); err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if _, err := g.MakeDrink(); !errors.Is(err, ErrEmptyMixer) {
		t.Errorf("Expected ErrEmptyMixer, got %v", err)
	}
	for range g.Rules().MaxLayers {
		if err := g.Pour("mix_1"); err != nil {
			t.Fatalf("Pour: %v", err)
		}
	}
	if err := g.Pour("mix_1"); !errors.Is(err, ErrMixerFull) {
		t.Errorf("Expected ErrMixerFull, got %v", err)
	}
	if _, err := g.CloseBar(); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy closing with the mixer open, got %v", err)
	}
}

func TestUpgradesExclusive(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toBar(t, g)
	g.UpdateStats(models.StatsPatch{models.StatMoney: 2000})

	if err := g.BuyUpgrade("bg_cyber"); err != nil {
		t.Fatalf("BuyUpgrade: %v", err)
	}
	if g.Stats().Money != 1200 {
		t.Errorf("Expected money 1200, got %d", g.Stats().Money)
	}
	if err := g.BuyUpgrade("furn_neon"); err != nil {
		t.Fatalf("BuyUpgrade: %v", err)
	}
	if err := g.BuyUpgrade("atm_pink"); !errors.Is(err, ErrNotEnoughMoney) {
		t.Errorf("Expected ErrNotEnoughMoney, got %v", err)
	}

	active := map[models.UpgradeType]int{}
	for _, u := range g.Upgrades() {
		if u.Active {
			active[u.Type]++
		}
	}
	for typ, n := range active {
		if n != 1 {
			t.Errorf("%d active upgrades of type %s", n, typ)
		}
	}
	if u, _ := g.ActiveUpgrade(models.UpgradeBackground); u.ID != "bg_cyber" {
		t.Errorf("Expected bg_cyber active, got %s", u.ID)
	}
}

func TestStaff(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toBar(t, g)

	if err := g.InteractStaff("staff_3"); !errors.Is(err, ErrNotHired) {
		t.Errorf("Expected ErrNotHired, got %v", err)
	}
	if err := g.HireStaff("staff_2"); !errors.Is(err, ErrNotEnoughMoney) {
		t.Errorf("Expected ErrNotEnoughMoney, got %v", err)
	}
	if err := g.HireStaff("staff_3"); err != nil {
		t.Fatalf("HireStaff: %v", err)
	}
	if err := g.HireStaff("staff_3"); !errors.Is(err, ErrAlreadyHired) {
		t.Errorf("Expected ErrAlreadyHired, got %v", err)
	}
	if g.Stats().Money != 200 || g.Charisma() != 15 {
		t.Errorf("Expected money 200 and charisma 15, got %d and %d", g.Stats().Money, g.Charisma())
	}

	g.UpdateStats(models.StatsPatch{models.StatEnergy: 3})
	if err := g.InteractStaff("staff_3"); err != nil {
		t.Fatalf("InteractStaff: %v", err)
	}
	if e := g.Stats().Energy; e != -2 {
		t.Errorf("Expected energy -2, got %d", e)
	}
	if a := g.Staff()[2].Affinity; a != 5 {
		t.Errorf("Expected affinity 5, got %d", a)
	}
}

func TestMilestoneClaimedOnce(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	if err := g.ClaimMilestone(); !errors.Is(err, ErrNotSatisfied) {
		t.Fatalf("Expected ErrNotSatisfied, got %v", err)
	}
	g.UpdateStats(models.StatsPatch{models.StatDay: 3})
	if !g.MilestoneSatisfied() {
		t.Fatal("Expected m1 satisfied on day 3")
	}
	if err := g.ClaimMilestone(); err != nil {
		t.Fatalf("ClaimMilestone: %v", err)
	}
	if g.Stats().Money != 1000 {
		t.Errorf("Expected money 1000, got %d", g.Stats().Money)
	}
	// The 500 reward is itself enough for m2, so the next claim must pay m2.
	if err := g.ClaimMilestone(); err != nil {
		t.Fatalf("ClaimMilestone: %v", err)
	}
	s := g.Stats()
	if s.Money != 1000 || s.Reputation != 50 {
		t.Errorf("Expected m2 paid once: %+v", s)
	}
	if err := g.ClaimMilestone(); !errors.Is(err, ErrNotSatisfied) {
		t.Errorf("Expected ErrNotSatisfied for m3, got %v", err)
	}
	claimed := 0
	for _, m := range g.Milestones() {
		if m.Claimed {
			claimed++
		}
	}
	if claimed != 2 {
		t.Errorf("Expected 2 claimed milestones, got %d", claimed)
	}
}

func TestCombatVictory(t *testing.T) {
	r := quietRules()
	r.CombatEveryNDays = 1
	g := newTestGame(t, &fakeProvider{}, r)
	toBar(t, g)

	tasks, err := g.CloseBar()
	run(t, g, tasks, err)
	if g.Phase() != models.PhaseCombat {
		t.Fatalf("Expected COMBAT, got %s", g.Phase())
	}
	c := g.Combat()
	if e := c.Enemy(); e.HP != 60 || e.Attack != 6 || e.Name != "Glitch Wraith" {
		t.Fatalf("Unexpected enemy %+v", e)
	}

	attacks := 0
	for !c.Over() {
		tasks, err := g.Attack()
		run(t, g, tasks, err)
		attacks++
	}
	if attacks != 6 || c.EnemyTurns() != 5 {
		t.Errorf("Expected 6 attacks and 5 enemy turns, got %d and %d", attacks, c.EnemyTurns())
	}
	if c.PlayerHP() != 70 || c.Turn() != TurnVictory {
		t.Errorf("Expected victory at 70 HP, got %d HP turn %d", c.PlayerHP(), c.Turn())
	}
	if s := g.Stats(); s.Day != 2 || s.Cultivation != 50 || g.Phase() != models.PhaseDayMap {
		t.Errorf("Expected day 2 with 50 cultivation on the map, got %+v in %s", s, g.Phase())
	}
}

func TestCombatDefeatAndRestart(t *testing.T) {
	r := quietRules()
	r.CombatEveryNDays = 1
	g := newTestGame(t, &fakeProvider{}, r)
	toBar(t, g)
	tasks, err := g.CloseBar()
	run(t, g, tasks, err)

	g.combat.enemy.Attack = 500
	if _, err := g.Heal(); err != nil {
		t.Fatalf("Heal: %v", err)
	}
	if g.Phase() != models.PhaseGameOver || g.Combat().Turn() != TurnDefeat {
		t.Fatalf("Expected GAME_OVER, got %s", g.Phase())
	}
	if _, err := g.Attack(); err == nil {
		t.Error("Expected attacks to be rejected after defeat")
	}
	if err := g.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if g.Phase() != models.PhaseStartScreen || g.Stats() != g.Rules().InitialStats() || len(g.Mails()) != 0 {
		t.Error("Restart did not reset the session")
	}
}

func TestRomanceDelta(t *testing.T) {
	r := quietRules()
	r.LoveVisitChance = 1
	g := newTestGame(t, &fakeProvider{}, r)
	toBar(t, g)

	rom := g.Romance()
	if rom == nil || rom.Waiting() || len(rom.Options()) != 3 {
		t.Fatalf("Expected an open romance with options, got %+v", rom)
	}
	if _, err := g.CloseBar(); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy closing during a romance, got %v", err)
	}
	id := rom.targetID

	tasks, err := g.Reply(0)
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if _, err := g.Reply(0); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy while waiting, got %v", err)
	}
	run(t, g, tasks, nil)
	tasks, err = g.Reply(2)
	run(t, g, tasks, err)

	if d := rom.Delta(); d != 5 {
		t.Errorf("Expected delta 5, got %d", d)
	}
	if err := g.LeaveRomance(); err != nil {
		t.Fatalf("LeaveRomance: %v", err)
	}
	for _, li := range g.LoveInterests() {
		if li.ID == id && (li.Affinity != 5 || li.FirstMeeting) {
			t.Errorf("Expected affinity 5 after the first meeting, got %+v", li)
		}
	}
}

func TestMailReply(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toMap(t, g)
	mails := g.Mails()
	if len(mails) != 1 || g.UnreadMail() != 1 {
		t.Fatalf("Expected one unread consultation, got %+v", mails)
	}
	id := mails[0].ID
	if _, err := g.OpenMail(id); err != nil {
		t.Fatalf("OpenMail: %v", err)
	}
	if g.UnreadMail() != 0 {
		t.Error("Opened mail still unread")
	}
	if err := g.ReplyMail(id, 0); err != nil {
		t.Fatalf("ReplyMail: %v", err)
	}
	if s := g.Stats(); s.Reputation != 20 || s.Cultivation != 10 {
		t.Errorf("Expected reputation 20 and cultivation 10, got %+v", s)
	}
	if err := g.ReplyMail(id, 2); !errors.Is(err, ErrResolved) {
		t.Errorf("Expected ErrResolved, got %v", err)
	}
	if g.Stats().Reputation != 20 {
		t.Error("Second reply changed reputation")
	}
}

func TestFeedbackMail(t *testing.T) {
	r := quietRules()
	r.FeedbackMailChance = 1
	g := newTestGame(t, &fakeProvider{matchOK: true}, r)
	toBar(t, g)
	selectTwo(t, g)
	tasks, err := g.AttemptMatch()
	run(t, g, tasks, err)
	tasks, err = g.CloseBar()
	run(t, g, tasks, err)

	feedback := 0
	for _, m := range g.Mails() {
		if m.Type == models.MailFeedback {
			feedback++
		}
	}
	if feedback != 1 {
		t.Errorf("Expected one feedback letter, got %d", feedback)
	}
}

func TestDayActions(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	toMap(t, g)

	travel(t, g, DestUniversity)
	tasks, err := g.AttendClass(0)
	run(t, g, tasks, err)
	if s := g.Stats(); s.Logic != 11 || s.Energy != 75 {
		t.Errorf("Expected logic 11 and energy 75, got %+v", s)
	}
	g.UpdateStats(models.StatsPatch{models.StatEnergy: 20})
	if _, err := g.AttendClass(1); !errors.Is(err, ErrNotEnoughEnergy) {
		t.Errorf("Expected ErrNotEnoughEnergy, got %v", err)
	}
	if err := g.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}

	travel(t, g, DestHome)
	for range 2 {
		if err := g.Rest(); err != nil {
			t.Fatalf("Rest: %v", err)
		}
	}
	if err := g.Rest(); !errors.Is(err, ErrRestLimit) {
		t.Errorf("Expected ErrRestLimit, got %v", err)
	}
	if s := g.Stats(); s.Energy != 80 || s.RestCount != 2 {
		t.Errorf("Expected energy 80 after two naps, got %+v", s)
	}
	if err := g.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}

	travel(t, g, DestShop)
	if err := g.Buy("item_energy"); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if s := g.Stats(); s.Energy != 100 || s.Money != 400 {
		t.Errorf("Expected energy capped at 100 and money 400, got %+v", s)
	}
	for range 2 {
		if err := g.Buy("item_wisdom"); err != nil && !errors.Is(err, ErrNotEnoughMoney) {
			t.Fatalf("Buy: %v", err)
		}
	}
	if s := g.Stats(); s.Wisdom != 15 || s.Money != 0 {
		t.Errorf("Expected one wisdom purchase, got %+v", s)
	}
}

func TestClassEvent(t *testing.T) {
	r := quietRules()
	r.ClassEventChance = 1
	g := newTestGame(t, &fakeProvider{eventStat: models.StatCharisma}, r)
	toMap(t, g)
	travel(t, g, DestUniversity)

	tasks, err := g.AttendClass(2)
	if err != nil {
		t.Fatalf("AttendClass: %v", err)
	}
	if err := g.ResolveEvent(); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy before the event arrives, got %v", err)
	}
	run(t, g, tasks, nil)
	if err := g.Back(); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy leaving with an event pending, got %v", err)
	}

	// Charisma 10 misses the check of 12.
	if err := g.ResolveEvent(); err != nil {
		t.Fatalf("ResolveEvent: %v", err)
	}
	if s := g.Stats(); s.Charisma != 10 || s.Wisdom != 10 {
		t.Errorf("Failed check must not reward: %+v", s)
	}

	g.UpdateStats(models.StatsPatch{models.StatCharisma: 12})
	tasks, err = g.AttendClass(2)
	run(t, g, tasks, err)
	if err := g.ResolveEvent(); err != nil {
		t.Fatalf("ResolveEvent: %v", err)
	}
	if w := g.Stats().Wisdom; w != 15 {
		t.Errorf("Expected the default reward of 5 wisdom, got %d", w)
	}
}

func TestEventPassesDefaults(t *testing.T) {
	s := models.PlayerStats{Logic: 10}
	if !EventPasses(models.RandomEvent{}, s) {
		t.Error("Expected logic 10 to pass the default check")
	}
	s.Logic = 9
	if EventPasses(models.RandomEvent{}, s) {
		t.Error("Expected logic 9 to fail the default check")
	}
}

func TestAwaitCompletionOrder(t *testing.T) {
	g := newTestGame(t, &fakeProvider{}, quietRules())
	release := make(chan struct{})
	var order []string

	slow := func(context.Context) Effect {
		<-release
		return func(*Game) { order = append(order, "slow") }
	}
	fast := func(context.Context) Effect {
		return func(*Game) {
			order = append(order, "fast")
			close(release)
		}
	}
	if err := Await(context.Background(), g, slow, fast); err != nil {
		t.Fatalf("Await: %v", err)
	}
	if len(order) != 2 || order[0] != "fast" || order[1] != "slow" {
		t.Errorf("Expected effects in completion order, got %v", order)
	}
}

func TestObserverSeesLogAndPhases(t *testing.T) {
	rec := &recorder{}
	g := New(&fakeProvider{}, WithRules(quietRules()), WithRand(mathrand.New(mathrand.NewSource(2))), WithObserver(rec))
	toBar(t, g)
	if len(rec.phases) != 3 || rec.phases[2] != models.PhaseNightBar {
		t.Errorf("Unexpected phase changes %v", rec.phases)
	}
	if len(rec.logs) == 0 {
		t.Error("Expected log entries to be observed")
	}
}

type recorder struct {
	logs   []models.LogEntry
	phases []models.Phase
}

func (r *recorder) Logged(_ int, _ models.Phase, e models.LogEntry) { r.logs = append(r.logs, e) }
func (r *recorder) PhaseChanged(_ int, _, to models.Phase)         { r.phases = append(r.phases, to) }
