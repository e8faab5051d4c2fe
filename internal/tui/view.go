package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/cyber-temple/internal/game"
	"github.com/tatianab/cyber-temple/internal/models"
)

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	readyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFD700")).
			Bold(true).
			Padding(0, 1)

	logStyles = map[models.LogType]lipgloss.Style{
		models.LogInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		models.LogSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
		models.LogFailure: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		models.LogCombat:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8700")).Bold(true),
		models.LogRomance: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF87D7")),
		models.LogMail:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")),
		models.LogNPC:     lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AF5F")).Italic(true),
	}
)

func (m model) View() string {
	var body string
	switch {
	case m.inbox:
		body = m.renderInbox()
	default:
		body = m.renderScreen()
	}

	logView := m.viewport.View()
	stateView := m.renderState()
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, logView, stateView)

	parts := []string{m.renderStatus(), "", body, "", mainView}
	if m.flash != "" {
		parts = append(parts, flashStyle.Render("! "+m.flash))
	}
	parts = append(parts, helpStyle.Render(m.help.ShortHelpView(m.bindings())))
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m model) renderStatus() string {
	g := m.game
	if g.Phase() == models.PhaseStartScreen {
		return titleStyle.Render("CYBER TEMPLE")
	}
	s := g.Stats()
	status := fmt.Sprintf("Day %d  %s  Energy %d/%d  Incense %d  Cultivation %d  Rep %d  Couples %d",
		s.Day, g.Phase(), s.Energy, s.MaxEnergy, s.Money, s.Cultivation, s.Reputation, len(g.Couples()))
	if n := g.UnreadMail(); n > 0 {
		status += fmt.Sprintf("  Mail (%d)", n)
	}
	return gameStyle.Bold(true).Render(status)
}

func (m model) renderScreen() string {
	g := m.game
	switch g.Phase() {
	case models.PhaseStartScreen:
		return "Welcome to the Cyber Temple.\n\nPress enter to begin."
	case models.PhaseStoryIntro:
		return gameStyle.Width(max(40, m.width-4)).Render(
			"You are the newest matchmaker of the Yue Lao temple, exiled to a neon city " +
				"to run a bar by night and study by day. Tie enough red threads and the " +
				"tree of fate will grow again.\n\nPress enter to start day one.")
	case models.PhaseDayMap:
		return titleStyle.Render("WHERE TO?") + "\n" +
			"[u] University   [s] Shop   [h] Home   [b] Open the bar"
	case models.PhaseDayUniversity:
		return m.renderUniversity()
	case models.PhaseDayShop:
		var b strings.Builder
		b.WriteString(titleStyle.Render("SHOP") + "\n")
		for i, it := range models.ShopItems() {
			fmt.Fprintf(&b, "[%d] %s (%d) - %s\n", i+1, it.Name, it.Price, it.Desc)
		}
		return b.String()
	case models.PhaseDayHome:
		s := g.Stats()
		return titleStyle.Render("HOME") + "\n" +
			fmt.Sprintf("Naps today: %d/%d", s.RestCount, g.Rules().MaxRestPerDay)
	case models.PhaseNightBar:
		return m.renderBar()
	case models.PhaseCombat:
		return m.renderCombat()
	case models.PhaseGameOver:
		return titleStyle.Render("GAME OVER") + "\n" +
			fmt.Sprintf("You lasted %d days and tied %d red threads.", g.Stats().Day, len(g.Couples()))
	}
	return ""
}

func (m model) renderUniversity() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("UNIVERSITY") + "\n")
	if ev := m.game.PendingEvent(); ev != nil {
		b.WriteString(userStyle.Render(ev.Title) + "\n")
		if ev.ID == "" {
			b.WriteString("...\n")
			return b.String()
		}
		b.WriteString(ev.Description + "\n")
		if ev.StatCheck != nil {
			fmt.Fprintf(&b, "Check: %s %d\n", ev.StatCheck.Stat, ev.StatCheck.Value)
		}
		return b.String()
	}
	for i, c := range models.Classes() {
		fmt.Fprintf(&b, "[%d] %s (+%s) - %s\n", i+1, c.Name, c.Stat, c.Desc)
	}
	return b.String()
}

func (m model) renderBar() string {
	g := m.game
	if r := g.Romance(); r != nil {
		return renderRomance(r)
	}
	if mx := g.Mixer(); mx != nil {
		return m.renderMixer(mx)
	}

	var b strings.Builder
	tabs := []string{"Guests", "Staff", "Decor"}
	for i, t := range tabs {
		if barPanel(i) == m.panel {
			t = userStyle.Render(t)
		}
		b.WriteString(t + "  ")
	}
	b.WriteString("\n")

	bar := g.Bar()
	if bar != nil && bar.Visitor() != nil {
		v := bar.Visitor()
		fmt.Fprintf(&b, "%s, %s, is waiting at the door.\n", v.Name, v.Title)
	}

	switch m.panel {
	case panelGuests:
		if bar == nil || len(bar.Customers()) == 0 {
			b.WriteString("The bar is quiet...\n")
			break
		}
		for i, c := range bar.Customers() {
			mark := " "
			switch {
			case bar.Pending(c.ID):
				mark = "~"
			case bar.IsSelected(c.ID):
				mark = "*"
			}
			served := ""
			if c.Served {
				served = " (served)"
			}
			line := fmt.Sprintf("%s %s, %d, %s, %s%s - %s", mark, c.Name, c.Age, c.Job, c.MBTI, served, c.Requirement)
			b.WriteString(m.item(i, line) + "\n")
		}
		if last := bar.LastMatch(); last != nil {
			fmt.Fprintf(&b, "\nLast forecast: %d%% - %s\n", last.Score, last.Description)
		}
	case panelStaff:
		for i, s := range g.Staff() {
			state := fmt.Sprintf("hire %d, salary %d", s.Cost, s.Salary)
			if s.IsHired {
				state = fmt.Sprintf("hired, affinity %d", s.Affinity)
			}
			b.WriteString(m.item(i, fmt.Sprintf("%s, %s (%s) - %s", s.Name, s.Role, state, s.Desc)) + "\n")
		}
	case panelDecor:
		for i, u := range g.Upgrades() {
			state := fmt.Sprintf("%d", u.Price)
			if u.Active {
				state = "active"
			}
			b.WriteString(m.item(i, fmt.Sprintf("[%s] %s (%s, +%d rep) - %s", u.Type, u.Name, state, u.ReputationBonus, u.Desc)) + "\n")
		}
	}
	return b.String()
}

func (m model) item(i int, line string) string {
	if i == m.cursor {
		return cursorStyle.Render("> " + line)
	}
	return "  " + line
}

func (m model) renderMixer(mx *game.Mixer) string {
	var b strings.Builder
	c := mx.Customer()
	fmt.Fprintf(&b, "%s\n%s looks %s. %q\n", titleStyle.Render("MIXING"), c.Name, c.Mood, c.DrinkHint)

	var glass []string
	for _, in := range mx.Layers() {
		glass = append(glass, in.Name)
	}
	fmt.Fprintf(&b, "Glass: [%s] cost %d\n\n", strings.Join(glass, " | "), mx.LayerCost())

	switch mx.State() {
	case game.MixerMixing:
		for i, in := range models.Ingredients() {
			b.WriteString(m.item(i, fmt.Sprintf("%s (%s, %s, %d)", in.Name, in.Type, in.Flavor, in.Cost)) + "\n")
		}
	case game.MixerTasting:
		b.WriteString(c.Name + " takes a sip...\n")
	case game.MixerDone:
		v := mx.Verdict()
		fmt.Fprintf(&b, "%q\nEarned %d incense.\n", v.Comment, mx.Earnings())
	}
	return b.String()
}

func renderRomance(r *game.Romance) string {
	var b strings.Builder
	p := r.Persona()
	fmt.Fprintf(&b, "%s  affinity %d (%+d)\n", titleStyle.Render(p.Name), r.Affinity(), r.Delta())
	for _, l := range r.History() {
		if l.FromPlayer {
			b.WriteString(userStyle.Render("> "+l.Text) + "\n")
		} else {
			b.WriteString(gameStyle.Render(l.Text) + "\n")
		}
	}
	if r.Waiting() {
		b.WriteString("...\n")
		return b.String()
	}
	for i, o := range r.Options() {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, o.Text)
	}
	return b.String()
}

func (m model) renderCombat() string {
	c := m.game.Combat()
	if c == nil {
		return ""
	}
	e := c.Enemy()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", titleStyle.Render(e.Name), e.Description)
	fmt.Fprintf(&b, "Enemy HP %d/%d   Your HP %d/%d\n\n", e.HP, e.MaxHP, c.PlayerHP(), c.PlayerMaxHP())
	lines := c.Lines()
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	for _, l := range lines {
		b.WriteString(logStyles[models.LogCombat].Render(l) + "\n")
	}
	return b.String()
}

func (m model) renderInbox() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("INBOX") + "\n")
	mails := m.game.Mails()
	if m.reading != "" {
		for _, ml := range mails {
			if ml.ID != m.reading {
				continue
			}
			fmt.Fprintf(&b, "From: %s\nSubject: %s\n\n%s\n\n", ml.SenderNames, ml.Subject, ml.Content)
			if ml.Resolved {
				b.WriteString("(answered)\n")
				break
			}
			for i, o := range ml.Options {
				fmt.Fprintf(&b, "[%d] %s\n", i+1, o.Text)
			}
		}
		return b.String()
	}
	if len(mails) == 0 {
		return b.String() + "No mail yet.\n"
	}
	for i, ml := range mails {
		mark := " "
		if !ml.IsRead {
			mark = "*"
		}
		b.WriteString(m.item(i, fmt.Sprintf("%s day %d  %s: %s", mark, ml.DayReceived, ml.SenderNames, ml.Subject)) + "\n")
	}
	return b.String()
}

func (m model) renderState() string {
	g := m.game
	if g.Phase() == models.PhaseStartScreen {
		return ""
	}
	s := g.Stats()

	var b strings.Builder
	b.WriteString(titleStyle.Render("STATS") + "\n")
	fmt.Fprintf(&b, "Logic: %d\nWisdom: %d\nCharisma: %d\n\n", s.Logic, s.Wisdom, g.Charisma())

	b.WriteString(titleStyle.Render("MILESTONE") + "\n")
	ms, done := g.ActiveMilestone()
	switch {
	case done:
		b.WriteString("All milestones reached.\n")
	case g.MilestoneSatisfied():
		b.WriteString(ms.Title + "\n" + readyStyle.Render("press c to claim") + "\n")
	default:
		b.WriteString(ms.Title + "\n" + ms.Desc + "\n")
	}

	var hired []string
	for _, st := range g.Staff() {
		if st.IsHired {
			hired = append(hired, st.Name)
		}
	}
	if len(hired) > 0 {
		b.WriteString("\n" + titleStyle.Render("STAFF") + "\n" + strings.Join(hired, "\n") + "\n")
	}

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(b.String())
}

func (m model) renderLog(entries []models.LogEntry) string {
	var b strings.Builder
	for _, e := range entries {
		style, ok := logStyles[e.Type]
		if !ok {
			style = gameStyle
		}
		b.WriteString(style.Width(max(20, m.viewport.Width)).Render(e.Text) + "\n")
	}
	return b.String()
}

func (m model) bindings() []key.Binding {
	k := m.keys
	g := m.game
	global := []key.Binding{k.Inbox, k.Claim, k.Quit}

	if m.inbox {
		if m.reading != "" {
			return []key.Binding{k.Pick, k.Back}
		}
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Back}
	}

	switch g.Phase() {
	case models.PhaseStartScreen, models.PhaseStoryIntro:
		return []key.Binding{k.Confirm, k.Quit}
	case models.PhaseDayMap:
		return append([]key.Binding{k.University, k.Shop, k.Home, k.Bar}, global...)
	case models.PhaseDayUniversity:
		return append([]key.Binding{k.Pick, k.Resolve, k.Back}, global...)
	case models.PhaseDayShop:
		return append([]key.Binding{k.Pick, k.Back}, global...)
	case models.PhaseDayHome:
		return append([]key.Binding{k.Rest, k.Back}, global...)
	case models.PhaseCombat:
		return append([]key.Binding{k.Attack, k.Heal}, global...)
	case models.PhaseGameOver:
		return []key.Binding{k.Restart, k.Quit}
	}

	if g.Romance() != nil {
		return []key.Binding{k.Pick, k.Leave}
	}
	if mx := g.Mixer(); mx != nil {
		if mx.State() == game.MixerDone {
			return []key.Binding{k.Confirm}
		}
		return []key.Binding{k.Up, k.Down, k.Pour, k.Dump, k.Make, k.Back}
	}
	switch m.panel {
	case panelStaff:
		return append([]key.Binding{k.Tab, k.Up, k.Down, k.Hire, k.Chat, k.Talk, k.Close}, global...)
	case panelDecor:
		return append([]key.Binding{k.Tab, k.Up, k.Down, k.Buy, k.Close}, global...)
	}
	return append([]key.Binding{k.Tab, k.Up, k.Down, k.Select, k.Match, k.Serve, k.Recruit, k.Visitor, k.Close}, global...)
}
