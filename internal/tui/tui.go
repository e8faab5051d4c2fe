package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/cyber-temple/internal/game"
	"github.com/tatianab/cyber-temple/internal/models"
)

type barPanel int

const (
	panelGuests barPanel = iota
	panelStaff
	panelDecor
)

// FinishFunc is called once per run, when the player is defeated or quits
// mid-game.
type FinishFunc func(defeated bool, g *game.Game)

type model struct {
	game     *game.Game
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int

	flash   string
	cursor  int
	panel   barPanel
	inbox   bool
	reading string
	lastLog string

	finished bool
	onFinish FinishFunc
}

// effectMsg carries the result of a game task back to the update loop.
type effectMsg struct {
	effect game.Effect
}

func NewModel(g *game.Game, onFinish FinishFunc) model {
	vp := viewport.New(60, 10)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}
	return model{
		game:     g,
		keys:     newKeyMap(),
		help:     help.New(),
		viewport: vp,
		onFinish: onFinish,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.75)
		m.viewport.Height = max(4, msg.Height/3)
		m.help.Width = msg.Width

	case effectMsg:
		m.game.Apply(msg.effect)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.finish(false)
			return m, tea.Quit
		}
		m.flash = ""
		var err error
		cmd, err = m.handleKey(msg)
		if err != nil {
			m.flash = err.Error()
		}
		var vcmd tea.Cmd
		m.viewport, vcmd = m.viewport.Update(msg)
		cmd = tea.Batch(cmd, vcmd)
	}

	m.sync()
	return m, cmd
}

// sync refreshes the log view and reports a lost run.
func (m *model) sync() {
	entries := m.game.Log()
	if len(entries) > 0 && entries[len(entries)-1].ID != m.lastLog {
		m.lastLog = entries[len(entries)-1].ID
		m.viewport.SetContent(m.renderLog(entries))
		m.viewport.GotoBottom()
	}
	if m.game.Phase() == models.PhaseGameOver {
		m.finish(true)
	}
}

func (m *model) finish(defeated bool) {
	if m.finished || m.game.Phase() == models.PhaseStartScreen {
		return
	}
	m.finished = true
	if m.onFinish != nil {
		m.onFinish(defeated, m.game)
	}
}

// runTasks turns game tasks into commands. Each result comes back as an
// effectMsg in whatever order the tasks finish.
func runTasks(tasks []game.Task) tea.Cmd {
	if len(tasks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(tasks))
	for i, t := range tasks {
		cmds[i] = func() tea.Msg {
			return effectMsg{t(context.Background())}
		}
	}
	return tea.Batch(cmds...)
}

func run(tasks []game.Task, err error) (tea.Cmd, error) {
	return runTasks(tasks), err
}

func pickIndex(msg tea.KeyMsg) int {
	n, err := strconv.Atoi(msg.String())
	if err != nil {
		return -1
	}
	return n - 1
}

func destination(k keyMap, msg tea.KeyMsg) (game.Destination, bool) {
	switch {
	case key.Matches(msg, k.University):
		return game.DestUniversity, true
	case key.Matches(msg, k.Shop):
		return game.DestShop, true
	case key.Matches(msg, k.Home):
		return game.DestHome, true
	case key.Matches(msg, k.Bar):
		return game.DestBar, true
	}
	return 0, false
}

func (m *model) move(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(max(0, n-1), m.cursor+1)
	default:
		return false
	}
	return true
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	g := m.game
	if m.inbox {
		return nil, m.handleInbox(msg)
	}
	if g.Phase() != models.PhaseStartScreen && g.Phase() != models.PhaseStoryIntro {
		switch {
		case key.Matches(msg, m.keys.Inbox):
			m.inbox = true
			m.cursor = 0
			return nil, nil
		case key.Matches(msg, m.keys.Claim):
			return nil, g.ClaimMilestone()
		}
	}

	switch g.Phase() {
	case models.PhaseStartScreen:
		if key.Matches(msg, m.keys.Confirm) {
			return nil, g.Start()
		}
	case models.PhaseStoryIntro:
		if key.Matches(msg, m.keys.Confirm) {
			return run(g.BeginDay())
		}
	case models.PhaseDayMap:
		d, ok := destination(m.keys, msg)
		if ok {
			m.cursor, m.panel = 0, panelGuests
			return run(g.Travel(d))
		}
	case models.PhaseDayUniversity:
		switch {
		case key.Matches(msg, m.keys.Pick):
			return run(g.AttendClass(pickIndex(msg)))
		case key.Matches(msg, m.keys.Resolve):
			return nil, g.ResolveEvent()
		case key.Matches(msg, m.keys.Back):
			return nil, g.Back()
		}
	case models.PhaseDayShop:
		switch {
		case key.Matches(msg, m.keys.Pick):
			items := models.ShopItems()
			i := pickIndex(msg)
			if i < 0 || i >= len(items) {
				return nil, game.ErrNotFound
			}
			return nil, g.Buy(items[i].ID)
		case key.Matches(msg, m.keys.Back):
			return nil, g.Back()
		}
	case models.PhaseDayHome:
		switch {
		case key.Matches(msg, m.keys.Rest):
			return nil, g.Rest()
		case key.Matches(msg, m.keys.Back):
			return nil, g.Back()
		}
	case models.PhaseNightBar:
		return m.handleBar(msg)
	case models.PhaseCombat:
		switch {
		case key.Matches(msg, m.keys.Attack):
			return run(g.Attack())
		case key.Matches(msg, m.keys.Heal):
			return run(g.Heal())
		}
	case models.PhaseGameOver:
		if key.Matches(msg, m.keys.Restart) {
			if err := g.Restart(); err != nil {
				return nil, err
			}
			m.finished = false
			m.cursor = 0
		}
	}
	return nil, nil
}

func (m *model) handleBar(msg tea.KeyMsg) (tea.Cmd, error) {
	g := m.game

	if r := g.Romance(); r != nil {
		switch {
		case key.Matches(msg, m.keys.Pick):
			return run(g.Reply(pickIndex(msg)))
		case key.Matches(msg, m.keys.Leave):
			return nil, g.LeaveRomance()
		}
		return nil, nil
	}

	if mx := g.Mixer(); mx != nil {
		switch mx.State() {
		case game.MixerMixing:
			ings := models.Ingredients()
			if m.move(msg, len(ings)) {
				return nil, nil
			}
			switch {
			case key.Matches(msg, m.keys.Pour):
				if m.cursor >= len(ings) {
					return nil, game.ErrNotFound
				}
				return nil, g.Pour(ings[m.cursor].ID)
			case key.Matches(msg, m.keys.Dump):
				return nil, g.Dump()
			case key.Matches(msg, m.keys.Make):
				return run(g.MakeDrink())
			case key.Matches(msg, m.keys.Back):
				m.cursor = 0
				return nil, g.CancelServe()
			}
		case game.MixerDone:
			if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Back) {
				m.cursor = 0
				return nil, g.CloseMixer()
			}
		}
		return nil, nil
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.panel = (m.panel + 1) % 3
		m.cursor = 0
		return nil, nil
	case key.Matches(msg, m.keys.Close):
		return run(g.CloseBar())
	case key.Matches(msg, m.keys.Recruit):
		return run(g.Recruit())
	case key.Matches(msg, m.keys.Visitor):
		return nil, g.ReceiveVisitor()
	}

	switch m.panel {
	case panelGuests:
		var customers []models.Customer
		if bar := g.Bar(); bar != nil {
			customers = bar.Customers()
		}
		if m.move(msg, len(customers)) {
			return nil, nil
		}
		if key.Matches(msg, m.keys.Match) {
			return run(g.AttemptMatch())
		}
		if m.cursor >= len(customers) {
			return nil, nil
		}
		id := customers[m.cursor].ID
		switch {
		case key.Matches(msg, m.keys.Select):
			return nil, g.ToggleSelect(id)
		case key.Matches(msg, m.keys.Serve):
			m.cursor = 0
			return nil, g.Serve(id)
		}
	case panelStaff:
		staff := g.Staff()
		if m.move(msg, len(staff)) || m.cursor >= len(staff) {
			return nil, nil
		}
		id := staff[m.cursor].ID
		switch {
		case key.Matches(msg, m.keys.Hire):
			return nil, g.HireStaff(id)
		case key.Matches(msg, m.keys.Chat):
			return nil, g.InteractStaff(id)
		case key.Matches(msg, m.keys.Talk):
			return run(g.ChatWithStaff(id))
		}
	case panelDecor:
		ups := g.Upgrades()
		if m.move(msg, len(ups)) || m.cursor >= len(ups) {
			return nil, nil
		}
		if key.Matches(msg, m.keys.Buy) {
			return nil, g.BuyUpgrade(ups[m.cursor].ID)
		}
	}
	return nil, nil
}

func (m *model) handleInbox(msg tea.KeyMsg) error {
	g := m.game
	mails := g.Mails()
	if m.reading == "" && m.move(msg, len(mails)) {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Inbox):
		if m.reading != "" {
			m.reading = ""
			return nil
		}
		m.inbox = false
		m.cursor = 0
	case key.Matches(msg, m.keys.Confirm):
		if m.cursor >= len(mails) {
			return nil
		}
		mail, err := g.OpenMail(mails[m.cursor].ID)
		if err != nil {
			return err
		}
		m.reading = mail.ID
	case key.Matches(msg, m.keys.Pick):
		if m.reading == "" {
			return nil
		}
		return g.ReplyMail(m.reading, pickIndex(msg))
	}
	return nil
}

// Run starts the interactive session and blocks until the player quits.
func Run(g *game.Game, onFinish FinishFunc) error {
	p := tea.NewProgram(NewModel(g, onFinish), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
