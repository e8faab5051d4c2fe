package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Inbox   key.Binding
	Claim   key.Binding

	University key.Binding
	Shop       key.Binding
	Home       key.Binding
	Bar        key.Binding

	Resolve key.Binding
	Rest    key.Binding

	Tab     key.Binding
	Select  key.Binding
	Match   key.Binding
	Serve   key.Binding
	Recruit key.Binding
	Visitor key.Binding
	Close   key.Binding
	Hire    key.Binding
	Chat    key.Binding
	Talk    key.Binding
	Buy     key.Binding
	Leave   key.Binding

	Pour key.Binding
	Dump key.Binding
	Make key.Binding

	Attack  key.Binding
	Heal    key.Binding
	Restart key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "choose")),
		Inbox:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mail")),
		Claim:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "claim milestone")),

		University: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "university")),
		Shop:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shop")),
		Home:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Bar:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "open the bar")),

		Resolve: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "face the event")),
		Rest:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "nap")),

		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "guests/staff/decor")),
		Select:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		Match:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "tie the thread")),
		Serve:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "mix a drink")),
		Recruit: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recruit")),
		Visitor: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "greet visitor")),
		Close:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "close for the night")),
		Hire:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "hire")),
		Chat:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "quick chat")),
		Talk:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "talk")),
		Buy:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buy")),
		Leave:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "say goodbye")),

		Pour: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pour")),
		Dump: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dump")),
		Make: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "serve it")),

		Attack:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "attack")),
		Heal:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "heal")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
	}
}
