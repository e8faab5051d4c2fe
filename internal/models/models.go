package models

// Phase identifies the screen the player currently occupies.
type Phase int

const (
	PhaseStartScreen Phase = iota
	PhaseStoryIntro
	PhaseDayMap
	PhaseDayUniversity
	PhaseDayShop
	PhaseDayHome
	PhaseNightBar
	PhaseCombat
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseStartScreen:   "START_SCREEN",
	PhaseStoryIntro:    "STORY_INTRO",
	PhaseDayMap:        "DAY_MAP",
	PhaseDayUniversity: "DAY_UNIVERSITY",
	PhaseDayShop:       "DAY_SHOP",
	PhaseDayHome:       "DAY_HOME",
	PhaseNightBar:      "NIGHT_BAR",
	PhaseCombat:        "COMBAT",
	PhaseGameOver:      "GAME_OVER",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

// Flavor is the taste tag shared by ingredients and customer preferences.
type Flavor string

const (
	FlavorStrong     Flavor = "strong"
	FlavorSweet      Flavor = "sweet"
	FlavorBitter     Flavor = "bitter"
	FlavorSour       Flavor = "sour"
	FlavorRefreshing Flavor = "refreshing"
	FlavorSpicy      Flavor = "spicy"
)

// Flavors lists every valid flavor.
var Flavors = []Flavor{FlavorStrong, FlavorSweet, FlavorBitter, FlavorSour, FlavorRefreshing, FlavorSpicy}

// Customer is a patron sitting in the bar for one night.
type Customer struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Gender          string `yaml:"gender"` // "male", "female", "non-binary"
	Age             int    `yaml:"age"`
	Job             string `yaml:"job"`
	MBTI            string `yaml:"mbti"`
	Appearance      string `yaml:"appearance"`
	Bio             string `yaml:"bio"`
	Requirement     string `yaml:"requirement"`
	IsRegular       bool   `yaml:"is_regular"`
	Served          bool   `yaml:"served"`
	Mood            string `yaml:"mood"`
	DrinkPreference Flavor `yaml:"drink_preference"`
	DrinkHint       string `yaml:"drink_hint"`
}

// MatchResult is the outcome of pairing two customers.
type MatchResult struct {
	Score        int    `yaml:"score"`
	Description  string `yaml:"description"`
	Success      bool   `yaml:"success"`
	CoupleID     string `yaml:"couple_id,omitempty"`
	Partner1Name string `yaml:"partner1_name,omitempty"`
	Partner2Name string `yaml:"partner2_name,omitempty"`
}

// CoupleNames renders the pair the way mail senders are addressed.
func (m MatchResult) CoupleNames() string {
	return m.Partner1Name + " & " + m.Partner2Name
}

// Impact tags a reply option by how well it lands.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// DialogueOption is a reply the player can pick in a dialogue or a mail.
type DialogueOption struct {
	ID     string `yaml:"id"`
	Text   string `yaml:"text"`
	Impact Impact `yaml:"impact"`
}

// MailType distinguishes couple feedback from strangers' consultations.
type MailType string

const (
	MailFeedback     MailType = "feedback"
	MailConsultation MailType = "consultation"
)

// Mail is a letter in the player's inbox.
type Mail struct {
	ID          string           `yaml:"id"`
	SenderNames string           `yaml:"sender_names"`
	Subject     string           `yaml:"subject"`
	Content     string           `yaml:"content"`
	IsRead      bool             `yaml:"is_read"`
	Resolved    bool             `yaml:"resolved"`
	DayReceived int              `yaml:"day_received"`
	Options     []DialogueOption `yaml:"options"`
	Type        MailType         `yaml:"type"`
}

// UpgradeType partitions bar upgrades; one per partition is active.
type UpgradeType string

const (
	UpgradeBackground UpgradeType = "background"
	UpgradeFurniture  UpgradeType = "furniture"
	UpgradeAtmosphere UpgradeType = "atmosphere"
)

// BarUpgrade is a purchasable decoration.
type BarUpgrade struct {
	ID              string      `yaml:"id"`
	Name            string      `yaml:"name"`
	Type            UpgradeType `yaml:"type"`
	Desc            string      `yaml:"desc"`
	Price           int         `yaml:"price"`
	ReputationBonus int         `yaml:"reputation_bonus"`
	Active          bool        `yaml:"active"`
}

// Staff effects.
const (
	EffectMoneyBoost      = "money_boost"
	EffectReputationBoost = "reputation_boost"
	EffectCharismaBoost   = "charisma_boost"
)

// Staff is a hirable bar employee.
type Staff struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Desc     string   `yaml:"desc"`
	Cost     int      `yaml:"cost"`
	Salary   int      `yaml:"salary"`
	Effect   string   `yaml:"effect"`
	Affinity int      `yaml:"affinity"`
	IsHired  bool     `yaml:"is_hired"`
	Lines    []string `yaml:"lines"`
}

// LoveInterest is one of the fixed romanceable characters.
type LoveInterest struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Personality  string `yaml:"personality"`
	Affinity     int    `yaml:"affinity"`
	FirstMeeting bool   `yaml:"first_meeting"`
	OpeningLine  string `yaml:"opening_line"`
	Unlocked     bool   `yaml:"unlocked"`
}

// Reward adds Value to one stat.
type Reward struct {
	Stat  Stat `yaml:"stat"`
	Value int  `yaml:"value"`
}

// SpecialNPC is a rare visitor who hands out a one-off reward.
type SpecialNPC struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Desc     string `yaml:"desc"`
	Dialogue string `yaml:"dialogue"`
	Reward   Reward `yaml:"reward"`
}

// IngredientType is the shelf an ingredient sits on.
type IngredientType string

const (
	IngredientBase    IngredientType = "base"
	IngredientMixer   IngredientType = "mixer"
	IngredientGarnish IngredientType = "garnish"
)

// Ingredient is one pour in the bartending mini-game.
type Ingredient struct {
	ID     string         `yaml:"id"`
	Name   string         `yaml:"name"`
	Type   IngredientType `yaml:"type"`
	Desc   string         `yaml:"desc"`
	Cost   int            `yaml:"cost"`
	Flavor Flavor         `yaml:"flavor"`
}

// DrinkVerdict is a customer's reaction to a served drink.
type DrinkVerdict struct {
	Comment   string `yaml:"comment"`
	Satisfied bool   `yaml:"satisfied"`
}

// Dialogue is one round of a romance conversation.
type Dialogue struct {
	Text    string           `yaml:"text"`
	Options []DialogueOption `yaml:"options"`
}

// EnemyProfile is the flavor half of an enemy; numbers come from the day.
type EnemyProfile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Enemy is a combat opponent.
type Enemy struct {
	EnemyProfile `yaml:",inline"`
	HP           int `yaml:"hp"`
	MaxHP        int `yaml:"max_hp"`
	Attack       int `yaml:"attack"`
}

// StatCheck gates a random event on the player's attribute.
type StatCheck struct {
	Stat  Stat `yaml:"stat"`
	Value int  `yaml:"value"`
}

// RandomEvent interrupts a university class.
type RandomEvent struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	StatCheck   *StatCheck `yaml:"stat_check,omitempty"`
	SuccessText string     `yaml:"success_text"`
	FailText    string     `yaml:"fail_text"`
	Rewards     Reward     `yaml:"rewards"`
}

// ShopItem is sold during the day.
type ShopItem struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Desc   string `yaml:"desc"`
	Price  int    `yaml:"price"`
	Effect Reward `yaml:"effect"`
}

// Class is a university course raising one attribute.
type Class struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
	Stat Stat   `yaml:"stat"`
}

// Persona is what the content provider needs to voice a character.
type Persona struct {
	Name        string
	Title       string
	Description string
	Personality string
	Affinity    int
}

func (li LoveInterest) Persona() Persona {
	return Persona{Name: li.Name, Title: li.Title, Description: li.Description, Personality: li.Personality, Affinity: li.Affinity}
}

func (s Staff) Persona() Persona {
	return Persona{Name: s.Name, Title: s.Role, Description: s.Desc, Personality: s.Desc, Affinity: s.Affinity}
}

// Satisfies reports whether any ingredient carries the preferred flavor.
func Satisfies(pref Flavor, ingredients []Ingredient) bool {
	for _, in := range ingredients {
		if in.Flavor == pref {
			return true
		}
	}
	return false
}
