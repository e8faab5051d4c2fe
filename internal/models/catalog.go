package models

// The catalog functions return fresh copies so each session owns its own
// mutable collections.

func Ingredients() []Ingredient {
	return []Ingredient{
		{ID: "base_1", Name: "Quantum Vodka", Type: IngredientBase, Desc: "Strong enough to blur the uncertainty principle.", Cost: 15, Flavor: FlavorStrong},
		{ID: "base_2", Name: "Synthetic Peach Wine", Type: IngredientBase, Desc: "Traditional taste, cyber sweetener added.", Cost: 12, Flavor: FlavorSweet},
		{ID: "base_3", Name: "Liquid Drive Water", Type: IngredientBase, Desc: "Cold, like streaming data.", Cost: 10, Flavor: FlavorRefreshing},
		{ID: "base_4", Name: "Motor Oil Whisky", Type: IngredientBase, Desc: "Bitter. Only vintage implants digest it.", Cost: 18, Flavor: FlavorBitter},

		{ID: "mix_1", Name: "Neon Tonic", Type: IngredientMixer, Desc: "Soda that glows blue.", Cost: 5, Flavor: FlavorRefreshing},
		{ID: "mix_2", Name: "Forget-Me Acid", Type: IngredientMixer, Desc: "So sour you forget your worries.", Cost: 8, Flavor: FlavorSour},
		{ID: "mix_3", Name: "Dopamine Syrup", Type: IngredientMixer, Desc: "Cloyingly sweet, instant joy.", Cost: 10, Flavor: FlavorSweet},
		{ID: "mix_4", Name: "Chili Firewall", Type: IngredientMixer, Desc: "Burns on the way down.", Cost: 6, Flavor: FlavorSpicy},

		{ID: "gar_1", Name: "Holo Lemon Slice", Type: IngredientGarnish, Desc: "Only visually sour.", Cost: 2, Flavor: FlavorSour},
		{ID: "gar_2", Name: "Red Thread Knot", Type: IngredientGarnish, Desc: "An edible red string for luck.", Cost: 5, Flavor: FlavorSweet},
		{ID: "gar_3", Name: "RAM Stick Cookie", Type: IngredientGarnish, Desc: "Crunchy, silicon based.", Cost: 3, Flavor: FlavorBitter},
		{ID: "gar_4", Name: "Liquid Nitrogen Rose", Type: IngredientGarnish, Desc: "Romance frozen in time.", Cost: 15, Flavor: FlavorRefreshing},
		{ID: "gar_5", Name: "Cyber Chili", Type: IngredientGarnish, Desc: "Genuinely hot.", Cost: 4, Flavor: FlavorSpicy},
		{ID: "gar_6", Name: "Pure Ethanol Capsule", Type: IngredientGarnish, Desc: "Raises the proof.", Cost: 10, Flavor: FlavorStrong},
	}
}

func BarUpgrades() []BarUpgrade {
	return []BarUpgrade{
		{ID: "bg_default", Name: "Raw Concrete Walls", Type: UpgradeBackground, Desc: "Crude but solid.", Active: true},
		{ID: "bg_cyber", Name: "Holographic Wallpaper", Type: UpgradeBackground, Desc: "A waterfall of flowing code.", Price: 800, ReputationBonus: 20},

		{ID: "furn_wood", Name: "Folding Chairs", Type: UpgradeFurniture, Desc: "Your back will hurt.", Active: true},
		{ID: "furn_neon", Name: "Anti-Gravity Seats", Type: UpgradeFurniture, Desc: "Guests float while they drink.", Price: 1200, ReputationBonus: 50},

		{ID: "atm_none", Name: "Dim Bulb", Type: UpgradeAtmosphere, Desc: "Saves power.", Active: true},
		{ID: "atm_pink", Name: "Pink Haze", Type: UpgradeAtmosphere, Desc: "The air smells of romance.", Price: 500, ReputationBonus: 30},
	}
}

func StaffRoster() []Staff {
	return []Staff{
		{
			ID: "staff_1", Name: "Susu", Role: "Bartender", Desc: "Nine-tailed fox descendant; her drinks make people honest.",
			Cost: 500, Salary: 50, Effect: EffectMoneyBoost,
			Lines: []string{"Boss, a drop of charm potion in tonight's drinks?", "Hmph, that guest keeps staring at my tail.", "You could... come a little closer."},
		},
		{
			ID: "staff_2", Name: "Qiang-T800", Role: "Bouncer", Desc: "Retired military chassis. Very reassuring.",
			Cost: 800, Salary: 80, Effect: EffectReputationBoost,
			Lines: []string{"Security protocol online.", "Boss heart rate elevated. Medical support required?", "Whatever happens, I stand in front of you."},
		},
		{
			ID: "staff_3", Name: "Amy", Role: "Server", Desc: "Energetic cat-eared waitress (or is it an implant?).",
			Cost: 300, Salary: 30, Effect: EffectCharismaBoost,
			Lines: []string{"Welcome! Nya~", "Boss, boss, can I have the tuna can?", "Just seeing your face fills me with energy!"},
		},
	}
}

func ShopItems() []ShopItem {
	return []ShopItem{
		{ID: "item_energy", Name: "High-Energy Nutrient Gel", Desc: "Restore 50 energy at once.", Price: 100, Effect: Reward{Stat: StatEnergy, Value: 50}},
		{ID: "item_logic", Name: "Quantum Compute Chip", Desc: "Logic +5.", Price: 400, Effect: Reward{Stat: StatLogic, Value: 5}},
		{ID: "item_wisdom", Name: "Electronic Prayer Beads", Desc: "Wisdom +5.", Price: 400, Effect: Reward{Stat: StatWisdom, Value: 5}},
		{ID: "item_charisma", Name: "Holo Beauty Filter", Desc: "Charisma +5.", Price: 400, Effect: Reward{Stat: StatCharisma, Value: 5}},
	}
}

func Classes() []Class {
	return []Class{
		{Name: "Data Structures and Red Threads", Desc: "Sharpen your logic and spot the cads.", Stat: StatLogic},
		{Name: "Romantic Psychology", Desc: "Grow wise to baffling human behaviour.", Stat: StatWisdom},
		{Name: "The Art of Cyber Eloquence", Desc: "Become impossible to say no to.", Stat: StatCharisma},
	}
}

func LoveInterests() []LoveInterest {
	return []LoveInterest{
		{
			ID: "li_sword", Name: "Li Xiaoyao 2077", Title: "Cyber Swordsman",
			Description: "A cool swordsman on an anti-gravity board with a laser greatsword.",
			Personality: "tsundere, righteous, a bit dramatic", FirstMeeting: true, Unlocked: true,
			OpeningLine: "Boss, can your drinks cure a thousand sorrows, or only bugs?",
		},
		{
			ID: "li_hacker", Name: "0x_Ch0", Title: "Prodigy Hacker",
			Description: "Twin-tailed girl in glowing goggles, always fiddling with a holo terminal.",
			Personality: "mischievous, sharp-tongued, tech nerd", FirstMeeting: true, Unlocked: true,
			OpeningLine: "Cute firewall you've got here. I can barely resist poking it.",
		},
		{
			ID: "li_idol", Name: "Daji V3", Title: "Holo Idol",
			Description: "Top virtual idol with nine mechanical tails and a seduction algorithm.",
			Personality: "gentle, scheming, perfectionist", FirstMeeting: true, Unlocked: true,
			OpeningLine: "Shh... I snuck out. Could I have this season's new drink?",
		},
	}
}

func SpecialNPCs() []SpecialNPC {
	return []SpecialNPC{
		{
			ID: "npc_wealth", Name: "Zhao Gongming", Title: "Heavenly CFO", Desc: "Top executive of the three realms' cash flow.",
			Dialogue: "Young one, business looks good. I'm betting on you.",
			Reward:   Reward{Stat: StatMoney, Value: 888},
		},
		{
			ID: "npc_leader", Name: "Supervisor Yue Lao", Title: "Minister of Matches", Desc: "Your boss, always holding a KPI report.",
			Dialogue: "Match rate is acceptable. Keep it up. Here's a subsidy.",
			Reward:   Reward{Stat: StatReputation, Value: 50},
		},
		{
			ID: "npc_guard", Name: "Erlang Shen", Title: "Security Captain", Desc: "Patrols with a robotic hound.",
			Dialogue: "Routine inspection... nothing prohibited. Stay safe.",
			Reward:   Reward{Stat: StatEnergy, Value: 50},
		},
	}
}

func Milestones() []Milestone {
	return []Milestone{
		{
			ID: "m1", Title: "Probation Passed", Desc: "Survive to day 3",
			Condition: func(s PlayerStats, _ int) bool { return s.Day >= 3 },
			Reward:    Reward{Stat: StatMoney, Value: 500},
		},
		{
			ID: "m2", Title: "First Pot of Gold", Desc: "Hold more than 1000 incense money",
			Condition: func(s PlayerStats, _ int) bool { return s.Money >= 1000 },
			Reward:    Reward{Stat: StatReputation, Value: 50},
		},
		{
			ID: "m3", Title: "Junior Matchmaker", Desc: "Match 3 couples",
			Condition: func(_ PlayerStats, m int) bool { return m >= 3 },
			Reward:    Reward{Stat: StatCultivation, Value: 100},
		},
		{
			ID: "m4", Title: "Scholar Matchmaker", Desc: "Logic, wisdom and charisma all at 20",
			Condition: func(s PlayerStats, _ int) bool { return s.Logic >= 20 && s.Wisdom >= 20 && s.Charisma >= 20 },
			Reward:    Reward{Stat: StatEnergy, Value: 100},
		},
		{
			ID: "m5", Title: "Famous Far and Wide", Desc: "Reach 100 reputation",
			Condition: func(s PlayerStats, _ int) bool { return s.Reputation >= 100 },
			Reward:    Reward{Stat: StatMoney, Value: 2000},
		},
		{
			ID: "m6", Title: "Golden Matchmaker", Desc: "Match 10 couples",
			Condition: func(_ PlayerStats, m int) bool { return m >= 10 },
			Reward:    Reward{Stat: StatCultivation, Value: 500},
		},
	}
}
