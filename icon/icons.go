package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Play
	Pause
	Volume
	Muted
	Speed
	Fullscreen
	Embedded
)

var icons = map[Icon]iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・)",
		squares: "🟨",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   "▶",
		kaomoji: "ᕕ( ᐛ )ᕗ",
		squares: "🟩",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "‖",
		kaomoji: "(-_-)zzZ",
		squares: "🟧",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "ヽ(°〇°)ﾉ",
		squares: "🟦",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "mute",
		kaomoji: "(￣ー￣)",
		squares: "⬛",
	},
	Speed: {
		emoji:   "⏩",
		nerd:    "",
		plain:   "x",
		kaomoji: "ε=ε=┌( >_<)┘",
		squares: "🟪",
	},
	Fullscreen: {
		emoji:   "🖥️",
		nerd:    "",
		plain:   "[ ]",
		kaomoji: "[◕‿◕]",
		squares: "🔲",
	},
	Embedded: {
		emoji:   "🌐",
		nerd:    "",
		plain:   "web",
		kaomoji: "(◕ᴗ◕✿)",
		squares: "🟫",
	},
}
