package icon

// Icon identifies a UI symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Question
	Mark
	Progress
	Palette
	Speed
	Complexity
	Light
	Dark
	Vibe

	iconCount
)

var icons = map[Icon]iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "▣",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "■",
	},
	Question: {
		emoji:   "🤔",
		nerd:    "",
		plain:   "?",
		kaomoji: "(°ヘ°)",
		squares: "◩",
	},
	Mark: {
		emoji:   "✨",
		nerd:    "",
		plain:   "*",
		kaomoji: "(✿◠‿◠)",
		squares: "◆",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(￣ー￣)",
		squares: "◧",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "#",
		kaomoji: "(◕‿◕)",
		squares: "▦",
	},
	Speed: {
		emoji:   "⚡",
		nerd:    "",
		plain:   ">",
		kaomoji: "ε=ε=(っ*´□`)っ",
		squares: "▶",
	},
	Complexity: {
		emoji:   "🧩",
		nerd:    "",
		plain:   "+",
		kaomoji: "(•̀ᴗ•́)",
		squares: "▤",
	},
	Light: {
		emoji:   "☀️",
		nerd:    "",
		plain:   "light",
		kaomoji: "(☼ᴗ☼)",
		squares: "□",
	},
	Dark: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "dark",
		kaomoji: "(－_－) zzZ",
		squares: "■",
	},
	Vibe: {
		emoji:   "🌊",
		nerd:    "",
		plain:   "~",
		kaomoji: "(∿°○°)∿",
		squares: "◈",
	},
}
