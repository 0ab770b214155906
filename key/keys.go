// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Generation Pipeline - these keys govern the simulated latency between a request and a ready style.
const (
	GenerationLatencyMs = "generation.latency_ms"
)

// Preview Animation - these keys tune the mock interface reveal.
const (
	TypewriterIntervalMs = "typewriter.interval_ms"
	PreviewFPS           = "preview.fps"
)

// Vibe History - these keys configure the persistence of submitted vibes for suggestions.
const (
	VibesSuggestions = "vibes.suggestions"
	VibesRemember    = "vibes.remember"
)

// Theme Resolution - used when neither a stored theme nor a terminal signal is available.
const (
	ThemeFallback = "theme.fallback"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling.
const (
	TUIVibePrompt  = "tui.vibe_prompt"
	TUIShowPalette = "tui.show_palette"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
