package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Star Sea theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconStar    = "✨"
	IconShip    = "🚀"
	IconItem    = "📦"
	IconSkill   = "⚡"
	IconFaction = "🌐"
	IconMap     = "🗺️"
	IconCart    = "🛒"
	IconSend    = "📡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("45")  // cyan
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

// Tier rarity colors, T1 (common) through T7 (unique).
var tierColors = [7]lipgloss.Color{
	lipgloss.Color("250"), // T1 common
	lipgloss.Color("42"),  // T2 fine
	lipgloss.Color("39"),  // T3 masterwork
	lipgloss.Color("135"), // T4 epic
	lipgloss.Color("214"), // T5 legendary
	lipgloss.Color("196"), // T6 mythic
	lipgloss.Color("220"), // T7 unique
}

var qualityNames = [7]string{
	"Common", "Fine", "Masterwork", "Epic", "Legendary", "Mythic", "Unique",
}

// QualityName returns the rarity label for a tier, or "?" outside the ladder.
func QualityName(tier int) string {
	if tier < 1 || tier > 7 {
		return "?"
	}
	return qualityNames[tier-1]
}

// TierBadge renders "T3 Masterwork" in the tier's rarity color.
func TierBadge(tier int) string {
	if tier < 1 || tier > 7 {
		return Muted.Render(fmt.Sprintf("T%d", tier))
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(tierColors[tier-1])
	return style.Render(fmt.Sprintf("T%d %s", tier, qualityNames[tier-1]))
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RPText renders a remaining-RP figure, red when over budget.
func RPText(remaining, total int) string {
	s := fmt.Sprintf("%d / %d RP", remaining, total)
	if remaining < 0 {
		return Bad.Render(s)
	}
	return Good.Render(s)
}

// CategoryIcon maps catalog categories (by plural key) to their icon.
func CategoryIcon(plural string) string {
	switch plural {
	case "factions":
		return IconFaction
	case "spawn_locations":
		return IconMap
	case "scenarios":
		return IconStar
	case "items":
		return IconItem
	case "ships":
		return IconShip
	case "skills":
		return IconSkill
	default:
		return IconInfo
	}
}
