// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	WarningStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style

	// Navigation bar.
	NavBarStyle        lipgloss.Style
	NavBrandStyle      lipgloss.Style
	NavSearchStyle     lipgloss.Style
	NavSearchFocused   lipgloss.Style
	NavActionStyle     lipgloss.Style
	NavActionActive    lipgloss.Style
	StatusBarStyle     lipgloss.Style
	SectionHeaderStyle lipgloss.Style

	// Home cards.
	CardStyle             lipgloss.Style
	CardSelectedStyle     lipgloss.Style
	CardTitleStyle        lipgloss.Style
	CardDescStyle         lipgloss.Style
	RequestCardStyle      lipgloss.Style
	TopicCardStyle        lipgloss.Style
	TopicCardSelected     lipgloss.Style
	TopicIconStyle        lipgloss.Style
	EmptyPlaceholderStyle lipgloss.Style

	// Article view.
	ArticleTitleStyle   lipgloss.Style
	ArticleSectionStyle lipgloss.Style
	SidebarStyle        lipgloss.Style
	SidebarTitleStyle   lipgloss.Style
	TOCEntryStyle       lipgloss.Style
	TOCEntrySelected    lipgloss.Style
	SidebarToggleStyle  lipgloss.Style
	ArticleActionStyle  lipgloss.Style

	// Forms.
	FormHeadingStyle      lipgloss.Style
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
	ButtonStyle           lipgloss.Style
	ButtonPrimaryStyle    lipgloss.Style

	// Help dialog.
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)

	NavBarStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	NavBrandStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	NavSearchStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	NavSearchFocused = NavSearchStyle.
		BorderForeground(ColorPrimary)
	NavActionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	NavActionActive = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	SectionHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CardSelectedStyle = CardStyle.
		BorderForeground(ColorPrimary)
	CardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CardDescStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	RequestCardStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	TopicCardStyle = CardStyle.
		Padding(1, 2)
	TopicCardSelected = TopicCardStyle.
		BorderForeground(ColorPrimary)
	TopicIconStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	EmptyPlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	ArticleTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		Underline(true)
	ArticleSectionStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		MarginBottom(1)
	SidebarStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Padding(1, 1)
	SidebarTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Bold(true)
	TOCEntryStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface)
	TOCEntrySelected = TOCEntryStyle.
		Underline(true).
		Bold(true)
	SidebarToggleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ArticleActionStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	FormHeadingStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		MarginBottom(1)
	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ButtonPrimaryStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary).Foreground(ColorForeground)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning).Foreground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError).Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	// Sections are rendered one at a time; drop the document margins so
	// they line up with the article title.
	var zero uint
	cfg.Document.Margin = &zero
	cfg.Document.BlockPrefix = ""
	cfg.Document.BlockSuffix = ""
	cfg.Document.Color = fg

	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
