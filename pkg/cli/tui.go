package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haivivi/speechprint/pkg/fingerprint"
)

// Theme defines the color scheme for matrix display.
type Theme struct {
	Primary lipgloss.Color // Border and title color
	Dim     lipgloss.Color // Help text and zero bits
	Bit     lipgloss.Color // Set bits
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
	Bit:     lipgloss.Color("#ffd166"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Border lipgloss.Style
	Help   lipgloss.Style
	One    lipgloss.Style
	Zero   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Label:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Border: lipgloss.NewStyle().Foreground(t.Primary),
		Help:   lipgloss.NewStyle().Foreground(t.Dim),
		One:    lipgloss.NewStyle().Foreground(t.Bit),
		Zero:   lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Section represents a labeled section with content.
type Section struct {
	Label   string
	Content []string
}

// Frame renders a bordered box with a title, sections and help text.
type Frame struct {
	Styles   Styles
	Title    string
	Status   string
	Sections []Section
	Help     string
}

// Render renders the frame width cells wide. Each section shows its full
// content; lines wider than the frame are truncated.
func (f Frame) Render(width int) string {
	if width < 8 {
		width = 8
	}
	bc := f.Styles.Border
	maxContentWidth := width - 4

	var lines []string
	lines = append(lines, bc.Render("╭"+strings.Repeat("─", width-2)+"╮"))

	// │ title [status] │
	title := f.Styles.Title.Render(f.Title)
	status := f.Styles.Help.Render("[" + f.Status + "]")
	padding := max(0, width-5-lipgloss.Width(title)-lipgloss.Width(status))
	lines = append(lines, bc.Render("│")+" "+title+" "+status+
		strings.Repeat(" ", padding)+" "+bc.Render("│"))

	for _, sec := range f.Sections {
		lines = append(lines, f.renderSection(bc, sec, width, maxContentWidth)...)
	}

	lines = append(lines, bc.Render("╰"+strings.Repeat("─", width-2)+"╯"))
	if f.Help != "" {
		lines = append(lines, f.Styles.Help.Render(f.Help))
	}
	return strings.Join(lines, "\n")
}

// renderSection renders a single section with embedded label.
func (f Frame) renderSection(bc lipgloss.Style, sec Section, width, maxContentWidth int) []string {
	// ├─Label────────┤
	labelText := f.Styles.Label.Render(sec.Label)
	padding := max(0, width-3-lipgloss.Width(labelText))
	lines := []string{bc.Render("├") + bc.Render("─") + labelText +
		bc.Render(strings.Repeat("─", padding)) + bc.Render("┤")}

	for _, text := range sec.Content {
		if maxContentWidth > 1 && lipgloss.Width(text) > maxContentWidth {
			text = truncateString(text, maxContentWidth-1) + "…"
		}
		lines = append(lines, bc.Render("│")+" "+text+
			strings.Repeat(" ", max(0, maxContentWidth-lipgloss.Width(text)))+" "+bc.Render("│"))
	}
	return lines
}

// MatrixRows draws each row of m with '█' for set bits and '·' for clear
// bits. Rows longer than maxCols (if positive) are cut and end in '…'.
// Cutting happens before styling so escape sequences stay intact.
func MatrixRows(m *fingerprint.BinaryMatrix, s Styles, maxCols int) []string {
	one, zero := s.One.Render("█"), s.Zero.Render("·")
	rows := m.Strings()
	out := make([]string, len(rows))
	for i, r := range rows {
		cut := maxCols > 0 && len(r) > maxCols
		if cut {
			r = r[:max(maxCols-1, 0)]
		}
		var sb strings.Builder
		for j := 0; j < len(r); j++ {
			if r[j] == '1' {
				sb.WriteString(one)
			} else {
				sb.WriteString(zero)
			}
		}
		if cut {
			sb.WriteString(s.Help.Render("…"))
		}
		out[i] = sb.String()
	}
	return out
}

// RenderMatrix renders m in a frame titled title. maxWidth bounds the frame
// width; rows wider than that are truncated.
func RenderMatrix(m *fingerprint.BinaryMatrix, title, status string, maxWidth int, s Styles) string {
	rows, cols := m.Dims()
	width := cols + 4
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	return Frame{
		Styles: s,
		Title:  title,
		Status: status,
		Sections: []Section{{
			Label:   "bits " + FormatShape(rows, cols),
			Content: MatrixRows(m, s, width-4),
		}},
		Help: "█ set  · clear",
	}.Render(width)
}

// truncateString safely truncates a string to the given width,
// handling multi-byte characters correctly.
func truncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	currentWidth := 0
	for i, r := range runes {
		w := lipgloss.Width(string(r))
		if currentWidth+w > width {
			return string(runes[:i])
		}
		currentWidth += w
	}
	return s
}
