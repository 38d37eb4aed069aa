package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/haivivi/speechprint/pkg/fingerprint"
)

func TestMatrixRows(t *testing.T) {
	m, err := fingerprint.ParseBinaryMatrix([]string{"101", "010"})
	if err != nil {
		t.Fatal(err)
	}
	rows := MatrixRows(m, NewStyles(DefaultTheme), 0)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if got := lipgloss.Width(rows[0]); got != 3 {
		t.Errorf("row width = %d, want 3", got)
	}
	if strings.Count(rows[0], "█") != 2 || strings.Count(rows[1], "█") != 1 {
		t.Errorf("rows = %q", rows)
	}
}

func TestMatrixRowsCut(t *testing.T) {
	m, _ := fingerprint.ParseBinaryMatrix([]string{"1111111111"})
	rows := MatrixRows(m, NewStyles(DefaultTheme), 4)
	if got := lipgloss.Width(rows[0]); got != 4 {
		t.Errorf("row width = %d, want 4", got)
	}
	if !strings.Contains(rows[0], "…") {
		t.Errorf("cut row should end in an ellipsis: %q", rows[0])
	}
}

func TestRenderMatrix(t *testing.T) {
	m, _ := fingerprint.ParseBinaryMatrix([]string{"0000000001", "1000000000"})
	out := RenderMatrix(m, "speech.wav", "fbe", 0, NewStyles(DefaultTheme))

	lines := strings.Split(out, "\n")
	// top, title, label, 2 rows, bottom, help
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "speech.wav") || !strings.Contains(out, "bits 2×10") {
		t.Errorf("missing title or label:\n%s", out)
	}
	// The title line holds the padded title and status and may be wider.
	for _, i := range []int{0, 2, 3, 4, 5} {
		if w := lipgloss.Width(lines[i]); w != 14 {
			t.Errorf("line %d width = %d, want 14: %q", i, w, lines[i])
		}
	}
}

func TestRenderMatrixMaxWidth(t *testing.T) {
	m, _ := fingerprint.ParseBinaryMatrix([]string{strings.Repeat("1", 100)})
	out := RenderMatrix(m, "wide", "landmark", 40, NewStyles(DefaultTheme))
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %d width = %d exceeds 40", i, w)
		}
	}
}
