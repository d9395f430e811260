package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/thatcatcamp/buttonsmith/internal/style"
	"github.com/thatcatcamp/buttonsmith/internal/themes"
)

// Terminal cells are roughly 8px wide and 16px tall.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

var previewStyle styleFlags

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show a terminal swatch of a button",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		m, err := previewStyle.model(catalog)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), swatch(m))
		return nil
	},
}

// swatch approximates the button in terminal cells. Gradients are blended
// column by column; shadows and animation are not drawn.
func swatch(m style.Model) string {
	m = m.Resolve()

	label := m.Text
	if m.Uppercase {
		label = strings.ToUpper(label)
	}
	if m.IconPos == style.IconOnly || label == "" {
		label = "●"
	}

	padX := cells(m.PadX, cellWidth)
	padY := cells(m.PadY, cellHeight)
	width := lipgloss.Width(label) + 2*padX
	switch m.WidthType {
	case style.WidthFixed:
		width = max(width, cells(m.FixedWidth, cellWidth))
	case style.WidthFull:
		width = max(width, 40)
	}

	rows := make([]string, 0, 2*padY+1)
	blank := strings.Repeat(" ", width)
	for i := 0; i < padY; i++ {
		rows = append(rows, fill(m, blank))
	}
	rows = append(rows, fill(m, center(label, width)))
	for i := 0; i < padY; i++ {
		rows = append(rows, fill(m, blank))
	}
	body := strings.Join(rows, "\n")

	frame := lipgloss.NewStyle()
	if m.BorderW > 0 {
		border := lipgloss.NormalBorder()
		if m.EffectiveRadius() > 0 {
			border = lipgloss.RoundedBorder()
		}
		frame = frame.Border(border).BorderForeground(lipgloss.Color(hexOr(m.BorderColor, "#ffffff")))
	}
	if m.Disabled {
		frame = frame.Faint(true)
	}
	return frame.Render(body)
}

// fill paints one row with the model's background and text color
func fill(m style.Model, row string) string {
	text := lipgloss.Color(hexOr(m.TextColor, "#ffffff"))
	base := lipgloss.NewStyle().Foreground(text).Bold(true)

	switch m.BgType {
	case style.BackgroundSolid:
		return base.Background(lipgloss.Color(hexOr(m.Bg1, "#000000"))).Render(row)
	case style.BackgroundGradient:
		from, ok1 := themes.ParseColor(m.Bg1)
		to, ok2 := themes.ParseColor(m.Bg2)
		if !ok1 || !ok2 {
			return base.Render(row)
		}
		runes := []rune(row)
		var b strings.Builder
		for i, r := range runes {
			t := 0.0
			if len(runes) > 1 {
				t = float64(i) / float64(len(runes)-1)
			}
			bg := from.BlendLab(to, t).Clamped().Hex()
			b.WriteString(base.Background(lipgloss.Color(bg)).Render(string(r)))
		}
		return b.String()
	default:
		return base.Render(row)
	}
}

// hexOr normalizes a hex color for the terminal, or returns fallback
func hexOr(color, fallback string) string {
	if c, ok := themes.ParseColor(color); ok {
		return c.Hex()
	}
	return fallback
}

func cells(px, size float64) int {
	return int(math.Round(px / size))
}

func center(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func init() {
	previewStyle.register(previewCmd)
	rootCmd.AddCommand(previewCmd)
}
