package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ingyamilmolinar/lanechart/core/layout"
	"github.com/ingyamilmolinar/lanechart/core/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chart>",
	Short: "Prints a chart's notes and their visual lengths",
	Long:  `Prints a chart's notes and their visual lengths`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0])
		if err != nil {
			return err
		}
		return printChart(cmd.OutOrStdout(), c, layout.DefaultConfig())
	},
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	shrunkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

var columns = []struct {
	title string
	width int
}{
	{"#", 5}, {"offset", 9}, {"lane", 6}, {"length", 9}, {"swipe", 7}, {"visual", 9}, {"", 10},
}

func row(cells []string, style func(col int) lipgloss.Style) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = style(i).Width(columns[i].width).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func printChart(w io.Writer, c model.Chart, cfg layout.Config) error {
	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = col.title
	}
	lines := []string{row(titles, func(int) lipgloss.Style { return headerStyle.Inherit(cellStyle) })}

	heads := model.NewSectionSet(c.Sections)
	lengths := layout.VisualLengths(c.Notes, cfg)
	shrunk := 0
	for i, n := range c.Notes {
		mark := ""
		style := cellStyle
		switch {
		case heads.Has(n.Offset):
			mark = "section"
			style = sectionStyle.Inherit(cellStyle)
		case !n.Held() && lengths[i] < cfg.NoteHeight:
			mark = "shrunk"
			style = shrunkStyle.Inherit(cellStyle)
		}
		if !n.Held() && lengths[i] < cfg.NoteHeight {
			shrunk++
		}
		cells := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(n.Offset, 'g', -1, 64),
			strconv.Itoa(n.Lane + 1),
			strconv.FormatFloat(n.Length, 'g', -1, 64),
			n.Swipe.String(),
			strconv.FormatFloat(lengths[i], 'f', 2, 64),
			mark,
		}
		lines = append(lines, row(cells, func(int) lipgloss.Style { return style }))
	}
	lines = append(lines, footerStyle.Render(fmt.Sprintf("%d notes, %d sections, %d shrunk by overlap", len(c.Notes), len(c.Sections), shrunk)))
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
