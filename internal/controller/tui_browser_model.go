package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/metasip/internal/model"
)

// versionsWidth is the width of the version range column.
const versionsWidth = 14

// Delegate rendering one declaration per line.
type browserDelegate struct {
	offset int
}

func (d browserDelegate) Height() int  { return 1 }
func (d browserDelegate) Spacing() int { return 0 }
func (d browserDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d browserDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	decl, ok := item.(declarationItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var textStyle, versionsStyle lipgloss.Style

	text := strings.Repeat("  ", decl.row.depth) + decl.row.text
	if decl.row.status != "" {
		text += " (" + decl.row.status + ")"
	}

	width := lm.Width() - versionsWidth - 2

	var displayText string

	if isSelected {
		textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		versionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(versionsWidth).
			Align(lipgloss.Right)

		displayText = animateScroll(text, width, d.offset)
	} else {
		textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		if !decl.row.current {
			textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
		}

		versionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(versionsWidth).
			Align(lipgloss.Right)

		displayText = truncateToWidth(text, width)
	}

	line := fmt.Sprintf("%s  %s",
		versionsStyle.Render(truncateToWidth(decl.row.versions, versionsWidth)),
		textStyle.Render(displayText),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browserModel lets the user page through the declarations of a header file.
type browserModel struct {
	width        int
	height       int
	declList     list.Model
	delegate     browserDelegate
	title        string
	versions     string
	total        int
	retired      int
	animOffset   int
	lastSelected int
}

func newBrowserModel(p *m.Project, hf *m.HeaderFile, history bool) browserModel {
	rows := declarationRows(p, hf, history)

	items := make([]list.Item, 0, len(rows))
	retired := 0

	for _, row := range rows {
		items = append(items, declarationItem{row: row})

		if !row.current {
			retired++
		}
	}

	delegate := browserDelegate{}
	declList := list.New(items, delegate, 80, 20)
	declList.SetShowPagination(false)
	declList.SetShowFilter(true)
	declList.SetShowHelp(false)
	declList.SetShowTitle(false)
	declList.SetShowStatusBar(false)
	declList.FilterInput.Placeholder = "Filter declarations…"

	return browserModel{
		declList:     declList,
		delegate:     delegate,
		title:        hf.Name,
		versions:     p.VersionRange(hf.GenerationRange()),
		total:        len(rows),
		retired:      retired,
		lastSelected: 0,
	}
}

func (bm browserModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (bm browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.declList.SetWidth(bm.width)

	case tickMsg:
		if bm.declList.FilterState() != list.Filtering {
			bm.animOffset++
			bm.delegate.offset = bm.animOffset
			bm.declList.SetDelegate(bm.delegate)

			return bm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return bm, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" ||
			(msg.String() == "q" && bm.declList.FilterState() != list.Filtering) {
			return bm, tea.Quit
		}

		var newList list.Model

		newList, cmd = bm.declList.Update(msg)
		bm.declList = newList

		// Restart the scroll animation on a new selection.
		if bm.declList.Index() != bm.lastSelected {
			bm.lastSelected = bm.declList.Index()
			bm.animOffset = 0
			bm.delegate.offset = 0
			bm.declList.SetDelegate(bm.delegate)
		}

		return bm, cmd
	}

	return bm, cmd
}

func (bm browserModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("MetaSIP " + bm.title)

	versions := bm.versions
	if versions == "" {
		versions = "all"
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Declarations: %s   Retired: %s   Versions: %s",
		accentStyle.Render(fmt.Sprintf("%d", bm.total)),
		accentStyle.Render(fmt.Sprintf("%d", bm.retired)),
		accentStyle.Render(versions),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(bm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		bm.renderTable(),
		footer,
	)
}

func (bm browserModel) renderTable() string {
	// Title, summary, footer, border and headers take nine lines.
	listHeight := bm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin, border and padding take six columns.
	listWidth := bm.width - 6

	bm.declList.SetHeight(listHeight)
	bm.declList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s  %s", versionsWidth, "Versions", "Declaration"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			bm.declList.View(),
		),
	)
}
