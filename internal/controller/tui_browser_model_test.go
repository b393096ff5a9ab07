package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	got := animateScroll("abcdef", 3, 10)
	if got == "ab…" || len([]rune(got)) != 3 {
		t.Fatalf("animateScroll scrolled = %q, want len 3 and not truncated", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestBrowserModel_View(t *testing.T) {
	p, hf := testProject(t)

	bm := newBrowserModel(p, hf, true)
	if bm.total != 8 || bm.retired != 2 {
		t.Fatalf("total = %d, retired = %d, want 8 and 2", bm.total, bm.retired)
	}

	if cmd := bm.Init(); cmd == nil {
		t.Fatalf("Init() returned nil cmd")
	}

	bm.width = 100
	bm.height = 30
	view := bm.View()

	for _, want := range []string{"MetaSIP qobject.h", "Declarations:", "4.6 -", "class QObject", "Versions", "Declaration"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	// force small height to hit min list height branch
	bm.height = 0
	bm.width = 20
	_ = bm.renderTable()
}

func TestBrowserModel_CurrentOnly(t *testing.T) {
	p, hf := testProject(t)

	bm := newBrowserModel(p, hf, false)
	if bm.total != 6 || bm.retired != 0 {
		t.Fatalf("total = %d, retired = %d, want 6 and 0", bm.total, bm.retired)
	}

	for _, item := range bm.declList.Items() {
		if strings.Contains(item.FilterValue(), "deleteLaterSoon") {
			t.Fatalf("retired declaration listed without history")
		}
	}
}

func TestBrowserModel_UpdateBranches(t *testing.T) {
	p, hf := testProject(t)
	bm := newBrowserModel(p, hf, false)

	model, cmd := bm.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}

	updated := model.(browserModel)
	if updated.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", updated.animOffset)
	}

	model, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated = model.(browserModel)

	if updated.width != 100 || updated.height != 40 {
		t.Fatalf("window size not applied")
	}

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	updated = model.(browserModel)

	if updated.lastSelected != 1 || updated.animOffset != 0 {
		t.Fatalf("lastSelected = %d, animOffset = %d, want 1 and 0", updated.lastSelected, updated.animOffset)
	}

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestBrowserDelegate_Render(t *testing.T) {
	delegate := browserDelegate{offset: 0}
	items := []list.Item{
		declarationItem{row: declarationRow{depth: 1, text: "QObject *parent() const", versions: "4.6 -", current: true}},
		declarationItem{row: declarationRow{text: "void deleteLaterSoon()", versions: "- 4.7", status: "ignored"}},
	}
	lm := list.New(items, delegate, 60, 5)

	var buf bytes.Buffer

	delegate.Render(&buf, lm, 0, items[0])
	if !strings.Contains(buf.String(), "parent") || !strings.Contains(buf.String(), "4.6 -") {
		t.Fatalf("render output missing declaration\n%s", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, lm, 0, items[1])

	if !strings.Contains(buf.String(), "(ignored)") {
		t.Fatalf("render output missing status\n%s", buf.String())
	}

	// Render with bad item type should not panic
	buf.Reset()
	delegate.Render(&buf, lm, 0, struct{ list.Item }{})

	if delegate.Height() != 1 {
		t.Fatalf("Height() = %d, want 1", delegate.Height())
	}

	if delegate.Spacing() != 0 {
		t.Fatalf("Spacing() = %d, want 0", delegate.Spacing())
	}

	if cmd := delegate.Update(nil, &lm); cmd != nil {
		t.Fatalf("Update() returned cmd")
	}
}
