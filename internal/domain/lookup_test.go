package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/metasip/internal/model"
)

func lookupProject() *m.Project {
	p := projectWithVersions("1.0", "2.0")

	core := &m.HeaderDirectory{Name: "QtCore"}
	gui := &m.HeaderDirectory{Name: "QtGui"}

	core.HeaderFiles = []*m.HeaderFile{
		{Name: "qglobal.h", Element: m.Element{EGen: 2}},
		{Name: "qobject.h"},
	}
	gui.HeaderFiles = []*m.HeaderFile{
		{Name: "qglobal.h"},
		{Name: "qwindowdefs.h", Element: m.Element{EGen: 1}},
		{Name: "qwindowdefs.h", Element: m.Element{SGen: 1, EGen: 2}},
	}

	p.HeaderDirectories = []*m.HeaderDirectory{core, gui}

	return p
}

func TestFindHeaderFile(t *testing.T) {
	p := lookupProject()

	t.Run("current file wins over a retired one", func(t *testing.T) {
		hf, err := findHeaderFile(p, "", "qglobal.h", true)
		require.NoError(t, err)
		assert.Same(t, p.HeaderDirectories[1].HeaderFiles[0], hf)
	})

	t.Run("directory narrows the search", func(t *testing.T) {
		hf, err := findHeaderFile(p, "QtCore", "qglobal.h", false)
		require.NoError(t, err)
		assert.Same(t, p.HeaderDirectories[0].HeaderFiles[0], hf)

		_, err = findHeaderFile(p, "QtCore", "qglobal.h", true)
		requireUserError(t, err)
	})

	t.Run("latest retired file", func(t *testing.T) {
		hf, err := findHeaderFile(p, "", "qwindowdefs.h", false)
		require.NoError(t, err)
		assert.Equal(t, 2, hf.EGen)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := findHeaderFile(p, "", "qwidget.h", false)
		assert.ErrorIs(t, err, m.ErrNotFound)

		_, err = findHeaderFile(p, "QtNetwork", "qobject.h", false)
		assert.ErrorIs(t, err, m.ErrNotFound)
	})

	t.Run("ambiguous", func(t *testing.T) {
		p.HeaderDirectories[0].HeaderFiles[0].EGen = 0

		_, err := findHeaderFile(p, "", "qglobal.h", false)
		requireUserError(t, err)
	})
}

func TestFindDeclaration(t *testing.T) {
	retired := method("parent", "QObject *")
	retired.EGen = 2

	current := method("parent", "QObject *")
	current.SGen = 2

	overload1 := method("connect", "bool", "const char *")
	overload2 := method("connect", "bool", "const QObject *", "const char *")

	mc := m.New(m.KindManualCode, "")
	mc.Precis = "%If (Py_v3)"

	hf := &m.HeaderFile{Content: []*m.Code{
		method("QObject", "void"),
		class("QObject", retired, current, overload1, overload2),
		mc,
	}}

	t.Run("path through a container", func(t *testing.T) {
		c, err := findDeclaration(hf, []string{"QObject", "parent"}, "")
		require.NoError(t, err)
		assert.Same(t, current, c)
	})

	t.Run("overload by signature", func(t *testing.T) {
		_, err := findDeclaration(hf, []string{"QObject", "connect"}, "")
		ue := requireUserError(t, err)
		assert.Contains(t, ue.Text, m.Signature(overload1))
		assert.Contains(t, ue.Text, m.Signature(overload2))

		c, err := findDeclaration(hf, []string{"QObject", "connect"}, m.Signature(overload2))
		require.NoError(t, err)
		assert.Same(t, overload2, c)
	})

	t.Run("manual code by precis", func(t *testing.T) {
		c, err := findDeclaration(hf, []string{"%If (Py_v3)"}, "")
		require.NoError(t, err)
		assert.Same(t, mc, c)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := findDeclaration(hf, []string{"QObject", "children"}, "")
		assert.ErrorIs(t, err, m.ErrNotFound)
	})
}

func TestSelectModules(t *testing.T) {
	p := projectWithVersions("1.0")
	core, err := p.NewModule("QtCore", "", "", nil)
	require.NoError(t, err)
	gui, err := p.NewModule("QtGui", "", "", nil)
	require.NoError(t, err)

	mods, err := selectModules(p, nil, []string{"QtCore"})
	require.NoError(t, err)
	assert.Equal(t, []*m.Module{gui}, mods)
	assert.Len(t, p.Modules, 2, "the project's list is not modified")

	mods, err = selectModules(p, []string{"QtGui", "QtCore"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []*m.Module{gui, core}, mods)

	_, err = selectModules(p, []string{"QtSql"}, nil)
	assert.ErrorIs(t, err, m.ErrNotFound)
}
