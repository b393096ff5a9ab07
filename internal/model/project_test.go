package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_AddVersion(t *testing.T) {
	p := NewProject("qt.msp")

	require.NoError(t, p.AddVersion("4.5"))
	require.NoError(t, p.AddVersion("4.6"))

	assert.Equal(t, 2, p.Generation())
	assert.True(t, p.IsDirty())

	gen, err := p.GenerationOf("4.6")
	require.NoError(t, err)
	assert.Equal(t, 2, gen)

	_, err = p.GenerationOf("5.0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProject_AppendUniqueRejects(t *testing.T) {
	p := NewProject("")
	require.NoError(t, p.AddPlatform("WS_X11"))
	p.ClearDirty()

	assert.ErrorIs(t, p.AddPlatform("WS_X11"), ErrDuplicate)
	assert.ErrorIs(t, p.AddFeature(""), ErrEmptyName)
	assert.ErrorIs(t, p.AddExternalModule("Qt Core"), ErrEmptyName)
	assert.False(t, p.IsDirty(), "rejected values must not dirty the project")

	require.NoError(t, p.AddExternalFeature("PyQt_Accessibility"))
	require.NoError(t, p.AddIgnoredNamespace("Qt"))
	assert.True(t, p.IsIgnoredNamespace("Qt"))
	assert.False(t, p.IsIgnoredNamespace("QtCore"))
}

func TestProject_OnDirty(t *testing.T) {
	p := NewProject("")

	calls := 0
	p.OnDirty(func() { calls++ })

	require.NoError(t, p.AddVersion("1.0"))
	_, err := p.NewModule("QtCore", "", "", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)

	p.ClearDirty()
	assert.False(t, p.IsDirty())
}

func TestProject_NewModule(t *testing.T) {
	p := NewProject("")

	mod, err := p.NewModule("QtGui", "gui", "1", []string{"QtCore"})
	require.NoError(t, err)
	assert.Same(t, mod, p.FindModule("QtGui"))

	_, err = p.NewModule("QtGui", "", "", nil)
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = p.NewModule("", "", "", nil)
	assert.ErrorIs(t, err, ErrEmptyName)

	assert.Nil(t, p.FindModule("QtNetwork"))
}

func TestProject_NewHeaderFile(t *testing.T) {
	p := NewProject("")
	require.NoError(t, p.AddVersion("1.0"))
	require.NoError(t, p.AddVersion("2.0"))

	hd, err := p.NewHeaderDirectory("QtCore", "-I.", "QtCore", "*.h")
	require.NoError(t, err)

	_, err = p.NewHeaderDirectory("QtCore", "", "", "")
	assert.ErrorIs(t, err, ErrDuplicate)

	hf := p.NewHeaderFile(hd, "qobject.h", "abc")

	assert.Equal(t, StatusUnknown, hf.Status)
	assert.Equal(t, 2, hf.SGen)
	assert.True(t, hf.IsCurrent())
	assert.True(t, hf.ParseNeeded)
	assert.Same(t, hf, hd.FindHeaderFile("qobject.h"))
	assert.Same(t, hd, p.FindHeaderDirectory(hf))
	assert.Nil(t, p.FindHeaderDirectory(&HeaderFile{}))
}

func TestProject_IsTopLevel(t *testing.T) {
	p := NewProject("")
	require.NoError(t, p.AddExternalModule("sip"))

	core := &Module{Name: "QtCore", Imports: []string{"sip"}}
	gui := &Module{Name: "QtGui", Imports: []string{"QtCore"}}

	assert.True(t, p.IsTopLevel(core))
	assert.False(t, p.IsTopLevel(gui))
	assert.True(t, p.IsTopLevel(&Module{Name: "bare"}))
}

func TestProject_DescriptiveName(t *testing.T) {
	assert.Equal(t, "Untitled", NewProject("").DescriptiveName())
	assert.Equal(t, "PyQt4", NewProject("/src/PyQt4.msp").DescriptiveName())
	assert.Equal(t, "api.xml", NewProject("api.xml").DescriptiveName())
}

func TestLiterals_Validation(t *testing.T) {
	t.Run("accepted kind is stored", func(t *testing.T) {
		c := New(KindMethod, "paint")
		require.NoError(t, c.SetLiteral(LiteralVirtCode, "sipRes = 0;"))
		assert.Equal(t, "sipRes = 0;", c.Literal(LiteralVirtCode))
	})

	t.Run("foreign kind is rejected", func(t *testing.T) {
		c := New(KindFunction, "qVersion")
		err := c.SetLiteral(LiteralVirtCode, "x")
		assert.ErrorIs(t, err, ErrUnsupportedLiteral)
		assert.Empty(t, c.Literals)
	})

	t.Run("empty text removes the block", func(t *testing.T) {
		c := New(KindClass, "QObject")
		require.NoError(t, c.SetLiteral(LiteralTypeHeaderCode, "#include <qobject.h>"))
		require.NoError(t, c.SetLiteral(LiteralTypeHeaderCode, ""))
		assert.NotContains(t, c.Literals, LiteralTypeHeaderCode)
	})

	t.Run("owners other than code", func(t *testing.T) {
		hf := &HeaderFile{}
		require.NoError(t, hf.SetLiteral(LiteralModuleCode, "int x;"))
		assert.ErrorIs(t, hf.SetLiteral(LiteralDirectives, "x"), ErrUnsupportedLiteral)

		mod := &Module{}
		require.NoError(t, mod.SetLiteral(LiteralDirectives, "%License"))
		assert.Equal(t, "%License", mod.Directives())

		p := NewProject("")
		require.NoError(t, p.SetLiteral(LiteralSIPComments, "Copyright"))
		assert.Equal(t, "Copyright", p.SIPComments())
		assert.ErrorIs(t, p.SetLiteral(LiteralBody, "x"), ErrUnsupportedLiteral)
	})

	t.Run("output order starts with docstring for classes", func(t *testing.T) {
		assert.Equal(t, LiteralDocstring, KindClass.Literals()[0])
		assert.True(t, KindManualCode.Accepts(LiteralBody))
		assert.False(t, KindTypedef.Accepts(LiteralDocstring))
	})
}

func TestWalk(t *testing.T) {
	ns := New(KindNamespace, "Qt")
	cls := New(KindClass, "QObject")
	cls.Content = []*Code{New(KindMethod, "parent")}
	ns.Content = []*Code{cls, New(KindEnum, "GlobalColor")}

	hf := &HeaderFile{Content: []*Code{ns}}

	var seen []string

	Walk(hf, func(c *Code, depth int) bool {
		seen = append(seen, string(c.Kind)+":"+c.Name)

		return c.Kind != KindClass
	})

	assert.Equal(t, []string{"Namespace:Qt", "Class:QObject", "Enum:GlobalColor"}, seen)
}

func TestExpandType(t *testing.T) {
	ignored := []string{"Qt"}

	assert.Equal(t, "const QString &name", ExpandType("const QString &", "name", nil))
	assert.Equal(t, "int x", ExpandType("int", "x", nil))
	assert.Equal(t, "void (*fn)(int)", ExpandType("void (*%s)(int)", "fn", nil))
	assert.Equal(t, "const Alignment &", ExpandType("const Qt::Alignment &", "", ignored))
	assert.Equal(t, "QList<Key>", ExpandType("QList<Qt::Key>", "", ignored))
	assert.Equal(t, "unsigned long", ExpandType("unsigned long int", "", nil))
}
