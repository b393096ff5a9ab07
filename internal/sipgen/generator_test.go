package sipgen

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/metasip/internal/model"
)

func fixedTime() time.Time {
	return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
}

const stamp = "Tue Mar  5 14:07:09 2024"

func header(fname, module string) string {
	return "// " + fname + " generated by MetaSIP on " + stamp + "\n//\n// This file is part of the " + module +
		" Python extension module.\n\n"
}

func render(t *testing.T, opts Options, p *model.Project, mod *model.Module, hf *model.HeaderFile) string {
	t.Helper()

	opts.Timestamp = fixedTime

	var b strings.Builder
	require.NoError(t, New(nil, opts).RenderHeaderFile(&b, p, mod, hf))

	return b.String()
}

func TestRenderHeaderFile_ConditionalNesting(t *testing.T) {
	p := model.NewProject("")
	p.Versions = []string{"1.0", "2.0", "3.0"}

	fn := model.New(model.KindFunction, "foo")
	fn.RType = "int"
	fn.SGen = 2
	fn.EGen = 3
	fn.Platforms = []string{"WS_X11", "WS_MACX"}
	fn.Features = []string{"PyQt_Foo"}

	hf := &model.HeaderFile{Name: "qfoo.h", Content: []*model.Code{fn}}
	mod := &model.Module{Name: "QtCore"}

	t.Run("history wraps retired declarations", func(t *testing.T) {
		got := render(t, Options{History: true}, p, mod, hf)

		want := header("qfoo.sip", "QtCore") +
			"\n%ModuleCode\n#include <qfoo.h>\n%End\n" +
			"\n%If (2.0 - 3.0)\n%If (WS_X11 || WS_MACX)\n%If (PyQt_Foo)\nint foo();\n%End\n%End\n%End\n"
		assert.Equal(t, want, got)
	})

	t.Run("retired declarations are omitted by default", func(t *testing.T) {
		got := render(t, Options{}, p, mod, hf)
		assert.Equal(t, header("qfoo.sip", "QtCore"), got)
	})

	t.Run("empty conditions are omitted", func(t *testing.T) {
		plain := model.New(model.KindFunction, "bar")
		plain.RType = "void"
		plain.SGen = 3

		got := render(t, Options{}, p, mod, &model.HeaderFile{Name: "qbar.h", Element: model.Element{SGen: 2}, Content: []*model.Code{plain}})

		want := header("qbar.sip", "QtCore") +
			"\n%If (2.0 -)\n%ModuleCode\n#include <qbar.h>\n%End\n%End\n" +
			"\n%If (3.0 -)\nvoid bar();\n%End\n"
		assert.Equal(t, want, got)
	})

	t.Run("suppressed declarations are never written", func(t *testing.T) {
		ignored := model.New(model.KindFunction, "baz")
		ignored.Status = "ignored"

		got := render(t, Options{History: true}, p, mod, &model.HeaderFile{Name: "qbaz.h", Content: []*model.Code{ignored}})
		assert.Equal(t, header("qbaz.sip", "QtCore"), got)
	})
}

func TestRenderHeaderFile_Class(t *testing.T) {
	p := model.NewProject("")
	p.Versions = []string{"1.0", "2.0"}

	ctor := model.New(model.KindConstructor, "QWidget")
	ctor.Explicit = true
	ctor.Args = []*model.Argument{{Type: "QWidget *", Name: "parent", Default: "0", Annos: "TransferThis"}}

	event := model.New(model.KindMethod, "event")
	event.Access = "protected"
	event.Virtual = true
	event.RType = "bool"
	event.Args = []*model.Argument{{Type: "QEvent *"}}
	require.NoError(t, event.SetLiteral(model.LiteralMethCode, "sipRes = true;"))

	old := model.New(model.KindMethod, "old")
	old.Access = "protected"
	old.RType = "void"
	old.EGen = 2

	enum := model.New(model.KindEnum, "RenderFlag")
	enum.Values = []*model.EnumValue{{Name: "A"}, {Element: model.Element{Status: "ignored"}, Name: "B"}}

	v := model.New(model.KindVariable, "x")
	v.Type = "int"
	require.NoError(t, v.SetLiteral(model.LiteralGetCode, "sipPy = 0;"))

	cls := model.New(model.KindClass, "QWidget")
	cls.Bases = "public QObject, protected QPaintDevice"
	cls.Content = []*model.Code{ctor, event, old, enum, v}

	hf := &model.HeaderFile{Name: "qwidget.h", Content: []*model.Code{cls}}

	got := render(t, Options{LatestSyntax: true}, p, &model.Module{Name: "QtGui"}, hf)

	want := header("qwidget.sip", "QtGui") + `
class QWidget : QObject, protected QPaintDevice
{
%TypeHeaderCode
#include <qwidget.h>
%End

public:
    explicit QWidget(QWidget *parent /TransferThis/ = 0);

protected:
    virtual bool event(QEvent *);
%MethodCode
        sipRes = true;
%End

public:
    enum RenderFlag
    {
        A,
    };

    int x {
%GetCode
        sipPy = 0;
%End

    };
};
`
	assert.Equal(t, want, got)
}

func TestRenderHeaderFile_LegacyVariable(t *testing.T) {
	p := model.NewProject("")

	v := model.New(model.KindVariable, "counter")
	v.Type = "int"
	v.Static = true

	got := render(t, Options{}, p, &model.Module{Name: "M"}, &model.HeaderFile{Name: "c.h", Content: []*model.Code{v}})

	assert.Equal(t, header("c.sip", "M")+"\n%ModuleCode\n#include <c.h>\n%End\n\nstatic int counter;\n", got)
}

func TestRenderHeaderFile_ScopedEnum(t *testing.T) {
	p := model.NewProject("")

	e := model.New(model.KindEnum, "Mode")
	e.EnumClass = true
	e.Values = []*model.EnumValue{{Name: "On"}, {Name: "Off"}}

	got := render(t, Options{}, p, &model.Module{Name: "M"}, &model.HeaderFile{Name: "m.h", Content: []*model.Code{e}})

	assert.Equal(t, header("m.sip", "M")+"\n%ModuleCode\n#include <m.h>\n%End\n\nenum class Mode\n{\n    On,\n    Off,\n};\n", got)
}

func TestRenderHeaderFile_IgnoredNamespace(t *testing.T) {
	p := model.NewProject("")
	require.NoError(t, p.AddIgnoredNamespace("Qt"))

	td := model.New(model.KindTypedef, "Alignment")
	td.Type = "QFlags<Qt::AlignmentFlag>"

	ns := model.New(model.KindNamespace, "Qt")
	ns.Content = []*model.Code{td}

	got := render(t, Options{}, p, &model.Module{Name: "QtCore"}, &model.HeaderFile{Name: "qnamespace.h", Content: []*model.Code{ns}})

	assert.Equal(t, header("qnamespace.sip", "QtCore")+"\ntypedef QFlags<AlignmentFlag> Alignment;\n", got)
}

func TestRenderHeaderFile_Namespace(t *testing.T) {
	p := model.NewProject("")

	fn := model.New(model.KindFunction, "qt_noop")
	fn.RType = "void"

	ns := model.New(model.KindNamespace, "QtPrivate")
	ns.Content = []*model.Code{fn}

	got := render(t, Options{}, p, &model.Module{Name: "QtCore"}, &model.HeaderFile{Name: "qglobal.h", Content: []*model.Code{ns}})

	want := header("qglobal.sip", "QtCore") + `
namespace QtPrivate
{
%TypeHeaderCode
#include <qglobal.h>
%End

    void qt_noop();
};
`
	assert.Equal(t, want, got)
}

func TestRenderHeaderFile_ManualCodeAndLiterals(t *testing.T) {
	p := model.NewProject("")
	require.NoError(t, p.SetLiteral(model.LiteralSIPComments, "// Copyright (c) Riverbank"))

	directive := model.New(model.KindManualCode, "%If (Qt_5_0_0 -)")

	body := model.New(model.KindManualCode, "qHash overloads")
	require.NoError(t, body.SetLiteral(model.LiteralBody, "uint qHash(int);"))

	plain := model.New(model.KindManualCode, "void qDebug(const char *)")

	hf := &model.HeaderFile{Name: "qhash.h", Content: []*model.Code{directive, body, plain}}
	require.NoError(t, hf.SetLiteral(model.LiteralModuleHeaderCode, "#include <qhash.h>"))
	require.NoError(t, hf.SetLiteral(model.LiteralPostInitCode, "qInit();"))

	got := render(t, Options{}, p, &model.Module{Name: "QtCore"}, hf)

	want := "// qhash.sip generated by MetaSIP on " + stamp + "\n//\n// This file is part of the QtCore Python extension module.\n" +
		"//\n// Copyright (c) Riverbank\n\n" + `
%If (Qt_5_0_0 -)
// qHash overloads
uint qHash(int);
void qDebug(const char *);

%ModuleHeaderCode
#include <qhash.h>
%End

%PostInitialisationCode
qInit();
%End
`
	assert.Equal(t, want, got)
}

func TestRenderHeaderFile_PythonSignatures(t *testing.T) {
	p := model.NewProject("")

	m := model.New(model.KindMethod, "data")
	m.RType = "const char *"
	m.PyType = "SIP_PYOBJECT"
	m.Args = []*model.Argument{{Type: "int", Name: "len"}}

	ctor := model.New(model.KindConstructor, "QByteArray")
	ctor.Args = []*model.Argument{{Type: "const char *", Name: "s", PyType: "SIP_PYBUFFER"}}

	st := model.New(model.KindClass, "QByteArray")
	st.Struct = true
	st.Content = []*model.Code{ctor, m}

	got := render(t, Options{}, p, &model.Module{Name: "QtCore"}, &model.HeaderFile{Name: "qbytearray.h", Content: []*model.Code{st}})

	assert.Contains(t, got, "    QByteArray(SIP_PYBUFFER s) [(const char *s)];\n")
	assert.Contains(t, got, "    SIP_PYOBJECT data(int len) [const char * (int len)];\n")
	assert.NotContains(t, got, "public:")
}

func TestRenderModuleRoot(t *testing.T) {
	p := model.NewProject("")
	p.RootModule = "PyQt4"
	p.Versions = []string{"v1", "v2"}
	p.Platforms = []string{"WS_X11"}
	p.Features = []string{"PyQt_Foo", "PyQt_Bar"}
	p.ExternalModules = []string{"sip"}

	core := &model.Module{Name: "QtCore", Version: "1", Imports: []string{"sip"}}
	require.NoError(t, core.SetLiteral(model.LiteralDirectives, `%License(type="gpl")`))

	gui := &model.Module{Name: "QtGui", Imports: []string{"QtCore"}}

	t.Run("top level module", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, New(nil, Options{LatestSyntax: true, Timestamp: fixedTime}).RenderModuleRoot(&b, p, core, []string{"qobject.sip"}))

		want := header("QtCoremod.sip", "QtCore") + `
%Module(name=PyQt4.QtCore, keyword_arguments="Optional", version=1)

%Import sip/sipmod.sip

%Timeline {v1 v2}

%Platforms {WS_X11}

%Feature PyQt_Foo
%Feature PyQt_Bar

%License(type="gpl")

%Include qobject.sip
`
		assert.Equal(t, want, b.String())
	})

	t.Run("dependent module in legacy syntax", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, New(nil, Options{Timestamp: fixedTime}).RenderModuleRoot(&b, p, gui, []string{"qwidget.sip"}))

		want := header("QtGuimod.sip", "QtGui") + `
%Module PyQt4.QtGui 0

%Import QtCore/QtCoremod.sip

%Include qwidget.sip
`
		assert.Equal(t, want, b.String())
	})
}

type memFile struct {
	strings.Builder
	closed bool
}

func (f *memFile) Close() error {
	f.closed = true

	return nil
}

type memFS struct {
	dirs    []string
	files   map[string]*memFile
	failOn  string
	created []string
}

func newMemFS() *memFS {
	return &memFS{files: map[string]*memFile{}}
}

func (fs *memFS) MkdirAll(dir string) error {
	fs.dirs = append(fs.dirs, dir)

	return nil
}

func (fs *memFS) Create(path string) (io.WriteCloser, error) {
	if path == fs.failOn {
		return nil, errors.New("permission denied")
	}

	f := &memFile{}
	fs.files[path] = f
	fs.created = append(fs.created, path)

	return f, nil
}

func TestGenerateModule(t *testing.T) {
	p := model.NewProject("")
	p.Versions = []string{"1.0"}

	current := &model.HeaderFile{Name: "QtCore/qobject.h"}
	ignored := &model.HeaderFile{Name: "qprivate.h", Element: model.Element{Status: "ignored"}}
	retired := &model.HeaderFile{Name: "qold.h", Element: model.Element{EGen: 1}}

	mod := &model.Module{Name: "QtCore", OutputDirSuffix: "core", HeaderFiles: []*model.HeaderFile{current, ignored, retired}}

	t.Run("writes current header files and the root", func(t *testing.T) {
		fs := newMemFS()

		var progress []string

		gen := New(fs, Options{Timestamp: fixedTime, OnFile: func(path string) { progress = append(progress, path) }})

		written, err := gen.GenerateModule(p, mod, "/out")
		require.NoError(t, err)

		dir := filepath.Join("/out", "core")
		want := []string{filepath.Join(dir, "qobject.sip"), filepath.Join(dir, "QtCoremod.sip")}

		assert.Equal(t, []string{dir}, fs.dirs)
		assert.Equal(t, want, written)
		assert.Equal(t, want, progress)
		assert.True(t, fs.files[want[1]].closed)
		assert.Contains(t, fs.files[want[1]].String(), "%Include qobject.sip\n")
		assert.NotContains(t, fs.files[want[1]].String(), "qold")
	})

	t.Run("history includes retired header files", func(t *testing.T) {
		fs := newMemFS()

		written, err := New(fs, Options{History: true}).GenerateModule(p, mod, "/out")
		require.NoError(t, err)
		assert.Len(t, written, 3)
	})

	t.Run("create failure names the file", func(t *testing.T) {
		fs := newMemFS()
		fs.failOn = filepath.Join("/out", "core", "QtCoremod.sip")

		written, err := New(fs, Options{}).GenerateModule(p, mod, "/out")
		require.Error(t, err)

		var se *model.StorageError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, fs.failOn, se.Location)
		assert.Len(t, written, 1)
	})
}
