package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/metasip/internal/adapter"
	"github.com/mouse-blink/metasip/internal/domain"
	domainmocks "github.com/mouse-blink/metasip/internal/domain/mocks"
	m "github.com/mouse-blink/metasip/internal/model"
)

func TestInitCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.On("Init", domain.InitArgs{
		ProjectArgs: domain.ProjectArgs{Project: "qt.msp"},
		RootModule:  "PyQt",
		InputDir:    "/usr/include/qt",
		OutputDir:   "sip",
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, nil,
		"init", "-p", "qt.msp", "--root-module", "PyQt", "--input-dir", "/usr/include/qt", "-o", "sip")
	require.NoError(t, err)
}

func TestShowCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.On("Show", domain.ShowArgs{
		ProjectArgs:     domain.ProjectArgs{Project: "qt.msp"},
		HeaderDirectory: "QtCore",
		HeaderFile:      "qobject.h",
		History:         true,
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, nil, "show", "qobject.h", "-p", "qt.msp", "-d", "QtCore", "--history")
	require.NoError(t, err)
}

func TestGenerateCmd(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.EXPECT().Generate(domain.GenerateArgs{
			ProjectArgs: domain.ProjectArgs{Project: "qt.msp"},
			OutputArgs: domain.OutputArgs{
				Modules:      []string{"QtCore", "QtGui"},
				Ignore:       []string{"QtNetwork"},
				OutputDir:    "sip",
				LatestSyntax: false,
				History:      true,
			},
			SaveOutputDir: true,
		}).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil,
			"generate", "-p", "qt.msp", "-o", "sip", "-m", "QtCore", "-m", "QtGui", "-x", "QtNetwork",
			"--legacy-syntax", "--history")
		require.NoError(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
			return args.OutputDir == "" && args.LatestSyntax && !args.SaveOutputDir && len(args.Modules) == 0
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil, "generate", "-p", "qt.msp")
		require.NoError(t, err)
	})

	t.Run("no-save-output-dir", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
			return args.OutputDir == "/tmp/sip" && !args.SaveOutputDir
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil, "generate", "-p", "qt.msp", "-o", "/tmp/sip", "--no-save-output-dir")
		require.NoError(t, err)
	})

	t.Run("settings", func(t *testing.T) {
		latest := false
		s := &adapter.Settings{
			Project:       "qt.msp",
			OutputDir:     "build/sip",
			IgnoreModules: []string{"QtWebKit"},
			LatestSyntax:  &latest,
		}

		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
			return args.Project == "qt.msp" &&
				args.OutputDir == "build/sip" &&
				!args.SaveOutputDir &&
				!args.LatestSyntax &&
				assert.ObjectsAreEqual([]string{"QtWebKit", "QtNetwork"}, args.Ignore)
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, s, "generate", "-x", "QtWebKit", "-x", "QtNetwork")
		require.NoError(t, err)
	})

	t.Run("flag overrides settings syntax", func(t *testing.T) {
		latest := true
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
			return !args.LatestSyntax
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, &adapter.Settings{LatestSyntax: &latest}, "generate", "-p", "qt.msp", "--legacy-syntax")
		require.NoError(t, err)
	})
}

func TestCheckCmd(t *testing.T) {
	t.Run("up to date", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.EXPECT().Check(mock.MatchedBy(func(args domain.CheckArgs) bool {
			return args.Project == "qt.msp" && assert.ObjectsAreEqual([]string{"QtCore"}, args.Modules)
		})).Return(true, nil)

		_, err := executeWith(t, mockWorkflow, nil, "check", "-p", "qt.msp", "-m", "QtCore")
		require.NoError(t, err)
	})

	t.Run("out of date", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.EXPECT().Check(mock.Anything).Return(false, nil)

		_, err := executeWith(t, mockWorkflow, nil, "check", "-p", "qt.msp")

		var ue *m.UserError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "generated files are out of date", ue.Text)
	})

	t.Run("failure", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.EXPECT().Check(mock.Anything).Return(false, m.NewStorageError("qt.msp", m.ErrNotFound))

		_, err := executeWith(t, mockWorkflow, nil, "check", "-p", "qt.msp")

		var se *m.StorageError
		require.ErrorAs(t, err, &se)
	})
}

func TestScanCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.On("Scan", mock.Anything, domain.ScanArgs{
		ProjectArgs:       domain.ProjectArgs{Project: "qt.msp"},
		HeaderDirectories: []string{"QtCore", "QtGui"},
		InputDir:          "/usr/include/qt6",
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, nil,
		"scan", "-p", "qt.msp", "-d", "QtCore", "-d", "QtGui", "--input-dir", "/usr/include/qt6")
	require.NoError(t, err)
}

func TestMergeCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.On("Merge", domain.MergeArgs{
		ProjectArgs:     domain.ProjectArgs{Project: "qt.msp"},
		HeaderDirectory: "QtCore",
		HeaderFile:      "qobject.h",
		Parsed:          m.Path("qobject.xml"),
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, nil, "merge", "-p", "qt.msp", "-d", "QtCore", "qobject.h", "qobject.xml")
	require.NoError(t, err)
}

func TestAddCmd(t *testing.T) {
	t.Run("module", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Add", domain.AddArgs{
			ProjectArgs:     domain.ProjectArgs{Project: "qt.msp"},
			Kind:            domain.AddModule,
			Value:           "QtGui",
			OutputDirSuffix: "gui",
			ModuleVersion:   "4.7",
			Imports:         []string{"QtCore"},
		}).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil,
			"add", "module", "QtGui", "-p", "qt.msp", "--output-dir-suffix", "gui", "--module-version", "4.7", "--import", "QtCore")
		require.NoError(t, err)
	})

	t.Run("header directory", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Add", mock.MatchedBy(func(args domain.AddArgs) bool {
			return args.Kind == domain.AddHeaderDirectory &&
				args.Value == "QtCore" &&
				args.ParserArgs == "-I." &&
				args.InputDirSuffix == "QtCore" &&
				args.FileFilter == "*.h"
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil,
			"add", "header-directory", "QtCore", "-p", "qt.msp", "--parser-args", "-I.", "--input-dir-suffix", "QtCore", "--file-filter", "*.h")
		require.NoError(t, err)
	})

	t.Run("module header", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Add", mock.MatchedBy(func(args domain.AddArgs) bool {
			return args.Kind == domain.AddModuleHeaderFile &&
				args.Value == "qobject.h" &&
				args.Module == "QtCore" &&
				args.HeaderDirectory == "QtCore"
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil, "add", "module-header", "qobject.h", "-p", "qt.msp", "-m", "QtCore", "-d", "QtCore")
		require.NoError(t, err)
	})

	t.Run("help lists the kinds", func(t *testing.T) {
		out, err := executeWith(t, domainmocks.NewMockWorkflow(t), nil, "add", "--help")
		require.NoError(t, err)

		for _, k := range domain.AddKinds {
			assert.Contains(t, out, string(k))
		}
	})
}

func TestPresenceCmds(t *testing.T) {
	t.Run("retire a declaration", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("SetPresence", domain.PresenceArgs{
			ProjectArgs: domain.ProjectArgs{Project: "qt.msp"},
			HeaderFile:  "qobject.h",
			Declaration: []string{"QObject", "parent"},
			Signature:   "QObject *parent() const",
			Version:     "4.7",
			Present:     false,
		}).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil,
			"retire", "qobject.h", "QObject::parent", "-p", "qt.msp", "--version", "4.7", "--signature", "QObject *parent() const")
		require.NoError(t, err)
	})

	t.Run("restore a header file", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("SetPresence", mock.MatchedBy(func(args domain.PresenceArgs) bool {
			return args.Present && args.HeaderFile == "qobject.h" && args.Declaration == nil &&
				args.HeaderDirectory == "QtCore" && args.Version == "4.8"
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil, "restore", "qobject.h", "-p", "qt.msp", "-d", "QtCore", "--version", "4.8")
		require.NoError(t, err)
	})
}

func TestSaveAsCmd(t *testing.T) {
	t.Run("writes the loaded project", func(t *testing.T) {
		p := m.NewProject("qt.msp")

		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Load", "qt.msp").Return(p, nil)
		mockWorkflow.On("SaveAs", p, "qt-copy.msp").Return(nil)

		_, err := executeWith(t, mockWorkflow, nil, "save-as", "qt-copy.msp", "-p", "qt.msp")
		require.NoError(t, err)
	})

	t.Run("load failure", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("Load", "qt.msp").Return(nil, m.NewStorageError("qt.msp", m.ErrNotFound))

		_, err := executeWith(t, mockWorkflow, nil, "save-as", "qt-copy.msp", "-p", "qt.msp")

		var se *m.StorageError
		require.ErrorAs(t, err, &se)
	})
}

func TestNameArgumentsCmd(t *testing.T) {
	t.Run("header files", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("NameArguments", domain.NameArgumentsArgs{
			ProjectArgs:     domain.ProjectArgs{Project: "qt.msp"},
			HeaderFiles:     []string{"qobject.h", "qwidget.h"},
			HeaderDirectory: "QtCore",
			DryRun:          true,
		}).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil, "name-arguments", "qobject.h", "qwidget.h", "-p", "qt.msp", "-d", "QtCore", "--dry-run")
		require.NoError(t, err)
	})

	t.Run("accept a module", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		mockWorkflow.On("NameArguments", mock.MatchedBy(func(args domain.NameArgumentsArgs) bool {
			return args.Module == "QtGui" && args.Accept && !args.DryRun && len(args.HeaderFiles) == 0
		})).Return(nil)

		_, err := executeWith(t, mockWorkflow, nil, "name-arguments", "-p", "qt.msp", "-m", "QtGui", "--accept")
		require.NoError(t, err)
	})
}
