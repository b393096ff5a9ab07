package adapter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/metasip/internal/model"
)

func TestLocalProjectStore_Replace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	location := filepath.Join(dir, "qt.msp")
	ps := NewProjectStore()

	write := func(text string) func(w io.Writer) error {
		return func(w io.Writer) error {
			_, err := io.WriteString(w, text)
			return err
		}
	}

	require.NoError(t, ps.Replace(location, write("first")))

	_, err := os.Stat(location + "~")
	assert.True(t, errors.Is(err, os.ErrNotExist), "no backup expected for a new project")

	writeTestFile(t, location+"~", "stale")
	require.NoError(t, ps.Replace(location, write("second")))

	got, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	for _, leftover := range []string{location + "~", location + ".new"} {
		_, err = os.Stat(leftover)
		assert.True(t, errors.Is(err, os.ErrNotExist), "%s left behind", leftover)
	}
}

func TestLocalProjectStore_ReplaceFailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	location := filepath.Join(dir, "qt.msp")
	writeTestFile(t, location, "original")

	errBoom := errors.New("boom")
	err := NewProjectStore().Replace(location, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	var se *m.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, location+".new", se.Location)

	got, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	_, err = os.Stat(location + ".new")
	assert.True(t, errors.Is(err, os.ErrNotExist), "temporary file left behind")
}

func TestLocalProjectStore_Open(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	location := filepath.Join(dir, "qt.msp")
	writeTestFile(t, location, "<Project/>")

	ps := NewProjectStore()

	r, err := ps.Open(location)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "<Project/>", string(got))

	_, err = ps.Open(filepath.Join(dir, "missing.msp"))

	var se *m.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, filepath.Join(dir, "missing.msp"), se.Location)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
