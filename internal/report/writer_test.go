package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/dupfinder/internal/filelock"
	"github.com/harrison/dupfinder/internal/finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *finder.Result {
	return &finder.Result{
		Root: "/r",
		Occurrences: finder.FileMap{
			"x.txt": {"/r/a/x.txt", "/r/b/x.txt"},
			"y.txt": {"/r/a/y.txt"},
		},
		Duplicates: finder.FileMap{"x.txt": {"/r/a/x.txt", "/r/b/x.txt"}},
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "c", want: ModeConsole},
		{input: "f", want: ModeFile},
		{input: "b", want: ModeBoth},
		{input: " B \n", want: ModeBoth},
		{input: "console", want: ModeConsole},
		{input: "FILE", want: ModeFile},
		{input: "both", want: ModeBoth},
		{input: "", wantErr: true},
		{input: "x", wantErr: true},
		{input: "cf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Destinations(t *testing.T) {
	assert.True(t, ModeConsole.ToConsole())
	assert.False(t, ModeConsole.ToFile())
	assert.False(t, ModeFile.ToConsole())
	assert.True(t, ModeFile.ToFile())
	assert.True(t, ModeBoth.ToConsole())
	assert.True(t, ModeBoth.ToFile())

	assert.Equal(t, "c", ModeConsole.String())
	assert.Equal(t, "f", ModeFile.String())
	assert.Equal(t, "b", ModeBoth.String())
	assert.Equal(t, "unknown", Mode(0).String())
}

func TestWriteConsole_Plain(t *testing.T) {
	var buf bytes.Buffer
	result := testResult()

	require.NoError(t, WriteConsole(&buf, result.Root, result.Duplicates, false))
	assert.Equal(t, Render(result.Root, result.Duplicates), buf.String())
}

func TestWriteConsole_Colored(t *testing.T) {
	var buf bytes.Buffer
	result := testResult()

	require.NoError(t, WriteConsole(&buf, result.Root, result.Duplicates, true))

	bold := color.New(color.Bold)
	bold.EnableColor()
	cyan := color.New(color.FgCyan)
	cyan.EnableColor()

	output := buf.String()
	assert.Contains(t, output, bold.Sprint("1")+"\n")
	assert.Contains(t, output, cyan.Sprint(`"x.txt" can be found in the following locations:`)+"\n")
	assert.Contains(t, output, "1. /r/a/x.txt\n")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteConsole_WriterError(t *testing.T) {
	result := testResult()
	err := WriteConsole(failingWriter{}, result.Root, result.Duplicates, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "dups.txt")
	result := testResult()

	require.NoError(t, WriteFile(path, result.Root, result.Duplicates))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(result.Root, result.Duplicates), string(data))
}

func TestWriteFile_WaitsForLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dups.txt")
	result := testResult()

	held := filelock.NewFileLock(path + ".lock")
	require.NoError(t, held.Lock())

	done := make(chan error, 1)
	go func() {
		done <- WriteFile(path, result.Root, result.Duplicates)
	}()

	select {
	case <-done:
		t.Fatal("WriteFile wrote while another process held the report lock")
	case <-time.After(100 * time.Millisecond):
	}
	assert.NoFileExists(t, path)

	require.NoError(t, held.Unlock())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("WriteFile did not finish after the lock was released")
	}
	assert.FileExists(t, path)
}

func TestWriteFile_EmptyPath(t *testing.T) {
	result := testResult()
	assert.Error(t, WriteFile("", result.Root, result.Duplicates))
}

func TestEmit(t *testing.T) {
	result := testResult()
	expected := Render(result.Root, result.Duplicates)

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "dups.txt")

		require.NoError(t, Emit(result, Target{Mode: ModeConsole, Path: path, Console: &buf}))
		assert.Equal(t, expected, buf.String())
		assert.NoFileExists(t, path)
	})

	t.Run("file", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "dups.txt")

		require.NoError(t, Emit(result, Target{Mode: ModeFile, Path: path, Console: &buf}))
		assert.Empty(t, buf.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, expected, string(data))
	})

	t.Run("both", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "dups.txt")

		require.NoError(t, Emit(result, Target{Mode: ModeBoth, Path: path, Console: &buf}))
		assert.Equal(t, expected, buf.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, expected, string(data))
	})

	t.Run("invalid mode", func(t *testing.T) {
		err := Emit(result, Target{Console: &bytes.Buffer{}})
		assert.ErrorIs(t, err, ErrInvalidMode)
	})

	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, Emit(nil, Target{Mode: ModeConsole, Console: &bytes.Buffer{}}))
	})

	t.Run("missing console writer", func(t *testing.T) {
		assert.Error(t, Emit(result, Target{Mode: ModeConsole}))
	})
}

func TestEmit_ScannedTree(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"a/x.txt", "b/x.txt", "a/y.txt"} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	result, err := finder.New(nil).Scan(root)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Emit(result, Target{Mode: ModeConsole, Console: &buf}))

	assert.Contains(t, buf.String(), root+"\n")
	assert.Contains(t, buf.String(), "1. "+filepath.Join(root, "a", "x.txt")+"\n")
	assert.Contains(t, buf.String(), "2. "+filepath.Join(root, "b", "x.txt")+"\n")
	assert.NotContains(t, buf.String(), "y.txt")
}
