package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLog_NoopBeforeInit(t *testing.T) {
	// Must not panic without a configured logger.
	Info(CatConsole, "ignored", "k", "v")
	ErrorErr(CatConsole, "ignored", errors.New("boom"))
}

func TestInitWithWriter_WritesCategoryAndFields(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWithWriter(&buf, LevelDebug)
	defer restore()

	Info(CatEnroll, "student registered", "student_id", "student1", "course_id", "CS101")
	Debug(CatCatalog, "course search", "matches", 2)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	require.Equal(t, "student registered", entries[0]["message"])
	require.Equal(t, "info", entries[0]["level"])
	require.Equal(t, "enroll", entries[0]["category"])
	require.Equal(t, "student1", entries[0]["student_id"])
	require.Equal(t, "CS101", entries[0]["course_id"])
	require.Equal(t, "catalog", entries[1]["category"])
	require.EqualValues(t, 2, entries[1]["matches"])
}

func TestInitWithWriter_RespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWithWriter(&buf, LevelWarn)
	defer restore()

	Debug(CatAuth, "dropped")
	Info(CatAuth, "dropped")
	Warn(CatAuth, "kept")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "kept", entries[0]["message"])
}

func TestErrorErr_AppendsError(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWithWriter(&buf, LevelInfo)
	defer restore()

	ErrorErr(CatConfig, "load failed", errors.New("bad yaml"), "path", "x.yaml")
	ErrorErr(CatConfig, "nil error", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	require.Equal(t, "bad yaml", entries[0]["error"])
	require.Equal(t, "x.yaml", entries[0]["path"])
	require.Equal(t, "<nil>", entries[1]["error"])
}

func TestLog_OrphanKey(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWithWriter(&buf, LevelInfo)
	defer restore()

	Info(CatConsole, "odd fields", "a", 1, "orphan")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "<missing>", entries[0]["orphan"])
}

func TestRestore_ReturnsToNoop(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWithWriter(&buf, LevelInfo)
	restore()

	Info(CatConsole, "after restore")
	require.Empty(t, buf.String())
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrar.log")

	cleanup, err := Init(Config{Path: path, Level: LevelInfo})
	require.NoError(t, err)
	Info(CatConfig, "file logging")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"file logging"`)
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(Config{Path: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}
