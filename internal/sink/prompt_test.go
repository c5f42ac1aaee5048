package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptFileSink(t *testing.T) {
	in := strings.NewReader("1\ncsv\nout/unified.csv\n")
	var out bytes.Buffer

	cfg, err := Prompt(in, &out, "data.db")
	require.NoError(t, err)

	assert.Equal(t, KindFile, cfg.Kind)
	assert.Equal(t, FormatCSV, cfg.Format)
	assert.Equal(t, "out/unified.csv", cfg.Path)
	assert.Contains(t, out.String(), "How would you like to persist")
}

func TestPromptFileFormatCaseInsensitive(t *testing.T) {
	in := strings.NewReader("1\nPARQUET\nunified.parquet\n")
	cfg, err := Prompt(in, &bytes.Buffer{}, "data.db")
	require.NoError(t, err)
	assert.Equal(t, FormatParquet, cfg.Format)
}

func TestPromptSQLiteDefault(t *testing.T) {
	in := strings.NewReader("\nno\nunified\n")
	cfg, err := Prompt(in, &bytes.Buffer{}, "data.db")
	require.NoError(t, err)

	assert.Equal(t, KindSQLite, cfg.Kind)
	assert.Equal(t, "data.db", cfg.Path)
	assert.Equal(t, "unified", cfg.Table)
	assert.False(t, cfg.InMemory)
}

func TestPromptSQLiteInMemory(t *testing.T) {
	in := strings.NewReader("2\nYES\nunified\n")
	cfg, err := Prompt(in, &bytes.Buffer{}, "data.db")
	require.NoError(t, err)
	assert.True(t, cfg.InMemory)
}

func TestPromptUnsupportedFormat(t *testing.T) {
	in := strings.NewReader("1\norc\nout.orc\n")
	_, err := Prompt(in, &bytes.Buffer{}, "data.db")
	assert.Error(t, err)
}

func TestPromptEOF(t *testing.T) {
	_, err := Prompt(strings.NewReader(""), &bytes.Buffer{}, "data.db")
	assert.Error(t, err)
}
