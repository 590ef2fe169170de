package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]int{"sections": 3})

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"sections\": 3\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})

	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestMarshalError(t *testing.T) {
	var decoded Error
	require.NoError(t, json.Unmarshal([]byte(MarshalError("boom", map[string]any{"file": "a.md"})), &decoded))

	assert.Equal(t, "boom", decoded.Message)
	assert.Equal(t, "a.md", decoded.Data["file"])
}

func TestTextReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.md")
	require.NoError(t, os.WriteFile(path, []byte("one\n\ntwo"), 0o644))

	r := &TextReader{file: path}
	got, err := r.Read()

	require.NoError(t, err)
	assert.Equal(t, "one\n\ntwo", got)
}

func TestTextReader_MissingFile(t *testing.T) {
	r := &TextReader{file: filepath.Join(t.TempDir(), "missing.md")}

	_, err := r.Read()

	assert.ErrorContains(t, err, "read file")
}

func TestTextReader_Stdin(t *testing.T) {
	r := &TextReader{stdin: strings.NewReader("piped")}

	got, err := r.Read()

	require.NoError(t, err)
	assert.Equal(t, "piped", got)
}

func TestTextReader_TerminalStdin(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(int) bool { return true }

	_, err := (&TextReader{}).Read()

	assert.ErrorIs(t, err, ErrNoInput)
}

func TestTextReader_Flag(t *testing.T) {
	r := &TextReader{}
	flag := r.Flag()

	assert.Equal(t, "file", flag.Name)
	assert.Equal(t, []string{"f"}, flag.Aliases)
}
