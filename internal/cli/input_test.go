package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	text, err := GetSimpleText(newReader("hello\n"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Contains(t, out.String(), "Name")
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	text, err := GetSimpleText(newReader("  padded  \n"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "padded", text)
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	text, err := GetSimpleText(newReader("no newline"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", text)
}

func TestGetSimpleText_EmptyInputFails(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(newReader(""), "Name", &out)
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer", "1000", "1000", false},
		{"dot decimal", "10.50", "10.5", false},
		{"comma decimal", "10,50", "10.5", false},
		{"padded", " 42 ", "42", false},
		{"garbage", "abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, want.Equal(value))
		})
	}
}

func TestGetAmount(t *testing.T) {
	var out bytes.Buffer
	value, err := GetAmount(newReader("10,50\n"), "Value", &out)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(10.5).Equal(value))
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	idx, err := GetChoice(newReader("2\n"), "Pick one", []string{"a", "b", "c"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "1) a")
	assert.Contains(t, out.String(), "3) c")
}

func TestGetChoice_RetriesOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	idx, err := GetChoice(newReader("0\nx\n9\n3\n"), "Pick one", []string{"a", "b", "c"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Contains(t, out.String(), "between 1 and 3")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			ok, err := Confirm(newReader(tt.input), "Sure?", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}
