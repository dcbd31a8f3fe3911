package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestParseDomesticInput(t *testing.T) {
	out, _, code := execute(t, "parse", "--countries", "US,GB", "(202) 404-1234")
	require.Equal(t, 0, code)
	assert.Equal(t, "country: US (us_and_canada)\n"+
		"digits: 2024041234\n"+
		"partial: false\n"+
		"e164: +12024041234\n"+
		"formatted: +1 (202) 404-1234\n", out)
}

func TestParseStripsTrunkPrefix(t *testing.T) {
	out, _, code := execute(t, "parse", "--countries", "GB,US", "--json", "07259 264 820")
	require.Equal(t, 0, code)

	var got parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "7259264820", got.Digits)
	assert.Equal(t, "+447259264820", got.E164)
	assert.Equal(t, "+44 7259 264 820", got.Formatted)
	assert.False(t, got.Partial)
	assert.Nil(t, got.Cursor)
}

func TestParseReportsCursor(t *testing.T) {
	out, _, code := execute(t, "parse", "--countries", "US", "--cursor", "0", "(202) 404-1234")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "cursor: 0\n")
}

func TestParseNoMatchFails(t *testing.T) {
	out, errOut, code := execute(t, "parse", "--countries", "US", "6660000")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no result")
}

func TestParseRejectsUnknownCountryFlag(t *testing.T) {
	_, errOut, code := execute(t, "parse", "--countries", "FR", "123")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported country")
}

func TestFormatModes(t *testing.T) {
	cases := map[string]string{
		"domestic":      "07259 264 820\n",
		"international": "+44 7259 264 820\n",
		"separate":      "7259 264 820\n",
	}
	for mode, want := range cases {
		out, _, code := execute(t, "format", "GB", "7259264820", "--mode", mode)
		require.Equal(t, 0, code, mode)
		assert.Equal(t, want, out, mode)
	}
}

func TestFormatRejectsUnknownMode(t *testing.T) {
	_, errOut, code := execute(t, "format", "GB", "7259264820", "--mode", "e164")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown mode")
}

func TestEncodeAndDecode(t *testing.T) {
	out, _, code := execute(t, "encode", "united_kingdom", "7259264820")
	require.Equal(t, 0, code)
	assert.Equal(t, "+447259264820\n", out)

	out, _, code = execute(t, "decode", "--json", "+447259264820")
	require.Equal(t, 0, code)
	var got parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "GB", got.Country.Region())
	assert.Equal(t, "7259264820", got.Digits)

	_, _, code = execute(t, "decode", "447259264820")
	assert.Equal(t, 1, code)
}

func TestTemplatesRestrictedToCountries(t *testing.T) {
	out, _, code := execute(t, "templates", "--countries", "GB")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "country: GB")
	assert.NotContains(t, out, "country: US")
}

func TestTemplatesFileReplacesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`countries:
  - country: GB
    trunk_prefix: "0"
    templates:
      - pattern: "7### ######"
        options: [mobile]
`), 0o600))

	out, _, code := execute(t, "parse", "--countries", "GB", "--templates", path, "07123 456789")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "formatted: +44 7123 456789\n")

	_, errOut, code := execute(t, "parse", "--templates", filepath.Join(t.TempDir(), "missing.yaml"), "1")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, code := execute(t, "parse", "-v", "--countries", "US", "2024041234")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "phone_parsed")
}
