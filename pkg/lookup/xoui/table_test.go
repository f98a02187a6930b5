package xoui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xoui/pkg/config/xconf"
	"github.com/omeyang/xoui/pkg/util/xmac"
)

func testEntries() map[string]string {
	return map[string]string{
		"100020":   "Apple, Inc.\n1 Infinite Loop\nCupertino CA 95014\nUS",
		"00:1C:B3": "Apple, Inc.\n1 Infinite Loop\nCupertino CA 95014\nUS",
		"00-50-56": "VMware, Inc.\n3401 Hillview Avenue\nPALO ALTO CA 94304\nUS",
		"abcdef":   "\nNo vendor line",
	}
}

func TestNewTable(t *testing.T) {
	table, err := NewTable("test", testEntries())
	require.NoError(t, err)

	assert.Equal(t, "test", table.Version())
	assert.Equal(t, 4, table.Len())

	raw, ok := table.Raw(xmac.MustNormalizeOUI("001cb3"))
	require.True(t, ok)
	assert.Equal(t, "Apple, Inc.\n1 Infinite Loop\nCupertino CA 95014\nUS", raw)

	rec, ok := table.Record(xmac.MustNormalizeOUI("ABCDEF"))
	require.True(t, ok)
	assert.Equal(t, UnknownVendor, rec.Vendor)
	assert.Equal(t, "No vendor line", rec.Address)

	_, ok = table.Record(xmac.MustNormalizeOUI("FFFFFF"))
	assert.False(t, ok)
}

func TestNewTable_CopiesInput(t *testing.T) {
	entries := testEntries()
	table, err := NewTable("", entries)
	require.NoError(t, err)

	entries["112233"] = "Later"
	delete(entries, "100020")

	assert.Equal(t, 4, table.Len())
	_, ok := table.Raw(xmac.MustNormalizeOUI("100020"))
	assert.True(t, ok)
}

func TestNewTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
		want    error
	}{
		{"empty_key", map[string]string{"": "Vendor"}, ErrEmptyKey},
		{"empty_entry", map[string]string{"100020": ""}, ErrEmptyEntry},
		{"short_key", map[string]string{"1000": "Vendor"}, ErrInvalidTable},
		{"long_key", map[string]string{"10002011": "Vendor"}, ErrInvalidTable},
		{"bad_char", map[string]string{"10002G": "Vendor"}, ErrInvalidTable},
		{"duplicate", map[string]string{"100020": "A", "10:00:20": "B"}, ErrInvalidTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable("", tt.entries)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewTable_InvalidKeyWrapsOUIError(t *testing.T) {
	_, err := NewTable("", map[string]string{"zz0020": "Vendor"})
	assert.ErrorIs(t, err, ErrInvalidTable)
	assert.ErrorIs(t, err, xmac.ErrInvalidOUI)
}

func TestTable_OUIsSorted(t *testing.T) {
	table, err := NewTable("", testEntries())
	require.NoError(t, err)

	got := make([]string, 0, table.Len())
	for _, oui := range table.OUIs() {
		got = append(got, oui.String())
	}
	assert.Equal(t, []string{"001CB3", "005056", "100020", "ABCDEF"}, got)
}

const jsonTable = `{
  "version": "v1",
  "entries": {
    "100020": "Apple, Inc.\n1 Infinite Loop\nCupertino CA 95014\nUS",
    "00.50.56": "VMware, Inc.\n3401 Hillview Avenue"
  }
}`

const yamlTable = `
version: v1
entries:
  "100020": "Apple, Inc.\n1 Infinite Loop\nCupertino CA 95014\nUS"
  "00.50.56": |-
    VMware, Inc.
    3401 Hillview Avenue
`

func TestParseTable(t *testing.T) {
	for name, tc := range map[string]struct {
		data   string
		format xconf.Format
	}{
		"json": {jsonTable, xconf.FormatJSON},
		"yaml": {yamlTable, xconf.FormatYAML},
	} {
		t.Run(name, func(t *testing.T) {
			table, err := ParseTable([]byte(tc.data), tc.format)
			require.NoError(t, err)
			assert.Equal(t, "v1", table.Version())
			assert.Equal(t, 2, table.Len())

			rec, ok := table.Record(xmac.MustNormalizeOUI("005056"))
			require.True(t, ok)
			assert.Equal(t, "VMware, Inc.", rec.Vendor)
			assert.Equal(t, "3401 Hillview Avenue", rec.Address)
		})
	}
}

func TestParseTable_SameContentSameDigest(t *testing.T) {
	fromJSON, err := ParseTable([]byte(jsonTable), xconf.FormatJSON)
	require.NoError(t, err)
	fromYAML, err := ParseTable([]byte(yamlTable), xconf.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Stats(), fromYAML.Stats())
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format xconf.Format
	}{
		{"bad_json", `{"entries": `, xconf.FormatJSON},
		{"bad_format", jsonTable, xconf.Format("toml")},
		{"no_entries", `{"version": "v1"}`, xconf.FormatJSON},
		{"empty", ``, xconf.FormatJSON},
		{"entries_not_map", `{"entries": ["100020"]}`, xconf.FormatJSON},
		{"bad_key", `{"entries": {"1000": "short"}}`, xconf.FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestLoadTableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oui.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlTable), 0o600))

	table, err := LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	_, err = LoadTableFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrInvalidTable)
	assert.ErrorIs(t, err, xconf.ErrLoadFailed)

	_, err = LoadTableFile("")
	assert.ErrorIs(t, err, xconf.ErrEmptyPath)

	_, err = LoadTableFile(filepath.Join(dir, "oui.txt"))
	assert.ErrorIs(t, err, xconf.ErrUnsupportedFormat)
}

func TestDefault(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)

	assert.True(t, strings.HasPrefix(table.Version(), "sample-"), "embedded table version %q", table.Version())
	rec, ok := table.Record(xmac.MustNormalizeOUI("100020"))
	require.True(t, ok)
	assert.Equal(t, "Apple, Inc.", rec.Vendor)

	_, ok = table.Record(xmac.MustNormalizeOUI("FFFFFF"))
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	table, err := NewTable("test", testEntries())
	require.NoError(t, err)

	stats := table.Stats()
	assert.Equal(t, 4, stats.TotalEntries)
	// Apple 重复，空首行按原文计为一个厂商
	assert.Equal(t, 3, stats.UniqueVendors)
	assert.Equal(t, "test", stats.Version)
	assert.Len(t, stats.Digest, 16)
	assert.Regexp(t, `^[0-9a-f]{16}$`, stats.Digest)
}

func TestStats_DigestTracksContent(t *testing.T) {
	a, err := NewTable("", map[string]string{"100020": "Apple, Inc.", "005056": "VMware, Inc."})
	require.NoError(t, err)
	b, err := NewTable("", map[string]string{"00:50:56": "VMware, Inc.", "10-00-20": "Apple, Inc."})
	require.NoError(t, err)
	c, err := NewTable("", map[string]string{"100020": "Apple Inc.", "005056": "VMware, Inc."})
	require.NoError(t, err)

	assert.Equal(t, a.Stats().Digest, b.Stats().Digest)
	assert.NotEqual(t, a.Stats().Digest, c.Stats().Digest)
}

func TestStats_DefaultBounds(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	stats := table.Stats()
	assert.Positive(t, stats.TotalEntries)
	assert.Positive(t, stats.UniqueVendors)
	assert.LessOrEqual(t, stats.UniqueVendors, stats.TotalEntries)
	assert.Equal(t, table.Version(), stats.Version)
}
