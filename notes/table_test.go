package notes

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestDefault_Labels(t *testing.T) {
	assert.Equal(t, []string{
		"BLOCKCHAIN",
		"BLOCKS",
		"EVM",
		"ACCOUNTS",
		"TRANSACTIONS",
		"GAS",
		"STORAGE/MEMORY/STACK",
		"LOGS",
		"OTHER CONCEPTS",
	}, Default().Labels())
}

func TestDefault_Opening(t *testing.T) {
	lines := Default().Lines()
	require.True(t, len(lines) >= 3)

	assert.Equal(t, "********* WHAT IS BLOCKCHAIN****************", lines[0].Text)
	assert.Equal(t, KindBanner, lines[0].Kind)
	assert.Equal(t, "Blockchain is a globally shared, transactional database", lines[1].Text)
	assert.True(t, strings.HasPrefix(lines[2].Text, "Everyone can read from the database without permission."))
}

func TestDefault_StackLimitFollowsStackIntro(t *testing.T) {
	lines := Default().Lines()
	for i, line := range lines {
		if line.Text != "Max size - 1024 elements and contains words of 256 bits" {
			continue
		}
		require.True(t, i > 0)
		assert.Equal(t, "EVM is a stack machine - all computations are performed on a data area called stack", lines[i-1].Text)
		assert.Equal(t, "Stack", line.Subsection)
		return
	}
	t.Fatal("stack size note not found")
}

func TestDefault_RenderedConstants(t *testing.T) {
	text := make(map[string]bool)
	for _, line := range Default().Lines() {
		text[line.Text] = true
	}
	for _, want := range []string{
		"Each account has a persistent key-value store mapping 256-bit word to 256-bit word called 'Storage'",
		"Each account has a balance in wei (10**-18 eth)",
		"1. Copy one of the next 16 elements and to the top",
		"2. Swap top most with one of 16 elements below it",
		"Memory expands by a word(256 bit), when accessing (reading or writing) a previously untouched memory word (any offset within word)",
		"Only 63/64th of gas can be forwarded to a message call - this places a practical depth limit of 1000. Anything beyond this throws an exception - out of gas",
	} {
		assert.True(t, text[want], "missing line %q", want)
	}
}

func TestLines_Structure(t *testing.T) {
	table := Table{
		{
			Label:  "A",
			Banner: "== A ==",
			Notes:  []string{"a1", "a2"},
			Subsections: []Section{
				{Label: "A.x", Banner: "-- x --", Notes: []string{"x1"}},
			},
			Closed: true,
		},
		{
			Label:  "B",
			Banner: "== B ==",
			Notes:  []string{"b1"},
		},
	}

	want := []Line{
		{Section: "A", Ordinal: 0, Kind: KindBanner, Text: "== A =="},
		{Section: "A", Ordinal: 1, Kind: KindNote, Text: "a1"},
		{Section: "A", Ordinal: 2, Kind: KindNote, Text: "a2"},
		{Section: "A", Subsection: "A.x", Ordinal: 3, Kind: KindBanner, Text: "-- x --"},
		{Section: "A", Subsection: "A.x", Ordinal: 4, Kind: KindNote, Text: "x1"},
		{Section: "A", Ordinal: 5, Kind: KindRule, Text: Rule},
		{Section: "B", Ordinal: 0, Kind: KindBanner, Text: "== B =="},
		{Section: "B", Ordinal: 1, Kind: KindNote, Text: "b1"},
	}
	assert.Equal(t, want, table.Lines())
}

func TestDefault_ClosingRules(t *testing.T) {
	var rules []string
	for _, line := range Default().Lines() {
		if line.Kind == KindRule {
			rules = append(rules, line.Section)
		}
	}
	// LOGS runs straight into OTHER CONCEPTS.
	assert.NotContains(t, rules, "LOGS")
	assert.Len(t, rules, 8)
}

func TestDefault_KeepsDuplicatesAndWhitespace(t *testing.T) {
	lines := Default().Lines()

	var rules, leading, trailing int
	for _, line := range lines {
		if line.Text == Rule {
			rules++
		}
		if strings.HasPrefix(line.Text, " ") {
			leading++
		}
		if strings.HasSuffix(line.Text, " ") {
			trailing++
		}
	}
	assert.Equal(t, 8, rules)
	assert.Equal(t, 3, leading)
	assert.Equal(t, 3, trailing)
}

func TestDefault_Fresh(t *testing.T) {
	a := Default()
	a[0].Notes[0] = "changed"
	assert.Equal(t, "Blockchain is a globally shared, transactional database", Default()[0].Notes[0])
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Default().Fingerprint(), Default().Fingerprint())

	changed := Default()
	changed[len(changed)-1].Closed = false
	assert.NotEqual(t, Default().Fingerprint(), changed.Fingerprint())

	// Keccak-256 of the empty string.
	empty := Table(nil).Fingerprint()
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(empty[:]))
}

func TestFingerprint_Golden(t *testing.T) {
	golden, err := os.ReadFile(filepath.Join("testdata", "notes.golden"))
	require.NoError(t, err)

	w := sha3.NewLegacyKeccak256()
	w.Write(golden)
	var want [32]byte
	w.Sum(want[:0])

	assert.Equal(t, want, Default().Fingerprint())
}
