package options

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage_Idempotent(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	first := reg.Usage()
	second := reg.Usage()
	assert.Equal(t, first, second)
	assert.Equal(t, reg.renderUsage(), first, "cached text must match a fresh rendering")
}

func TestUsage_Layout(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	lines := strings.Split(strings.TrimSuffix(reg.Usage(), "\n"), "\n")
	require.Len(t, lines, 3+int(numOptions))
	assert.Equal(t, "Usage: canonical_data_syncer [options]", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Options:", lines[2])

	// The widest prefix is "  -v, --verbosity <verbosity>".
	const width = 29
	rows := lines[3:]
	for i, opt := range All() {
		info := reg.Info(opt)
		row := rows[i]
		require.Greater(t, len(row), width+2, "row %q is too short", row)
		assert.Equal(t, usagePrefix(info), strings.TrimRight(row[:width], " "))
		assert.Equal(t, "  ", row[width:width+2])
		assert.NotEqual(t, " ", row[width+2:width+3], "description of %q must start in the common column", info.Name)
	}
}

func TestUsage_Rows(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	usage := reg.Usage()

	expectedRows := []string{
		fmt.Sprintf("%-29s  %s", "  -e, --exercise <slug>", "Only sync this exercise"),
		fmt.Sprintf("%-29s  %s", "  -c, --check", "Terminates with a non-zero exit code if one or more tests are missing. Doesn't update the tests"),
		fmt.Sprintf("%-29s  %s", "  -m, --mode <mode>", "What to do with missing test cases. Allowed values: c[hoose], i[nclude], e[xclude]"),
		fmt.Sprintf("%-29s  %s", "  -v, --verbosity <verbosity>", "The verbosity of output. Allowed values: q[uiet], n[ormal], d[etailed]"),
		fmt.Sprintf("%-29s  %s", "  -p, --prob-specs-dir <dir>", "Use this `problem-specifications` directory, rather than cloning temporarily"),
		fmt.Sprintf("%-29s  %s", "  -o, --offline", "Do not check that the directory specified by `-p, --prob-specs-dir` is up-to-date"),
		fmt.Sprintf("%-29s  %s", "  -h, --help", "Show this help message and exit"),
		fmt.Sprintf("%-29s  %s", "      --version", "Show this tool's version information and exit"),
	}
	for _, row := range expectedRows {
		assert.Contains(t, usage, row+"\n")
	}
}

func TestUsagePrefix_NoShortIsIndented(t *testing.T) {
	t.Parallel()

	withShort := usagePrefix(Info{Name: "help", Short: 'h'})
	withoutShort := usagePrefix(Info{Name: "help", Short: NoShort})
	assert.Equal(t, len(withShort), len(withoutShort))
	assert.Equal(t, "      --help", withoutShort)
}
