package options

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_FirstLetter(t *testing.T) {
	t.Parallel()

	for _, m := range Modes() {
		letter := m.String()[:1]
		for _, val := range []string{letter, strings.ToUpper(letter)} {
			got, err := Coerce(Modes(), val)
			require.NoError(t, err, "value %q", val)
			assert.Equal(t, m, got, "value %q", val)
		}
	}

	for _, v := range Verbosities() {
		letter := v.String()[:1]
		for _, val := range []string{letter, strings.ToUpper(letter)} {
			got, err := Coerce(Verbosities(), val)
			require.NoError(t, err, "value %q", val)
			assert.Equal(t, v, got, "value %q", val)
		}
	}
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		val       string
		expected  Mode
		expectErr bool
	}{
		{name: "full name", val: "include", expected: ModeInclude},
		{name: "full name mixed case", val: "ExClUdE", expected: ModeExclude},
		{name: "single letter", val: "c", expected: ModeChoose},
		{name: "error - unknown letter", val: "z", expectErr: true},
		{name: "error - prefix longer than one letter", val: "inc", expectErr: true},
		{name: "error - empty", val: "", expectErr: true},
		{name: "error - other enum", val: "quiet", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Coerce(Modes(), tc.val)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrNoMember)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEnum_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"choose", "include", "exclude"}, memberNames(Modes()))
	assert.Equal(t, []string{"quiet", "normal", "detailed"}, memberNames(Verbosities()))
	assert.Equal(t, "unknown", Mode(42).String())
	assert.Equal(t, "unknown", Verbosity(42).String())
}
