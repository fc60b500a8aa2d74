package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndEval(t *testing.T) {
	tests := []struct {
		expr  string
		input string
		want  bool
	}{
		{"size(input) > 4", "ab", false},
		{"size(input) > 4", "abcde", true},
		{"input.lowerAscii() in ['yes', 'no']", "YES", true},
		{"input.lowerAscii() in ['yes', 'no']", "maybe", false},
		{"input.startsWith('/')", "/tmp", true},
		{"nonempty", "   ", false},
		{"nonempty", " x ", true},
		{"int", "-42", true},
		{"int", "4.2", false},
		{"number", "4.2", true},
		{"word", "two words", false},
	}
	for _, tc := range tests {
		expr, err := Compile(tc.expr)
		require.NoError(t, err, tc.expr)
		got, err := expr.Eval(tc.input)
		require.NoError(t, err)
		if got != tc.want {
			t.Fatalf("%s on %q: expected %v, got %v", tc.expr, tc.input, tc.want, got)
		}
	}
}

func TestCompileRejectsNonBool(t *testing.T) {
	_, err := Compile("size(input)")
	require.ErrorIs(t, err, ErrNotBool)
}

func TestCompileRejectsSyntaxError(t *testing.T) {
	_, err := Compile("size(input) >")
	require.Error(t, err)
}

func TestCompileRejectsUnknownVariable(t *testing.T) {
	_, err := Compile("size(text) > 1")
	require.Error(t, err)
}

func TestValidatorAdapter(t *testing.T) {
	expr, err := Compile("size(input) > 4")
	require.NoError(t, err)
	v := expr.Validator()
	assert.False(t, v("ab"))
	assert.True(t, v("abcde"))
	assert.Equal(t, "size(input) > 4", expr.String())
}

func TestPresetsExpand(t *testing.T) {
	expr, err := Compile("int")
	require.NoError(t, err)
	assert.Equal(t, Presets()["int"], expr.String())
}
