package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{in: "", expected: ""},
		{in: "   ", expected: ""},
		{in: "Journeyman", expected: "Journeyman"},
		{in: "  Local\u00a0 46 ", expected: "Local 46"},
		{in: "Base\n\t\tRate", expected: "Base Rate"},
		{in: "\u00a0\u00a0", expected: ""},
		{in: "$45.00 /\r\n hr", expected: "$45.00 / hr"},
		{in: "Zürich  Zone", expected: "Zürich Zone"},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, Clean(test.in), "input %q", test.in)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{"  a\u00a0 b ", "x\n\ny", "", "plain"}
	for _, in := range inputs {
		once := Clean(in)
		require.Equal(t, once, Clean(once))
	}
}

func TestCountMatches(t *testing.T) {
	matchers := []string{"local", "rate", "zone"}

	require.Equal(t, 0, CountMatches("", matchers))
	require.Equal(t, 2, CountMatches("local wage rate", matchers))
	// repeated occurrences only count once
	require.Equal(t, 1, CountMatches("rate rate rate", matchers))
	// substring containment, not word matching
	require.Equal(t, 2, CountMatches("locality ozone", matchers))
}
