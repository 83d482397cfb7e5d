package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		cents   int64
		wantErr bool
	}{
		{in: "18500.00", cents: 1850000},
		{in: "6000", cents: 600000},
		{in: "0.1", cents: 10},
		{in: " 33451.87 ", cents: 3345187},
		{in: "-5", cents: -500},
		{in: "1.234", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		cents, err := ParseAmount(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.cents, cents, "input %q", tc.in)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "130.00", FormatCents(13000))
	require.Equal(t, "0.05", FormatCents(5))
	require.Equal(t, "N$18500.00", Format("N$", 1850000))
}
