package tier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    Tier
		wantErr bool
	}{
		{name: "basic", input: "basic", want: Basic},
		{name: "pro uppercase", input: "PRO", want: Pro},
		{name: "agency padded", input: " agency ", want: Agency},
		{name: "unknown", input: "enterprise", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPolicyTable(t *testing.T) {
	t.Parallel()

	basic := PolicyFor(Basic)
	require.True(t, basic.BrandingForcedOn)
	require.False(t, basic.AdvancedStylingAllowed)
	require.False(t, basic.EmailTranscriptAllowed)
	require.False(t, basic.RatingPromptAllowed)

	for _, paid := range []Tier{Pro, Agency} {
		p := PolicyFor(paid)
		require.False(t, p.BrandingForcedOn, "%s should control its own badge", paid)
		require.True(t, p.AdvancedStylingAllowed, paid)
		require.True(t, p.EmailTranscriptAllowed, paid)
		require.True(t, p.RatingPromptAllowed, paid)
	}
}

func TestPolicyForUnknownTierIsRestrictive(t *testing.T) {
	t.Parallel()

	p := PolicyFor(Tier("trial"))
	require.Equal(t, PolicyFor(Basic), p)
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	require.True(t, Agency.AtLeast(Pro))
	require.True(t, Pro.AtLeast(Basic))
	require.True(t, Basic.AtLeast(Basic))
	require.False(t, Basic.AtLeast(Pro))
}
