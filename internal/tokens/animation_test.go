package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAnimationsDefaults(t *testing.T) {
	t.Parallel()

	table := ResolveAnimations(nil, nil)

	require.Len(t, table, len(AnimationNames))
	for _, name := range AnimationNames {
		require.Contains(t, table, name)
	}
	require.Equal(t, Animation{Duration: 250, Easing: "cubic-bezier(0, 0, 0, 1)"}, table[AnimationEnter])
	require.Equal(t, Animation{Duration: 150, Easing: "cubic-bezier(0.3, 0, 1, 1)"}, table[AnimationExit])
}

func TestResolveAnimationsDerivesFromOverrides(t *testing.T) {
	t.Parallel()

	fast := 90
	slow := 600
	table := ResolveAnimations(&Durations{Fast: &fast, Slow: &slow}, &Easings{Overshoot: "ease-out"})

	require.Equal(t, 90, table[AnimationFast].Duration)
	require.Equal(t, 90, table[AnimationTooltip].Duration)
	require.Equal(t, 90, table[AnimationExit].Duration)
	require.Equal(t, Animation{Duration: 600, Easing: "ease-out"}, table[AnimationBouncy])
	require.Equal(t, 50, table[AnimationInstant].Duration)
}

func TestResolveOutline(t *testing.T) {
	t.Parallel()

	require.Equal(t, Outline{Width: 2, Offset: 2}, ResolveOutline(nil, nil))

	width := 3.0
	zero := 0.0
	require.Equal(t, Outline{Width: 3, Offset: 0}, ResolveOutline(&width, &zero))
}
