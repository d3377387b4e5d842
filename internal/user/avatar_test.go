package user

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvatarURL(t *testing.T) {
	require.Equal(t,
		"https://ui-avatars.com/api/?name=Ann&background=random",
		AvatarURL("Ann"),
	)
}

func TestAvatarURL_EscapesName(t *testing.T) {
	require.Equal(t,
		"https://ui-avatars.com/api/?name=Ann+O%27Brien&background=random",
		AvatarURL("Ann O'Brien"),
	)
}

func TestAvatarURL_Deterministic(t *testing.T) {
	require.Equal(t, AvatarURL("Bob"), AvatarURL("Bob"))
}
