package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMembershipModeString(t *testing.T) {
	require.Equal(t, "Bounds", MembershipBounds.String())
	require.Equal(t, "Exact", MembershipExact.String())
	require.Equal(t, "Unknown", MembershipMode(0).String())
}
