package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespond_KeywordRouting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		fragment string
	}{
		{"How does divorce work in my state?", "dissolution of a marriage"},
		{"Can you review this CONTRACT for me?", "legally binding agreements"},
		{"Do I need a will?", "how you want your assets distributed"},
		{"My landlord won't fix the heating", "Landlord-tenant relationships"},
		{"Is my blog post protected by copyright?", "original works of authorship"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			reply := Respond(tc.query, nil)
			require.Contains(t, reply, tc.fragment)
		})
	}
}

func TestRespond_DefaultAnswer(t *testing.T) {
	t.Parallel()

	reply := Respond("What is the airspeed velocity of an unladen swallow?", nil)
	require.Contains(t, reply, "this isn't legal advice")
}

func TestRespond_FirstKeywordWins(t *testing.T) {
	t.Parallel()

	// "divorce" is listed before "contract": a query containing both routes to
	// the earlier topic.
	reply := Respond("divorce contract question", nil)
	require.True(t, strings.Contains(reply, "dissolution of a marriage"))
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, RoleUser.Valid())
	require.True(t, RoleAssistant.Valid())
	require.False(t, Role("system").Valid())
	require.False(t, Role("").Valid())
}
