package domain

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferrerToken_Deterministic(t *testing.T) {
	user := NewUser("456", "alice", nil)
	pr := PR{HTMLURL: "https://github.com/acme/widgets/pull/42"}
	notif := NewNotification("123", user, pr)

	assert.Equal(t, notif.ReferrerToken(), notif.ReferrerToken())
}

func TestReferrerToken_DecodesBack(t *testing.T) {
	user := NewUser("456", "alice", nil)
	notif := NewNotification("123", user, PR{})

	token := notif.ReferrerToken()
	require.True(t, strings.HasPrefix(token, "NT_"))
	encoded := strings.TrimPrefix(token, "NT_")
	assert.NotContains(t, encoded, "=")

	// Re-pad and decode with the standard alphabet.
	if rem := len(encoded) % 4; rem != 0 {
		encoded += strings.Repeat("=", 4-rem)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x93, 0x00, 0xce, 0x00, 0x73, 0x33, 0xa2, 0xb2}, decoded[:8])
	assert.Equal(t, "123:456", string(decoded[8:]))
}

func TestReferrerToken_DistinctInputs(t *testing.T) {
	pr := PR{}
	a := NewNotification("123", NewUser("456", "alice", nil), pr)
	b := NewNotification("124", NewUser("456", "alice", nil), pr)
	c := NewNotification("123", NewUser("457", "bob", nil), pr)

	assert.NotEqual(t, a.ReferrerToken(), b.ReferrerToken())
	assert.NotEqual(t, a.ReferrerToken(), c.ReferrerToken())
}

func TestURL_AppendsReferrerParameter(t *testing.T) {
	user := NewUser("456", "alice", nil)
	pr := PR{HTMLURL: "https://github.com/acme/widgets/pull/42"}
	notif := NewNotification("123", user, pr)

	url := notif.URL()

	assert.True(t, strings.HasPrefix(url, "https://github.com/acme/widgets/pull/42?notification_referrer_id=NT_"))
}

func TestUser_Teams(t *testing.T) {
	user := NewUser("1", "alice", []string{"acme/platform"})

	assert.True(t, user.InTeam("acme/platform"))
	assert.False(t, user.InTeam("acme/frontend"))

	merged := user.WithTeams([]string{"acme/frontend"})
	assert.True(t, merged.InTeam("acme/platform"))
	assert.True(t, merged.InTeam("acme/frontend"))
	assert.False(t, user.InTeam("acme/frontend"), "original user is unchanged")
}
