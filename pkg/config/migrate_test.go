package config

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// The initial migration seeds the only administrator. If its hash does not
// verify against the documented bootstrap password, a fresh deployment has
// no way to authenticate, so this is checked here rather than trusted.
func TestSeededAdminPasswordVerifies(t *testing.T) {
	data, err := os.ReadFile("../../migrations/000001_init.up.sql")
	require.NoError(t, err)

	re := regexp.MustCompile(`'admin',\s*'(\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53})'`)
	match := re.FindSubmatch(data)
	require.NotNil(t, match, "seeded admin password hash not found in initial migration")

	require.NoError(t, bcrypt.CompareHashAndPassword(match[1], []byte("password")))
	require.Error(t, bcrypt.CompareHashAndPassword(match[1], []byte("not-the-password")))
}
