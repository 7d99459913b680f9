package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSessionCookie(t *testing.T) {
	const setCookie = `csrf=89cd78c2; JSESSIONID=abc123; Path=/; HttpOnly`
	assert.Equal(t, "JSESSIONID=abc123", ExtractSessionCookie(setCookie))
}

func TestExtractSessionCookieAtEnd(t *testing.T) {
	assert.Equal(t, "JSESSIONID=xyz", ExtractSessionCookie("Path=/; JSESSIONID=xyz"))
}

func TestExtractSessionCookieMissing(t *testing.T) {
	assert.Empty(t, ExtractSessionCookie("Path=/; HttpOnly"))
}

func TestParseCookie(t *testing.T) {
	const cookie = `exp=89cd78c2; JSESSIONID=dc7d7868-f07b-40fc-8dfb-7cc8fc3330ba; login=e866e424-d636-4e22-953c-cc368b77d16a`
	cookies := ParseCookie(cookie)
	require.Len(t, cookies, 3)

	assert.Equal(t, "dc7d7868-f07b-40fc-8dfb-7cc8fc3330ba", SessionID(cookie))
}

func TestSessionIDMissing(t *testing.T) {
	assert.Empty(t, SessionID("exp=89cd78c2; login=e866e424"))
}
