package httputil

import (
	"net/http"
	"strings"
)

const sessionCookieName = "JSESSIONID"

// ExtractSessionCookie pulls the JSESSIONID name=value pair out of a
// Set-Cookie header value, e.g.
//
//	"Path=/; JSESSIONID=abc123; HttpOnly" -> "JSESSIONID=abc123"
//
// Returns "" when the header carries no JSESSIONID.
func ExtractSessionCookie(setCookie string) string {
	start := strings.Index(setCookie, sessionCookieName)
	if start < 0 {
		return ""
	}
	if end := strings.Index(setCookie[start:], ";"); end >= 0 {
		return setCookie[start : start+end]
	}
	return setCookie[start:]
}

func ParseCookie(cookie string) []*http.Cookie {
	header := http.Header{}
	header.Add("Cookie", cookie)
	req := http.Request{Header: header}
	return req.Cookies()
}

// SessionID returns the bare JSESSIONID value from a cookie string,
// or "" when absent.
func SessionID(cookie string) string {
	for _, c := range ParseCookie(cookie) {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	return ""
}
