package session

import (
	"net/http"
	"time"
)

const CookieName = "X-OrgConnect-Session"

// DefaultTTL is how long a sign-in lasts without a configured override.
const DefaultTTL = 12 * time.Hour

func SessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

// ClearCookie expires the session cookie in the browser.
func ClearCookie() *http.Cookie {
	return SessionCookie("", -1)
}
