package auth

import (
	"net/http"
	"time"
)

const tokenCookieName = "access_token"

// SetTokenCookie stores the session token in an httpOnly cookie for
// browser clients that cannot hold the token themselves.
func SetTokenCookie(w http.ResponseWriter, token string, maxAge time.Duration, isProduction bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie removes the session cookie. This is the whole of
// logout: the token itself stays valid until it expires.
func ClearTokenCookie(w http.ResponseWriter, isProduction bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetTokenFromCookie reads the session token from the auth cookie.
func GetTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
