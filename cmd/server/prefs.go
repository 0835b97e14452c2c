package main

import (
	"net/http"
	"time"
)

// prefCookieMaxAge keeps the explicit language choice for a year.
const prefCookieMaxAge = int(365 * 24 * time.Hour / time.Second)

// cookiePrefs adapts one request/response pair to the engine's preference
// store: reads come from the request cookie, writes become a Set-Cookie on
// the response. The cookie is readable by page scripts so client-side code
// can share the same preference.
type cookiePrefs struct {
	r    *http.Request
	w    http.ResponseWriter
	name string
}

func (p *cookiePrefs) Preferred() (string, bool) {
	c, err := p.r.Cookie(p.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (p *cookiePrefs) SetPreferred(lang string) error {
	http.SetCookie(p.w, &http.Cookie{
		Name:     p.name,
		Value:    lang,
		Path:     "/",
		MaxAge:   prefCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
