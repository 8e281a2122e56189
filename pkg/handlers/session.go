package handlers

import (
	"crypto/sha1"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/pbkdf2"

	"github.com/spencer-p/suncalc/pkg/log"
)

const (
	sessionName   = "suncalc"
	sessionLat    = "home-lat"
	sessionLng    = "home-lng"
	sessionHeight = "home-height"
	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.
)

// NewSessionStore returns a cookie store signed with sessionKey and encrypted
// with a key derived from password.
func NewSessionStore(sessionKey, password string) *sessions.CookieStore {
	store := &sessions.CookieStore{
		Codecs: securecookie.CodecsFromPairs(
			[]byte(sessionKey),
			encryptionKey(password),
		),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			Secure:   true,
			HttpOnly: true,
		},
	}
	store.MaxAge(defaultMaxAge)
	return store
}

func encryptionKey(password string) []byte {
	return pbkdf2.Key([]byte(password), []byte{}, 4096, 32, sha1.New)
}

// serveConfig saves the home location posted in a form.
func (h *handler) serveConfig(w http.ResponseWriter, r *http.Request) {
	session, _ := h.sessions.Get(r, sessionName)

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, err)
		return
	}
	lat, err := parseFloat("lat", r.PostForm.Get("lat"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	lng, err := parseFloat("lng", r.PostForm.Get("lng"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	height := 0.0
	if s := r.PostForm.Get("height"); s != "" {
		if height, err = parseFloat("height", s); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	session.Values[sessionLat] = lat
	session.Values[sessionLng] = lng
	session.Values[sessionHeight] = height
	if err := session.Save(r, w); err != nil {
		h.fail(w, r, err)
		return
	}
	log.Infow("saved home location", "lat", lat, "lng", lng, "height", height)
	w.WriteHeader(http.StatusNoContent)
}
