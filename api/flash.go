package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

const flashCookieName = "fyyur_flash"

const (
	flashInfo  = "info"
	flashError = "error"
)

// Flash is a one-shot message shown on the next page render.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// addFlash queues f behind any flashes the request still carries and any
// already queued on w during this request.
func addFlash(w http.ResponseWriter, r *http.Request, f Flash) {
	flashes := append(pendingFlashes(w, r), f)

	raw, err := json.Marshal(flashes)
	if err != nil {
		log.Error().Err(err).Msg("error encoding flash messages")
		return
	}

	dropFlashCookie(w.Header())
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// pendingFlashes returns the flashes already set on w, falling back to the
// ones the request carried.
func pendingFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	resp := http.Response{Header: w.Header()}
	for _, c := range resp.Cookies() {
		if c.Name == flashCookieName {
			return decodeFlashes(c.Value)
		}
	}
	return readFlashes(r)
}

// dropFlashCookie removes a flash Set-Cookie line so the next one replaces it.
func dropFlashCookie(h http.Header) {
	lines := h.Values("Set-Cookie")
	kept := lines[:0:0]
	for _, line := range lines {
		if !strings.HasPrefix(line, flashCookieName+"=") {
			kept = append(kept, line)
		}
	}
	h.Del("Set-Cookie")
	for _, line := range kept {
		h.Add("Set-Cookie", line)
	}
}

// takeFlashes returns the pending flashes and expires the cookie. It
// never returns nil.
func takeFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := readFlashes(r)
	if _, err := r.Cookie(flashCookieName); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return flashes
}

// readFlashes decodes the flash cookie. A cookie that does not decode is
// treated as empty.
func readFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return []Flash{}
	}
	return decodeFlashes(cookie.Value)
}

func decodeFlashes(value string) []Flash {
	flashes := []Flash{}
	if value == "" {
		return flashes
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return flashes
	}
	if err := json.Unmarshal(raw, &flashes); err != nil || flashes == nil {
		return []Flash{}
	}
	return flashes
}

func flashSuccess(w http.ResponseWriter, r *http.Request, message string) {
	addFlash(w, r, Flash{Category: flashInfo, Message: message})
}

func flashFailure(w http.ResponseWriter, r *http.Request, message string) {
	addFlash(w, r, Flash{Category: flashError, Message: message})
}
