package session

import (
	"net/http"

	"blackeagles/pkg/logger"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

const flashCookie = "vbe_flash"

// Flash categories used by the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// Flasher carries one-shot messages across a redirect in a signed, encrypted cookie.
type Flasher struct {
	codec  *securecookie.SecureCookie
	secure bool
}

func NewFlasher(hashKey, blockKey []byte, secure bool) *Flasher {
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Flasher{codec: codec, secure: secure}
}

// Add appends a message to any flashes already pending on the request.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, category, message string) {
	flashes := append(f.read(r), Flash{Category: category, Message: message})
	encoded, err := f.codec.Encode(flashCookie, flashes)
	if err != nil {
		logger.WithComponent("session").Error("encode flash failed", zap.Error(err))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns pending flashes and clears the cookie.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := f.read(r)
	if len(flashes) == 0 {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   f.secure,
	})
	return flashes
}

func (f *Flasher) read(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := f.codec.Decode(flashCookie, cookie.Value, &flashes); err != nil {
		return nil
	}
	return flashes
}
