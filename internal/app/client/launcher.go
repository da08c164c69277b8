package client

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/exp/slog"
)

// Opener abstracts the platform's URI handler so tests can observe probe and
// open behavior.
type Opener interface {
	// CanOpen reports whether the platform claims to handle the URI.
	CanOpen(uri string) bool
	// Open hands the URI to the platform handler.
	Open(uri string) error
}

// Launcher builds target URIs for phone, WhatsApp, maps, email and plain
// URLs and attempts to open them, falling back to a universal web URL when
// the native scheme is unsupported or fails. Every method returns a bare
// "attempted successfully" boolean and swallows all failures: a link launch
// that goes wrong must never crash a screen, and a true result means the
// handler was invoked, not that anything was delivered.
type Launcher struct {
	opener Opener
	log    *slog.Logger
}

func NewLauncher(opener Opener, log *slog.Logger) *Launcher {
	if opener == nil {
		opener = &execOpener{}
	}
	return &Launcher{opener: opener, log: log}
}

// OpenPhone opens the dialer for the given number. No web fallback exists for
// dialing.
func (l *Launcher) OpenPhone(number string) bool {
	uri := "tel:" + stripNonDigits(number)
	return l.open("phone", uri, "")
}

// OpenWhatsApp opens a WhatsApp chat with the number, pre-filled with the
// message. Falls back to the wa.me web URL.
func (l *Launcher) OpenWhatsApp(number, message string) bool {
	digits := stripNonDigits(number)
	encoded := url.QueryEscape(message)
	native := fmt.Sprintf("whatsapp://send?phone=%s&text=%s", digits, encoded)
	web := fmt.Sprintf("https://wa.me/%s?text=%s", digits, encoded)
	return l.open("whatsapp", native, web)
}

// WhatsAppAvailable probes whether a native WhatsApp handler is registered.
func (l *Launcher) WhatsAppAvailable() bool {
	return l.opener.CanOpen("whatsapp://send")
}

// OpenMaps opens the maps application at the given address, falling back to
// Google Maps on the web.
func (l *Launcher) OpenMaps(address string) bool {
	encoded := url.QueryEscape(address)
	native := "geo:0,0?q=" + encoded
	web := "https://maps.google.com/?q=" + encoded
	return l.open("maps", native, web)
}

// OpenMapsCoords opens the maps application at the coordinates, with an
// optional label.
func (l *Launcher) OpenMapsCoords(lat, lng float64, label string) bool {
	native := fmt.Sprintf("geo:%v,%v", lat, lng)
	if label != "" {
		native += "?q=" + url.QueryEscape(label)
	}
	web := fmt.Sprintf("https://maps.google.com/?q=%v,%v", lat, lng)
	return l.open("maps", native, web)
}

// OpenEmail opens the mail client with subject and body pre-filled. No web
// fallback exists for mailto.
func (l *Launcher) OpenEmail(email, subject, body string) bool {
	uri := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		email, url.QueryEscape(subject), url.QueryEscape(body))
	return l.open("email", uri, "")
}

// OpenURL opens an arbitrary URL.
func (l *Launcher) OpenURL(target string) bool {
	return l.open("url", target, "")
}

// open attempts the native URI and, when the probe says unsupported or the
// open itself fails, attempts the web fallback exactly once.
func (l *Launcher) open(kind, native, web string) bool {
	if l.opener.CanOpen(native) {
		err := l.opener.Open(native)
		if err == nil {
			return true
		}
		l.log.Debug("native open failed", "kind", kind, "uri", native, "error", err)
	} else {
		l.log.Debug("native scheme unsupported", "kind", kind, "uri", native)
	}

	if web == "" {
		return false
	}

	if err := l.opener.Open(web); err != nil {
		l.log.Warn("fallback open failed", "kind", kind, "url", web, "error", err)
		return false
	}
	return true
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// execOpener shells out to the platform's URL opener.
type execOpener struct{}

func (o *execOpener) tool() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

func (o *execOpener) CanOpen(uri string) bool {
	// A desktop cannot query scheme handlers portably; the best available
	// probe is whether the opener tool exists. Scheme-specific failures fall
	// through to the web fallback via Open's error.
	tool, _ := o.tool()
	_, err := exec.LookPath(tool)
	return err == nil
}

func (o *execOpener) Open(uri string) error {
	tool, args := o.tool()
	return exec.Command(tool, append(args, uri)...).Run()
}
