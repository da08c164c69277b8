package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpener records every probe and open call and answers from scripted
// results.
type fakeOpener struct {
	canOpen map[string]bool
	openErr map[string]error
	probes  []string
	opens   []string
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{
		canOpen: map[string]bool{},
		openErr: map[string]error{},
	}
}

func (o *fakeOpener) CanOpen(uri string) bool {
	o.probes = append(o.probes, uri)
	return o.canOpen[uri]
}

func (o *fakeOpener) Open(uri string) error {
	o.opens = append(o.opens, uri)
	return o.openErr[uri]
}

func TestLauncherWhatsAppNativeSupported(t *testing.T) {
	opener := newFakeOpener()
	native := "whatsapp://send?phone=9779800000001&text=hello"
	opener.canOpen[native] = true

	l := NewLauncher(opener, testLogger())
	ok := l.OpenWhatsApp("+977-980-0000001", "hello")

	assert.True(t, ok)
	require.Equal(t, []string{native}, opener.opens, "native open only, no fallback")
}

func TestLauncherWhatsAppFallsBackToWebExactlyOnce(t *testing.T) {
	opener := newFakeOpener()
	// Native scheme reported unsupported; the web URL must be attempted
	// exactly once.
	l := NewLauncher(opener, testLogger())
	ok := l.OpenWhatsApp("+977 9800000001", "need 20 pipes")

	web := "https://wa.me/9779800000001?text=need+20+pipes"
	assert.True(t, ok)
	require.Equal(t, []string{web}, opener.opens)
}

func TestLauncherWhatsAppFallbackResultPropagates(t *testing.T) {
	opener := newFakeOpener()
	web := "https://wa.me/9779800000001?text=hi"
	opener.openErr[web] = errors.New("no browser")

	l := NewLauncher(opener, testLogger())
	ok := l.OpenWhatsApp("9779800000001", "hi")

	assert.False(t, ok, "result reflects the fallback outcome")
	require.Equal(t, []string{web}, opener.opens, "fallback attempted once, never retried")
}

func TestLauncherNativeOpenFailureTriggersFallback(t *testing.T) {
	opener := newFakeOpener()
	native := "whatsapp://send?phone=9779800000001&text=hi"
	web := "https://wa.me/9779800000001?text=hi"
	opener.canOpen[native] = true
	opener.openErr[native] = errors.New("handler crashed")

	l := NewLauncher(opener, testLogger())
	ok := l.OpenWhatsApp("9779800000001", "hi")

	assert.True(t, ok)
	require.Equal(t, []string{native, web}, opener.opens)
}

func TestLauncherPhoneHasNoWebFallback(t *testing.T) {
	opener := newFakeOpener()

	l := NewLauncher(opener, testLogger())
	ok := l.OpenPhone("+977-1-5555555")

	assert.False(t, ok)
	assert.Empty(t, opener.opens)
	require.Equal(t, []string{"tel:97715555555"}, opener.probes)
}

func TestLauncherMapsFallback(t *testing.T) {
	opener := newFakeOpener()

	l := NewLauncher(opener, testLogger())
	ok := l.OpenMaps("Balaju, Kathmandu")

	assert.True(t, ok)
	require.Equal(t, []string{"https://maps.google.com/?q=Balaju%2C+Kathmandu"}, opener.opens)
}

func TestStripNonDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+977-980-0000001", "9779800000001"},
		{"(01) 555 5555", "015555555"},
		{"9800000001", "9800000001"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripNonDigits(tt.in), tt.in)
	}
}
