package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/santoral/internal/constants"
)

// Attributes are the client characteristics hashed into the fingerprint.
// Field order is part of the wire contract with the backend.
type Attributes struct {
	UserAgent    string
	Language     string
	ScreenWidth  int
	ScreenHeight int
	Timezone     string
	Platform     string
}

// Compute returns the lowercase hex SHA-256 of the "|" joined attributes.
func Compute(a Attributes) string {
	raw := strings.Join([]string{
		a.UserAgent,
		a.Language,
		strconv.Itoa(a.ScreenWidth),
		strconv.Itoa(a.ScreenHeight),
		a.Timezone,
		a.Platform,
	}, "|")
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// FromRequest reads the attributes a browser exposes through headers.
func FromRequest(r *http.Request) Attributes {
	a := Attributes{
		UserAgent: r.Header.Get("User-Agent"),
		Language:  primaryLanguage(r.Header.Get("Accept-Language")),
		Timezone:  r.Header.Get(constants.TimezoneHeader),
		Platform:  strings.Trim(r.Header.Get(constants.PlatformHeader), `"`),
	}
	a.ScreenWidth, a.ScreenHeight = parseScreen(r.Header.Get(constants.ScreenSizeHeader))
	return a
}

// ForRequest prefers the fingerprint the browser computed itself and
// derives one from the request headers otherwise.
func ForRequest(r *http.Request) string {
	if fp := strings.ToLower(strings.TrimSpace(r.Header.Get(constants.FingerprintHeader))); IsValid(fp) {
		return fp
	}
	return Compute(FromRequest(r))
}

func IsValid(fp string) bool {
	if len(fp) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(fp)
	return err == nil
}

func primaryLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	return strings.TrimSpace(strings.Split(first, ";")[0])
}

// parseScreen accepts "1920x1080".
func parseScreen(v string) (int, int) {
	parts := strings.Split(strings.ToLower(v), "x")
	if len(parts) != 2 {
		return 0, 0
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0
	}
	return w, h
}
