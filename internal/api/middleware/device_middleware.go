package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/santoral/internal/constants"
	"github.com/RoyceAzure/lab/santoral/internal/infra/fingerprint"
	"github.com/RoyceAzure/lab/santoral/internal/util"
)

// DeviceInfoMiddleware stores the user agent, address, device class and
// client fingerprint. The fingerprint is forwarded to the backend.
func DeviceInfoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent := r.Header.Get("User-Agent")

		ua := strings.ToLower(userAgent)
		deviceInfo := "desktop"
		if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
			deviceInfo = "tablet"
		} else if strings.Contains(ua, "mobile") {
			deviceInfo = "mobile"
		}

		ctx := context.WithValue(r.Context(), constants.UserAgentKey, userAgent)
		ctx = context.WithValue(ctx, constants.IPKey, r.RemoteAddr)
		ctx = context.WithValue(ctx, constants.DeviceInfoKey, deviceInfo)
		ctx = util.WithFingerprint(ctx, fingerprint.ForRequest(r))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FingerprintKey buckets rate limits by client fingerprint, falling back to
// the remote address.
func FingerprintKey(r *http.Request) string {
	if fp := util.GetFingerprint(r.Context()); fp != "" {
		return fp
	}
	return r.RemoteAddr
}
