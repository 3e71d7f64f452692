package util

import (
	"context"
	"net"
	"net/netip"

	"github.com/RoyceAzure/lab/santoral/internal/constants"
)

type DeviceInfo struct {
	UserAgent   string
	IPAddress   netip.Addr
	DeviceType  string
	Fingerprint string
}

// GetDeviceInfoFromContext collects what the device middleware stored.
// Missing values are left empty.
func GetDeviceInfoFromContext(ctx context.Context) DeviceInfo {
	var info DeviceInfo

	if ua, ok := ctx.Value(constants.UserAgentKey).(string); ok {
		info.UserAgent = ua
	}

	if ipStr, ok := ctx.Value(constants.IPKey).(string); ok {
		if host, _, err := net.SplitHostPort(ipStr); err == nil {
			ipStr = host
		}
		if addr, err := netip.ParseAddr(ipStr); err == nil {
			info.IPAddress = addr
		}
	}

	if di, ok := ctx.Value(constants.DeviceInfoKey).(string); ok {
		info.DeviceType = di
	}

	info.Fingerprint = GetFingerprint(ctx)
	return info
}

func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return ""
}

func GetSessionID(ctx context.Context) string {
	if v, ok := ctx.Value(constants.SessionIDKey).(string); ok {
		return v
	}
	return ""
}

func GetFingerprint(ctx context.Context) string {
	if v, ok := ctx.Value(constants.FingerprintKey).(string); ok {
		return v
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, requestID)
}

func WithFingerprint(ctx context.Context, fp string) context.Context {
	return context.WithValue(ctx, constants.FingerprintKey, fp)
}
