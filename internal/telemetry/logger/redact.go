package logger

import (
	"log/slog"
	"strings"
)

const redactedValue = "***REDACTED***"

// credentialKeys are key fragments that make any string attribute secret.
var credentialKeys = []string{
	"password",
	"secret",
	"token",
	"authorization",
	"bearer",
	"encryption_key",
	"credential",
}

// credentialPrefixes mark a value as a credential under any key:
// an Authorization header and a JWT header segment.
var credentialPrefixes = []string{"Bearer ", "eyJ"}

// redactAttr is the slog ReplaceAttr hook.
func redactAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		v := a.Value.String()
		if p, ok := credentialPrefix(v); ok {
			return slog.String(a.Key, mask(v, p))
		}
		if v != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
	case slog.KindGroup:
		group := a.Value.Group()
		out := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			out = append(out, redactAttr(nil, ga))
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}

func credentialPrefix(v string) (string, bool) {
	for _, p := range credentialPrefixes {
		if strings.HasPrefix(v, p) {
			return p, true
		}
	}
	return "", false
}

// mask keeps prefix plus three characters at each end of the rest.
func mask(v, prefix string) string {
	rest := strings.TrimPrefix(v, prefix)
	if len(rest) <= 6 {
		return prefix + "***"
	}
	return prefix + rest[:3] + "..." + rest[len(rest)-3:]
}

// RedactToken shortens a token to a hint that is safe to print.
func RedactToken(v string) string {
	if v == "" {
		return ""
	}
	p, _ := credentialPrefix(v)
	return mask(v, p)
}

// IsSensitiveKey reports whether an attribute key names a credential.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, frag := range credentialKeys {
		if strings.Contains(k, frag) {
			return true
		}
	}
	return false
}
