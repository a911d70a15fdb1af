package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestRedactAttr(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{"access token key", slog.String("access_token", "opaque-value"), redactedValue},
		{"refresh token camel case", slog.String("refreshToken", "r-1"), redactedValue},
		{"password", slog.String("password", "hunter2"), redactedValue},
		{"authorization header", slog.String("Authorization", "Basic abc"), redactedValue},
		{"encryption key", slog.String("storage.encryption_key", "k3y-material"), redactedValue},
		{"empty sensitive value kept", slog.String("token", ""), ""},
		{"bearer value under neutral key", slog.String("header", "Bearer abcdefghijkl"), "Bearer abc...jkl"},
		{"jwt value under neutral key", slog.String("raw", "eyJhbGciOiJIUzI1NiJ9.payload.sig"), "eyJhbG...sig"},
		{"short bearer value", slog.String("header", "Bearer abc"), "Bearer ***"},
		{"plain value", slog.String("path", "/wallets/1"), "/wallets/1"},
		{"storage key name is not secret", slog.String("key", "auth/access_token"), "auth/access_token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactAttr(nil, tt.attr)
			if got.Value.String() != tt.want {
				t.Errorf("redactAttr(%s=%q) = %q, want %q", tt.attr.Key, tt.attr.Value.String(), got.Value.String(), tt.want)
			}
		})
	}
}

func TestRedactAttr_NonString(t *testing.T) {
	a := slog.Int("token_count", 3)
	if got := redactAttr(nil, a); got.Value.Int64() != 3 {
		t.Errorf("non-string values must pass through, got %v", got.Value)
	}
}

func TestRedactAttr_Group(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Output: &buf})

	l.Info("login", slog.Group("tokens", slog.String("access_token", "abc"), slog.String("type", "Bearer")))

	var entry struct {
		Tokens map[string]string `json:"tokens"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry.Tokens["access_token"] != redactedValue {
		t.Errorf("grouped token = %q, want redacted", entry.Tokens["access_token"])
	}
	if entry.Tokens["type"] != "Bearer" {
		t.Errorf("type = %q, want Bearer", entry.Tokens["type"])
	}
}

func TestRedactToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"mock-access-token", "moc...ken"},
		{"short", "***"},
		{"Bearer abcdefghijkl", "Bearer abc...jkl"},
	}
	for _, tt := range tests {
		if got := RedactToken(tt.in); got != tt.want {
			t.Errorf("RedactToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSensitiveKey(t *testing.T) {
	for _, k := range []string{"token", "AccessToken", "client_secret", "PASSWORD", "authorization"} {
		if !IsSensitiveKey(k) {
			t.Errorf("IsSensitiveKey(%q) = false", k)
		}
	}
	for _, k := range []string{"path", "status", "method", "key", "email"} {
		if IsSensitiveKey(k) {
			t.Errorf("IsSensitiveKey(%q) = true", k)
		}
	}
}
