package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"connectTimeout": "10s",
			"database":       "medvantage",
		},
		"secretKey": map[string]any{
			"jwt":      "",
			"tokenTtl": "168h",
		},
		"stripe": map[string]any{
			"secretKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "MONGO_DATABASE", want: "mongo.database"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "SECRETKEY_TOKENTTL", want: "secretKey.tokenTtl"},
		{envKey: "STRIPE_SECRETKEY", want: "stripe.secretKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
