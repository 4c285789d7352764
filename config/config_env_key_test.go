package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"upload": map[string]any{
			"primaryUrl": "",
			"maxBackoff": "15m",
		},
		"cache": map[string]any{
			"queueLimit": 1000,
		},
		"whitelist": map[string]any{
			"syncInterval": "10m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "UPLOAD_PRIMARYURL", want: "upload.primaryUrl"},
		{envKey: "UPLOAD_MAXBACKOFF", want: "upload.maxBackoff"},
		{envKey: "CACHE_QUEUELIMIT", want: "cache.queueLimit"},
		{envKey: "WHITELIST_SYNCINTERVAL", want: "whitelist.syncInterval"},
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
