package config

import (
	"testing"
)

func TestSupabaseConfig_Configured(t *testing.T) {
	cases := []struct {
		url, key string
		want     bool
	}{
		{"", "", false},
		{"https://x.supabase.co", "", false},
		{"", "anon", false},
		{"https://x.supabase.co", "anon", true},
	}
	for _, tc := range cases {
		got := SupabaseConfig{URL: tc.url, AnonKey: tc.key}.Configured()
		if got != tc.want {
			t.Fatalf("Configured(%q, %q) = %v, want %v", tc.url, tc.key, got, tc.want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port == "" {
		t.Fatalf("port default missing")
	}
	if cfg.SaveTimeout <= 0 {
		t.Fatalf("save timeout must be positive, got %v", cfg.SaveTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SUPABASE_URL", " https://x.supabase.co ")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port override lost: %s", cfg.Port)
	}
	// пробелы по краям обрезаются
	if cfg.Supabase.URL != "https://x.supabase.co" {
		t.Fatalf("url not trimmed: %q", cfg.Supabase.URL)
	}
	if !cfg.Supabase.Configured() {
		t.Fatalf("remote mode should be enabled")
	}
}
