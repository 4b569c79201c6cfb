package form

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DistrictPolicy != DistrictDefaultNotSpecified {
		t.Fatalf("default district policy = %q", cfg.DistrictPolicy)
	}
	if cfg.NotSpecified != "Не указан" {
		t.Fatalf("default placeholder = %q", cfg.NotSpecified)
	}
	if cfg.Debounce() != 300*time.Millisecond {
		t.Fatalf("default debounce = %v", cfg.Debounce())
	}
	if cfg.CacheTTL() != 24*time.Hour {
		t.Fatalf("default cache ttl = %v", cfg.CacheTTL())
	}
}

func TestLoadConfig(t *testing.T) {
	doc := `
district_policy: require-city
not_specified: "—"
required: [rooms]
optional: [price]
debounce_ms: 150
cache_ttl_hours: 6
`
	cfg, err := LoadConfig([]byte(doc))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := Config{
		DistrictPolicy: DistrictRequireCity,
		NotSpecified:   "—",
		Required:       []string{"rooms"},
		Optional:       []string{"price"},
		DebounceMS:     150,
		CacheTTLHours:  6,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Debounce() != 150*time.Millisecond {
		t.Fatalf("debounce = %v", cfg.Debounce())
	}
	if cfg.CacheTTL() != 6*time.Hour {
		t.Fatalf("cache ttl = %v", cfg.CacheTTL())
	}
}

func TestLoadConfig_EmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte("  \n"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_UnknownKeyIsRejected(t *testing.T) {
	_, err := LoadConfig([]byte("district_polcy: require-city\n"))
	if err == nil {
		t.Fatal("expected error for misspelled key")
	}
	if !strings.Contains(err.Error(), "form: parse config") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestLoadConfig_UnknownPolicyIsRejected(t *testing.T) {
	_, err := LoadConfig([]byte("district_policy: sometimes\n"))
	if err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestLoadConfig_NegativeDurationsRejected(t *testing.T) {
	if _, err := LoadConfig([]byte("debounce_ms: -1\n")); err == nil {
		t.Fatal("expected error for negative debounce")
	}
	if _, err := LoadConfig([]byte("cache_ttl_hours: -1\n")); err == nil {
		t.Fatal("expected error for negative cache ttl")
	}
}

func TestLoadConfigFS(t *testing.T) {
	fsys := fstest.MapFS{
		"formflow.yaml": {Data: []byte("district_policy: require-city\n")},
	}

	cfg, err := LoadConfigFS(fsys, "formflow.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.DistrictPolicy != DistrictRequireCity {
		t.Fatalf("policy = %q", cfg.DistrictPolicy)
	}

	if _, err := LoadConfigFS(fsys, "missing.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
