// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("ADMIN_PRINCIPAL", "alice")
	os.Setenv("IP_HASH_SALT", "test-salt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.AdminPrincipal != "alice" {
		t.Errorf("expected admin alice, got %q", cfg.AdminPrincipal)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin", "alice", "-ip-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-admin", "alice", "-ip-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3324 {
		t.Errorf("expected default port 3324, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:electorate.db?mode=rwc" {
		t.Errorf("expected default sqlite URL, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_RequiredSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing admin principal", []string{"-ip-salt", "s1"}},
		{"missing ip salt", []string{"-admin", "alice"}},
		{"postgres without url", []string{"-admin", "alice", "-ip-salt", "s1", "-t", "postgres"}},
		{"unknown database type", []string{"-admin", "alice", "-ip-salt", "s1", "-t", "mysql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
