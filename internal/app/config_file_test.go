package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadConfigFile_YAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "minigrep.yaml", "verbose: true\nenvFiles: [a.env, b.env]\nexit:\n  onError: 0\n")
	jsn := writeFile(t, dir, "minigrep.json", `{"verbose": true, "envFiles": ["a.env", "b.env"], "exit": {"onError": 0}}`)
	noext := writeFile(t, dir, "minigreprc", `{"exit": {"onError": 0}, "verbose": true, "envFiles": ["a.env", "b.env"]}`)

	for _, p := range []string{yml, jsn, noext} {
		fc, err := LoadConfigFile(p)
		if err != nil {
			t.Fatalf("LoadConfigFile(%s): %v", filepath.Base(p), err)
		}
		cfg := DefaultConfig()
		ApplyFileConfig(&cfg, fc)
		want := Config{EnvFiles: []string{"a.env", "b.env"}, Verbose: true, ExitCodeOnError: 0}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Fatalf("%s: config mismatch (-want +got):\n%s", filepath.Base(p), diff)
		}
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "verbose: [unterminated\n")
	if _, err := LoadConfigFile(bad); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := LoadConfigFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// Unset fields in the file keep the defaults.
func TestApplyFileConfig_PartialKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	ApplyFileConfig(&cfg, FileConfig{})
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("empty file config changed defaults (-want +got):\n%s", diff)
	}
}

func TestValidateConfig(t *testing.T) {
	for _, code := range []int{0, 1, 2, 125} {
		if err := ValidateConfig(Config{ExitCodeOnError: code}); err != nil {
			t.Fatalf("code %d: unexpected error %v", code, err)
		}
	}
	for _, code := range []int{-1, 126, 255} {
		if err := ValidateConfig(Config{ExitCodeOnError: code}); err == nil {
			t.Fatalf("code %d: expected error", code)
		}
	}
}

// Settings file, then dotenv, then environment.
func TestLoadSettings_Layering(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "custom.env", "MINIGREP_EXIT_ON_ERROR=4\n")
	cfgPath := writeFile(t, dir, "minigrep.yml", "verbose: true\nenvFiles: ["+envFile+"]\nexit:\n  onError: 2\n")

	t.Setenv(envConfigPath, cfgPath)
	t.Setenv(envExitOnError, "")
	t.Setenv(envVerbose, "false")

	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.ExitCodeOnError != 4 {
		t.Fatalf("ExitCodeOnError=%d, want 4 from dotenv", cfg.ExitCodeOnError)
	}
	if cfg.Verbose {
		t.Fatalf("environment should override verbose from the settings file")
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv(envConfigPath, "")
	t.Setenv(envExitOnError, "")
	t.Setenv(envVerbose, "")
	chdir(t, t.TempDir())

	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettings_RejectsInvalidExitCode(t *testing.T) {
	t.Setenv(envConfigPath, "")
	t.Setenv(envExitOnError, "300")
	chdir(t, t.TempDir())
	if _, err := LoadSettings(); err == nil {
		t.Fatalf("expected validation error")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
