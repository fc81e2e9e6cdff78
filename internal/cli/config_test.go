package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnvStr(t *testing.T) {
	key := "MODELGET_TEST_ENV_STR"
	os.Unsetenv(key)
	if got := envStr(key, "def"); got != "def" {
		t.Fatalf("envStr default: got %q", got)
	}
	t.Setenv(key, "val")
	if got := envStr(key, "def"); got != "val" {
		t.Fatalf("envStr set: got %q", got)
	}
}

func TestEnvBool(t *testing.T) {
	key := "MODELGET_TEST_ENV_BOOL"
	os.Unsetenv(key)
	if !envBool(key, true) {
		t.Fatalf("envBool default true -> false")
	}
	if envBool(key, false) {
		t.Fatalf("envBool default false -> true")
	}
	for _, v := range []string{"1", "true", "yes", "TRUE"} {
		t.Setenv(key, v)
		if !envBool(key, false) {
			t.Fatalf("envBool %q -> false", v)
		}
	}
	t.Setenv(key, "no")
	if envBool(key, true) {
		t.Fatalf("envBool no -> true")
	}
}

func TestEnvInt(t *testing.T) {
	key := "MODELGET_TEST_ENV_INT"
	os.Unsetenv(key)
	if got := envInt(key, 7); got != 7 {
		t.Fatalf("envInt default -> %d", got)
	}
	t.Setenv(key, "42")
	if got := envInt(key, 0); got != 42 {
		t.Fatalf("envInt 42 -> %d", got)
	}
	t.Setenv(key, "bad")
	if got := envInt(key, 5); got != 5 {
		t.Fatalf("envInt bad -> %d", got)
	}
}

func TestEnvDuration(t *testing.T) {
	key := "MODELGET_TEST_ENV_DUR"
	os.Unsetenv(key)
	if got := envDuration(key, time.Minute); got != time.Minute {
		t.Fatalf("envDuration default -> %v", got)
	}
	t.Setenv(key, "90s")
	if got := envDuration(key, time.Minute); got != 90*time.Second {
		t.Fatalf("envDuration 90s -> %v", got)
	}
	t.Setenv(key, "bad")
	if got := envDuration(key, time.Minute); got != time.Minute {
		t.Fatalf("envDuration bad -> %v", got)
	}
}

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestDefaultConfigReadsEnv(t *testing.T) {
	t.Setenv("MODELGET_MODELS_DIR", "/tmp/assets")
	t.Setenv("MODELGET_CONCURRENCY", "3")
	t.Setenv("MODELGET_CORS_ENABLED", "true")
	cfg := defaultConfig()
	if cfg.ModelsDir != "/tmp/assets" {
		t.Fatalf("ModelsDir=%q", cfg.ModelsDir)
	}
	if cfg.Concurrency != 3 {
		t.Fatalf("Concurrency=%d", cfg.Concurrency)
	}
	if !cfg.CORSEnabled {
		t.Fatalf("CORSEnabled=false")
	}
	if cfg.LogFormat != "console" {
		t.Fatalf("LogFormat=%q", cfg.LogFormat)
	}
}

func TestHFTokenPrecedence(t *testing.T) {
	t.Setenv("HF_TOKEN", "")
	t.Setenv("HUGGINGFACE_TOKEN", "hf_b")
	if got := hfToken(); got != "hf_b" {
		t.Fatalf("hfToken fallback: %q", got)
	}
	t.Setenv("HF_TOKEN", "hf_a")
	if got := hfToken(); got != "hf_a" {
		t.Fatalf("hfToken primary: %q", got)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	key := "MODELGET_TEST_DOTENV"
	t.Setenv(key, "")
	writeFile(t, filepath.Join(dir, ".env"), key+"=base\n")
	writeFile(t, filepath.Join(dir, ".env.local"), key+"=local\n")

	if err := loadDotenv(); err != nil {
		t.Fatalf("loadDotenv: %v", err)
	}
	if got := os.Getenv(key); got != "local" {
		t.Fatalf("dotenv precedence: got %q", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
