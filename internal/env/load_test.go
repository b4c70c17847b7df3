package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSetsVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	body := "# comment\nEIGHTBALL_TEST_ASSET=\"assets/x.glb\"\nEIGHTBALL_TEST_KEEP=from-file\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EIGHTBALL_TEST_KEEP", "from-env")
	t.Setenv("EIGHTBALL_TEST_ASSET", "")
	os.Unsetenv("EIGHTBALL_TEST_ASSET")

	if err := Load(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("EIGHTBALL_TEST_ASSET"); got != "assets/x.glb" {
		t.Errorf("Expected unquoted value, got %q", got)
	}
	if got := os.Getenv("EIGHTBALL_TEST_KEEP"); got != "from-env" {
		t.Errorf("Expected existing variable kept, got %q", got)
	}
}
