package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestEnvOverridesFlagDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SPEEDCHECK_CLIENT_BLOCK_SIZE", "4096")
	initConfig()

	if got := viper.GetInt("client.block-size"); got != 4096 {
		t.Errorf("client.block-size = %d, want 4096", got)
	}
	if got := viper.GetInt("client.size"); got != 256 {
		t.Errorf("client.size = %d, want flag default 256", got)
	}
}

func TestDiskCommandWritesJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	file := filepath.Join(dir, "bench.tmp")
	out := filepath.Join(dir, "result.json")

	rootCmd.SetArgs([]string{"disk", "-q",
		"-f", file, "-s", "1", "-w", "256", "-r", "4096", "-j", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("disk: %v", err)
	}

	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("test file still present: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode %s: %v", out, err)
	}
	if got["Test file full path"] != file {
		t.Errorf("path = %v, want %s", got["Test file full path"], file)
	}
	if got["Write blocks"] != float64(4) {
		t.Errorf("Write blocks = %v, want 4", got["Write blocks"])
	}
	if got["Read blocks"] != float64(256) {
		t.Errorf("Read blocks = %v, want 256", got["Read blocks"])
	}
	for _, k := range []string{"Write time (s)", "Read time (s)"} {
		if _, ok := got[k]; !ok {
			t.Errorf("missing key %q in %v", k, got)
		}
	}
}
