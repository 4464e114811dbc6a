package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"forestsim/internal/store"
	"forestsim/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	dataDir    string
	csvDir     string
	logDir     string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("FORESTSIM_DATA_DIR", "")
	t.Setenv("FORESTSIM_CSV_DIR", "")
	t.Setenv("FORESTSIM_LOG_LEVEL", "")

	env := &cliTestEnv{
		baseDir:    base,
		dataDir:    filepath.Join(base, "data"),
		csvDir:     filepath.Join(base, "csv"),
		logDir:     filepath.Join(base, "logs"),
		configPath: filepath.Join(base, "forestsim.toml"),
	}
	content := fmt.Sprintf("[paths]\ndata_dir = %q\ncsv_dir = %q\nlog_dir = %q\n", env.dataDir, env.csvDir, env.logDir)
	testsupport.WriteFile(t, env.configPath, content)
	return env
}

func (e *cliTestEnv) writeCSV(t *testing.T, name string, lines ...string) {
	t.Helper()
	testsupport.WriteFile(t, filepath.Join(e.csvDir, name+".csv"), strings.Join(lines, "\n")+"\n")
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestRootWithoutNames(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.configPath, "")
	if err != nil {
		t.Fatalf("root without names: %v", err)
	}
	requireContains(t, out, "No forest names provided")
}

func TestRootRunsShell(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeCSV(t, "Montane", "BIRCH,2015,12.50,15.0", "MAPLE,2010,15.00,12.0")

	out, _, err := runCLI(t, []string{"Montane", "Lowland"}, env.configPath, "P\nS\nN\nX\n")
	if err != nil {
		t.Fatalf("shell run: %v", err)
	}
	requireContains(t, out, "Forest name: Montane")
	requireContains(t, out, "There are 2 trees, with an average height of 13.75")
	requireContains(t, out, "Error opening/reading Lowland.csv")
	requireContains(t, out, "Exiting the Forestry Simulation")

	if _, err := os.Stat(filepath.Join(env.dataDir, "Montane.db")); err != nil {
		t.Fatalf("expected saved forest: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.logDir, "forestsim.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestRootFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	csvDir := filepath.Join(env.baseDir, "other-csv")
	testsupport.WriteFile(t, filepath.Join(csvDir, "Ridge.csv"), "FIR,2001,4.00,10.0\n")

	out, _, err := runCLI(t, []string{"--csv-dir", csvDir, "--log-level", "debug", "Ridge"}, env.configPath, "P\n")
	if err != nil {
		t.Fatalf("shell run: %v", err)
	}
	requireContains(t, out, "There are 1 trees, with an average height of 4.00")
}

func TestRootRejectsInvalidLogLevel(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--log-level", "loud", "Ridge"}, env.configPath, ""); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestShowFormats(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeCSV(t, "Montane", "BIRCH,2015,12.50,15.0", "MAPLE,2010,15.00,12.0", "OAK,1,1,1")

	t.Run("text", func(t *testing.T) {
		out, stderr, err := runCLI(t, []string{"show", "Montane"}, env.configPath, "")
		if err != nil {
			t.Fatalf("show text: %v", err)
		}
		requireContains(t, out, "     MAPLE  2010  15.00'  12.0%")
		requireContains(t, stderr, "Invalid data format in CSV file: OAK,1,1,1")
	})

	t.Run("table", func(t *testing.T) {
		out, _, err := runCLI(t, []string{"show", "Montane", "--format", "table"}, env.configPath, "")
		if err != nil {
			t.Fatalf("show table: %v", err)
		}
		requireContains(t, out, "Species")
		requireContains(t, out, "Birch")
		requireContains(t, out, "Maple")
		requireContains(t, out, "╭")
		requireContains(t, out, "2 trees")
		requireContains(t, out, "13.75'")
		if strings.Contains(out, "\x1b[") {
			t.Fatalf("expected no colour codes for non-terminal output: %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := runCLI(t, []string{"show", "Montane", "--format", "json"}, env.configPath, "")
		if err != nil {
			t.Fatalf("show json: %v", err)
		}
		var view struct {
			Forest struct {
				Name  string `json:"name"`
				Trees []struct {
					Species    string  `json:"species"`
					GrowthRate float64 `json:"growth_rate"`
				} `json:"trees"`
			} `json:"forest"`
			Summary struct {
				Count         int     `json:"count"`
				AverageHeight float64 `json:"average_height"`
			} `json:"summary"`
		}
		if err := json.Unmarshal([]byte(out), &view); err != nil {
			t.Fatalf("decode json: %v\n%s", err, out)
		}
		if view.Forest.Name != "Montane" || len(view.Forest.Trees) != 2 {
			t.Fatalf("unexpected forest %+v", view.Forest)
		}
		if view.Summary.Count != 2 || view.Summary.AverageHeight != 13.75 {
			t.Fatalf("unexpected summary %+v", view.Summary)
		}
		if view.Forest.Trees[1].Species != "MAPLE" || view.Forest.Trees[1].GrowthRate != 0.12 {
			t.Fatalf("unexpected second tree %+v", view.Forest.Trees[1])
		}
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := runCLI(t, []string{"show", "Montane", "--format", "yaml"}, env.configPath, "")
		if err != nil {
			t.Fatalf("show yaml: %v", err)
		}
		var view struct {
			Forest struct {
				Name string `yaml:"name"`
			} `yaml:"forest"`
			Summary struct {
				Count int `yaml:"count"`
			} `yaml:"summary"`
		}
		if err := yaml.Unmarshal([]byte(out), &view); err != nil {
			t.Fatalf("decode yaml: %v\n%s", err, out)
		}
		if view.Forest.Name != "Montane" || view.Summary.Count != 2 {
			t.Fatalf("unexpected view %+v", view)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, _, err := runCLI(t, []string{"show", "Montane", "--format", "xml"}, env.configPath, ""); err == nil {
			t.Fatal("expected error for unsupported format")
		}
	})
}

func TestShowMissingCSV(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"show", "Nowhere"}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for missing csv")
	}
	requireContains(t, err.Error(), "Nowhere.csv")
}

func TestShowFromDatabaseAndSaved(t *testing.T) {
	env := setupCLITestEnv(t)

	st, err := store.New(env.dataDir)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	testsupport.MustSave(t, st, testsupport.NewForest("Valley", 10, 20))
	testsupport.MustSave(t, st, testsupport.NewForest("Bluff", 4))

	out, _, err := runCLI(t, []string{"show", "Valley", "--from", "db"}, env.configPath, "")
	if err != nil {
		t.Fatalf("show from db: %v", err)
	}
	requireContains(t, out, "There are 2 trees, with an average height of 15.00")

	out, _, err = runCLI(t, []string{"saved"}, env.configPath, "")
	if err != nil {
		t.Fatalf("saved: %v", err)
	}
	requireContains(t, out, "Valley")
	requireContains(t, out, "Bluff")
	if strings.Index(out, "Bluff") > strings.Index(out, "Valley") {
		t.Fatalf("expected sorted listing, got:\n%s", out)
	}
	requireContains(t, out, "2 saved")

	if _, _, err := runCLI(t, []string{"show", "Ghost", "--from", "db"}, env.configPath, ""); err == nil {
		t.Fatal("expected error for missing saved forest")
	}
}

func TestSavedEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"saved"}, env.configPath, "")
	if err != nil {
		t.Fatalf("saved: %v", err)
	}
	requireContains(t, out, "No saved forests")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config file:    "+env.configPath)
	requireContains(t, out, "Saved forests:  "+env.dataDir)
	requireContains(t, out, "Growth rates:   10.0% to 20.0%")
	requireContains(t, out, "forestsim config OK")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Sample forestsim config written to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}
	requireContains(t, err.Error(), "pass --overwrite")
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}
