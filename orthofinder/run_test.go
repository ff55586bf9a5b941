package orthofinder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func makeRun(t *testing.T, root, name string) {
	t.Helper()

	ogDir := filepath.Join(root, "OrthoFinder", name, "Orthogroups")
	if err := os.MkdirAll(ogDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "OrthoFinder", name, "Orthogroup_Sequences"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ogDir, GeneCountFile), []byte("Orthogroup\tSp1\tTotal\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindRunSingle(t *testing.T) {
	root := t.TempDir()
	makeRun(t, root, "Results_Aug26")

	run, err := FindRun(root, PickOnly)
	if err != nil {
		t.Fatal(err)
	}

	if run.Name != "Results_Aug26" {
		t.Errorf("Expected Results_Aug26, got %s", run.Name)
	}
	if filepath.Base(run.GeneCountPath) != GeneCountFile {
		t.Errorf("Unexpected gene count path %s", run.GeneCountPath)
	}
	if filepath.Base(run.SequencesDir) != "Orthogroup_Sequences" {
		t.Errorf("Unexpected sequences dir %s", run.SequencesDir)
	}
}

func TestFindRunMissingOrthoFinderDir(t *testing.T) {
	if _, err := FindRun(t.TempDir(), PickOnly); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindRunNoRuns(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "OrthoFinder"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindRun(root, PickOnly); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindRunMissingGeneCountTable(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "OrthoFinder", "Results_Aug26"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindRun(root, PickOnly); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// With several runs, PickOnly refuses to guess and the caller must name one.
func TestFindRunMultiple(t *testing.T) {
	root := t.TempDir()
	makeRun(t, root, "Results_Aug25")
	makeRun(t, root, "Results_Aug26")

	if _, err := FindRun(root, PickOnly); err == nil {
		t.Error("Expected an error when multiple runs exist")
	}

	run, err := FindRun(root, PickNamed("Results_Aug26"))
	if err != nil {
		t.Fatal(err)
	}
	if run.Name != "Results_Aug26" {
		t.Errorf("Expected Results_Aug26, got %s", run.Name)
	}

	if _, err := FindRun(root, PickNamed("Results_Sep01")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown run name, got %v", err)
	}
}
