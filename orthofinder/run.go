// Package orthofinder resolves the directory layout created by an
// OrthoFinder 2.5.x run: <root>/OrthoFinder/<run>/Orthogroups and
// <root>/OrthoFinder/<run>/Orthogroup_Sequences.
package orthofinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// GeneCountFile is the per-run gene count table written by OrthoFinder
	// into its Orthogroups directory.
	GeneCountFile = "Orthogroups.GeneCount.tsv"

	orthoFinderDir = "OrthoFinder"
	orthogroupsDir = "Orthogroups"
	sequencesDir   = "Orthogroup_Sequences"
)

// ErrNotFound marks an expected OrthoFinder directory or file that is
// absent from the input root.
var ErrNotFound = errors.New("not found")

// Run holds the resolved paths of one OrthoFinder results run. All paths are
// absolute or root-relative as given; nothing here mutates the process
// working directory.
type Run struct {
	Name           string
	Dir            string
	OrthogroupsDir string
	SequencesDir   string
	GeneCountPath  string
}

// RunPicker chooses among multiple run directory names. It returns the index
// of the chosen run. Pickers replace interactive prompting so disambiguation
// stays a single bounded call.
type RunPicker func(runs []string) (int, error)

// PickOnly fails whenever more than one run exists.
func PickOnly(runs []string) (int, error) {
	return 0, fmt.Errorf("%d OrthoFinder runs found (%s); pass the desired run name explicitly", len(runs), strings.Join(runs, ", "))
}

// PickNamed chooses the run directory with the given name.
func PickNamed(name string) RunPicker {
	return func(runs []string) (int, error) {
		for i, run := range runs {
			if run == name {
				return i, nil
			}
		}

		return 0, fmt.Errorf("%w: no OrthoFinder run named %q (have %s)", ErrNotFound, name, strings.Join(runs, ", "))
	}
}

// FindRun resolves root down to a single OrthoFinder run. The root must
// contain an OrthoFinder directory with at least one run inside it; when
// several runs exist, pick chooses exactly one. The chosen run must contain
// the gene count table.
func FindRun(root string, pick RunPicker) (*Run, error) {
	ofDir := filepath.Join(root, orthoFinderDir)
	entries, err := os.ReadDir(ofDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: no OrthoFinder folder in %s", ErrNotFound, root)
	} else if err != nil {
		return nil, err
	}

	runs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			runs = append(runs, entry.Name())
		}
	}
	sort.Strings(runs)

	chosen := 0
	switch {
	case len(runs) == 0:
		return nil, fmt.Errorf("%w: no OrthoFinder runs in %s", ErrNotFound, ofDir)
	case len(runs) > 1:
		if chosen, err = pick(runs); err != nil {
			return nil, err
		}
		if chosen < 0 || chosen >= len(runs) {
			return nil, fmt.Errorf("run choice %d is out of range", chosen)
		}
	}

	run := &Run{
		Name: runs[chosen],
		Dir:  filepath.Join(ofDir, runs[chosen]),
	}
	run.OrthogroupsDir = filepath.Join(run.Dir, orthogroupsDir)
	run.SequencesDir = filepath.Join(run.Dir, sequencesDir)
	run.GeneCountPath = filepath.Join(run.OrthogroupsDir, GeneCountFile)

	if _, err := os.Stat(run.GeneCountPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: no %s in %s", ErrNotFound, GeneCountFile, run.OrthogroupsDir)
	} else if err != nil {
		return nil, err
	}

	return run, nil
}
