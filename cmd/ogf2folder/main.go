// ogf2folder filters the ortholog groups of an OrthoFinder 2.5.x run by
// missing-taxa fraction and per-taxon copy number, then copies the
// qualifying Orthogroup_Sequences files into a new folder.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/joaobilro/OrthoFinder-OGFilter/orthofinder"
	"github.com/joaobilro/OrthoFinder-OGFilter/orthotable"
	"github.com/joaobilro/OrthoFinder-OGFilter/seqfolder"
)

const (
	// ListFile is the intermediate artifact holding the selected group
	// identifiers, one per line, written into the output folder.
	ListFile = "FilteredOrthologs.txt"

	// ReportFile describes how every group fared against the thresholds.
	ReportFile = "FilteredOrthologs.report.tsv"
)

func main() {
	var input, output, runName string
	var missing float64
	var copies int
	var showHist bool

	flag.StringVar(&input, "input", "", "Path to the main directory which holds the OrthoFinder run(s).")
	flag.StringVar(&output, "output", "", "Path to the new folder that will contain the selected orthologs.")
	flag.Float64Var(&missing, "missing", -1, "Maximum proportion of missing taxa permitted per group, in (0, 1].")
	flag.IntVar(&copies, "copies", -1, "Maximum number of gene copies permitted per taxon in a group.")
	flag.StringVar(&runName, "run", "", "Name of the OrthoFinder run directory, required when more than one run exists.")
	flag.BoolVar(&showHist, "hist", false, "Print a histogram of per-group missing-taxa fractions.")
	flag.Parse()

	if input == "" || output == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(input, output, runName, missing, copies, showHist); err != nil {
		log.Fatalln(err)
	}
}

func run(input, output, runName string, missing float64, copies int, showHist bool) error {
	thresholds := orthotable.Thresholds{MaxMissingFraction: missing, MaxCopies: copies}
	if err := thresholds.Validate(); err != nil {
		return err
	}
	if missing == 0 {
		return fmt.Errorf("%w: missing-taxa fraction must be in (0, 1]", orthotable.ErrInvalidThreshold)
	}

	pick := orthofinder.PickOnly
	if runName != "" {
		pick = orthofinder.PickNamed(runName)
	}

	ofRun, err := orthofinder.FindRun(input, pick)
	if err != nil {
		return err
	}
	log.Printf("Found OrthoFinder run folder %s. Retrieving orthologs...\n", ofRun.Name)

	table, err := orthotable.ReadTableFile(ofRun.GeneCountPath)
	if err != nil {
		return err
	}
	log.Printf("Parsed gene counts for %d groups across %d taxa\n", len(table.Rows), len(table.Taxa))

	if showHist && len(table.Rows) > 0 {
		hist := histogram.Hist(10, table.MissingFractions())
		if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
			return err
		}
	}

	selected := table.Filter(thresholds)

	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}

	if err := orthotable.WriteListFile(filepath.Join(output, ListFile), selected); err != nil {
		return err
	}
	if err := orthotable.WriteReportFile(filepath.Join(output, ReportFile), table.Report(thresholds)); err != nil {
		return err
	}

	summary, err := table.Summarize(thresholds)
	if err != nil {
		return err
	}
	log.Printf("%d of %d groups passed both thresholds\n", summary.Selected, summary.Groups)
	if summary.Selected > 0 {
		log.Printf("Selected groups: mean missing fraction %.3f (median %.3f), mean max copies %.2f (largest %.0f)\n",
			summary.MeanMissingFraction, summary.MedianMissingFraction, summary.MeanMaxCopies, summary.LargestMaxCopies)
	}

	// The list file is the handoff contract: read it back rather than
	// reusing the in-memory selection.
	ids, err := orthotable.ReadListFile(filepath.Join(output, ListFile))
	if err != nil {
		return err
	}

	log.Println("Orthologs successfully retrieved. Copying to the new folder...")

	res, err := seqfolder.CopySelected(ids, ofRun.SequencesDir, output)
	if err != nil {
		return err
	}

	log.Printf("%d of %d orthologs were successfully copied to %s\n", res.Copied, res.Attempted(), output)
	if res.Missing > 0 {
		log.Printf("%d selected orthologs had no sequence file\n", res.Missing)
	}

	return nil
}
