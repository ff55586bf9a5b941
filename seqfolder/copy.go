// Package seqfolder copies selected ortholog sequence files into a
// destination folder.
package seqfolder

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// Extension is the suffix OrthoFinder gives each per-group sequence file
// under Orthogroup_Sequences.
const Extension = ".fa"

// Result tallies one copy batch.
type Result struct {
	Copied     int
	Missing    int
	MissingIDs []string
}

// Attempted is the number of groups the batch tried to materialize.
func (r Result) Attempted() int {
	return r.Copied + r.Missing
}

// CopySelected copies <id>.fa from srcDir into dstDir for every id, in
// order. A group without a sequence file is logged and counted but never
// aborts the batch; an I/O failure during an actual copy does. Files are
// copied one at a time, holding one source and one destination handle open
// at most.
func CopySelected(ids []string, srcDir, dstDir string) (Result, error) {
	var res Result

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return res, pfx.Err(err)
	}

	for _, id := range ids {
		src := filepath.Join(srcDir, id+Extension)

		if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
			log.Printf("File %s%s not found.\n", id, Extension)
			res.Missing++
			res.MissingIDs = append(res.MissingIDs, id)
			continue
		} else if err != nil {
			return res, pfx.Err(err)
		}

		if err := copyFile(src, filepath.Join(dstDir, id+Extension)); err != nil {
			return res, err
		}

		res.Copied++
	}

	return res, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return pfx.Err(err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return pfx.Err(err)
	}

	if err := out.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
