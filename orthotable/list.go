package orthotable

import (
	"bufio"
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// WriteList writes the selected group identifiers one per line, in the order
// given. This plain list is the sole handoff between selection and copying
// and must round-trip through ReadList without reordering or deduplication.
func WriteList(w io.Writer, ids []string) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := bw.WriteString(id + "\n"); err != nil {
			return pfx.Err(err)
		}
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadList reads back a list written by WriteList.
func ReadList(r io.Reader) ([]string, error) {
	ids := make([]string, 0)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			ids = append(ids, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return ids, nil
}

func WriteListFile(path string, ids []string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := WriteList(f, ids); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func ReadListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ReadList(f)
}
