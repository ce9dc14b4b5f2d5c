package xdict

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/klauspost/pgzip"
)

// gzipMagic is the two-byte magic header pgzip (and gzip) files start
// with; Load sniffs it to decide whether to wrap the reader.
var gzipMagic = []byte{0x1f, 0x8b}

// Load reads a dictionary file in the format of spec.md section 6.1: one
// record per line, each either a bare word or "stem/S" with S in
// {s,v,w,x} (case-insensitive), expanding per the paradigm table.
// Unknown suffixes are ignored verbatim (neither expanded nor treated as
// an error). Loading stops at the first line too long for the scanner's
// line buffer (ErrCorrupt), keeping whatever was parsed so far, matching
// spec.md section 7's "stop loading at first bad line" recovery.
func Load(fname string) (*Dictionary, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	br := bufio.NewReader(f)
	peek, _ := br.Peek(2)
	if bytes.Equal(peek, gzipMagic) {
		zr, err := pgzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	} else {
		r = br
	}

	d := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), MaxLen+32)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := loadLine(d, line); err != nil {
			d.Sort()
			return d, err
		}
	}
	if err := scanner.Err(); err != nil {
		d.Sort()
		return d, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	d.Sort()
	return d, nil
}

func loadLine(d *Dictionary, line string) error {
	slash := strings.IndexByte(line, '/')
	if slash < 0 {
		return addIfValid(d, line)
	}
	stem := line[:slash]
	suffix := line[slash+1:]
	if len(suffix) != 1 {
		// Not a recognized "/S" suffix shape: the whole record is
		// ignored, per spec.md section 6.1.
		return nil
	}
	switch suffix[0] {
	case 's', 'S':
		return addAllIfValid(d, stem, stem+"s")
	case 'v', 'V':
		return addAllIfValid(d, stem, stem+"s", stem+"ed", stem+"ing")
	case 'w', 'W':
		return addAllIfValid(d, stem+"e", stem+"es", stem+"ed", stem+"ing")
	case 'x', 'X':
		if stem == "" {
			return nil
		}
		last := stem[len(stem)-1]
		return addAllIfValid(d, stem, stem+"s",
			stem+string(last)+"ed", stem+string(last)+"ing")
	default:
		// Unknown suffix letter: ignore the whole record, no expansion.
		return nil
	}
}

// addIfValid adds word, silently discarding it if its length is out of
// range, per spec.md section 6.1's "expansion products that exceed
// MAXLEN are silently discarded".
func addIfValid(d *Dictionary, word string) error {
	if len(word) < MinLen || len(word) >= MaxLen {
		return nil
	}
	return d.Add(word, 0)
}

func addAllIfValid(d *Dictionary, words ...string) error {
	for _, w := range words {
		if err := addIfValid(d, w); err != nil {
			return err
		}
	}
	return nil
}

// SaveOptions controls Save's output format.
type SaveOptions struct {
	// Compressed selects the morphology-aware "/s /v /w /x" encoding
	// (spec.md section 4.3) instead of one bare word per line.
	Compressed bool
	// Gzip wraps the output through klauspost/pgzip, an enrichment
	// layered on top of (never a replacement for) the morphology scheme.
	Gzip bool
}

// Save writes the dictionary to fname. Words are emitted in ascending
// bucket-length order; within a bucket, in whatever order the bucket
// currently holds them (insertion order, or lexicographic if Sorted).
func (d *Dictionary) Save(fname string, opts SaveOptions) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	bw := bufio.NewWriter(f)
	w = bw

	var zw *pgzip.Writer
	if opts.Gzip {
		zw, err = pgzip.NewWriterLevel(bw, pgzip.BestSpeed)
		if err != nil {
			return err
		}
		w = zw
	}

	if opts.Compressed {
		if !d.sorted {
			fmt.Fprintf(os.Stderr, "%s dictionary is unsorted; compressed save will be slow\n",
				color.New(color.FgRed).Sprint("warning:"))
		}
		if err := d.writeCompressed(w); err != nil {
			return err
		}
	} else {
		if err := d.writePlain(w); err != nil {
			return err
		}
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (d *Dictionary) writePlain(w io.Writer) error {
	for k := range d.buckets {
		for _, word := range d.buckets[k].words {
			if _, err := fmt.Fprintf(w, "%s\n", word); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dictionary) writeCompressed(w io.Writer) error {
	seenStems := make(map[string]string)
	for k := range d.buckets {
		for _, word := range d.buckets[k].words {
			pos := Classify(d, word)
			if pos == Covered {
				continue
			}
			pos = conflictCheck(word, pos, seenStems)
			stem, code := Suffix(pos, word)
			var err error
			if code == "" {
				_, err = fmt.Fprintf(w, "%s\n", stem)
			} else {
				_, err = fmt.Fprintf(w, "%s/%s\n", stem, code)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
