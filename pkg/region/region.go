// Parsing, canonicalization and batching of BED-style genomic regions.

package region

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxPerBatch is the hard limit of the Ensembl POST sequence endpoint:
// at most 50 regions per request.
const MaxPerBatch = 50

// MalformedInputError reports a bed table the parser cannot use.
type MalformedInputError struct {
	Msg string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Msg)
}

// Region is one parsed row of the input table. Start <= End is not
// enforced; bad intervals are passed through to the server untouched.
type Region struct {
	Chrom string
	Start uint64
	End   uint64
}

// Canonical renders the region the way the REST API expects it,
// e.g. "1:64807745..65123006".
func (r Region) Canonical() string {
	return fmt.Sprintf("%s:%d..%d", r.Chrom, r.Start, r.End)
}

// Batch is an ordered group of at most MaxPerBatch canonical region
// strings. A batch is identified by its position in the slice returned
// from MakeBatches.
type Batch []string

// ParseTable reads a tab- or whitespace-delimited table with at least
// three columns (chrom, start, end). A first row whose second column reads
// "start" in any case is a header and is dropped; a numeric second column
// is data; anything else is malformed. Empty input parses to zero regions.
//
// When any chromosome field contains "chr", the chrM -> MT and chr -> ""
// rewrites are applied to every row.
func ParseTable(r io.Reader) ([]Region, error) {

	var regions []Region

	scanner := bufio.NewScanner(r)
	first := true

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, &MalformedInputError{
				Msg: fmt.Sprintf("expected at least 3 columns (chrom, start, end), got %d", len(fields)),
			}
		}

		if first {
			first = false
			if !isNumeric(fields[1]) {
				if strings.EqualFold(fields[1], "start") {
					// header row
					continue
				}
				return nil, &MalformedInputError{
					Msg: fmt.Sprintf("second column of the first row is %q, want a number or a \"start\" header", fields[1]),
				}
			}
		}

		start, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, &MalformedInputError{
				Msg: fmt.Sprintf("start %q is not a non-negative integer", fields[1]),
			}
		}

		end, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, &MalformedInputError{
				Msg: fmt.Sprintf("end %q is not a non-negative integer", fields[2]),
			}
		}

		regions = append(regions, Region{Chrom: fields[0], Start: start, End: end})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	canonicalizeChroms(regions)

	return regions, nil
}

// CanonicalizeChrom rewrites the UCSC-style chromosome name to the naming
// the REST API uses: "chrM" becomes "MT", then every remaining "chr" is
// removed. Substring rewrites, not prefix strips, matching the tool this
// replaces; a name carrying "chr" outside the prefix position would be
// mangled here.
func CanonicalizeChrom(name string) string {
	name = strings.ReplaceAll(name, "chrM", "MT")
	return strings.ReplaceAll(name, "chr", "")
}

// One matching row switches the rewrite on for the whole table, even for
// rows that were already bare. Kept bug-compatible with the original tool.
func canonicalizeChroms(regions []Region) {
	found := false
	for _, r := range regions {
		if strings.Contains(r.Chrom, "chr") {
			found = true
			break
		}
	}

	if !found {
		return
	}

	for i := range regions {
		regions[i].Chrom = CanonicalizeChrom(regions[i].Chrom)
	}
}

// MakeBatches chunks the regions into contiguous groups of at most
// MaxPerBatch canonical strings, preserving input order. Zero regions
// yield zero batches.
func MakeBatches(regions []Region) []Batch {

	var batches []Batch

	for i := 0; i < len(regions); i += MaxPerBatch {
		j := min(i+MaxPerBatch, len(regions))

		batch := make(Batch, 0, j-i)
		for _, r := range regions[i:j] {
			batch = append(batch, r.Canonical())
		}

		batches = append(batches, batch)
	}

	return batches
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
