// Writers for the user-facing output formats.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yumyai/getseq/pkg/rest"
)

// Fasta writes one ">id\nseq\n" record per sequence, in retrieval order.
func Fasta(w io.Writer, records []rest.SequenceRecord) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", rec.ID, rec.Seq); err != nil {
			return err
		}
	}
	return nil
}

// GenomeTable writes an aligned name / display-name listing.
func GenomeTable(w io.Writer, genomes []rest.Genome) error {

	if _, err := fmt.Fprintf(w, "%-40s %s\n", "Name", "Display name"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s %s\n",
		strings.Repeat("-", 30), strings.Repeat(" ", 9), strings.Repeat("-", 30)); err != nil {
		return err
	}

	for _, g := range genomes {
		if _, err := fmt.Fprintf(w, "%-40s %s\n", g.Name, g.DisplayName); err != nil {
			return err
		}
	}

	return nil
}

// AssemblyList writes one coordinate system version per line.
func AssemblyList(w io.Writer, versions []string) error {
	for _, v := range versions {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
