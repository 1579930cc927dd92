package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/getseq/pkg/rest"
)

func TestFasta(t *testing.T) {
	var buf bytes.Buffer

	err := Fasta(&buf, []rest.SequenceRecord{
		{ID: "chromosome:GRCh38:1:1000:2000:1", Seq: "ACGT"},
		{ID: "chromosome:GRCh38:MT:50:100:1", Seq: "TTGA"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		">chromosome:GRCh38:1:1000:2000:1\nACGT\n>chromosome:GRCh38:MT:50:100:1\nTTGA\n",
		buf.String())
}

func TestFastaNoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fasta(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestGenomeTable(t *testing.T) {
	var buf bytes.Buffer

	err := GenomeTable(&buf, []rest.Genome{
		{Name: "ant", DisplayName: "Ant"},
		{Name: "zebra", DisplayName: "Zebra"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Name                                     Display name", lines[0])
	assert.Equal(t, "ant                                      Ant", lines[2])
	assert.Equal(t, "zebra                                    Zebra", lines[3])
}

func TestAssemblyList(t *testing.T) {
	var buf bytes.Buffer

	err := AssemblyList(&buf, []string{"GRCh38", "GRCh37"})
	require.NoError(t, err)

	assert.Equal(t, "GRCh38\nGRCh37\n", buf.String())
}
