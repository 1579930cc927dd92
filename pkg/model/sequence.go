// Model for retrieving region sequences from the REST API.

package model

import (
	"go.uber.org/zap"

	"github.com/yumyai/getseq/logger"
	"github.com/yumyai/getseq/pkg/region"
	"github.com/yumyai/getseq/pkg/rest"
)

// CountRegions is the total number of regions across all batches.
func CountRegions(batches []region.Batch) int {
	n := 0
	for _, b := range batches {
		n += len(b)
	}
	return n
}

// RetrieveSequences submits every batch in order, one POST per batch, and
// concatenates the replies, so the output order equals the input region
// order. A failing batch aborts the whole retrieval and nothing retrieved
// so far is returned. Zero batches is valid and sends no request.
func RetrieveSequences(client *rest.Client, species, assembly string, batches []region.Batch, upstream, downstream int) ([]rest.SequenceRecord, error) {

	logger.Info("Retrieving DNA sequences",
		zap.Int("regions", CountRegions(batches)),
		zap.String("species", species),
		zap.String("assembly", assembly))

	var sequences []rest.SequenceRecord

	for _, batch := range batches {
		records, err := client.Sequences(species, assembly, batch, upstream, downstream)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, records...)
	}

	return sequences, nil
}
