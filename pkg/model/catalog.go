// Model for the genome and assembly catalogs.

package model

import (
	"sort"

	"github.com/yumyai/getseq/pkg/rest"
)

// GetGenomes lists the genomes available on the server, sorted ascending
// by name.
func GetGenomes(client *rest.Client) ([]rest.Genome, error) {

	genomes, err := client.Genomes()
	if err != nil {
		return nil, err
	}

	sort.Slice(genomes, func(i, j int) bool {
		return genomes[i].Name < genomes[j].Name
	})

	return genomes, nil
}

// GetAssemblies lists the assembly versions of one species, in the order
// the server reports them.
func GetAssemblies(client *rest.Client, species string) ([]string, error) {
	return client.AssemblyVersions(species)
}
