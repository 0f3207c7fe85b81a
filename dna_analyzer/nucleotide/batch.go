package nucleotide

import (
	"DNA-Sequence-Analysis/dna_analyzer/common"
	"context"

	"golang.org/x/sync/errgroup"
)

// Arrays computes the nucleotide array of every distinct symbol concurrently,
// one goroutine per symbol. It returns ctx.Err() if ctx is cancelled before
// all arrays are done.
func Arrays(ctx context.Context, text string, symbols []byte, alg Algorithm) (map[byte]common.NucleotideArray, error) {
	distinct := make([]byte, 0, len(symbols))
	seen := make(map[byte]bool, len(symbols))
	for _, s := range symbols {
		if !seen[s] {
			seen[s] = true
			distinct = append(distinct, s)
		}
	}

	results := make([]common.NucleotideArray, len(distinct))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range distinct {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Compute(alg, s, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	arrays := make(map[byte]common.NucleotideArray, len(distinct))
	for i, s := range distinct {
		arrays[s] = results[i]
	}
	return arrays, nil
}
