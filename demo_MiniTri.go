package forMiniTriGo

import (
	"errors"
	"fmt"
	"os"

	"github.com/forminitri/forMiniTriGo/MatrixMarket"
	"github.com/rs/zerolog/log"
)

// ReadProblem reads the graph stored in the Matrix Market file args[0]. The
// matrix must be square; its pattern is read as an undirected graph, with
// self edges removed.
func ReadProblem(args []string) (G *Graph, functionErr error) {
	if len(args) < 1 {
		return nil, errors.New("missing input file")
	}
	filename := args[0]
	log.Info().Str("file", filename).Msg("Reading matrix market file")
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil && functionErr == nil {
			functionErr = err
		}
	}()
	header, scanner, err := MatrixMarket.ReadHeader(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	if header.NRows != header.NCols {
		return nil, fmt.Errorf("%v: A must be square, got %v x %v", filename, header.NRows, header.NCols)
	}
	rows, cols, err := MatrixMarket.ReadPattern(header, scanner)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	edges := make([]Edge, len(rows))
	for i := range rows {
		edges[i] = Edge{rows[i], cols[i]}
	}
	if err = ValidateEdges(header.NRows, edges, 0); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	G = New(header.NRows, edges, 0)
	log.Info().Int("vertices", G.NumVertices()).Int("entries", G.A.NNZ()).Msg("ReadProblem done")
	return G, nil
}
