package network

import "carriernet/internal/pkg/errs"

// DistanceMatrix holds pairwise travel distances between network nodes,
// keyed by node ID. It is derived from node locations once and then shared
// read-only across carriers and the routing solver.
type DistanceMatrix struct {
	distances map[NodeID]map[NodeID]float64
}

// BuildDistanceMatrix computes the full pairwise distance matrix over every
// node in the directory. Distances are symmetric since they derive from the
// Euclidean location metric.
func BuildDistanceMatrix(dir *Directory) (*DistanceMatrix, error) {
	ids := dir.IDs()
	m := &DistanceMatrix{
		distances: make(map[NodeID]map[NodeID]float64, len(ids)),
	}

	for _, from := range ids {
		fromNode, err := dir.Get(from)
		if err != nil {
			return nil, err
		}
		row := make(map[NodeID]float64, len(ids))
		for _, to := range ids {
			toNode, err := dir.Get(to)
			if err != nil {
				return nil, err
			}
			d, err := fromNode.Location().Distance(toNode.Location())
			if err != nil {
				return nil, err
			}
			row[to] = d
		}
		m.distances[from] = row
	}

	return m, nil
}

// Distance returns the travel distance between two nodes. Unknown node IDs
// yield an ObjectNotFoundError.
func (m *DistanceMatrix) Distance(from NodeID, to NodeID) (float64, error) {
	row, ok := m.distances[from]
	if !ok {
		return 0, errs.NewObjectNotFoundError("node", string(from))
	}
	d, ok := row[to]
	if !ok {
		return 0, errs.NewObjectNotFoundError("node", string(to))
	}
	return d, nil
}

// Contains reports whether the matrix covers the given node ID.
func (m *DistanceMatrix) Contains(id NodeID) bool {
	_, ok := m.distances[id]
	return ok
}
