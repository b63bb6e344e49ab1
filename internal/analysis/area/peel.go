package area

import (
	"errors"
	"fmt"

	"github.com/telcolab/coverage-backend-go/internal/analysis/cluster"
	"github.com/telcolab/coverage-backend-go/internal/models"
)

// peelOnce runs one search-and-refine round over the remainder.
// It returns the geohashes claimed by the extracted region and the
// noise-labelled rest of the set, both in input order.
func (f *Finder) peelOnce(remainder models.CellSet, eps float64) (claimed []string, rest models.CellSet, err error) {
	centroids, err := f.projector.Centroids(remainder)
	if err != nil {
		return nil, nil, fmt.Errorf("project centroids: %w", err)
	}

	start, err := f.StartNeighbours(centroids, eps)
	if err != nil {
		return nil, remainder, err
	}

	labels, err := f.Refine(centroids, start, eps)
	if err != nil {
		return nil, remainder, err
	}

	for i, l := range labels {
		if l != cluster.Noise {
			claimed = append(claimed, remainder[i].Geohash)
		} else {
			rest = append(rest, remainder[i])
		}
	}
	return claimed, rest, nil
}

// FindBoundedAreas peels at most count regions off the hotspot subset of
// cells and returns that subset with DesiredArea set on every claimed
// cell. Zero iterations leave every flag false. Peeling stops early when
// the remainder empties, stalls, or loses all clustering structure.
func (f *Finder) FindBoundedAreas(cells models.CellSet, count int, eps float64) (models.CellSet, error) {
	out := cells.Hotspots().Clone()
	for i := range out {
		out[i].DesiredArea = false
		out[i].RankDesiredArea = 0
	}
	if len(out) == 0 || count <= 0 {
		return out, nil
	}

	claimedSet := make(map[string]bool)
	remainder := out.Clone()

	for iter := 0; iter < count && len(remainder) > 0; iter++ {
		claimed, rest, err := f.peelOnce(remainder, eps)
		if errors.Is(err, ErrDegenerateSearch) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(claimed) == 0 {
			break
		}
		for _, gh := range claimed {
			claimedSet[gh] = true
		}
		remainder = rest
	}

	for i := range out {
		out[i].DesiredArea = claimedSet[out[i].Geohash]
	}
	return out, nil
}

// FindAllAreas peels regions off the hotspot subset until the remainder
// is exhausted, assigning each claimed cell the 1-based iteration number
// as its rank. Cells never claimed keep rank 0. An iteration that claims
// nothing terminates the loop, which bounds it at len(set) iterations.
func (f *Finder) FindAllAreas(cells models.CellSet, eps float64) (models.CellSet, error) {
	out := cells.Hotspots().Clone()
	for i := range out {
		out[i].DesiredArea = false
		out[i].RankDesiredArea = 0
	}
	if len(out) == 0 {
		return out, nil
	}

	ranks := make(map[string]int)
	remainder := out.Clone()

	for iter := 1; len(remainder) > 0; iter++ {
		claimed, rest, err := f.peelOnce(remainder, eps)
		if errors.Is(err, ErrDegenerateSearch) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(claimed) == 0 {
			break
		}
		for _, gh := range claimed {
			ranks[gh] = iter
		}
		remainder = rest
	}

	for i := range out {
		out[i].RankDesiredArea = ranks[out[i].Geohash]
		out[i].DesiredArea = out[i].RankDesiredArea > 0
	}
	return out, nil
}
