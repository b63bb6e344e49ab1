package area

import (
	"errors"
	"testing"

	"github.com/telcolab/coverage-backend-go/internal/spatial"
)

func TestRefineNarrowsToSingleRegion(t *testing.T) {
	// two distinct labels at minSamples <= 4, all noise above
	sc := &scriptedClusterer{labelsFor: func(m int) []int {
		if m <= 4 {
			return []int{0, 0, -1}
		}
		return []int{-1, -1, -1}
	}}

	var records []ProgressRecord
	f := NewFinder(sc, spatial.NewMercatorProjector(),
		WithObserver(ObserverFunc(func(rec ProgressRecord) {
			records = append(records, rec)
		})))

	labels, err := f.Refine(testPoints(3), 8, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []int{0, 0, -1}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("Expected labels %v, got %v", want, labels)
		}
	}

	if len(records) != 5 {
		t.Fatalf("Expected 5 progress records, got %d", len(records))
	}
	first := ProgressRecord{Steps: 5, Neighbours: 3, StartNeighbours: 8, StopNeighbours: 3, DesiredAreas: 1}
	if records[0] != first {
		t.Errorf("Expected first record %+v, got %+v", first, records[0])
	}
	last := ProgressRecord{Steps: 1, Neighbours: 4, StartNeighbours: 5, StopNeighbours: 4, DesiredAreas: 1}
	if records[4] != last {
		t.Errorf("Expected last record %+v, got %+v", last, records[4])
	}
}

func TestRefineReturnsLastAttemptByDefault(t *testing.T) {
	// stateful script: the second clustering call is the only one that
	// yields a single region, every later call is all noise
	call := 0
	sc := &scriptedClusterer{labelsFor: func(int) []int {
		call++
		if call == 2 {
			return []int{7, 7, -1}
		}
		return []int{-1, -1, -1}
	}}
	f := newTestFinder(sc)

	labels, err := f.Refine(testPoints(3), 3, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, l := range labels {
		if l != -1 {
			t.Errorf("Expected last attempted labels (all noise), got %d at %d", l, i)
		}
	}
}

func TestRefineWithReturnMatching(t *testing.T) {
	call := 0
	sc := &scriptedClusterer{labelsFor: func(int) []int {
		call++
		if call == 2 {
			return []int{7, 7, -1}
		}
		return []int{-1, -1, -1}
	}}
	f := newTestFinder(sc, WithReturnMatching())

	labels, err := f.Refine(testPoints(3), 3, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []int{7, 7, -1}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("Expected matching labels %v, got %v", want, labels)
		}
	}
}

func TestRefineEmptyInput(t *testing.T) {
	f := newTestFinder(&scriptedClusterer{labelsFor: func(int) []int { return nil }})

	if _, err := f.Refine(nil, 5, 1); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}
