package services

import (
	"testing"

	"scenic-route-service/internal/domain"
)

func TestReorderGreedyOrder(t *testing.T) {
	a := domain.Coordinate{Lat: 32.1, Lon: 34.9}
	b := domain.Coordinate{Lat: 32.2, Lon: 35.0}
	c := domain.Coordinate{Lat: 32.3, Lon: 35.1}

	plan := &domain.TripPlan{
		StartLocation: solveStart,
		Stops: []domain.Stop{
			{ID: "b", Coordinate: b},
			{ID: "c", Coordinate: c},
			{ID: "a", Coordinate: a},
		},
	}

	table := DriveTimeTable{Seconds: map[LegKey]float64{
		{From: solveStart, To: a}: 100,
		{From: solveStart, To: b}: 500,
		{From: solveStart, To: c}: 900,
		{From: a, To: b}:          100,
		{From: a, To: c}:          400,
		{From: b, To: c}:          100,
		{From: b, To: a}:          100,
		{From: c, To: b}:          100,
		{From: c, To: a}:          400,
	}}

	out := Reorder(plan, table)

	if len(out.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(out.Stops))
	}
	for i, want := range []string{"a", "b", "c"} {
		if out.Stops[i].ID != want {
			t.Fatalf("stop %d = %q, want %q", i, out.Stops[i].ID, want)
		}
	}

	// Input order untouched.
	if plan.Stops[0].ID != "b" {
		t.Fatalf("input plan was mutated: first stop = %q", plan.Stops[0].ID)
	}
}

func TestReorderPreservesAnchorIndex(t *testing.T) {
	a := domain.Coordinate{Lat: 32.1, Lon: 34.9}
	b := domain.Coordinate{Lat: 32.2, Lon: 35.0}
	c := domain.Coordinate{Lat: 32.3, Lon: 35.1}

	plan := &domain.TripPlan{
		StartLocation: solveStart,
		Stops: []domain.Stop{
			{ID: "far", Coordinate: c},
			{ID: "lunch", Coordinate: b, IsAnchor: true},
			{ID: "near", Coordinate: a},
		},
	}

	out := Reorder(plan, HaversineEstimator{})

	if len(out.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(out.Stops))
	}
	if out.Stops[1].ID != "lunch" {
		t.Fatalf("anchor moved: index 1 = %q, want lunch", out.Stops[1].ID)
	}
	// Unanchored stops are greedily sorted around it.
	if out.Stops[0].ID != "near" || out.Stops[2].ID != "far" {
		t.Fatalf("unexpected order: %q, %q", out.Stops[0].ID, out.Stops[2].ID)
	}
}

func TestReorderShortPlansUnchanged(t *testing.T) {
	a := domain.Coordinate{Lat: 32.1, Lon: 34.9}
	b := domain.Coordinate{Lat: 32.2, Lon: 35.0}

	plan := &domain.TripPlan{
		StartLocation: solveStart,
		Stops: []domain.Stop{
			{ID: "far", Coordinate: b},
			{ID: "near", Coordinate: a},
		},
	}

	out := Reorder(plan, HaversineEstimator{})

	if out.Stops[0].ID != "far" || out.Stops[1].ID != "near" {
		t.Fatalf("two-stop plan should keep its order, got %q, %q", out.Stops[0].ID, out.Stops[1].ID)
	}
}

func TestReorderNilPlan(t *testing.T) {
	if out := Reorder(nil, nil); out != nil {
		t.Fatalf("expected nil for nil plan, got %v", out)
	}
}
