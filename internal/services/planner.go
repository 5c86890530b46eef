package services

import (
	"context"
	"log"
	"sort"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/geo"
	"scenic-route-service/internal/ports"
)

// vibeSearchTypes maps a trip vibe to the POI types worth searching for.
// Unknown vibes fall back to defaultSearchTypes.
var vibeSearchTypes = map[string][]string{
	"nature":    {"viewpoint", "peak", "waterfall", "spring", "picnic_site"},
	"chill":     {"cafe", "restaurant", "picnic_site"},
	"hiking":    {"viewpoint", "peak", "information", "parking"},
	"foodie":    {"cafe", "restaurant"},
	"adventure": {"viewpoint", "peak", "waterfall", "camp_site"},
}

var defaultSearchTypes = []string{"viewpoint", "cafe", "parking", "picnic_site"}

// Planner turns a start/end pair into a trip draft: route geometry, the POI
// pool discovered around it, and the top scored clusters.
type Planner struct {
	Routes    ports.RouteProvider
	Discovery *DiscoveryService
	Scorer    ClusterScorer
}

func NewPlanner(routes ports.RouteProvider, discovery *DiscoveryService, scorer ClusterScorer) *Planner {
	return &Planner{Routes: routes, Discovery: discovery, Scorer: scorer}
}

// PlanTrip builds a draft for the given endpoints. It never fails: when the
// route provider errors or returns nothing, the draft comes back empty and
// the caller decides how to present that.
func (p *Planner) PlanTrip(
	ctx context.Context,
	start, end domain.Coordinate,
	vibes []string,
) *domain.TripDraft {
	draft := &domain.TripDraft{
		POIs:     []domain.POI{},
		Clusters: []domain.GoldenCluster{},
	}

	route, err := p.Routes.Route(ctx, start, end, nil)
	if err != nil {
		log.Printf("plan trip: route lookup failed: %v", err)
		return draft
	}
	if route == nil || route.Empty() {
		return draft
	}
	draft.Route = *route

	count := geo.MesoCount(route.DistanceMeters)
	samples, err := geo.SamplePoints(route.Polyline, count)
	if err != nil {
		log.Printf("plan trip: sampling route failed: %v", err)
		return draft
	}

	draft.POIs = p.Discovery.Discover(ctx, samples, searchTypesForVibes(vibes))
	draft.Clusters = p.Scorer.Score(draft.POIs)

	return draft
}

// searchTypesForVibes merges the type lists of all requested vibes into one
// sorted, deduplicated set. Parking is always included so clusters can earn
// their parking bonus regardless of vibe.
func searchTypesForVibes(vibes []string) []string {
	seen := map[string]struct{}{"parking": {}}

	matched := false
	for _, vibe := range vibes {
		for _, t := range vibeSearchTypes[vibe] {
			seen[t] = struct{}{}
			matched = true
		}
	}
	if !matched {
		for _, t := range defaultSearchTypes {
			seen[t] = struct{}{}
		}
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
