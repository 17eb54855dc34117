package app

import (
	"slices"
	"strings"

	"github.com/daboigbae/lanefinder/db"
)

// Derived views over the cached venue directory. All functions are pure:
// they filter, regroup, or reorder the input and never mutate it.

// VenuesInState returns venues whose state matches, case-insensitively.
func VenuesInState(venues []db.Venue, state string) []db.Venue {
	state = strings.TrimSpace(state)
	var matched []db.Venue
	for _, v := range venues {
		if strings.EqualFold(v.State, state) {
			matched = append(matched, v)
		}
	}
	return matched
}

// VenuesInCity returns venues in the given city, compared in slug form so
// route parameters match stored display names. An empty state matches any
// state.
func VenuesInCity(venues []db.Venue, state, city string) []db.Venue {
	if state != "" {
		venues = VenuesInState(venues, state)
	}
	citySlug := Slugify(city)
	var matched []db.Venue
	for _, v := range venues {
		if Slugify(v.City) == citySlug {
			matched = append(matched, v)
		}
	}
	return matched
}

// VenuesWithAmenity returns venues whose amenity list contains the tag,
// case-insensitively.
func VenuesWithAmenity(venues []db.Venue, amenity string) []db.Venue {
	amenity = strings.TrimSpace(amenity)
	var matched []db.Venue
	for _, v := range venues {
		if slices.ContainsFunc(v.Amenities, func(a string) bool {
			return strings.EqualFold(a, amenity)
		}) {
			matched = append(matched, v)
		}
	}
	return matched
}

// SearchVenues returns venues whose name or city contains the query,
// case-insensitively. An empty query matches everything.
func SearchVenues(venues []db.Venue, query string) []db.Venue {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return venues
	}
	var matched []db.Venue
	for _, v := range venues {
		if strings.Contains(strings.ToLower(v.Name), query) ||
			strings.Contains(strings.ToLower(v.City), query) {
			matched = append(matched, v)
		}
	}
	return matched
}

// CityGroup is a city's venues within one state.
type CityGroup struct {
	City   string     `json:"city"`
	Slug   string     `json:"slug"`
	Venues []db.Venue `json:"venues"`
}

// GroupByCity regroups venues by city, ordered by city name.
func GroupByCity(venues []db.Venue) []CityGroup {
	byCity := make(map[string]*CityGroup)
	for _, v := range venues {
		slug := Slugify(v.City)
		group, ok := byCity[slug]
		if !ok {
			group = &CityGroup{City: v.City, Slug: slug}
			byCity[slug] = group
		}
		group.Venues = append(group.Venues, v)
	}

	groups := make([]CityGroup, 0, len(byCity))
	for _, g := range byCity {
		groups = append(groups, *g)
	}
	slices.SortFunc(groups, func(a, b CityGroup) int {
		return strings.Compare(a.Slug, b.Slug)
	})
	return groups
}

// SortByRating returns a copy sorted by rating descending, name as
// tiebreaker.
func SortByRating(venues []db.Venue) []db.Venue {
	sorted := slices.Clone(venues)
	slices.SortStableFunc(sorted, func(a, b db.Venue) int {
		switch {
		case a.RatingAvg > b.RatingAvg:
			return -1
		case a.RatingAvg < b.RatingAvg:
			return 1
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})
	return sorted
}

// SortByName returns a copy sorted by name, case-insensitively.
func SortByName(venues []db.Venue) []db.Venue {
	sorted := slices.Clone(venues)
	slices.SortStableFunc(sorted, func(a, b db.Venue) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return sorted
}

// StateSummary is the per-state rollup for the state index.
type StateSummary struct {
	State      string `json:"state"`
	VenueCount int    `json:"venue_count"`
	CityCount  int    `json:"city_count"`
}

// StateSummaries returns one summary per state, ordered by state code.
func StateSummaries(venues []db.Venue) []StateSummary {
	cities := make(map[string]map[string]struct{})
	counts := make(map[string]int)
	for _, v := range venues {
		state := strings.ToUpper(strings.TrimSpace(v.State))
		counts[state]++
		if cities[state] == nil {
			cities[state] = make(map[string]struct{})
		}
		cities[state][Slugify(v.City)] = struct{}{}
	}

	summaries := make([]StateSummary, 0, len(counts))
	for state, count := range counts {
		summaries = append(summaries, StateSummary{
			State:      state,
			VenueCount: count,
			CityCount:  len(cities[state]),
		})
	}
	slices.SortFunc(summaries, func(a, b StateSummary) int {
		return strings.Compare(a.State, b.State)
	})
	return summaries
}

// PricingSummary aggregates game and shoe rental prices for one state.
// Venues without pricing data are counted but excluded from the averages.
type PricingSummary struct {
	State        string `json:"state"`
	VenueCount   int    `json:"venue_count"`
	PricedCount  int    `json:"priced_count"`
	AvgGameCents int    `json:"avg_game_cents"`
	MinGameCents int    `json:"min_game_cents"`
	MaxGameCents int    `json:"max_game_cents"`
	AvgShoeCents int    `json:"avg_shoe_cents"`
}

// PricingByState rolls up venue pricing per state, ordered by state code.
func PricingByState(venues []db.Venue) []PricingSummary {
	byState := make(map[string]*PricingSummary)
	shoeTotals := make(map[string]int)
	shoeCounts := make(map[string]int)
	gameTotals := make(map[string]int)

	for _, v := range venues {
		state := strings.ToUpper(strings.TrimSpace(v.State))
		summary, ok := byState[state]
		if !ok {
			summary = &PricingSummary{State: state}
			byState[state] = summary
		}
		summary.VenueCount++

		if v.PricePerGameCents > 0 {
			price := int(v.PricePerGameCents)
			summary.PricedCount++
			gameTotals[state] += price
			if summary.MinGameCents == 0 || price < summary.MinGameCents {
				summary.MinGameCents = price
			}
			if price > summary.MaxGameCents {
				summary.MaxGameCents = price
			}
		}
		if v.ShoeRentalCents > 0 {
			shoeTotals[state] += int(v.ShoeRentalCents)
			shoeCounts[state]++
		}
	}

	summaries := make([]PricingSummary, 0, len(byState))
	for state, summary := range byState {
		if summary.PricedCount > 0 {
			summary.AvgGameCents = gameTotals[state] / summary.PricedCount
		}
		if shoeCounts[state] > 0 {
			summary.AvgShoeCents = shoeTotals[state] / shoeCounts[state]
		}
		summaries = append(summaries, *summary)
	}
	slices.SortFunc(summaries, func(a, b PricingSummary) int {
		return strings.Compare(a.State, b.State)
	})
	return summaries
}
