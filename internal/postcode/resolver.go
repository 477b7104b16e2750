package postcode

import (
	"math"
	"sort"
	"strings"
)

// EarthRadiusMiles is the radius used for great-circle distance estimates.
const EarthRadiusMiles = 3958.7613

// DefaultMatchLimit is how many outcode matches are returned when the caller
// does not ask for a specific count.
const DefaultMatchLimit = 6

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Record is a postcode outward-code area with its fixed reference point.
// Records are defined once at startup and never mutated.
type Record struct {
	Outcode   string   `json:"outcode"`
	Label     string   `json:"label"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Priority  int      `json:"priority"`
	Areas     []string `json:"areas"`
}

// Area is a named locality served by the business, linked to an outcode.
type Area struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Outcode string `json:"outcode"`
}

// Match is an outcode record paired with its distance from the home base.
type Match struct {
	Record
	DistanceMiles float64 `json:"distance_miles"`
}

// Resolver answers area-membership, outcode-matching and distance queries
// against a fixed outcode table. All state is built once in NewResolver, so a
// single Resolver is safe to share across concurrent callers.
type Resolver struct {
	home           Coordinates
	records        []Record
	byOutcode      map[string]Record
	areasByOutcode map[string][]Area
	distances      map[string]float64
}

// NewResolver precomputes the outcode lookup tables and home-base distances.
func NewResolver(home Coordinates, records []Record, areas []Area) *Resolver {
	r := &Resolver{
		home:           home,
		records:        records,
		byOutcode:      make(map[string]Record, len(records)),
		areasByOutcode: make(map[string][]Area),
		distances:      make(map[string]float64, len(records)),
	}

	for _, rec := range records {
		r.byOutcode[rec.Outcode] = rec
		r.distances[rec.Outcode] = round2(HaversineMiles(home, Coordinates{
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		}))
	}

	for _, area := range areas {
		r.areasByOutcode[area.Outcode] = append(r.areasByOutcode[area.Outcode], area)
	}

	return r
}

// Home returns the resolver's home-base reference point.
func (r *Resolver) Home() Coordinates {
	return r.home
}

// Lookup returns the record for a bare outcode or full postcode.
func (r *Resolver) Lookup(outcodeOrPostcode string) (Record, bool) {
	outcode, ok := ExtractOutcode(outcodeOrPostcode)
	if !ok {
		return Record{}, false
	}
	rec, ok := r.byOutcode[outcode]
	return rec, ok
}

// AreasForOutcode returns the served localities for an outcode or full
// postcode, in declaration order. Unknown outcodes yield an empty list.
func (r *Resolver) AreasForOutcode(outcodeOrPostcode string) []Area {
	outcode, ok := ExtractOutcode(outcodeOrPostcode)
	if !ok {
		return []Area{}
	}

	areas := r.areasByOutcode[outcode]
	out := make([]Area, len(areas))
	copy(out, areas)
	return out
}

// DistanceFromOutcode returns the precomputed great-circle distance in miles
// from the home base to the outcode's reference point, rounded to 2 decimals.
func (r *Resolver) DistanceFromOutcode(outcodeOrPostcode string) (float64, bool) {
	outcode, ok := ExtractOutcode(outcodeOrPostcode)
	if !ok {
		return 0, false
	}
	miles, ok := r.distances[outcode]
	return miles, ok
}

// DescribeOutcode returns a short human description of an outcode's coverage.
func (r *Resolver) DescribeOutcode(outcodeOrPostcode string) (string, bool) {
	rec, ok := r.Lookup(outcodeOrPostcode)
	if !ok {
		return "", false
	}
	if len(rec.Areas) == 0 {
		return rec.Label, true
	}
	return rec.Label + " covering " + strings.Join(rec.Areas, ", "), true
}

// MatchOutcodes performs a free-text search across outcode codes, labels and
// locality names. An empty query returns the nearest-to-home outcodes. Results
// are capped at limit (DefaultMatchLimit when limit <= 0).
func (r *Resolver) MatchOutcodes(query string, limit int) []Match {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	needle := strings.ToLower(strings.TrimSpace(query))

	type ranked struct {
		match Match
		index int
	}

	var results []ranked
	for _, rec := range r.records {
		m := Match{Record: rec, DistanceMiles: r.distances[rec.Outcode]}

		if needle == "" {
			results = append(results, ranked{match: m})
			continue
		}

		best := -1
		for _, hay := range r.haystack(rec) {
			if idx := strings.Index(hay, needle); idx >= 0 && (best == -1 || idx < best) {
				best = idx
			}
		}
		if best >= 0 {
			results = append(results, ranked{match: m, index: best})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.index != b.index {
			return a.index < b.index
		}
		if a.match.Priority != b.match.Priority {
			return a.match.Priority < b.match.Priority
		}
		if a.match.DistanceMiles != b.match.DistanceMiles {
			return a.match.DistanceMiles < b.match.DistanceMiles
		}
		return a.match.Outcode < b.match.Outcode
	})

	if len(results) > limit {
		results = results[:limit]
	}

	matches := make([]Match, len(results))
	for i, res := range results {
		matches[i] = res.match
	}
	return matches
}

func (r *Resolver) haystack(rec Record) []string {
	hay := make([]string, 0, len(rec.Areas)+2)
	hay = append(hay, strings.ToLower(rec.Outcode), strings.ToLower(rec.Label))
	for _, area := range rec.Areas {
		hay = append(hay, strings.ToLower(area))
	}
	return hay
}

// HaversineMiles returns the great-circle distance between two points.
func HaversineMiles(from, to Coordinates) float64 {
	latDelta := toRadians(to.Latitude - from.Latitude)
	lonDelta := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(latDelta/2)*math.Sin(latDelta/2) +
		math.Cos(toRadians(from.Latitude))*math.Cos(toRadians(to.Latitude))*
			math.Sin(lonDelta/2)*math.Sin(lonDelta/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
