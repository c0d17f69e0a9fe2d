package systm

import (
	"sort"
	"strings"
)

// A workout trains an energy system "with focus" when its rating for that
// system is at least 4 on the 0-5 scale: only the top two severity bands
// count. Pinned to match the vendor UI; not configurable.
const fourDPFocusThreshold = 4

// levelOrder is the ordinal used when sorting by level. Unrecognized or
// missing levels order before all recognized ones in ascending order.
var levelOrder = map[string]int{
	"basic":        1,
	"intermediate": 2,
	"advanced":     3,
}

// LibraryFilter narrows and orders a library query. Every empty/nil field
// imposes no constraint; the supplied predicates combine with AND semantics.
// Duration and TSS bounds are inclusive; durations are caller-facing minutes,
// converted to seconds before comparing against item durations.
type LibraryFilter struct {
	Sport       string
	Channel     string
	Category    string
	Intensity   string
	MinDuration *int // minutes
	MaxDuration *int // minutes
	MinTSS      *int
	MaxTSS      *int
	Search      string

	// FourDPFocus selects workouts whose rating for the given energy system
	// (NM, AC, MAP, FTP) is >= 4. Cycling search only.
	FourDPFocus string

	SortBy        string // name (default), duration, tss; level on the generic path
	SortDirection string // asc (default) or desc
	Limit         int    // 0 means no limit
}

// queryMode selects between the generic library query and the cycling
// specialized search. The cycling path matches the channel by substring
// (more permissive on purpose) and honors the cycling-only filters.
type queryMode int

const (
	modeLibrary queryMode = iota
	modeCycling
)

// queryLibrary runs the filter -> sort -> limit pipeline over the normalized
// catalog. It never fails; an empty result is a valid outcome. The limit is a
// result window applied strictly after sorting, so the sort always sees the
// full filtered set.
func queryLibrary(content []LibraryItem, filter *LibraryFilter, mode queryMode) []LibraryItem {
	if filter == nil {
		return content
	}

	filtered := make([]LibraryItem, 0, len(content))
	for i := range content {
		if filterMatches(&content[i], filter, mode) {
			filtered = append(filtered, content[i])
		}
	}

	sortLibrary(filtered, filter, mode)

	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}
	return filtered
}

func filterMatches(item *LibraryItem, f *LibraryFilter, mode queryMode) bool {
	if f.Sport != "" && !strings.EqualFold(item.Sport, f.Sport) {
		return false
	}

	if f.Channel != "" {
		if mode == modeCycling {
			if !strings.Contains(strings.ToLower(item.Channel), strings.ToLower(f.Channel)) {
				return false
			}
		} else if !strings.EqualFold(item.Channel, f.Channel) {
			return false
		}
	}

	if mode == modeCycling {
		if f.Category != "" && !strings.EqualFold(item.Category, f.Category) {
			return false
		}
		if f.Intensity != "" && !strings.EqualFold(item.Intensity, f.Intensity) {
			return false
		}
		if f.FourDPFocus != "" && focusRating(&item.Metrics.Ratings, f.FourDPFocus) < fourDPFocusThreshold {
			return false
		}
	}

	if f.MinDuration != nil && item.Duration < *f.MinDuration*60 {
		return false
	}
	if f.MaxDuration != nil && item.Duration > *f.MaxDuration*60 {
		return false
	}

	// Items without TSS data are normalized to 0, so a MinTSS > 0 filter
	// excludes them. Documented policy, not an omission.
	if f.MinTSS != nil && item.Metrics.TSS < *f.MinTSS {
		return false
	}
	if f.MaxTSS != nil && item.Metrics.TSS > *f.MaxTSS {
		return false
	}

	if f.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Search)) {
		return false
	}

	return true
}

func focusRating(r *Ratings, focus string) int {
	switch strings.ToUpper(focus) {
	case "NM":
		return r.NM
	case "AC":
		return r.AC
	case "MAP":
		return r.MAP
	case "FTP":
		return r.FTP
	default:
		return 0
	}
}

// sortLibrary orders items by exactly one key, stably, with no secondary
// tie break: equal-key items keep their relative order from the filter stage.
// Direction is a single sign multiplier, not a second comparator branch.
func sortLibrary(items []LibraryItem, f *LibraryFilter, mode queryMode) {
	sortBy := strings.ToLower(f.SortBy)
	if sortBy == "" {
		sortBy = "name"
	}

	sign := 1
	if strings.EqualFold(f.SortDirection, "desc") {
		sign = -1
	}

	var compare func(a, b *LibraryItem) int
	switch sortBy {
	case "duration":
		compare = func(a, b *LibraryItem) int { return a.Duration - b.Duration }
	case "tss":
		compare = func(a, b *LibraryItem) int { return a.Metrics.TSS - b.Metrics.TSS }
	case "level":
		// level ordering is only offered on the generic library path
		if mode != modeLibrary {
			return
		}
		compare = func(a, b *LibraryItem) int {
			return levelOrder[strings.ToLower(a.Level)] - levelOrder[strings.ToLower(b.Level)]
		}
	case "name":
		compare = func(a, b *LibraryItem) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		return sign*compare(&items[i], &items[j]) < 0
	})
}
