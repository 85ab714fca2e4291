package fundview

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// DefaultCount is the default number of selected tickers.
const DefaultCount = 10

// Mode is a ticker selection mode.
type Mode string

const (
	Top    Mode = "Top"    // lowest ranks first
	Bottom Mode = "Bottom" // highest ranks first
	Random Mode = "Random" // uniformly shuffled
)

// Ranks maps a ticker to its rank, lower is better.
type Ranks map[string]float64

// SelectTickers returns at most count names among the ones present in ranks,
// ordered according to mode. An unknown mode selects nothing.
//
// Equal ranks keep the order of names. Random mode uses the default random source.
func SelectTickers(mode Mode, names []string, ranks Ranks, count int) []string {
	return SelectTickersRand(nil, mode, names, ranks, count)
}

// SelectTickersRand is like SelectTickers but draws the Random mode order from r.
// A nil r uses the default random source.
func SelectTickersRand(r *rand.Rand, mode Mode, names []string, ranks Ranks, count int) []string {
	ranked := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := ranks[name]; ok && !seen[name] {
			seen[name] = true
			ranked = append(ranked, name)
		}
	}

	switch mode {
	case Top:
		slices.SortStableFunc(ranked, func(a, b string) int { return cmp.Compare(ranks[a], ranks[b]) })
	case Bottom:
		slices.SortStableFunc(ranked, func(a, b string) int { return cmp.Compare(ranks[b], ranks[a]) })
	case Random:
		shuffle := rand.Shuffle
		if r != nil {
			shuffle = r.Shuffle
		}
		shuffle(len(ranked), func(i, j int) { ranked[i], ranked[j] = ranked[j], ranked[i] })
	default:
		return []string{}
	}

	return ranked[:max(0, min(count, len(ranked)))]
}
