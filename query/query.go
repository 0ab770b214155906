// Package query remembers submitted vibes and suggests them back while typing.
//
// Only the vibe text is stored, never the synthesized style: styles are cheap
// to recompute and always derived from the text.
package query

import (
	"strings"
	"sync"

	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type vibeRecord struct {
	Rank int    `json:"rank"`
	Vibe string `json:"vibe"`
}

var (
	mu              sync.Mutex
	cacher          *gache.Cache[map[string]*vibeRecord]
	suggestionCache = make(map[string][]*vibeRecord)
)

func history() *gache.Cache[map[string]*vibeRecord] {
	if cacher == nil {
		cacher = gache.New[map[string]*vibeRecord](
			&gache.Options{
				Path:       where.Vibes(),
				FileSystem: &filesystem.GacheFs{},
			},
		)
	}
	return cacher
}

// Remember records a vibe or raises its rank by weight. It does nothing when
// remembering is turned off.
func Remember(v string, weight int) error {
	if !viper.GetBool(key.VibesRemember) {
		return nil
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached, expired, err := history().Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*vibeRecord)
	}

	id := normalize(v)
	if record, ok := cached[id]; ok {
		record.Rank += weight
		record.Vibe = v
	} else {
		cached[id] = &vibeRecord{Rank: weight, Vibe: v}
	}

	clear(suggestionCache)
	return history().Set(cached)
}

// Suggest returns the best ranked vibe matching the partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered vibes fuzzy matching the partial input,
// highest rank first. The exact input itself is never suggested.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.VibesSuggestions) {
		return []string{}
	}

	id := normalize(partial)
	if id == "" {
		return []string{}
	}

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestionCache[id]
	if !ok {
		cached, expired, err := history().Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for recordID, record := range cached {
			if recordID != id && fuzzy.Match(id, recordID) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *vibeRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Vibe, b.Vibe)
		})

		suggestionCache[id] = records
	}

	return lo.Map(records, func(r *vibeRecord, _ int) string {
		return r.Vibe
	})
}

// Forget erases the whole history.
func Forget() error {
	mu.Lock()
	defer mu.Unlock()

	clear(suggestionCache)
	return history().Set(make(map[string]*vibeRecord))
}

func normalize(v string) string {
	return strings.Join(strings.Fields(strings.ToLower(v)), " ")
}
