package console

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MyFarm_Go/internal/domain"
)

// matcher resolves a normalized token against exact aliases first, then a unique
// prefix of a candidate name, then the closest name within an edit budget.
type matcher[T comparable] struct {
	exact map[string]T
	names map[string]T
}

func (m matcher[T]) match(token string) (T, bool) {
	var zero T
	if v, ok := m.exact[token]; ok {
		return v, true
	}
	if len(token) < minFuzzyLen {
		return zero, false
	}

	if v, ok := m.uniqueBy(func(name string) (int, bool) {
		return 0, strings.HasPrefix(name, token)
	}); ok {
		return v, true
	}

	return m.uniqueBy(func(name string) (int, bool) {
		dist := levenshtein.ComputeDistance(token, name)
		return dist, dist <= levenshteinLimit(len(name))
	})
}

// uniqueBy scores every candidate name and returns the value of the best one.
// A tie between names that map to different values is no match.
func (m matcher[T]) uniqueBy(score func(name string) (int, bool)) (T, bool) {
	var zero T
	type scored struct {
		name string
		dist int
	}
	var results []scored
	for name := range m.names {
		if dist, ok := score(name); ok {
			results = append(results, scored{name: name, dist: dist})
		}
	}
	if len(results) == 0 {
		return zero, false
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})

	best := m.names[results[0].name]
	for _, r := range results[1:] {
		if r.dist != results[0].dist {
			break
		}
		if m.names[r.name] != best {
			return zero, false
		}
	}
	return best, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// normalize lowercases the token and collapses runs of separators to one space
func normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(raw))), " ")
}

type resolution struct {
	verb domain.Verb
	crop domain.CropKind
}

// Resolver turns typed tokens into verbs and crops. Menu letters and full names
// match exactly; longer tokens also match by prefix or small typos. Successful
// resolutions are memoized.
type Resolver struct {
	verbs matcher[domain.Verb]
	crops matcher[domain.CropKind]
	cache *expirable.LRU[string, resolution]
}

// NewResolver builds a resolver over every verb and every catalog crop
func NewResolver() *Resolver {
	verbs := matcher[domain.Verb]{exact: map[string]domain.Verb{}, names: map[string]domain.Verb{}}
	for _, v := range domain.AllVerbs {
		verbs.exact[string(v)] = v
		verbs.names[string(v)] = v
	}
	for alias, name := range verbLetters {
		verbs.exact[alias] = domain.Verb(name)
	}
	for alias, name := range verbSynonyms {
		verbs.exact[alias] = domain.Verb(name)
		verbs.names[alias] = domain.Verb(name)
	}

	crops := matcher[domain.CropKind]{exact: map[string]domain.CropKind{}, names: map[string]domain.CropKind{}}
	for _, spec := range domain.CropCatalog() {
		name := strings.ToLower(spec.Name)
		crops.exact[name] = spec.Kind
		crops.names[name] = spec.Kind
	}
	for alias, name := range cropLetters {
		crops.exact[alias] = crops.names[name]
	}

	return &Resolver{
		verbs: verbs,
		crops: crops,
		cache: expirable.NewLRU[string, resolution](ResolverCacheSize, nil, ResolverCacheTTL),
	}
}

// ResolveVerb maps input such as "p", "plow", or "plw" to a verb
func (r *Resolver) ResolveVerb(raw string) (domain.Verb, error) {
	token := normalize(raw)
	key := "verb:" + token
	if hit, ok := r.cache.Get(key); ok {
		return hit.verb, nil
	}
	v, ok := r.verbs.match(token)
	if !ok {
		return "", domain.ErrUnknownVerb
	}
	r.cache.Add(key, resolution{verb: v})
	return v, nil
}

// ResolveCrop maps input such as "t", "turnip", or "sunflwr" to a crop kind
func (r *Resolver) ResolveCrop(raw string) (domain.CropKind, error) {
	token := normalize(raw)
	key := "crop:" + token
	if hit, ok := r.cache.Get(key); ok {
		return hit.crop, nil
	}
	k, ok := r.crops.match(token)
	if !ok {
		return 0, domain.ErrUnknownCrop
	}
	r.cache.Add(key, resolution{crop: k})
	return k, nil
}
