package search

import (
	"sort"
	"strings"
)

const (
	scoreExact    = 3
	scorePrefix   = 2
	scoreContains = 1
)

// Candidate is anything that can be ranked by name against a query.
type Candidate struct {
	OriginalIndex int
	Name          string
	Category      string
}

type Scored struct {
	Candidate
	Relevance int
}

// ComputeRelevance scores a name against query variants: exact beats prefix
// beats substring. A category hit counts as a substring hit.
func ComputeRelevance(c Candidate, queryVariants []string) int {
	name := NormalizeQuery(c.Name)
	category := NormalizeQuery(c.Category)
	undotted := strings.ReplaceAll(strings.ReplaceAll(name, " ", ""), ".", "")

	best := 0
	for _, v := range queryVariants {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "" {
			continue
		}
		var s int
		switch {
		case name == v || undotted == v:
			s = scoreExact
		case strings.HasPrefix(name, v):
			s = scorePrefix
		case strings.Contains(name, v) || (category != "" && strings.Contains(category, v)):
			s = scoreContains
		}
		if s > best {
			best = s
		}
		if best == scoreExact {
			break
		}
	}
	return best
}

// Rank drops candidates with no relevance and orders the rest by relevance,
// then name. Ties keep input order.
func Rank(items []Candidate, query string) []Scored {
	qc := ProcessQuery(query)
	out := make([]Scored, 0, len(items))
	if len(qc.Variants) == 0 {
		return out
	}

	for _, it := range items {
		if r := ComputeRelevance(it, qc.Variants); r > 0 {
			out = append(out, Scored{Candidate: it, Relevance: r})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Relevance != out[j].Relevance {
			return out[i].Relevance > out[j].Relevance
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
