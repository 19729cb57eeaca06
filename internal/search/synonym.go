package search

// Synonyms maps normalized aliases to the canonical catalog names they stand for.
var Synonyms = map[string][]string{
	"golang":              {"go"},
	"postgres":            {"postgresql"},
	"psql":                {"postgresql"},
	"k8s":                 {"kubernetes"},
	"js":                  {"javascript"},
	"ts":                  {"typescript"},
	"node":                {"node.js"},
	"nodejs":              {"node.js"},
	"reactjs":             {"react"},
	"amazon web services": {"aws"},
	"py":                  {"python"},
}

func GetSynonyms(query string) []string {
	if query == "" {
		return []string{}
	}
	if v, ok := Synonyms[query]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}
