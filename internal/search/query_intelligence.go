package search

import (
	"strings"
	"unicode"
)

const maxVariants = 10

type QueryContext struct {
	Original   string
	Normalized string
	Variants   []string
}

// NormalizeQuery lowercases and collapses whitespace. Symbols that appear in
// skill names (node.js, c#, c++) are kept; other punctuation is dropped.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '.' || r == '#' || r == '+':
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandQuery returns the normalized query followed by alias expansions and
// its compact (space-free) form, deduplicated and capped.
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	compact := strings.ReplaceAll(normalized, " ", "")
	if compact != normalized {
		add(compact)
		for _, syn := range GetSynonyms(compact) {
			add(syn)
		}
	}

	// "node.js" and "nodejs" should find each other.
	if undotted := strings.ReplaceAll(compact, ".", ""); undotted != compact {
		add(undotted)
		for _, syn := range GetSynonyms(undotted) {
			add(syn)
		}
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

func ProcessQuery(input string) QueryContext {
	ctx := QueryContext{Original: input}
	ctx.Normalized = NormalizeQuery(input)
	if ctx.Normalized == "" {
		ctx.Variants = []string{}
		return ctx
	}
	ctx.Variants = ExpandQuery(ctx.Normalized)
	return ctx
}
