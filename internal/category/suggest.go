package category

import (
	"strings"

	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/models"
)

// SuggestionEngine ranks the tree's non-root categories against a partial
// text query. Ranking is deterministic: for a fixed tree and query the same
// ordered list comes back every time.
type SuggestionEngine struct {
	tree *Tree
}

// Suggestions is the ranked result of a query.
type Suggestions struct {
	// Categories holds at most MaxSuggestions entries, best first.
	Categories []models.Category
	// CreateNew carries the query text when nothing matched and the caller
	// should offer creating a category with that name. Empty otherwise.
	CreateNew string
}

// NewSuggestionEngine creates an engine over the given tree.
func NewSuggestionEngine(tree *Tree) *SuggestionEngine {
	return &SuggestionEngine{tree: tree}
}

// Suggest ranks categories against query in three tiers: exact name match,
// then prefix match, then substring match, each tier alphabetized
// case-insensitively. An empty query returns all categories alphabetically.
func (e *SuggestionEngine) Suggest(query string) Suggestions {
	candidates := e.tree.NonRoot()
	term := strings.ToLower(strings.TrimSpace(query))

	if term == "" {
		return Suggestions{Categories: cap10(candidates)}
	}

	var exact, prefix, contains []models.Category
	for _, c := range candidates {
		name := strings.ToLower(c.Name)
		switch {
		case name == term:
			exact = append(exact, c)
		case strings.HasPrefix(name, term):
			prefix = append(prefix, c)
		case strings.Contains(name, term):
			contains = append(contains, c)
		}
	}

	// Candidates arrive alphabetized, so each tier is already sorted.
	ranked := append(append(exact, prefix...), contains...)
	if len(ranked) == 0 {
		return Suggestions{CreateNew: strings.TrimSpace(query)}
	}
	return Suggestions{Categories: cap10(ranked)}
}

func cap10(cats []models.Category) []models.Category {
	if len(cats) > constants.MaxSuggestions {
		cats = cats[:constants.MaxSuggestions]
	}
	return cats
}
