package usecase

import (
	"sort"
	"strings"

	"main/model"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// QueryOptions are the filter parameters for a note query.
type QueryOptions struct {
	Search        string
	FavoritesOnly bool
	Category      string
}

// Active reports whether any filter would reject a note.
func (o QueryOptions) Active() bool {
	return o.Search != "" || o.FavoritesOnly || (o.Category != "" && o.Category != CategoryAll)
}

// QueryNotes filters and sorts a note collection. It is a pure function: the
// input slice is never mutated and the result is a fresh slice.
//
// A note survives when its search corpus contains the search text (empty
// text matches everything), it is a favorite if FavoritesOnly is set, and
// its category matches unless the filter is "all". Survivors are ordered by
// their sort key, most recent first; ties keep their prior relative order.
func QueryNotes(notes []model.Note, opts QueryOptions) []model.Note {
	search := strings.ToLower(opts.Search)

	result := make([]model.Note, 0, len(notes))
	for _, note := range notes {
		if search != "" && !strings.Contains(searchCorpus(note), search) {
			continue
		}
		if opts.FavoritesOnly && !note.IsFavorite {
			continue
		}
		if opts.Category != "" && opts.Category != CategoryAll && note.Category != opts.Category {
			continue
		}
		result = append(result, note)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortKey().After(result[j].SortKey())
	})

	return result
}

// searchCorpus is the lowercased text a note is matched against: title,
// content and tags joined with spaces. Content keeps its markup; tag names
// inside the markup are matchable on purpose, as in the original app.
func searchCorpus(note model.Note) string {
	parts := []string{
		strings.ToLower(note.Title),
		strings.ToLower(note.Content),
		strings.ToLower(strings.Join(note.Tags, " ")),
	}
	return strings.Join(parts, " ")
}
