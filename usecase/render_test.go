package usecase

import (
	"strings"
	"testing"
	"time"

	"main/model"
)

func TestBuildNoteListHighlightsMatches(t *testing.T) {
	at := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	notes := []model.Note{
		testNote(1, "Physics Notes", "Newton wrote about physics", "science", false, nil, at),
	}
	opts := QueryOptions{Search: "physics"}

	view := BuildNoteList(QueryNotes(notes, opts), opts)

	if len(view.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(view.Notes))
	}
	if view.Notes[0].Title != "<mark>Physics</mark> Notes" {
		t.Errorf("title highlight wrong: %q", view.Notes[0].Title)
	}
	if !strings.Contains(view.Notes[0].Content, "<mark>physics</mark>") {
		t.Errorf("content highlight wrong: %q", view.Notes[0].Content)
	}
}

func TestBuildNoteListNoHighlightWithoutSearch(t *testing.T) {
	at := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	notes := []model.Note{
		testNote(1, "Plain", "content", "personal", false, nil, at),
	}

	view := BuildNoteList(notes, QueryOptions{})

	if strings.Contains(view.Notes[0].Title, "<mark>") {
		t.Errorf("unexpected highlight in %q", view.Notes[0].Title)
	}
}

func TestBuildNoteListCategoryLabel(t *testing.T) {
	at := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	notes := []model.Note{
		testNote(1, "T", "c", "literature", false, nil, at),
	}

	view := BuildNoteList(notes, QueryOptions{})

	if view.Notes[0].CategoryLabel != "Literature" {
		t.Errorf("expected label %q, got %q", "Literature", view.Notes[0].CategoryLabel)
	}
}

func TestBuildNoteListEmptyStates(t *testing.T) {
	tests := []struct {
		name          string
		opts          QueryOptions
		expectedTitle string
	}{
		{
			name:          "Empty Collection No Filters",
			opts:          QueryOptions{},
			expectedTitle: "No notes yet",
		},
		{
			name:          "Search Active",
			opts:          QueryOptions{Search: "anything"},
			expectedTitle: "No matching notes",
		},
		{
			name:          "Favorites Filter Active",
			opts:          QueryOptions{FavoritesOnly: true},
			expectedTitle: "No matching notes",
		},
		{
			name:          "Category Filter Active",
			opts:          QueryOptions{Category: "math"},
			expectedTitle: "No matching notes",
		},
		{
			name:          "Category All Is Not A Filter",
			opts:          QueryOptions{Category: CategoryAll},
			expectedTitle: "No notes yet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildNoteList(nil, tt.opts)

			if view.Count != 0 {
				t.Errorf("expected count 0, got %d", view.Count)
			}
			if view.Empty == nil {
				t.Fatal("expected an empty state")
			}
			if view.Empty.Title != tt.expectedTitle {
				t.Errorf("expected empty state %q, got %q", tt.expectedTitle, view.Empty.Title)
			}
		})
	}
}

func TestBuildNoteListNoEmptyStateWithResults(t *testing.T) {
	at := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	notes := []model.Note{
		testNote(1, "T", "c", "personal", false, nil, at),
	}

	view := BuildNoteList(notes, QueryOptions{})

	if view.Empty != nil {
		t.Errorf("unexpected empty state: %+v", view.Empty)
	}
}

func TestHighlightEscapesRegexMetacharacters(t *testing.T) {
	got := highlight("cost is $5 (roughly)", "$5 (roughly)")
	want := "cost is <mark>$5 (roughly)</mark>"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
