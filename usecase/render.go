package usecase

import (
	"regexp"
	"strings"

	"main/model"
)

// NoteView is the display projection of a note: same fields the note card
// shows, with search matches wrapped in <mark> tags.
type NoteView struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Date          string   `json:"date"`
	Category      string   `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	IsFavorite    bool     `json:"isFavorite"`
}

// EmptyState describes the placeholder shown when no notes are visible.
type EmptyState struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NoteListView is the full response for the note list: the visible notes in
// render order, their count, and an empty state when there is nothing to
// show.
type NoteListView struct {
	Notes []NoteView  `json:"notes"`
	Count int         `json:"count"`
	Empty *EmptyState `json:"empty,omitempty"`
}

// BuildNoteList projects a queried subset into its view. The empty state
// distinguishes a genuinely empty collection from filters that matched
// nothing.
func BuildNoteList(visible []model.Note, opts QueryOptions) NoteListView {
	view := NoteListView{
		Notes: make([]NoteView, 0, len(visible)),
		Count: len(visible),
	}

	for _, note := range visible {
		view.Notes = append(view.Notes, NoteView{
			ID:            note.ID,
			Title:         highlight(note.Title, opts.Search),
			Date:          note.Date,
			Category:      note.Category,
			CategoryLabel: capitalizeFirst(note.Category),
			Content:       highlight(note.Content, opts.Search),
			Tags:          append([]string(nil), note.Tags...),
			IsFavorite:    note.IsFavorite,
		})
	}

	if len(visible) == 0 {
		if opts.Active() {
			view.Empty = &EmptyState{
				Title:   "No matching notes",
				Message: "Try adjusting your search or filters.",
			}
		} else {
			view.Empty = &EmptyState{
				Title:   "No notes yet",
				Message: "Create your first note to get started.",
			}
		}
	}

	return view
}

// highlight wraps every case-insensitive occurrence of search in a <mark>
// tag, keeping the original casing of the matched text.
func highlight(text, search string) string {
	if strings.TrimSpace(search) == "" {
		return text
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(search))
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, "<mark>$0</mark>")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
