package usecase

import (
	"main/dto"
	"main/model"
	"main/repository"
)

// NotesService wires the repositories to the handlers.
type NotesService struct {
	Notes     *repository.NotesRepo
	Downloads *repository.DownloadsRepo
}

// ListNotes runs a query over the collection and projects the result.
func (svc *NotesService) ListNotes(opts QueryOptions) NoteListView {
	visible := QueryNotes(svc.Notes.All(), opts)
	return BuildNoteList(visible, opts)
}

// CreateNote commits a new note through an editor session and returns its id.
func (svc *NotesService) CreateNote(payload dto.NotePayload) (int, error) {
	sess := NewEditorSession(svc.Notes)
	sess.OpenCreate()
	svc.fillDraft(sess, payload)
	return sess.Commit()
}

// UpdateNote commits changes to an existing note. Returns ErrNoteNotFound
// when the id no longer exists.
func (svc *NotesService) UpdateNote(id int, payload dto.NotePayload) error {
	sess := NewEditorSession(svc.Notes)
	if err := sess.OpenEdit(id); err != nil {
		return err
	}

	// Replace the draft wholesale with the submitted form state.
	sess.Category = ""
	for range sess.Tags() {
		sess.RemoveTag(0)
	}
	svc.fillDraft(sess, payload)

	_, err := sess.Commit()
	return err
}

func (svc *NotesService) fillDraft(sess *EditorSession, payload dto.NotePayload) {
	sess.Title = payload.Title
	sess.Category = payload.Category
	sess.Content = payload.Content
	sess.IsFavorite = payload.IsFavorite
	for _, tag := range payload.Tags {
		sess.AddTag(tag)
	}
}

// DeleteNote removes a note. Unknown ids are a silent no-op, per the
// repository contract.
func (svc *NotesService) DeleteNote(id int) {
	svc.Notes.Remove(id)
}

// ToggleFavorite flips a note's favorite flag. Returns false when the id is
// unknown.
func (svc *NotesService) ToggleFavorite(id int) bool {
	return svc.Notes.ToggleFavorite(id)
}

// GetNote returns a note by id.
func (svc *NotesService) GetNote(id int) (model.Note, bool) {
	return svc.Notes.Get(id)
}

// CategoryCounts tallies notes per category across the whole collection.
func (svc *NotesService) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, note := range svc.Notes.All() {
		counts[note.Category]++
	}
	return counts
}

// TagCounts tallies notes per tag across the whole collection.
func (svc *NotesService) TagCounts() map[string]int {
	counts := make(map[string]int)
	for _, note := range svc.Notes.All() {
		for _, tag := range note.Tags {
			counts[tag]++
		}
	}
	return counts
}

// FavoriteCount counts favorite notes.
func (svc *NotesService) FavoriteCount() int {
	count := 0
	for _, note := range svc.Notes.All() {
		if note.IsFavorite {
			count++
		}
	}
	return count
}
