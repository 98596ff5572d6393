package usecase

import (
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
)

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrTitleRequired   = errors.New("note title is required")
	ErrContentRequired = errors.New("note content is required")
	ErrEditorClosed    = errors.New("editor session is not open")
)

type editorState int

const (
	editorIdle editorState = iota
	editorCreating
	editorEditing
)

// EditorSession is the transient state behind the note form. It holds the
// draft fields and tag list while the form is open and only touches the
// repository on a successful commit.
type EditorSession struct {
	repo *repository.NotesRepo

	state  editorState
	noteID int

	Title      string
	Category   string
	Content    string
	IsFavorite bool
	tags       []string

	// createdAt of the note being edited, preserved across the commit
	createdAt time.Time
}

func NewEditorSession(repo *repository.NotesRepo) *EditorSession {
	return &EditorSession{repo: repo}
}

// OpenCreate starts a fresh draft, discarding any previous transient state.
func (s *EditorSession) OpenCreate() {
	s.reset()
	s.state = editorCreating
}

// OpenEdit pre-populates the draft from an existing note. The note may have
// been deleted by another action in the same session, in which case the
// session stays idle and ErrNoteNotFound is returned.
func (s *EditorSession) OpenEdit(noteID int) error {
	note, ok := s.repo.Get(noteID)
	if !ok {
		return ErrNoteNotFound
	}

	s.reset()
	s.state = editorEditing
	s.noteID = note.ID
	s.Title = note.Title
	s.Category = note.Category
	s.Content = note.Content
	s.IsFavorite = note.IsFavorite
	s.tags = append([]string(nil), note.Tags...)
	s.createdAt = note.CreatedAt
	return nil
}

// AddTag appends a tag to the draft. Empty input and exact duplicates are
// ignored.
func (s *EditorSession) AddTag(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	for _, tag := range s.tags {
		if tag == text {
			return
		}
	}
	s.tags = append(s.tags, text)
}

// RemoveTag drops the tag at index. Out-of-range indexes are ignored.
func (s *EditorSession) RemoveTag(index int) {
	if index < 0 || index >= len(s.tags) {
		return
	}
	s.tags = append(s.tags[:index], s.tags[index+1:]...)
}

// Tags returns a copy of the draft tag list in insertion order.
func (s *EditorSession) Tags() []string {
	return append([]string(nil), s.tags...)
}

// Commit validates the draft and writes it to the repository: a new note
// when creating, an in-place replacement when editing. On a validation
// failure nothing is written and the session stays open for correction.
// Returns the committed note's id.
func (s *EditorSession) Commit() (int, error) {
	if s.state == editorIdle {
		return 0, ErrEditorClosed
	}
	if strings.TrimSpace(s.Title) == "" {
		return 0, ErrTitleRequired
	}
	if strings.TrimSpace(s.Content) == "" {
		return 0, ErrContentRequired
	}

	category := s.Category
	if category == "" {
		category = model.DefaultCategory
	}

	now := time.Now()
	note := model.Note{
		Title:      s.Title,
		Date:       now.Format(model.DisplayDateFormat),
		Category:   category,
		Content:    s.Content,
		Tags:       append([]string(nil), s.tags...),
		IsFavorite: s.IsFavorite,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id := s.noteID
	if s.state == editorEditing {
		if !s.createdAt.IsZero() {
			note.CreatedAt = s.createdAt
		}
		s.repo.Update(id, note)
	} else {
		id = s.repo.Add(note)
	}

	s.reset()
	return id, nil
}

// Cancel discards the draft without touching the repository.
func (s *EditorSession) Cancel() {
	s.reset()
}

func (s *EditorSession) reset() {
	s.state = editorIdle
	s.noteID = 0
	s.Title = ""
	s.Category = ""
	s.Content = ""
	s.IsFavorite = false
	s.tags = nil
	s.createdAt = time.Time{}
}
