package usecase

import (
	"reflect"
	"testing"

	"main/model"
	"main/repository"
	"main/storage"
)

func setupEditorTest(t *testing.T) (*repository.NotesRepo, *EditorSession) {
	t.Helper()
	repo := repository.NewNotesRepo(storage.NewMemoryStore())
	return repo, NewEditorSession(repo)
}

func TestEditorAddTagRejectsDuplicates(t *testing.T) {
	_, sess := setupEditorTest(t)
	sess.OpenCreate()

	sess.AddTag("go")
	sess.AddTag("go")
	sess.AddTag("notes")
	sess.AddTag("")
	sess.AddTag("go")

	want := []string{"go", "notes"}
	if !reflect.DeepEqual(sess.Tags(), want) {
		t.Errorf("expected tags %v, got %v", want, sess.Tags())
	}
}

func TestEditorAddTagIsCaseSensitive(t *testing.T) {
	_, sess := setupEditorTest(t)
	sess.OpenCreate()

	sess.AddTag("Go")
	sess.AddTag("go")

	if len(sess.Tags()) != 2 {
		t.Errorf("expected 2 tags, got %v", sess.Tags())
	}
}

func TestEditorRemoveTag(t *testing.T) {
	_, sess := setupEditorTest(t)
	sess.OpenCreate()
	sess.AddTag("one")
	sess.AddTag("two")
	sess.AddTag("three")

	sess.RemoveTag(1)
	want := []string{"one", "three"}
	if !reflect.DeepEqual(sess.Tags(), want) {
		t.Errorf("expected tags %v, got %v", want, sess.Tags())
	}

	// Out-of-range indexes are ignored.
	sess.RemoveTag(-1)
	sess.RemoveTag(5)
	if !reflect.DeepEqual(sess.Tags(), want) {
		t.Errorf("expected tags unchanged, got %v", sess.Tags())
	}
}

func TestEditorCommitValidation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		content     string
		expectedErr error
	}{
		{name: "Missing Title", title: "", content: "body", expectedErr: ErrTitleRequired},
		{name: "Whitespace Title", title: "   ", content: "body", expectedErr: ErrTitleRequired},
		{name: "Missing Content", title: "Title", content: "", expectedErr: ErrContentRequired},
		{name: "Whitespace Content", title: "Title", content: "  \n ", expectedErr: ErrContentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, sess := setupEditorTest(t)
			sess.OpenCreate()
			sess.Title = tt.title
			sess.Content = tt.content

			if _, err := sess.Commit(); err != tt.expectedErr {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if repo.Count() != 0 {
				t.Error("failed commit must not write to the repository")
			}

			// The session stays open so the user can correct the form.
			sess.Title = "Fixed"
			sess.Content = "Fixed content"
			if _, err := sess.Commit(); err != nil {
				t.Errorf("commit after correction failed: %v", err)
			}
		})
	}
}

func TestEditorCommitCreates(t *testing.T) {
	repo, sess := setupEditorTest(t)
	sess.OpenCreate()
	sess.Title = "Grocery List"
	sess.Content = "<p>milk</p>"
	sess.IsFavorite = true
	sess.AddTag("errands")

	id, err := sess.Commit()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	note, ok := repo.Get(id)
	if !ok {
		t.Fatal("committed note not found")
	}
	if note.Title != "Grocery List" || note.Content != "<p>milk</p>" {
		t.Errorf("unexpected note fields: %+v", note)
	}
	if !note.IsFavorite {
		t.Error("favorite flag lost")
	}
	if note.Category != model.DefaultCategory {
		t.Errorf("expected default category, got %q", note.Category)
	}
	if !reflect.DeepEqual(note.Tags, []string{"errands"}) {
		t.Errorf("unexpected tags: %v", note.Tags)
	}
	if note.Date == "" || note.CreatedAt.IsZero() {
		t.Error("commit must stamp both display date and timestamp")
	}
}

func TestEditorCommitEditsInPlace(t *testing.T) {
	repo, sess := setupEditorTest(t)
	sess.OpenCreate()
	sess.Title = "Draft"
	sess.Content = "v1"
	id, err := sess.Commit()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	original, _ := repo.Get(id)

	if err := sess.OpenEdit(id); err != nil {
		t.Fatalf("open edit failed: %v", err)
	}
	if sess.Title != "Draft" || sess.Content != "v1" {
		t.Errorf("edit session not pre-populated: %q %q", sess.Title, sess.Content)
	}

	sess.Content = "v2"
	editedID, err := sess.Commit()
	if err != nil {
		t.Fatalf("edit commit failed: %v", err)
	}
	if editedID != id {
		t.Errorf("edit changed the id: %d -> %d", id, editedID)
	}

	note, _ := repo.Get(id)
	if note.Content != "v2" {
		t.Errorf("expected edited content, got %q", note.Content)
	}
	if !note.CreatedAt.Equal(original.CreatedAt) {
		t.Error("edit must preserve the creation timestamp")
	}
	if repo.Count() != 1 {
		t.Errorf("edit must not grow the collection, count=%d", repo.Count())
	}
}

func TestEditorOpenEditNotFound(t *testing.T) {
	_, sess := setupEditorTest(t)

	if err := sess.OpenEdit(42); err != ErrNoteNotFound {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestEditorCommitWhileIdle(t *testing.T) {
	_, sess := setupEditorTest(t)

	if _, err := sess.Commit(); err != ErrEditorClosed {
		t.Errorf("expected ErrEditorClosed, got %v", err)
	}
}

func TestEditorCancelDiscards(t *testing.T) {
	repo, sess := setupEditorTest(t)
	sess.OpenCreate()
	sess.Title = "Discarded"
	sess.Content = "never saved"
	sess.AddTag("tmp")

	sess.Cancel()

	if repo.Count() != 0 {
		t.Error("cancel must not write to the repository")
	}
	if len(sess.Tags()) != 0 {
		t.Errorf("cancel must clear transient tags, got %v", sess.Tags())
	}
	if _, err := sess.Commit(); err != ErrEditorClosed {
		t.Errorf("session should be closed after cancel, got %v", err)
	}
}
