package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"main/model"
	"main/storage"
)

// NotesRepo is the single source of truth for notes during a run. The full
// collection lives in memory, ordered most-recent-first, and is written back
// to the store as one JSON snapshot after every mutation.
type NotesRepo struct {
	store storage.KV

	mu    sync.RWMutex
	notes []model.Note
}

func NewNotesRepo(store storage.KV) *NotesRepo {
	return &NotesRepo{store: store}
}

// Load reads the stored snapshot. An absent key or unreadable payload starts
// the collection empty rather than failing startup.
func (r *NotesRepo) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = nil

	data, err := r.store.Get(ctx, storage.NotesKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			log.Printf("Failed to read notes snapshot, starting empty: %v", err)
		}
		return
	}

	var notes []model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		log.Printf("Stored notes snapshot is malformed, starting empty: %v", err)
		return
	}
	r.notes = notes
}

// Add assigns the next id (max existing + 1, 1 when empty), inserts the note
// at the front of the collection and returns the assigned id.
func (r *NotesRepo) Add(note model.Note) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = r.nextID()
	r.notes = append([]model.Note{note}, r.notes...)
	r.persist()
	return note.ID
}

// Update replaces the note with the given id in place. Unknown ids are a
// silent no-op.
func (r *NotesRepo) Update(id int, note model.Note) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID == id {
			note.ID = id
			r.notes[i] = note
			r.persist()
			return
		}
	}
}

// Remove deletes the note with the given id. Unknown ids are a silent no-op.
func (r *NotesRepo) Remove(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			r.persist()
			return
		}
	}
}

// Get returns the note with the given id.
func (r *NotesRepo) Get(id int) (model.Note, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, note := range r.notes {
		if note.ID == id {
			return note, true
		}
	}
	return model.Note{}, false
}

// ToggleFavorite flips the favorite flag. Returns false for unknown ids.
func (r *NotesRepo) ToggleFavorite(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes[i].IsFavorite = !r.notes[i].IsFavorite
			r.persist()
			return true
		}
	}
	return false
}

// All returns a copy of the collection in its stored order. Callers may hold
// the result across later mutations.
func (r *NotesRepo) All() []model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Note(nil), r.notes...)
}

func (r *NotesRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.notes)
}

func (r *NotesRepo) nextID() int {
	max := 0
	for _, note := range r.notes {
		if note.ID > max {
			max = note.ID
		}
	}
	return max + 1
}

// persist writes the whole collection back to the store. A failed write is
// logged and otherwise ignored; the in-memory state stays authoritative.
// Callers must hold the write lock.
func (r *NotesRepo) persist() {
	data, err := json.Marshal(r.notes)
	if err != nil {
		log.Printf("Failed to marshal notes snapshot: %v", err)
		return
	}
	if err := r.store.Set(context.Background(), storage.NotesKey, data); err != nil {
		log.Printf("Failed to persist notes snapshot: %v", err)
	}
}
