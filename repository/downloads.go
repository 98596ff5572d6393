package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"main/model"
	"main/storage"
)

var fileNameStem = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DownloadsRepo owns the export download log: newest entry first, clearable
// in bulk, persisted whole after every change.
type DownloadsRepo struct {
	store storage.KV

	mu      sync.RWMutex
	entries []model.DownloadEntry
}

func NewDownloadsRepo(store storage.KV) *DownloadsRepo {
	return &DownloadsRepo{store: store}
}

// Load reads the stored log. An absent or unreadable snapshot falls back to
// the built-in seed list; a stored empty array stays empty.
func (r *DownloadsRepo) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.store.Get(ctx, storage.DownloadHistoryKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			log.Printf("Failed to read download history, using seed list: %v", err)
		}
		r.entries = model.SeedDownloadHistory()
		r.persist()
		return
	}

	var entries []model.DownloadEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Stored download history is malformed, using seed list: %v", err)
		r.entries = model.SeedDownloadHistory()
		r.persist()
		return
	}
	if entries == nil {
		entries = []model.DownloadEntry{}
	}
	r.entries = entries
}

// Add assigns the next id and prepends the entry to the log.
func (r *DownloadsRepo) Add(entry model.DownloadEntry) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	max := 0
	for _, e := range r.entries {
		if e.ID > max {
			max = e.ID
		}
	}
	entry.ID = max + 1
	r.entries = append([]model.DownloadEntry{entry}, r.entries...)
	r.persist()
	return entry.ID
}

// Clear empties the log. The empty state is persisted so it survives a
// restart instead of reverting to the seed list.
func (r *DownloadsRepo) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = []model.DownloadEntry{}
	r.persist()
}

func (r *DownloadsRepo) All() []model.DownloadEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.DownloadEntry(nil), r.entries...)
}

func (r *DownloadsRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// NextFileName derives a PDF filename from a note title: every character
// outside [a-zA-Z0-9] becomes "_", the result is lowercased and ".pdf" is
// appended. A name already present in the log gets a " (N)" suffix before
// the extension, N counting up until the name is unique.
func (r *DownloadsRepo) NextFileName(title string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stem := strings.ToLower(fileNameStem.ReplaceAllString(title, "_"))
	name := stem + ".pdf"
	for counter := 1; r.hasFileName(name); counter++ {
		name = fmt.Sprintf("%s (%d).pdf", stem, counter)
	}
	return name
}

// hasFileName reports whether a log entry already uses name. Callers must
// hold at least the read lock.
func (r *DownloadsRepo) hasFileName(name string) bool {
	for _, e := range r.entries {
		if e.FileName == name {
			return true
		}
	}
	return false
}

func (r *DownloadsRepo) persist() {
	data, err := json.Marshal(r.entries)
	if err != nil {
		log.Printf("Failed to marshal download history: %v", err)
		return
	}
	if err := r.store.Set(context.Background(), storage.DownloadHistoryKey, data); err != nil {
		log.Printf("Failed to persist download history: %v", err)
	}
}
