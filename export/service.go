package export

import (
	"errors"
	"fmt"
	"sync"

	"main/model"
	"main/repository"
)

var ErrExportInProgress = errors.New("export already in progress for this note")

// Exporter produces PDF downloads and records them in the download log.
type Exporter struct {
	Downloads *repository.DownloadsRepo

	mu       sync.Mutex
	inFlight map[int]bool
}

func NewExporter(downloads *repository.DownloadsRepo) *Exporter {
	return &Exporter{
		Downloads: downloads,
		inFlight:  make(map[int]bool),
	}
}

// Export renders the note to PDF, picks a collision-free filename and
// prepends a log entry. A second export of the same note is rejected while
// one is running; the guard is released on success and failure alike.
func (e *Exporter) Export(note model.Note) (string, []byte, error) {
	if err := e.acquire(note.ID); err != nil {
		return "", nil, err
	}
	defer e.release(note.ID)

	data, err := BuildPDF(note)
	if err != nil {
		return "", nil, err
	}

	fileName := e.Downloads.NextFileName(note.Title)
	e.Downloads.Add(model.DownloadEntry{
		FileName: fileName,
		Size:     fmt.Sprintf("%.1f KB", float64(len(data))/1024),
		TimeAgo:  "Just now",
	})

	return fileName, data, nil
}

func (e *Exporter) acquire(noteID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inFlight[noteID] {
		return ErrExportInProgress
	}
	e.inFlight[noteID] = true
	return nil
}

func (e *Exporter) release(noteID int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.inFlight, noteID)
}
