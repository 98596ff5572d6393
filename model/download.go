package model

type DownloadEntry struct {
	ID       int    `json:"id"`
	FileName string `json:"fileName"`
	Size     string `json:"size"`
	TimeAgo  string `json:"timeAgo"`
}

// SeedDownloadHistory returns the download log the app ships with. Used when
// the stored history is absent or unreadable; an explicitly cleared log stays
// empty.
func SeedDownloadHistory() []DownloadEntry {
	return []DownloadEntry{
		{ID: 1, FileName: "All_Notes (3).pdf", Size: "5.6 KB", TimeAgo: "19 minutes ago"},
		{ID: 2, FileName: "All_Notes (2).pdf", Size: "5.6 KB", TimeAgo: "47 minutes ago"},
		{ID: 3, FileName: "All_Notes (1).pdf", Size: "5.6 KB", TimeAgo: "1 hour ago"},
		{ID: 4, FileName: "All_Notes.pdf", Size: "5.6 KB", TimeAgo: "1 hour ago"},
	}
}
