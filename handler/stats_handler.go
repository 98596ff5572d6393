package handler

import (
	"github.com/gin-gonic/gin"

	"main/repository"
	"main/usecase"
	"main/utils"
)

type StatsHandler struct {
	notesService *usecase.NotesService
	downloads    *repository.DownloadsRepo
}

func NewStatsHandler(notesService *usecase.NotesService, downloads *repository.DownloadsRepo) *StatsHandler {
	return &StatsHandler{
		notesService: notesService,
		downloads:    downloads,
	}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats := gin.H{
		"notes": gin.H{
			"total":      h.notesService.Notes.Count(),
			"favorites":  h.notesService.FavoriteCount(),
			"categories": h.notesService.CategoryCounts(),
			"tags":       h.notesService.TagCounts(),
		},
		"downloads": gin.H{
			"total": h.downloads.Count(),
		},
		"system": gin.H{
			"cpu_percent": utils.GetCPUUsage(),
		},
	}

	utils.Success(c, gin.H{"stats": stats})
}
