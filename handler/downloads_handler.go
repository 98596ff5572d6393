package handler

import (
	"github.com/gin-gonic/gin"

	"main/repository"
	"main/utils"
)

func GetDownloadHistoryHandler(c *gin.Context, downloads *repository.DownloadsRepo) {
	utils.Success(c, gin.H{
		"downloads": downloads.All(),
	})
}

func ClearDownloadHistoryHandler(c *gin.Context, downloads *repository.DownloadsRepo) {
	downloads.Clear()
	utils.Success(c, gin.H{"message": "Download history cleared"})
}
