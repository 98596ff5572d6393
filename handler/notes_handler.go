package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/export"
	"main/middleware"
	"main/usecase"
	"main/utils"
)

// ListNotesHandler runs the note query: ?q= search text, ?favorites=true,
// ?category= (or "all"). The response carries the rendered view, including
// highlight markup and the empty state when nothing matched.
func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	var query dto.NoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "Invalid query parameters")
		return
	}

	opts := usecase.QueryOptions{
		Search:        query.Search,
		FavoritesOnly: query.FavoritesOnly,
		Category:      query.Category,
	}

	utils.Success(c, notesService.ListNotes(opts))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var payload dto.NotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	id, err := notesService.CreateNote(payload)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	middleware.TrackNoteOperation("create")
	utils.Success(c, gin.H{
		"message": "Note created successfully",
		"noteID":  id,
	})
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid note id")
		return
	}

	var payload dto.NotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := notesService.UpdateNote(id, payload); err != nil {
		if err == usecase.ErrNoteNotFound {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	middleware.TrackNoteOperation("update")
	utils.Success(c, gin.H{"message": "Note updated successfully"})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid note id")
		return
	}

	notesService.DeleteNote(id)

	middleware.TrackNoteOperation("delete")
	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}

func ToggleFavoriteHandler(c *gin.Context, notesService *usecase.NotesService) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid note id")
		return
	}

	if !notesService.ToggleFavorite(id) {
		utils.NotFound(c, "note not found")
		return
	}

	middleware.TrackNoteOperation("favorite")
	utils.Success(c, gin.H{"message": "Note favorite status toggled successfully"})
}

// ExportNoteHandler renders a note to PDF, records it in the download log
// and streams the bytes back as an attachment.
func ExportNoteHandler(c *gin.Context, notesService *usecase.NotesService, exporter *export.Exporter) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid note id")
		return
	}

	note, ok := notesService.GetNote(id)
	if !ok {
		utils.NotFound(c, "note not found")
		return
	}

	start := time.Now()
	fileName, data, err := exporter.Export(note)
	if err != nil {
		if err == export.ErrExportInProgress {
			utils.Conflict(c, err.Error())
			return
		}
		middleware.TrackError("export")
		utils.InternalError(c, "There was an error generating the PDF. Please try again.")
		return
	}

	middleware.ExportDuration.Observe(time.Since(start).Seconds())
	middleware.TrackNoteOperation("export")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
