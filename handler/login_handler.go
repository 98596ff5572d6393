package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"main/config"
	"main/dto"
	"main/model"
	"main/services"
	"main/utils"
)

// LoginHandler is a mock: any non-empty email and password pair is accepted.
// It mirrors the original login screen, including its artificial delay, and
// issues a real token so the protected routes have something to check.
func LoginHandler(c *gin.Context, cfg config.AppConfig, sessionCache *services.SessionCache) {
	var loginReq dto.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.BadRequest(c, "Please enter email and password.")
		return
	}

	if cfg.LoginDelay > 0 {
		time.Sleep(cfg.LoginDelay)
	}

	token, err := services.GenerateToken(loginReq.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	now := time.Now()
	session := &model.Session{
		SessionID:  uuid.New().String(),
		Email:      loginReq.Email,
		CreatedAt:  now,
		ExpiresAt:  now.Add(cfg.SessionDuration),
		DeviceInfo: utils.DescribeDevice(c.GetHeader("User-Agent")),
		IPAddress:  c.ClientIP(),
	}
	if err := sessionCache.SetSession(session); err != nil {
		// The cache is best-effort; login still succeeds without it.
		log.Printf("Failed to cache session: %v", err)
	}

	utils.Success(c, gin.H{
		"message":    "Login successful",
		"token":      token,
		"session_id": session.SessionID,
		"email":      loginReq.Email,
	})
}

// LogoutHandler drops the cached session, if any.
func LogoutHandler(c *gin.Context, sessionCache *services.SessionCache) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := sessionCache.DeleteSession(req.SessionID); err != nil {
		log.Printf("Failed to delete session: %v", err)
	}

	utils.Success(c, gin.H{"message": "Logged out"})
}
