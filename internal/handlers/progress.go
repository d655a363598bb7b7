package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/middleware"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

type ProgressHandler struct {
	progress store.ProgressRepository
	log      *zap.Logger
}

func NewProgressHandler(progress store.ProgressRepository, log *zap.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, log: log}
}

type progressRequest struct {
	RoadmapID uint `json:"roadmapId" binding:"required"`
	TaskID    uint `json:"taskId" binding:"required"`
	Completed bool `json:"completed"`
}

// Update toggles completion of one task. The user id always comes from
// the session, so nobody can write another user's progress.
func (h *ProgressHandler) Update(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if err := h.progress.SetCompletion(userID, req.RoadmapID, req.TaskID, req.Completed); err != nil {
		h.log.Error("failed to update progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress updated successfully"})
}

// ListCompleted returns the completed task ids for the session's user on
// one roadmap.
func (h *ProgressHandler) ListCompleted(c *gin.Context) {
	roadmapID, err := strconv.ParseUint(c.Param("roadmapId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid roadmap id"})
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	taskIDs, err := h.progress.GetCompleted(userID, uint(roadmapID))
	if err != nil {
		h.log.Error("failed to load progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, taskIDs)
}
