package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/catalog"
	"github.com/SubhashKumar14/LearnPath/internal/middleware"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

type RoadmapHandler struct {
	catalog *catalog.Service
	log     *zap.Logger
}

func NewRoadmapHandler(svc *catalog.Service, log *zap.Logger) *RoadmapHandler {
	return &RoadmapHandler{catalog: svc, log: log}
}

// List is public: roadmap definitions carry no per-user data.
func (h *RoadmapHandler) List(c *gin.Context) {
	roadmaps, err := h.catalog.List()
	if err != nil {
		h.log.Error("failed to list roadmaps", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list roadmaps"})
		return
	}
	c.JSON(http.StatusOK, roadmaps)
}

func (h *RoadmapHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid roadmap id"})
		return
	}

	roadmap, err := h.catalog.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "roadmap not found"})
			return
		}
		h.log.Error("failed to load roadmap", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load roadmap"})
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

type createRoadmapRequest struct {
	Title      string                `json:"title" binding:"required"`
	Difficulty string                `json:"difficulty"`
	Duration   string                `json:"duration"`
	Modules    []catalog.ModuleInput `json:"modules"`
}

// Create is admin-only; the router stacks the admin gate in front of it.
// The author recorded on the roadmap comes from the session.
func (h *RoadmapHandler) Create(c *gin.Context) {
	var req createRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	roadmap, err := h.catalog.Create(userID, req.Title, req.Difficulty, req.Duration, req.Modules)
	if err != nil {
		h.log.Error("failed to create roadmap", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create roadmap"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Roadmap created successfully",
		"roadmap": roadmap,
	})
}
