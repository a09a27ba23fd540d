package api

import (
	"net/http"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/service"

	"github.com/gin-gonic/gin"
)

type AthleteHandler struct {
	athleteService service.AthleteService
}

func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// --- DTOs ---

type LogSessionRequest struct {
	WorkoutID string                 `json:"workoutId"`
	Name      string                 `json:"name"`
	Duration  string                 `json:"duration"`
	Kind      domain.SessionKind     `json:"kind" binding:"omitempty,oneof=strength running"`
	PhotoKey  string                 `json:"photoKey"`
	Running   *domain.RunningMetrics `json:"running"`
	Exercises []service.ExerciseSets `json:"exercises"`
}

type RequestPhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type PhotoURLResponse struct {
	URL string `json:"url"`
}

// athleteID resolves the caller's athlete document or aborts the request.
func athleteID(c *gin.Context) (string, bool) {
	id, err := getAthleteIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusForbidden, err.Error())
		return "", false
	}
	return id, true
}

// GetMyPlans godoc
// @Summary Get the published plans of the authenticated athlete
// @Tags Athlete
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Plan
// @Failure 403 {object} gin.H "Token not linked to an athlete"
// @Failure 404 {object} gin.H "Athlete not found"
// @Router /me/plans [get]
func (h *AthleteHandler) GetMyPlans(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	plans, err := h.athleteService.Plans(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "get plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// LogSession godoc
// @Summary Log a finished training session
// @Description Appends the session to the athlete's history and updates the engagement analytics.
// @Tags Athlete
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body LogSessionRequest true "Session"
// @Success 201 {object} domain.SessionLogEntry
// @Failure 400 {object} gin.H "Invalid session"
// @Failure 403 {object} gin.H "Photo belongs to another athlete"
// @Failure 404 {object} gin.H "Athlete or plan not found"
// @Router /me/sessions [post]
func (h *AthleteHandler) LogSession(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.athleteService.LogSession(c.Request.Context(), id, service.SessionInput{
		WorkoutID: req.WorkoutID,
		Name:      req.Name,
		Duration:  req.Duration,
		Kind:      req.Kind,
		PhotoKey:  req.PhotoKey,
		Running:   req.Running,
		Exercises: req.Exercises,
	})
	if err != nil {
		abortWithServiceError(c, err, "log session")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *AthleteHandler) GetDashboard(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	dashboard, err := h.athleteService.Dashboard(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "get dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// RequestPhotoUploadURL godoc
// @Summary Request a pre-signed URL to upload a session photo
// @Tags Athlete Photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uploadRequest body RequestPhotoUploadRequest true "Upload content type"
// @Success 200 {object} service.UploadURLResponse "Pre-signed URL and object key"
// @Failure 400 {object} gin.H "Not an image content type"
// @Failure 500 {object} gin.H "Internal Server Error (e.g., S3 error)"
// @Router /me/photos/upload-url [post]
func (h *AthleteHandler) RequestPhotoUploadURL(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	var req RequestPhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.athleteService.RequestPhotoUpload(c.Request.Context(), id, req.ContentType)
	if err != nil {
		abortWithServiceError(c, err, "get upload URL")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPhotoURL returns a download URL for ?key=<objectKey>.
func (h *AthleteHandler) GetPhotoURL(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	key := c.Query("key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'key' is required.")
		return
	}

	url, err := h.athleteService.PhotoURL(c.Request.Context(), id, key)
	if err != nil {
		abortWithServiceError(c, err, "get photo URL")
		return
	}
	c.JSON(http.StatusOK, PhotoURLResponse{URL: url})
}

// DeletePhoto removes ?key=<objectKey> from storage.
func (h *AthleteHandler) DeletePhoto(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	key := c.Query("key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'key' is required.")
		return
	}

	if err := h.athleteService.DeletePhoto(c.Request.Context(), id, key); err != nil {
		abortWithServiceError(c, err, "delete photo")
		return
	}
	c.Status(http.StatusNoContent)
}
