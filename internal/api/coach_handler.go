package api

import (
	"io"
	"net/http"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/service"

	"github.com/gin-gonic/gin"
)

const rosterEvent = "roster"

type CoachHandler struct {
	coachService service.CoachService
}

func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// --- DTOs ---

// AthleteSummaryResponse is one row of the coach roster.
type AthleteSummaryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Goal          string `json:"goal,omitempty"`
	Plans         int    `json:"plans"`
	TotalSessions int    `json:"totalSessions"`
	Streak        int    `json:"streak"`
	LastSession   string `json:"lastSession,omitempty"` // DD/MM/YYYY
}

func MapAthleteToSummary(a domain.Athlete) AthleteSummaryResponse {
	resp := AthleteSummaryResponse{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Goal:          a.Goal,
		Plans:         len(a.Plans),
		TotalSessions: len(a.History),
		Streak:        a.Analytics.Streak,
	}
	if n := len(a.History); n > 0 {
		resp.LastSession = a.History[n-1].Date
	}
	return resp
}

func MapAthletesToSummary(athletes []domain.Athlete) []AthleteSummaryResponse {
	resp := make([]AthleteSummaryResponse, len(athletes))
	for i, a := range athletes {
		resp[i] = MapAthleteToSummary(a)
	}
	return resp
}

// --- Roster ---

// ListAthletes godoc
// @Summary List the coach's athletes
// @Description Synced athletes first, then the fixed roster entries not synced yet.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AthleteSummaryResponse
// @Router /coach/athletes [get]
func (h *CoachHandler) ListAthletes(c *gin.Context) {
	c.JSON(http.StatusOK, MapAthletesToSummary(h.coachService.Roster(c.Request.Context())))
}

// StreamAthletes sends the roster as a server-sent event now and after every
// change, until the client goes away. Slow clients only get the latest roster.
func (h *CoachHandler) StreamAthletes(c *gin.Context) {
	updates := make(chan []domain.Athlete, 1)
	updates <- h.coachService.Roster(c.Request.Context())

	unwatch := h.coachService.WatchRoster(func(athletes []domain.Athlete) {
		for {
			select {
			case updates <- athletes:
				return
			default:
			}
			// drop the stale roster
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unwatch()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case athletes := <-updates:
			c.SSEvent(rosterEvent, MapAthletesToSummary(athletes))
			return true
		}
	})
}

func (h *CoachHandler) GetAthlete(c *gin.Context) {
	athlete, err := h.coachService.Athlete(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err, "get athlete")
		return
	}
	c.JSON(http.StatusOK, athlete)
}

// UpdateAthlete godoc
// @Summary Update an athlete's profile
// @Description Only the fields present in the body are changed.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Athlete id"
// @Param update body service.ProfileUpdate true "Profile fields"
// @Success 200 {object} domain.Athlete
// @Failure 400 {object} gin.H "No or invalid fields"
// @Failure 404 {object} gin.H "Athlete not found"
// @Router /coach/athletes/{id} [patch]
func (h *CoachHandler) UpdateAthlete(c *gin.Context) {
	var req service.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	athlete, err := h.coachService.UpdateAthlete(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithServiceError(c, err, "update athlete")
		return
	}
	c.JSON(http.StatusOK, athlete)
}

// --- Plans ---

type AssignPlanRequest struct {
	Title             string            `json:"title" binding:"required"`
	Items             []domain.PlanItem `json:"items"`
	ProjectedSessions *int              `json:"projectedSessions" binding:"omitempty,min=1"`
	Publish           bool              `json:"publish"`
}

// AssignPlan godoc
// @Summary Assign a new plan to an athlete
// @Tags Coach Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Athlete id"
// @Param plan body AssignPlanRequest true "Plan"
// @Success 201 {object} domain.Plan
// @Failure 400 {object} gin.H "Invalid plan"
// @Failure 404 {object} gin.H "Athlete not found"
// @Router /coach/athletes/{id}/plans [post]
func (h *CoachHandler) AssignPlan(c *gin.Context) {
	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.coachService.AssignPlan(c.Request.Context(), c.Param("id"), service.PlanInput{
		Title:             req.Title,
		Items:             req.Items,
		ProjectedSessions: req.ProjectedSessions,
		Publish:           req.Publish,
	})
	if err != nil {
		abortWithServiceError(c, err, "assign plan")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *CoachHandler) PublishPlan(c *gin.Context) {
	plan, err := h.coachService.PublishPlan(c.Request.Context(), c.Param("id"), c.Param("planId"))
	if err != nil {
		abortWithServiceError(c, err, "publish plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *CoachHandler) GetPlanProgress(c *gin.Context) {
	progress, err := h.coachService.PlanProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err, "get plan progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// --- Notifications ---

func (h *CoachHandler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.coachService.Notifications(c.Request.Context()))
}
