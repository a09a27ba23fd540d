package api

import (
	"errors"
	"net/http"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// abortWithServiceError maps service errors to a status.
// Unknown errors are logged and reported as "Failed to <action>.".
func abortWithServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrAthleteNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrPhotoNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPhotoNotOwned):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPlanAlreadyPublic),
		errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNothingToUpdate),
		errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, service.ErrInvalidPlan),
		errors.Is(err, service.ErrInvalidSession),
		errors.Is(err, service.ErrInvalidContentType),
		errors.Is(err, service.ErrInvalidRegistration),
		errors.Is(err, service.ErrAthleteHasNoEmail):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error(action)
		abortWithError(c, http.StatusInternalServerError, "Failed to "+action+".")
	}
}
