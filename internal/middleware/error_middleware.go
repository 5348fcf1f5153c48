package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/domain/curriculum"
	"github.com/yigit/degreepath/internal/domain/schedule"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
	"github.com/yigit/degreepath/internal/pkg/logger"
)

// HandleAPIError maps service errors to status codes and error details.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Request failed")
		if gin.Mode() == gin.DebugMode {
			detail.WithDebugInfo("%v", err)
		}
	}
	c.AbortWithStatusJSON(status, dto.NewErrorAPIResponse(detail))
}

func errorDetail(err error) (int, *dto.ErrorDetail) {
	var (
		notFound *curriculum.NotFoundError
		graphErr *curriculum.GraphValidationError
		timeErr  *schedule.TimeParseError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeCourseNotFound, notFound.Error()).
			WithField("courseCode")
	case errors.As(err, &graphErr):
		return http.StatusUnprocessableEntity, dto.NewErrorDetail(dto.ErrorCodeGraphValidation, graphErr.Error()).
			WithDetails(graphErr)
	case errors.As(err, &timeErr):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidTime, timeErr.Error()).
			WithField(timeErr.Field)
	case errors.Is(err, apperrors.ErrInvalidSeason):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidSeason, err.Error()).
			WithField("season")
	case errors.Is(err, apperrors.ErrInvalidStudentID):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidStudentID, "Invalid student ID format").
			WithField("studentId")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, messageOr(err, "Bad request"))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOr prefers the message of a CustomError in the chain.
func messageOr(err error, fallback string) string {
	var target *apperrors.CustomError
	if errors.As(err, &target) && target.Message != "" {
		return target.Message
	}
	return fallback
}
