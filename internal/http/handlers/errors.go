package handlers

import (
	"errors"
	"net/http"

	"bespokedbikes/internal/domain"
	"bespokedbikes/internal/http/middleware"
	"bespokedbikes/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// ValidationProblem is the 400 body for field-level validation failures.
type ValidationProblem struct {
	Type    string              `json:"type"`
	Title   string              `json:"title"`
	Status  int                 `json:"status"`
	Errors  map[string][]string `json:"errors"`
	TraceID string              `json:"traceId,omitempty"`
}

func respondValidation(c *gin.Context, problems map[string][]string) {
	if problems == nil {
		problems = map[string][]string{}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationProblem{
		Type:    "https://tools.ietf.org/html/rfc7231#section-6.5.1",
		Title:   "One or more validation errors occurred.",
		Status:  http.StatusBadRequest,
		Errors:  problems,
		TraceID: middleware.GetRequestID(c),
	})
}

// MySQL server error numbers that are the client's fault.
const (
	mysqlDuplicateEntry    = 1062
	mysqlNoReferencedRow   = 1452
	mysqlRowIsReferenced   = 1451
	mysqlDataTooLong       = 1406
	mysqlOutOfRangeValue   = 1264
	mysqlTruncatedWrongVal = 1292
)

// classify turns driver errors into domain errors where the cause is known.
func classify(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case mysqlDuplicateEntry, mysqlNoReferencedRow, mysqlRowIsReferenced:
		return domain.ConflictError{Msg: me.Message, Err: err}
	case mysqlDataTooLong, mysqlOutOfRangeValue, mysqlTruncatedWrongVal:
		return domain.ValidationError{Msg: me.Message, Err: err}
	}
	return err
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	err = classify(err)
	var ve domain.ValidationError

	switch {
	case errors.As(err, &ve) && len(ve.Problems) > 0:
		respondValidation(c, ve.Problems)
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		c.AbortWithStatus(http.StatusNotFound)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsPersistence(err):
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		utils.ErrorWithFields("request failed", utils.Fields{
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		})
		RespondError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
