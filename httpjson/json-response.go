package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/feedbackd/backend/srvcerror"
)

// SubmitResponse is the body shape of the submit endpoint. Failures carry a
// machine-readable reason; the game server branches on it, not on the status
// code.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// ErrorResponse is the failure body shape of the read endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func WriteSubmitFailure(w http.ResponseWriter, statusCode int, reason string) {
	WriteJson(w, statusCode, SubmitResponse{Success: false, Reason: reason})
}

func WriteErrorJson(w http.ResponseWriter, statusCode int, errCode string) {
	WriteJson(w, statusCode, ErrorResponse{Error: errCode})
}

func logSrvcError(logger *slog.Logger, srvcErr *srvcerror.Error, err error) {
	attrs := []any{"error", err}
	if srvcErr.DebugInfo() != nil {
		attrs = append(attrs, "debug", srvcErr.DebugInfo())
	}
	if srvcErr.HttpStatusCode() == http.StatusInternalServerError {
		logger.Error("internal server error", attrs...)
	} else {
		logger.Warn("service error", attrs...)
	}
}

// HandleSubmitError maps an error to the submit endpoint's
// {"success":false,"reason":...} shape.
func HandleSubmitError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		logSrvcError(logger, srvcErr, err)
		WriteSubmitFailure(w, srvcErr.HttpStatusCode(), srvcErr.ErrorCode())
		return
	}
	logger.Error("internal server error", "error", err)
	WriteSubmitFailure(w, http.StatusInternalServerError, srvcerror.ErrCodeInternalServerError)
}

// HandleError maps an error to the read endpoints' {"error":...} shape.
func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		logSrvcError(logger, srvcErr, err)
		WriteErrorJson(w, srvcErr.HttpStatusCode(), srvcErr.ErrorCode())
		return
	}
	logger.Error("internal server error", "error", err)
	WriteErrorJson(w, http.StatusInternalServerError, srvcerror.ErrCodeInternalServerError)
}
