package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/feedbackd/backend/fbsrvc"
	"github.com/feedbackd/backend/httpjson"
	"github.com/feedbackd/backend/logger"
)

func (s *HttpServer) postSubmit(w http.ResponseWriter, r *http.Request) {
	type submitRequest struct {
		UserID   int64  `json:"userId"`
		Username string `json:"username"`
	}

	log := logger.FromContext(r.Context())

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		httpjson.HandleSubmitError(log, w, fbsrvc.ErrInvalidContentType())
		return
	}

	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.HandleSubmitError(log, w, fbsrvc.ErrInvalidJson().SetDebug(err))
		return
	}

	err = s.fbSrvc.Submit(r.Context(), fbsrvc.SubmitParams{
		UserID:   request.UserID,
		Username: request.Username,
	})
	if err != nil {
		httpjson.HandleSubmitError(log, w, err)
		return
	}

	log.Info("new submission",
		"user_id", request.UserID,
		"username", request.Username,
	)

	httpjson.WriteJson(w, http.StatusOK, httpjson.SubmitResponse{Success: true})
}
