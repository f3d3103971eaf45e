package http

import (
	"net/http"

	"github.com/feedbackd/backend/httpjson"
)

func (s *HttpServer) getHealth(w http.ResponseWriter, r *http.Request) {
	type healthResponse struct {
		Status string `json:"status"`
	}
	httpjson.WriteJson(w, http.StatusOK, healthResponse{Status: "healthy"})
}
