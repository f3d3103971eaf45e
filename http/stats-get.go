package http

import (
	"context"
	"net/http"

	"github.com/feedbackd/backend/httpjson"
	"github.com/feedbackd/backend/logger"
)

func (s *HttpServer) getStats(w http.ResponseWriter, r *http.Request) {
	type statsResponse struct {
		TotalSubmissions int64 `json:"total_submissions"`
	}

	log := logger.FromContext(r.Context())

	// collapsed callers share one query result; the winning caller's
	// disconnect must not cancel it for everyone
	ctx := context.WithoutCancel(r.Context())
	v, err, _ := s.sfGroup.Do("stats", func() (interface{}, error) {
		return s.fbSrvc.Count(ctx)
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusOK, statsResponse{
		TotalSubmissions: v.(int64),
	})
}
