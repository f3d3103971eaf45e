package http

import (
	"context"
	"net/http"

	"github.com/feedbackd/backend/fbsrvc"
	"github.com/feedbackd/backend/httpjson"
	"github.com/feedbackd/backend/logger"
)

// listLimit caps the list endpoint at the most recent rows.
const listLimit = 100

func (s *HttpServer) getList(w http.ResponseWriter, r *http.Request) {
	type submissionView struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		UserID   int64  `json:"userId"`
	}
	type listResponse struct {
		Submissions []submissionView `json:"submissions"`
		Count       int              `json:"count"`
	}

	log := logger.FromContext(r.Context())

	// collapsed callers share one query result; the winning caller's
	// disconnect must not cancel it for everyone
	ctx := context.WithoutCancel(r.Context())
	v, err, _ := s.sfGroup.Do("list", func() (interface{}, error) {
		return s.fbSrvc.ListRecent(ctx, listLimit)
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	subms := v.([]fbsrvc.Submission)

	response := listResponse{
		Submissions: make([]submissionView, 0, len(subms)),
	}
	for _, subm := range subms {
		response.Submissions = append(response.Submissions, submissionView{
			ID:       subm.ID,
			Username: subm.Username,
			UserID:   subm.UserID,
		})
	}
	response.Count = len(response.Submissions)

	log.Debug("returning submission list", "count", response.Count)

	httpjson.WriteJson(w, http.StatusOK, response)
}
