package fbsrvc

// FeedbackSrvc implements submission ingestion and the read views on top of
// a Repo. It holds no mutable state of its own; all calls are reentrant.
type FeedbackSrvc struct {
	repo Repo
}

func NewFeedbackSrvc(repo Repo) *FeedbackSrvc {
	return &FeedbackSrvc{repo: repo}
}
