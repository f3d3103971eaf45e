package fbsrvc

// Submission is a single accepted record from the game client. Rows are
// insert-only: no update or delete path exists, so a stored username never
// changes after the first successful submit.
type Submission struct {
	ID       int64
	UserID   int64
	Username string
}
