package githubapi

// pullRequest mirrors the single field requested from gh pr list --json.
// Number is a pointer so a listing entry without the field is detected
// instead of silently decoding to zero.
type pullRequest struct {
	Number *int `json:"number"`
}
