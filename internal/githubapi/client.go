// Package githubapi provides a small GitHub client that shells out to the
// GitHub CLI. gh is the only channel to GitHub: it performs all network I/O
// and owns authentication, pagination and result ordering.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/prtools/prcomment/internal/logging"
)

// Options tunes how the client drives gh.
type Options struct {
	// GHPath is the gh binary name or path. Empty means "gh" from PATH.
	GHPath string
	// Token, when non-empty, is injected into the gh environment as
	// GH_TOKEN and GITHUB_TOKEN. Empty relies on gh's stored credentials.
	Token string
	// State is the pull request state filter for listings. Empty means open.
	State string
	// Limit caps the number of pull requests requested from gh pr list.
	// Zero leaves gh's own default in place.
	Limit int
}

// Client runs gh subcommands against a single repository.
type Client struct {
	logger *slog.Logger
	runner runner
	opts   Options
	repo   string
}

// NewClient validates the owner/name slug and constructs a Client.
func NewClient(logger *slog.Logger, repo string, opts Options) (*Client, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return nil, fmt.Errorf("repository is empty")
	}
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return nil, fmt.Errorf("invalid repository slug %q, expected owner/repo", repo)
	}
	if opts.GHPath == "" {
		opts.GHPath = "gh"
	}
	return &Client{
		logger: logger,
		runner: &execRunner{stderr: logging.NewSubprocessWriter(logger, opts.GHPath)},
		opts:   opts,
		repo:   repo,
	}, nil
}

// ListPullRequestNumbers asks gh for the repository's pull requests and
// returns their numbers in the order gh emitted them. Completeness and
// ordering are gh's; nothing is re-sorted or paginated here.
func (c *Client) ListPullRequestNumbers(ctx context.Context) ([]int, error) {
	args := []string{
		"pr", "list",
		"--repo", c.repo,
		"--json", "number",
	}
	if c.opts.State != "" {
		args = append(args, "--state", c.opts.State)
	}
	if c.opts.Limit > 0 {
		args = append(args, "--limit", strconv.Itoa(c.opts.Limit))
	}

	c.logger.Debug("listing pull requests via gh", "repo", c.repo, "state", c.opts.State)

	out, err := c.runner.run(ctx, c.environ(), c.opts.GHPath, args...)
	if err != nil {
		return nil, fmt.Errorf("gh pr list for %s failed: %w", c.repo, err)
	}

	numbers, err := decodePullRequestNumbers(out)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("pull requests listed", "repo", c.repo, "count", len(numbers))
	return numbers, nil
}

// CommentPullRequest posts the contents of bodyFile as a comment on the given
// pull request and returns the gh invocation's stdout. The file is handed to
// gh via --body-file, so its contents reach GitHub verbatim.
func (c *Client) CommentPullRequest(ctx context.Context, number int, bodyFile string) (string, error) {
	if number <= 0 {
		return "", fmt.Errorf("pull request number must be positive, got %d", number)
	}

	args := []string{
		"pr", "comment", strconv.Itoa(number),
		"--repo", c.repo,
		"--body-file", bodyFile,
	}

	out, err := c.runner.run(ctx, c.environ(), c.opts.GHPath, args...)
	if err != nil {
		return "", fmt.Errorf("gh pr comment for PR %d failed: %w", number, err)
	}
	return string(out), nil
}

// CommentAll posts the same comment on every listed pull request, in order,
// and returns the concatenation of the individual gh stdouts. A failed
// invocation is logged and skipped; earlier comments stay posted and later
// ones are still attempted. No retries.
func (c *Client) CommentAll(ctx context.Context, numbers []int, bodyFile string) string {
	var out strings.Builder
	posted := 0
	for _, number := range numbers {
		text, err := c.CommentPullRequest(ctx, number, bodyFile)
		if err != nil {
			c.logger.Warn("commenting on pull request failed, continuing",
				"repo", c.repo,
				"pr", number,
				"error", err,
			)
			continue
		}
		out.WriteString(text)
		posted++
		c.logger.Debug("comment posted", "repo", c.repo, "pr", number)
	}

	if posted < len(numbers) {
		c.logger.Warn("some pull requests were not commented",
			"repo", c.repo,
			"posted", posted,
			"requested", len(numbers),
		)
	}
	return out.String()
}

// environ builds the gh subprocess environment, overlaying the token when set.
func (c *Client) environ() []string {
	environ := os.Environ()
	if c.opts.Token != "" {
		environ = append(environ, "GH_TOKEN="+c.opts.Token, "GITHUB_TOKEN="+c.opts.Token)
	}
	return environ
}

// decodePullRequestNumbers parses the gh pr list --json output: a JSON array
// of objects carrying a number field.
func decodePullRequestNumbers(data []byte) ([]int, error) {
	var prs []pullRequest
	if err := json.Unmarshal(data, &prs); err != nil {
		return nil, fmt.Errorf("decode gh pr list output: %w", err)
	}

	numbers := make([]int, 0, len(prs))
	for i, pr := range prs {
		if pr.Number == nil {
			return nil, fmt.Errorf("gh pr list entry %d has no number field", i)
		}
		numbers = append(numbers, *pr.Number)
	}
	return numbers, nil
}
