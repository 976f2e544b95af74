package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prtools/prcomment/internal/config"
	"github.com/prtools/prcomment/internal/env"
	"github.com/prtools/prcomment/internal/githubapi"
)

// prClient is the slice of the gh client the run sequence uses.
type prClient interface {
	ListPullRequestNumbers(ctx context.Context) ([]int, error)
	CommentAll(ctx context.Context, numbers []int, bodyFile string) string
}

// runComment wires config, env files and the gh client together and hands off
// to runWithClient for the list-confirm-comment sequence.
func runComment(cmd *cobra.Command, opts *Options, repo, commentFile string) error {
	logger := LoggerFromContext(cmd.Context())

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	state := opts.State
	if state == "" {
		state = cfg.State
	}
	if !config.ValidState(state) {
		return fmt.Errorf("invalid state %q, expected open, closed, merged or all", state)
	}

	fileVars, err := env.LoadEnvFiles(filepath.Dir(opts.ConfigPath), cfg.EnvFiles)
	if err != nil {
		return err
	}
	token := env.LookupToken(env.Merge(env.FromOS(), fileVars))

	client, err := githubapi.NewClient(logger, repo, githubapi.Options{
		GHPath: cfg.GH,
		Token:  token,
		State:  state,
		Limit:  cfg.Limit,
	})
	if err != nil {
		return err
	}

	return runWithClient(cmd, opts, client, repo, commentFile)
}

// runWithClient lists the pull requests, asks for confirmation and posts the
// comments. Anything other than y or Y at the prompt aborts without error.
func runWithClient(cmd *cobra.Command, opts *Options, client prClient, repo, commentFile string) error {
	logger := LoggerFromContext(cmd.Context())

	numbers, err := client.ListPullRequestNumbers(cmd.Context())
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		logger.Info("no pull requests to comment on", "repo", repo)
		return nil
	}

	if !opts.Yes {
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), len(numbers), repo, commentFile) {
			logger.Info("aborted, no comments posted", "repo", repo)
			return nil
		}
	}

	output := client.CommentAll(cmd.Context(), numbers, commentFile)
	if output != "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
	}

	logger.Info("done commenting pull requests", "repo", repo, "pulls", len(numbers))
	return nil
}
