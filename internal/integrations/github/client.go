// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
)

const stateClosed = "closed"

// Client wraps the GitHub API client.
type Client struct {
	client *github.Client
}

// CreateComment posts a comment on an issue.
func (c *Client) CreateComment(ctx context.Context, org, repo string, number int, body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("comment body cannot be empty")
	}

	comment := &github.IssueComment{
		Body: github.String(body),
	}
	_, _, err := c.client.Issues.CreateComment(ctx, org, repo, number, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// CloseIssue sets an issue's state to closed.
func (c *Client) CloseIssue(ctx context.Context, org, repo string, number int) error {
	req := &github.IssueRequest{
		State: github.String(stateClosed),
	}
	_, _, err := c.client.Issues.Edit(ctx, org, repo, number, req)
	if err != nil {
		return fmt.Errorf("failed to close issue: %w", err)
	}
	return nil
}

// CreateReview submits a pull request review of the given type (e.g. "COMMENT").
func (c *Client) CreateReview(ctx context.Context, org, repo string, number int, body, reviewEvent string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("review body cannot be empty")
	}

	review := &github.PullRequestReviewRequest{
		Body:  github.String(body),
		Event: github.String(reviewEvent),
	}
	_, _, err := c.client.PullRequests.CreateReview(ctx, org, repo, number, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ClosePullRequest sets a pull request's state to closed.
func (c *Client) ClosePullRequest(ctx context.Context, org, repo string, number int) error {
	pr := &github.PullRequest{
		State: github.String(stateClosed),
	}
	_, _, err := c.client.PullRequests.Edit(ctx, org, repo, number, pr)
	if err != nil {
		return fmt.Errorf("failed to close pull request: %w", err)
	}
	return nil
}

// GetFileContent fetches a file from a repository at the given ref.
func (c *Client) GetFileContent(ctx context.Context, org, repo, path, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.client.Repositories.GetContents(ctx, org, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from %s/%s@%s: %w", path, org, repo, ref, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s in %s/%s@%s is a directory", path, org, repo, ref)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return []byte(content), nil
}
