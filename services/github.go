package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	defaultGithubBaseURL = "https://api.github.com"
	defaultCacheTTL      = time.Minute
)

// Commit is one reshaped entry of the commit feed
type Commit struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	URL     string    `json:"url"`
	SHA     string    `json:"sha"`
}

// githubCommit mirrors the fields we consume from the GitHub commits API
type githubCommit struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

type cacheEntry struct {
	commits   []Commit
	expiresAt time.Time
}

// CommitFeed fetches and reshapes recent commits of a repository. Responses
// are cached for a short window and concurrent fetches for the same key are
// collapsed into one upstream call.
type CommitFeed struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration
	logger  zerolog.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
	group singleflight.Group
}

// NewCommitFeed builds a commit feed client. A non-empty token authenticates
// upstream calls for higher rate limits.
func NewCommitFeed(token string, opts ...func(*CommitFeed)) *CommitFeed {
	client := http.DefaultClient
	if token != "" {
		client = oauth2.NewClient(context.Background(),
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	feed := &CommitFeed{
		client:  client,
		baseURL: defaultGithubBaseURL,
		ttl:     defaultCacheTTL,
		logger:  log.With().Str("service", "commitFeed").Logger(),
		cache:   make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(feed)
	}
	return feed
}

// WithBaseURL points the feed at a different API host
func WithBaseURL(baseURL string) func(*CommitFeed) {
	return func(f *CommitFeed) {
		f.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithCacheTTL overrides how long responses are served from cache
func WithCacheTTL(ttl time.Duration) func(*CommitFeed) {
	return func(f *CommitFeed) {
		f.ttl = ttl
	}
}

// ListCommits returns up to limit recent commits of "owner/repo", newest
// first, served from cache when the entry is younger than the TTL. Upstream
// failures surface as a single generic error; there is no retry.
func (f *CommitFeed) ListCommits(ctx context.Context, repo string, limit int) ([]Commit, error) {
	key := fmt.Sprintf("%s?per_page=%d", repo, limit)

	f.mu.Lock()
	if entry, ok := f.cache[key]; ok && time.Now().Before(entry.expiresAt) {
		f.mu.Unlock()
		return entry.commits, nil
	}
	f.mu.Unlock()

	result, err, _ := f.group.Do(key, func() (any, error) {
		commits, err := f.fetch(ctx, repo, limit)
		if err != nil {
			return nil, err
		}
		f.mu.Lock()
		f.cache[key] = cacheEntry{commits: commits, expiresAt: time.Now().Add(f.ttl)}
		f.mu.Unlock()
		return commits, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Commit), nil
}

func (f *CommitFeed) fetch(ctx context.Context, repo string, limit int) ([]Commit, error) {
	url := fmt.Sprintf("%s/repos/%s/commits?per_page=%d", f.baseURL, repo, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error().Err(err).Str("repo", repo).Msg("GitHub request failed")
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Error().Int("status", resp.StatusCode).Str("repo", repo).Msg("GitHub returned non-OK status")
		return nil, fmt.Errorf("failed to fetch commits: status %d", resp.StatusCode)
	}

	var raw []githubCommit
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode commits: %w", err)
	}

	commits := make([]Commit, 0, len(raw))
	for _, c := range raw {
		date, err := time.Parse(time.RFC3339, c.Commit.Author.Date)
		if err != nil {
			f.logger.Warn().Str("sha", c.SHA).Str("date", c.Commit.Author.Date).Msg("unparseable commit date")
		}
		sha := c.SHA
		if len(sha) > 7 {
			sha = sha[:7]
		}
		commits = append(commits, Commit{
			ID:      c.SHA,
			Title:   strings.SplitN(c.Commit.Message, "\n", 2)[0],
			Content: c.Commit.Message,
			Author:  c.Commit.Author.Name,
			Date:    date,
			URL:     c.HTMLURL,
			SHA:     sha,
		})
	}
	return commits, nil
}
