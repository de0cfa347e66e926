// Package github is the gateway to the GitHub REST API used to provision
// project repositories.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
)

const (
	DefaultBranch      = "main"
	DefaultUploadDelay = 500 * time.Millisecond

	// probeRepo is looked up by TestConnection. A 404 still proves the API
	// is reachable with our credentials.
	probeRepo = "test"
)

type Config struct {
	Token string
	// BaseURL overrides the API endpoint, e.g. for GitHub Enterprise.
	BaseURL     string
	Branch      string
	UploadDelay time.Duration
	HTTPClient  *http.Client
}

// RepoInfo describes a remote repository.
type RepoInfo struct {
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	HTMLURL     string     `json:"html_url"`
	CloneURL    string     `json:"clone_url"`
	SSHURL      string     `json:"ssh_url"`
	Description string     `json:"description,omitempty"`
	Private     bool       `json:"private"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// FileResult is the outcome of uploading one file.
type FileResult struct {
	Path    string `json:"path"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Client talks to GitHub as a single authenticated account.
type Client struct {
	api    *gh.Client
	branch string
	delay  time.Duration

	mu    sync.Mutex
	login string
}

func NewClient(cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
	}

	api := gh.NewClient(httpClient)
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid github base url %q: %w", cfg.BaseURL, err)
		}
		api.BaseURL = u
	}

	c := &Client{api: api, branch: cfg.Branch, delay: cfg.UploadDelay}
	if c.branch == "" {
		c.branch = DefaultBranch
	}
	if c.delay < 0 {
		c.delay = 0
	}
	return c, nil
}

// RepositoryName derives the remote repository name from a project name.
func RepositoryName(name string) string {
	r := strings.NewReplacer(" ", "-", "_", "-")
	return r.Replace(strings.ToLower(name))
}

// account resolves the authenticated login once. Failures are not cached so
// a later call may succeed.
func (c *Client) account(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.login != "" {
		return c.login, nil
	}
	u, _, err := c.api.Users.Get(ctx, "")
	if err != nil {
		return "", apperr.GitHub(err, "Failed to get GitHub user")
	}
	c.login = u.GetLogin()
	return c.login, nil
}

func isNotFound(resp *gh.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

func toRepoInfo(r *gh.Repository) *RepoInfo {
	info := &RepoInfo{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		HTMLURL:     r.GetHTMLURL(),
		CloneURL:    r.GetCloneURL(),
		SSHURL:      r.GetSSHURL(),
		Description: r.GetDescription(),
		Private:     r.GetPrivate(),
	}
	if r.CreatedAt != nil {
		t := r.CreatedAt.Time
		info.CreatedAt = &t
	}
	if r.UpdatedAt != nil {
		t := r.UpdatedAt.Time
		info.UpdatedAt = &t
	}
	return info
}

// CreateRepository creates a repository named RepositoryName(name) under the
// authenticated account. It fails if one with that name already exists.
func (c *Client) CreateRepository(ctx context.Context, name, description string, private bool) (*RepoInfo, error) {
	login, err := c.account(ctx)
	if err != nil {
		return nil, err
	}
	repoName := RepositoryName(name)

	if existing, _, err := c.api.Repositories.Get(ctx, login, repoName); err == nil && existing != nil {
		return nil, apperr.GitHub(nil, "Repository '%s' already exists", repoName).
			WithDetail("repository", repoName)
	}

	repo, _, err := c.api.Repositories.Create(ctx, "", &gh.Repository{
		Name:        gh.String(repoName),
		Description: gh.String(description),
		Private:     gh.Bool(private),
		AutoInit:    gh.Bool(false),
	})
	if err != nil {
		return nil, apperr.GitHub(err, "Failed to create repository")
	}

	logging.FromContext(ctx).WithField("repository", repoName).Info("Created repository")
	return toRepoInfo(repo), nil
}

// CreateFiles uploads files one by one in path order, pausing between
// uploads. A failed upload is recorded and skipped. The returned error is
// non-nil only when the repository itself could not be resolved. The upload
// sequence is not interrupted by cancellation of ctx.
func (c *Client) CreateFiles(ctx context.Context, repoName string, files map[string]string, commitMessage string) ([]FileResult, error) {
	login, err := c.account(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.api.Repositories.Get(ctx, login, repoName); err != nil {
		return nil, apperr.GitHub(err, "Failed to create files")
	}

	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	uctx := context.WithoutCancel(ctx)
	limit := rate.Inf
	if c.delay > 0 {
		limit = rate.Every(c.delay)
	}
	pacer := rate.NewLimiter(limit, 1)
	log := logging.FromContext(ctx).WithField("repository", repoName)

	results := make([]FileResult, 0, len(paths))
	failed := 0
	for _, p := range paths {
		if err := pacer.Wait(uctx); err != nil {
			return results, fmt.Errorf("upload pacing: %w", err)
		}
		_, _, err := c.api.Repositories.CreateFile(uctx, login, repoName, p, &gh.RepositoryContentFileOptions{
			Message: gh.String(commitMessage + ": Add " + p),
			Content: []byte(files[p]),
			Branch:  gh.String(c.branch),
		})
		if err != nil {
			failed++
			log.WithFields(logrus.Fields{"path": p, "error": err}).Error("Failed to create file")
			results = append(results, FileResult{Path: p, Error: err.Error()})
			continue
		}
		log.WithField("path", p).Debug("Created file")
		results = append(results, FileResult{Path: p, Success: true})
	}

	log.WithFields(logrus.Fields{
		"files":  len(paths),
		"failed": failed,
	}).Info("Uploaded files")
	return results, nil
}

// GetRepository returns nil with no error when the repository does not exist.
func (c *Client) GetRepository(ctx context.Context, repoName string) (*RepoInfo, error) {
	login, err := c.account(ctx)
	if err != nil {
		return nil, err
	}
	repo, resp, err := c.api.Repositories.Get(ctx, login, repoName)
	if isNotFound(resp) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.GitHub(err, "Failed to get repository")
	}
	return toRepoInfo(repo), nil
}

func (c *Client) DeleteRepository(ctx context.Context, repoName string) error {
	login, err := c.account(ctx)
	if err != nil {
		return err
	}
	if _, err := c.api.Repositories.Delete(ctx, login, repoName); err != nil {
		return apperr.GitHub(err, "Failed to delete repository").WithDetail("repository", repoName)
	}
	logging.FromContext(ctx).WithField("repository", repoName).Info("Deleted repository")
	return nil
}

// TestConnection reports whether the API is reachable with our credentials.
func (c *Client) TestConnection(ctx context.Context) bool {
	login, err := c.account(ctx)
	if err != nil {
		return false
	}
	_, resp, err := c.api.Repositories.Get(ctx, login, probeRepo)
	return err == nil || isNotFound(resp)
}
