// Package locator reads remote and branch metadata from local Git
// repositories using go-git. No git binary is invoked and all access is
// read-only.
package locator

import (
	"errors"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// GoGit is a repository locator backed by go-git. The zero value is ready
// to use; each call opens the repository fresh and holds no state.
type GoGit struct{}

// NewGoGit returns a go-git backed locator.
func NewGoGit() GoGit {
	return GoGit{}
}

// RemoteURL returns the configured remote URL for the repository enclosing
// path. Discovery walks upward from path until a .git directory is found.
// Remote selection order: the current branch's tracking remote, then
// "origin", then the remaining remotes in name order. The first URL of the
// chosen remote wins.
func (g GoGit) RemoteURL(path string) (string, error) {
	repo, err := g.open(path)
	if err != nil {
		return "", err
	}

	cfg, err := repo.Config()
	if err != nil {
		return "", err
	}
	if len(cfg.Remotes) == 0 {
		return "", &NoRemoteError{Path: path}
	}

	if name := trackingRemote(repo, cfg); name != "" {
		if rc, ok := cfg.Remotes[name]; ok && len(rc.URLs) > 0 {
			return rc.URLs[0], nil
		}
	}

	if rc, ok := cfg.Remotes["origin"]; ok && len(rc.URLs) > 0 {
		return rc.URLs[0], nil
	}

	names := make([]string, 0, len(cfg.Remotes))
	for name := range cfg.Remotes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if rc := cfg.Remotes[name]; len(rc.URLs) > 0 {
			return rc.URLs[0], nil
		}
	}

	return "", &NoRemoteError{Path: path}
}

// Branch returns the symbolic name of the currently checked-out branch, or
// "" on detached HEAD, unborn HEAD, or when the repository cannot be read.
func (g GoGit) Branch(path string) string {
	repo, err := g.open(path)
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

func (GoGit) open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, &NotARepositoryError{Path: path}
		}
		return nil, err
	}
	return repo, nil
}

// trackingRemote resolves the remote the current branch is configured to
// track, if any.
func trackingRemote(repo *git.Repository, cfg *config.Config) string {
	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	branch, ok := cfg.Branches[head.Name().Short()]
	if !ok {
		return ""
	}
	return branch.Remote
}
