package gitservice

import (
	"fmt"
	"strings"

	"github.com/goliatone/gitservice/pkg/locator"
)

// Locator reads remote and branch metadata for the repository enclosing a
// filesystem path. Implementations must be read-only. Branch never fails:
// it reports "" when no symbolic branch can be resolved (detached HEAD,
// unborn HEAD, unreadable repository).
type Locator interface {
	RemoteURL(path string) (string, error)
	Branch(path string) string
}

// Detect locates the repository enclosing path and classifies its remote.
func Detect(path string) (*Service, error) {
	return DetectWith(locator.NewGoGit(), path)
}

// DetectWith is Detect with an injectable locator. Locator errors are
// wrapped but remain reachable through errors.As.
func DetectWith(loc Locator, path string) (*Service, error) {
	remote, err := loc.RemoteURL(path)
	if err != nil {
		return nil, fmt.Errorf("gitservice: locate remote for %s: %w", path, err)
	}
	return FromRemote(remote, loc.Branch(path))
}

// FromRemote classifies a raw remote URL, attaching branch verbatim. The
// last two path segments become (user, repo), so GitLab-style subgroup
// prefixes are dropped and only the final owner/name pair is reported.
func FromRemote(remote, branch string) (*Service, error) {
	parsed, err := ParseRemoteURL(remote)
	if err != nil {
		return nil, err
	}

	n := len(parsed.Segments)
	host := strings.ToLower(parsed.Host)

	return &Service{
		Kind:   kindForHost(host),
		Host:   host,
		User:   parsed.Segments[n-2],
		Repo:   parsed.Segments[n-1],
		Branch: branch,
	}, nil
}
