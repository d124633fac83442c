package gitservice

import (
	"fmt"
	"strings"
)

// Kind identifies the hosting service behind a remote.
type Kind string

const (
	// KindGitHub is github.com.
	KindGitHub Kind = "github"
	// KindGitHubEnterprise is a self-hosted GitHub instance (github.* hosts).
	KindGitHubEnterprise Kind = "github-enterprise"
	// KindGitLab is gitlab.com or a self-hosted GitLab instance.
	KindGitLab Kind = "gitlab"
	// KindBitbucket is bitbucket.org or a self-hosted Bitbucket instance.
	KindBitbucket Kind = "bitbucket"
	// KindOther is the fallback for hosts that match no known service.
	KindOther Kind = "other"
)

// Service is the classified identity of a repository's hosting service.
// User and Repo are always non-empty; Branch is empty when the repository
// is in a detached HEAD state or branch resolution failed.
type Service struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Host   string `json:"host" yaml:"host"`
	User   string `json:"user" yaml:"user"`
	Repo   string `json:"repo" yaml:"repo"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// String renders the service as host/user/repo, with @branch appended when
// a branch is known.
func (s *Service) String() string {
	out := fmt.Sprintf("%s/%s/%s", s.Host, s.User, s.Repo)
	if s.Branch != "" {
		out += "@" + s.Branch
	}
	return out
}

// kindForHost classifies a lowercase host against the known service table.
// Exact matches cover the hosted offerings; prefix matches cover self-hosted
// instances under a service-branded subdomain.
func kindForHost(host string) Kind {
	switch host {
	case "github.com":
		return KindGitHub
	case "gitlab.com":
		return KindGitLab
	case "bitbucket.org":
		return KindBitbucket
	}

	switch {
	case strings.HasPrefix(host, "github."):
		return KindGitHubEnterprise
	case strings.HasPrefix(host, "gitlab."):
		return KindGitLab
	case strings.HasPrefix(host, "bitbucket."):
		return KindBitbucket
	}

	return KindOther
}
