package gitservice

import (
	"net/url"
	"strings"
)

// Scheme is the syntactic form a remote URL takes.
type Scheme string

const (
	// SchemeHTTPS covers http:// and https:// remotes.
	SchemeHTTPS Scheme = "https"
	// SchemeSSH covers explicit ssh:// remotes.
	SchemeSSH Scheme = "ssh"
	// SchemeGit covers git:// protocol remotes.
	SchemeGit Scheme = "git"
	// SchemeSCP covers the scp-like shorthand user@host:path.
	SchemeSCP Scheme = "scp"
)

// RemoteURL is the intermediate parsed form of a remote URL: the detected
// scheme, the bare host (no user-info, no port) and the non-empty path
// segments with a trailing .git stripped from the last one. A successful
// parse always carries at least two segments.
type RemoteURL struct {
	Scheme   Scheme
	Host     string
	Segments []string
}

// ParseRemoteURL parses a raw remote URL into a RemoteURL. Supported forms:
//   - https://host/owner/repo.git (and http://)
//   - git://host/owner/repo.git
//   - ssh://user@host:port/owner/repo.git
//   - user@host:owner/repo.git (scp-like shorthand)
//
// Anything else fails with UnrecognizedFormError; a path with fewer than
// two usable segments fails with MissingPathComponentsError.
func ParseRemoteURL(raw string) (*RemoteURL, error) {
	original := raw
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, ".git")
	raw = strings.TrimSuffix(raw, "/")

	var (
		scheme Scheme
		host   string
		path   string
	)

	switch {
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		scheme = SchemeHTTPS
		u, err := url.Parse(raw)
		if err != nil || u.Hostname() == "" {
			return nil, &UnrecognizedFormError{URL: original}
		}
		host, path = u.Hostname(), u.Path

	case strings.HasPrefix(raw, "git://"):
		scheme = SchemeGit
		u, err := url.Parse(raw)
		if err != nil || u.Hostname() == "" {
			return nil, &UnrecognizedFormError{URL: original}
		}
		host, path = u.Hostname(), u.Path

	case strings.HasPrefix(raw, "ssh://"):
		scheme = SchemeSSH
		u, err := url.Parse(raw)
		if err != nil || u.Hostname() == "" {
			return nil, &UnrecognizedFormError{URL: original}
		}
		host, path = u.Hostname(), u.Path

	default:
		// scp-like shorthand: user@host:path, where the part after the
		// colon must not look like an authority.
		at := strings.Index(raw, "@")
		colon := strings.Index(raw, ":")
		if at < 0 || colon < at {
			return nil, &UnrecognizedFormError{URL: original}
		}
		rest := raw[colon+1:]
		if strings.HasPrefix(rest, "//") {
			return nil, &UnrecognizedFormError{URL: original}
		}
		host = raw[at+1 : colon]
		if host == "" {
			return nil, &UnrecognizedFormError{URL: original}
		}
		scheme = SchemeSCP
		path = rest
	}

	segments := splitSegments(path)
	if len(segments) < 2 {
		return nil, &MissingPathComponentsError{URL: original}
	}

	return &RemoteURL{Scheme: scheme, Host: host, Segments: segments}, nil
}

// splitSegments splits a URL path on '/', discarding empty segments so that
// leading, trailing and doubled slashes are tolerated, and strips a
// trailing .git left on the last segment.
func splitSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if n := len(segments); n > 0 {
		segments[n-1] = strings.TrimSuffix(segments[n-1], ".git")
		if segments[n-1] == "" {
			segments = segments[:n-1]
		}
	}
	return segments
}
