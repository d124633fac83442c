package gitservice

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/gitservice/pkg/locator"
)

// fakeLocator satisfies Locator without touching the filesystem.
type fakeLocator struct {
	remote string
	err    error
	branch string
}

func (f fakeLocator) RemoteURL(path string) (string, error) { return f.remote, f.err }
func (f fakeLocator) Branch(path string) string             { return f.branch }

func TestFromRemote(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		branch string
		want   *Service
	}{
		{
			name:   "github https with branch",
			remote: "https://github.com/rhysd/detect_git_service.git",
			branch: "master",
			want: &Service{
				Kind:   KindGitHub,
				Host:   "github.com",
				User:   "rhysd",
				Repo:   "detect_git_service",
				Branch: "master",
			},
		},
		{
			name:   "github scp-like matches https form",
			remote: "git@github.com:rhysd/detect_git_service.git",
			branch: "master",
			want: &Service{
				Kind:   KindGitHub,
				Host:   "github.com",
				User:   "rhysd",
				Repo:   "detect_git_service",
				Branch: "master",
			},
		},
		{
			name:   "gitlab subgroup reports last two segments",
			remote: "git@gitlab.com:group/sub/project.git",
			want: &Service{
				Kind: KindGitLab,
				Host: "gitlab.com",
				User: "sub",
				Repo: "project",
			},
		},
		{
			name:   "bitbucket",
			remote: "https://bitbucket.org/team/tool.git",
			want: &Service{
				Kind: KindBitbucket,
				Host: "bitbucket.org",
				User: "team",
				Repo: "tool",
			},
		},
		{
			name:   "github enterprise host",
			remote: "https://github.corp.example.com/org/service.git",
			want: &Service{
				Kind: KindGitHubEnterprise,
				Host: "github.corp.example.com",
				User: "org",
				Repo: "service",
			},
		},
		{
			name:   "self-hosted gitlab",
			remote: "git@gitlab.internal.example:infra/deploy.git",
			want: &Service{
				Kind: KindGitLab,
				Host: "gitlab.internal.example",
				User: "infra",
				Repo: "deploy",
			},
		},
		{
			name:   "unknown host falls back to other",
			remote: "https://example.com/owner/name",
			want: &Service{
				Kind: KindOther,
				Host: "example.com",
				User: "owner",
				Repo: "name",
			},
		},
		{
			name:   "mixed case host lowered and classified",
			remote: "https://GitHub.com/User/Repo.git",
			want: &Service{
				Kind: KindGitHub,
				Host: "github.com",
				User: "User",
				Repo: "Repo",
			},
		},
		{
			name:   "detached head carries no branch",
			remote: "https://github.com/user/repo.git",
			branch: "",
			want: &Service{
				Kind: KindGitHub,
				Host: "github.com",
				User: "user",
				Repo: "repo",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRemote(tt.remote, tt.branch)
			if err != nil {
				t.Fatalf("FromRemote() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromRemote() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromRemoteErrors(t *testing.T) {
	if _, err := FromRemote("ftp://host/user/repo", ""); !IsUnrecognizedForm(err) {
		t.Errorf("unsupported scheme: got %v, want UnrecognizedFormError", err)
	}
	if _, err := FromRemote("https://host/repo", ""); !IsMissingPathComponents(err) {
		t.Errorf("single segment: got %v, want MissingPathComponentsError", err)
	}
}

func TestDetectWith(t *testing.T) {
	loc := fakeLocator{
		remote: "git@github.com:rhysd/detect_git_service.git",
		branch: "master",
	}

	svc, err := DetectWith(loc, "/some/path")
	if err != nil {
		t.Fatalf("DetectWith() unexpected error: %v", err)
	}

	want := &Service{
		Kind:   KindGitHub,
		Host:   "github.com",
		User:   "rhysd",
		Repo:   "detect_git_service",
		Branch: "master",
	}
	if diff := cmp.Diff(want, svc); diff != "" {
		t.Errorf("DetectWith() mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectWithPropagatesLocatorErrors(t *testing.T) {
	loc := fakeLocator{err: &locator.NotARepositoryError{Path: "/tmp/nowhere"}}

	_, err := DetectWith(loc, "/tmp/nowhere")
	if err == nil {
		t.Fatal("expected locator error to propagate")
	}
	if !locator.IsNotARepository(err) {
		t.Errorf("wrapped error lost its type: %v", err)
	}
}

func TestDetectWithPropagatesParseErrors(t *testing.T) {
	loc := fakeLocator{remote: "ftp://host/user/repo"}

	_, err := DetectWith(loc, ".")
	if !IsUnrecognizedForm(err) {
		t.Errorf("got %v, want UnrecognizedFormError", err)
	}
}
