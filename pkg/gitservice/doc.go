// Package gitservice detects which Git hosting service a repository's
// remote points to.
//
// Detection starts from a filesystem path: the enclosing repository is
// located, its remote URL read, and the URL classified into a known hosting
// service (GitHub, GitHub Enterprise, GitLab, Bitbucket) or a generic
// fallback, together with the repository owner, name and current branch.
//
//	svc, err := gitservice.Detect(".")
//	if err != nil {
//		return err
//	}
//	fmt.Println(svc.Kind, svc.User, svc.Repo)
//
// Classification is purely syntactic. The package performs no network
// access and does not verify that the remote actually exists.
package gitservice
