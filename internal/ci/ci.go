// Package ci discovers repository metadata from CI environment variables.
// It backs up git metadata collection when the scanned tree has no usable
// remote, which is common in CI containers with shallow or exported checkouts.
package ci

import (
	"os"
	"strconv"
	"strings"
)

// Kind represents the type of CI provider.
type Kind int

const (
	// KindUnknown indicates the CI provider could not be identified.
	KindUnknown Kind = iota
	// KindGitHub identifies GitHub Actions environments.
	KindGitHub
	// KindGitLab identifies GitLab CI environments.
	KindGitLab
)

// LookupFunc fetches environment variables and defaults to os.Getenv.
type LookupFunc func(string) string

// Environment captures canonical repository metadata derived from CI
// environment variables.
type Environment struct {
	Kind       Kind   // Kind identifies the CI provider.
	Active     bool   // Active reports whether the process runs inside CI.
	Commit     string // Commit is the tip commit that triggered the job.
	Branch     string // Branch is the short reference or branch name.
	Repository string // Repository is the namespace-qualified repository name.
	RemoteURL  string // RemoteURL is the HTTPS URL of the repository.
}

// String returns the human-readable string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindGitHub:
		return "github"
	case KindGitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}

// Detect infers the CI provider from well-known environment variables and
// returns the associated repository metadata. An Environment with
// KindUnknown means no supported provider was recognized.
func Detect() Environment {
	return detectWithLookup(os.Getenv)
}

func detectWithLookup(lookup LookupFunc) Environment {
	if lookup == nil {
		lookup = os.Getenv
	}

	if lookup("GITHUB_REPOSITORY") != "" || lookup("GITHUB_SHA") != "" {
		return extractGitHub(lookup)
	}
	if strings.EqualFold(lookup("GITLAB_CI"), "true") || lookup("CI_PROJECT_PATH") != "" {
		return extractGitLab(lookup)
	}
	return Environment{Kind: KindUnknown}
}

// extractGitHub builds the Environment from GitHub Actions variables.
// See https://docs.github.com/en/actions/reference/workflows-and-actions/variables.
func extractGitHub(lookup LookupFunc) Environment {
	active, _ := strconv.ParseBool(lookup("CI"))

	fullName := lookup("GITHUB_REPOSITORY")
	serverURL := lookup("GITHUB_SERVER_URL")
	remote := ""
	if serverURL != "" && fullName != "" {
		remote = serverURL + "/" + fullName
	}

	return Environment{
		Kind:       KindGitHub,
		Active:     active,
		Commit:     lookup("GITHUB_SHA"),
		Branch:     lookup("GITHUB_REF_NAME"),
		Repository: fullName,
		RemoteURL:  remote,
	}
}

// extractGitLab builds the Environment from GitLab CI variables.
// See https://docs.gitlab.com/ci/variables/predefined_variables/.
func extractGitLab(lookup LookupFunc) Environment {
	active, _ := strconv.ParseBool(lookup("CI"))

	branch := lookup("CI_COMMIT_REF_NAME")
	if tag := lookup("CI_COMMIT_TAG"); tag != "" {
		branch = tag
	}

	return Environment{
		Kind:       KindGitLab,
		Active:     active,
		Commit:     lookup("CI_COMMIT_SHA"),
		Branch:     branch,
		Repository: lookup("CI_PROJECT_PATH"),
		RemoteURL:  lookup("CI_PROJECT_URL"),
	}
}
