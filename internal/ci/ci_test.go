package ci

import "testing"

func lookupFromMap(env map[string]string) LookupFunc {
	return func(key string) string {
		return env[key]
	}
}

func TestDetectGitHub(t *testing.T) {
	env := detectWithLookup(lookupFromMap(map[string]string{
		"CI":                "true",
		"GITHUB_REPOSITORY": "acme/widgets",
		"GITHUB_SHA":        "abc123",
		"GITHUB_REF_NAME":   "main",
		"GITHUB_SERVER_URL": "https://github.com",
	}))

	if env.Kind != KindGitHub {
		t.Fatalf("expected github kind, got %s", env.Kind)
	}
	if !env.Active {
		t.Fatal("expected active CI environment")
	}
	if env.Repository != "acme/widgets" {
		t.Fatalf("unexpected repository: %q", env.Repository)
	}
	if env.RemoteURL != "https://github.com/acme/widgets" {
		t.Fatalf("unexpected remote URL: %q", env.RemoteURL)
	}
	if env.Commit != "abc123" || env.Branch != "main" {
		t.Fatalf("unexpected commit/branch: %q/%q", env.Commit, env.Branch)
	}
}

func TestDetectGitLab(t *testing.T) {
	t.Run("branch pipeline", func(t *testing.T) {
		env := detectWithLookup(lookupFromMap(map[string]string{
			"CI":                 "true",
			"GITLAB_CI":          "true",
			"CI_PROJECT_PATH":    "group/tool",
			"CI_PROJECT_URL":     "https://gitlab.example.com/group/tool",
			"CI_COMMIT_SHA":      "def456",
			"CI_COMMIT_REF_NAME": "develop",
		}))

		if env.Kind != KindGitLab {
			t.Fatalf("expected gitlab kind, got %s", env.Kind)
		}
		if env.Repository != "group/tool" || env.Branch != "develop" {
			t.Fatalf("unexpected metadata: %+v", env)
		}
	})

	t.Run("tag pipeline prefers tag name", func(t *testing.T) {
		env := detectWithLookup(lookupFromMap(map[string]string{
			"GITLAB_CI":          "true",
			"CI_PROJECT_PATH":    "group/tool",
			"CI_COMMIT_REF_NAME": "v1.2.3",
			"CI_COMMIT_TAG":      "v1.2.3",
		}))

		if env.Branch != "v1.2.3" {
			t.Fatalf("unexpected branch: %q", env.Branch)
		}
	})
}

func TestDetectUnknown(t *testing.T) {
	env := detectWithLookup(lookupFromMap(map[string]string{"HOME": "/root"}))
	if env.Kind != KindUnknown {
		t.Fatalf("expected unknown kind, got %s", env.Kind)
	}
	if env.Active {
		t.Fatal("expected inactive environment")
	}
}
