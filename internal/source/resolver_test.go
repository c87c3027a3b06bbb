package source

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"https://github.com/org/repo/blob/main/src/x.py", KindGitHubBlob},
		{"https://github.com/org/repo/tree/main/src", KindGitHubTree},
		{"http://github.com/org/repo/tree/main", KindGitHubTree},
		{"https://github.com/org/repo", KindGitHubOther},
		{"https://example.com/page", KindGitHubOther},
		{"src/*.py", KindGlob},
		{"src/**/*.sql", KindGlob},
		{"file?.txt", KindGlob},
		{"data/[ab].csv", KindGlob},
		{"src/main.py", KindPath},
		{"/abs/path/dir", KindPath},
		{".", KindPath},
	}
	for _, tt := range tests {
		got := Resolve(tt.input)
		if got.Kind != tt.want {
			t.Errorf("Resolve(%q).Kind = %s, want %s", tt.input, got.Kind, tt.want)
		}
		if got.Raw != tt.input {
			t.Errorf("Resolve(%q).Raw = %q", tt.input, got.Raw)
		}
	}
}

func TestResolveURLPrecedence(t *testing.T) {
	// A URL containing glob metacharacters is still classified as a URL.
	got := Resolve("https://github.com/org/repo/blob/main/a[1].py")
	if got.Kind != KindGitHubBlob {
		t.Errorf("expected KindGitHubBlob, got %s", got.Kind)
	}
}
