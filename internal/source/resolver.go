package source

import "strings"

// Kind classifies a single input argument.
type Kind int

const (
	// KindPath is a plain file or directory path, resolved at access time.
	KindPath Kind = iota
	// KindGlob is a pattern containing glob metacharacters.
	KindGlob
	// KindGitHubBlob is a GitHub single-file URL containing "/blob/".
	KindGitHubBlob
	// KindGitHubTree is a GitHub directory URL containing "/tree/".
	KindGitHubTree
	// KindGitHubOther is an HTTP(S) URL of no supported shape.
	KindGitHubOther
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindGlob:
		return "glob"
	case KindGitHubBlob:
		return "github-blob"
	case KindGitHubTree:
		return "github-tree"
	case KindGitHubOther:
		return "github-other"
	}
	return "unknown"
}

// Resolved is a classified input argument.
type Resolved struct {
	Kind Kind
	Raw  string
}

// Resolve classifies one input string. Pure; no filesystem or network access.
// Precedence: HTTP(S) URLs first, then glob metacharacters, then plain path.
func Resolve(arg string) Resolved {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		switch {
		case strings.Contains(arg, "/blob/"):
			return Resolved{Kind: KindGitHubBlob, Raw: arg}
		case strings.Contains(arg, "/tree/"):
			return Resolved{Kind: KindGitHubTree, Raw: arg}
		default:
			return Resolved{Kind: KindGitHubOther, Raw: arg}
		}
	}
	if strings.ContainsAny(arg, "*?[") {
		return Resolved{Kind: KindGlob, Raw: arg}
	}
	return Resolved{Kind: KindPath, Raw: arg}
}
