package source

import (
	"context"

	vlog "github.com/futureCreator/docuflux/internal/log"
)

// Collector resolves input arguments and gathers their contents. Every
// per-item failure is logged and skipped; one bad input never aborts the rest.
type Collector struct {
	GitHub *GitHubClient
}

// Collect gathers items for all arguments, preserving argument order.
func (c *Collector) Collect(ctx context.Context, args []string) []Item {
	var items []Item
	for _, arg := range args {
		items = append(items, c.collectOne(ctx, arg)...)
	}
	return items
}

func (c *Collector) collectOne(ctx context.Context, arg string) []Item {
	resolved := Resolve(arg)
	vlog.Debug("resolved input", "arg", arg, "kind", resolved.Kind.String())

	switch resolved.Kind {
	case KindGitHubBlob:
		it, err := c.github().FetchBlob(ctx, arg)
		if err != nil {
			vlog.Warn("skipping GitHub blob", "url", arg, "err", err)
			return nil
		}
		return []Item{it}

	case KindGitHubTree:
		items, err := c.github().FetchTree(ctx, arg)
		if err != nil {
			vlog.Warn("skipping GitHub tree", "url", arg, "err", err)
			return nil
		}
		return items

	case KindGitHubOther:
		vlog.Warn("unsupported URL format", "url", arg)
		return nil

	case KindGlob:
		items, err := LoadGlob(arg)
		if err != nil {
			vlog.Warn("skipping glob", "pattern", arg, "err", err)
			return nil
		}
		return items

	default:
		items, err := LoadPath(arg)
		if err != nil {
			vlog.Warn("skipping path", "path", arg, "err", err)
			return nil
		}
		return items
	}
}

func (c *Collector) github() *GitHubClient {
	if c.GitHub != nil {
		return c.GitHub
	}
	return &GitHubClient{}
}
