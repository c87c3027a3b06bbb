package cli

import (
	"fmt"
	"net/http"

	"github.com/futureCreator/docuflux/internal/config"
	"github.com/futureCreator/docuflux/internal/confluence"
	vlog "github.com/futureCreator/docuflux/internal/log"
	"github.com/futureCreator/docuflux/internal/wiki"
	"github.com/spf13/cobra"
)

var publishTitle string

var publishCmd = &cobra.Command{
	Use:          "publish <path|glob|url>...",
	Short:        "Generate documentation and publish it as a Confluence page",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.ValidatePublish(); err != nil {
			return err
		}
		vlog.Init(cfg.LogLevel, nil)

		ctx := cmd.Context()
		output, err := generate(ctx, cfg, args, "confluence", publishTitle)
		if err != nil {
			return err
		}

		wikiContent := wiki.Format(output)

		client := &confluence.Client{
			BaseURL:    cfg.Confluence.BaseURL,
			Email:      cfg.ConfluenceEmail(),
			APIToken:   cfg.ConfluenceToken(),
			HTTPClient: &http.Client{Timeout: cfg.ConfluenceTimeout()},
		}

		page, found, err := client.FindPage(ctx, publishTitle, cfg.Confluence.SpaceKey)
		if err != nil {
			return fmt.Errorf("looking up page: %w", err)
		}

		var pageID string
		if found {
			pageID, err = client.UpdatePage(ctx, page.ID, publishTitle, cfg.Confluence.SpaceKey, wikiContent, page.Version+1)
		} else {
			pageID, err = client.CreatePage(ctx, publishTitle, cfg.Confluence.SpaceKey, wikiContent)
		}
		if err != nil {
			return fmt.Errorf("publishing page: %w", err)
		}

		fmt.Printf("Confluence page updated/created successfully: %s\n", client.PageURL(pageID))
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishTitle, "title", "", "Confluence page title")
	_ = publishCmd.MarkFlagRequired("title")
}
