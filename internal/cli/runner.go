package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/futureCreator/docuflux/internal/assets"
	"github.com/futureCreator/docuflux/internal/config"
	"github.com/futureCreator/docuflux/internal/gateway"
	vlog "github.com/futureCreator/docuflux/internal/log"
	"github.com/futureCreator/docuflux/internal/source"
)

// generate is the shared path for publish and export: collect inputs, build
// the prompt from a template, and call the gateway. Configuration must be
// validated by the caller before this runs; a gateway failure is fatal.
func generate(ctx context.Context, cfg *config.Config, args []string, promptName, title string) (string, error) {
	collector := &source.Collector{}
	items := collector.Collect(ctx, args)
	if len(items) == 0 {
		vlog.Warn("no files loaded, check your paths and URLs")
	}
	fmt.Printf("Total files loaded: %d\n", len(items))

	prompt, err := assets.BuildPrompt(promptName, title, source.Aggregate(items))
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}

	client := &gateway.Client{
		BaseURL:    cfg.Endpoint(),
		JWT:        cfg.JWT(),
		HTTPClient: &http.Client{Timeout: cfg.GatewayTimeout()},
	}

	output, err := client.Generate(ctx, gateway.Request{
		Prompt:      prompt,
		Provider:    cfg.Gateway.Provider,
		Model:       cfg.Gateway.Model,
		MaxTokens:   cfg.Gateway.MaxTokens,
		Temperature: cfg.Gateway.Temperature,
		TopP:        cfg.Gateway.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("generating documentation: %w", err)
	}
	return strings.TrimSpace(output), nil
}
