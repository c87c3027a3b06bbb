package cli

import (
	"fmt"

	"github.com/futureCreator/docuflux/internal/config"
	"github.com/futureCreator/docuflux/internal/doc"
	vlog "github.com/futureCreator/docuflux/internal/log"
	"github.com/spf13/cobra"
)

var (
	exportTitle string
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:          "export <path|glob|url>...",
	Short:        "Generate documentation and save it as structured JSON",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		vlog.Init(cfg.LogLevel, nil)

		output, err := generate(cmd.Context(), cfg, args, "json", exportTitle)
		if err != nil {
			return err
		}

		document, err := doc.Parse(output)
		if err != nil {
			return err
		}
		if err := document.Save(exportOut); err != nil {
			return fmt.Errorf("saving document: %w", err)
		}

		fmt.Printf("Documentation JSON saved to %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "Document title")
	exportCmd.Flags().StringVar(&exportOut, "out", "doc_output.json", "Output JSON file")
	_ = exportCmd.MarkFlagRequired("title")
}
