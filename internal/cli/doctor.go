package cli

import (
	"fmt"

	"github.com/futureCreator/docuflux/internal/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check docuflux prerequisites and configuration",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	allOK := true

	check := func(label string, ok bool, hint string) {
		if ok {
			fmt.Printf("✅ %s\n", label)
		} else {
			fmt.Printf("❌ %s — %s\n", label, hint)
			allOK = false
		}
	}

	cfg, cfgErr := config.Load()
	check("config loadable", cfgErr == nil, fmt.Sprintf("fix config: %v", cfgErr))
	if cfgErr != nil {
		return nil
	}

	check("gateway credential set", cfg.JWT() != "", "set environment variable GATEWAY_JWT (or gateway.jwt_env)")
	check("gateway model configured", cfg.Gateway.Model != "", "set gateway.model in config.yaml")
	check("gateway endpoint resolvable", cfg.Endpoint() != "", "set GATEWAY_ENV or gateway.endpoint")

	// Confluence settings are only needed by `publish`; report them as a group.
	publishErr := cfg.ValidatePublish()
	check("Confluence publish configuration", publishErr == nil,
		fmt.Sprintf("%v (only needed for `docuflux publish`)", publishErr))

	fmt.Println()
	if allOK {
		fmt.Println("All checks passed. docuflux is ready.")
	} else {
		fmt.Println("Some checks failed. Fix the issues above before running docuflux.")
	}
	return nil
}
