package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/modular-docs/moddoc/internal/branding"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		display := displayVersion(buildVersion)

		if versionShort {
			fmt.Println(display)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": display,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), display, buildCommit, buildDate)
		return nil
	},
}

// displayVersion normalizes a semver build version ("v0.3.1" → "0.3.1") and
// annotates pre-releases. Development builds pass through unchanged.
func displayVersion(raw string) string {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	if v.Prerelease() != "" {
		return v.String() + " (pre-release)"
	}
	return v.String()
}
