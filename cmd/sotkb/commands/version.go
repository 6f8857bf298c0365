package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sotkb/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sotkb version information",
	Long:  `Display version, build time, commit hash, and platform information for the sotkb binary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		return render(cmd.OutOrStdout(), info, func() pterm.TableData {
			return pterm.TableData{
				{"Field", "Value"},
				{"Version", info.Version},
				{"Commit", info.CommitHash},
				{"Built", info.BuildTime},
				{"Go", info.GoVersion},
				{"Platform", info.Platform},
			}
		})
	},
}

func init() {
	addOutputFlags(VersionCmd)
}
