package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivergara/skym/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the skym version, the Go runtime it was built with and the available fuzzy engines.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		engines := make([]string, 0, len(domain.AllEngines()))
		for _, e := range domain.AllEngines() {
			engines = append(engines, e.String())
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "skym version %s\n", version)
		fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "engines: %s\n", strings.Join(engines, ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
