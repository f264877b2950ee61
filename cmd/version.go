package cmd

import (
	"fmt"
	"runtime"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/grovetools/spec2wsx/cmd.version=...".
var (
	version = "dev"
	commit  = "unknown"
)

var ulogVersion = grovelogging.NewUnifiedLogger("spec2wsx.cmd.version")

// NewVersionCmd prints build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ulogVersion.Info("Version").
				Field("version", version).
				Field("commit", commit).
				Field("go", runtime.Version()).
				Pretty(fmt.Sprintf("spec2wsx %s (%s, %s)\n", version, commit, runtime.Version())).
				PrettyOnly().
				Emit()
			return nil
		},
	}
}
