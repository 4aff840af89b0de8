package main

import (
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"github.com/joshuapare/llkit/list"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and node layout information",
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeVersion reports the build and the in-memory size of one list node,
// which is what a heap cap is measured against.
func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "llctl %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  commit: %s\n", commit)
	fmt.Fprintf(w, "  built: %s\n", date)
	fmt.Fprintf(w, "  node size: %d bytes\n", unsafe.Sizeof(list.Node{}))
}
