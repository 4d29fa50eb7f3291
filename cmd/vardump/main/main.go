package main

import (
	"os"

	"github.com/arthur-debert/vardump/cmd/vardump"
	"github.com/arthur-debert/vardump/pkg/ui"
)

func main() {
	rootCmd := vardump.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Errors go to stderr, styled when it is a terminal
		renderer, rerr := ui.NewRenderer(ui.DetectFormat(os.Stderr), os.Stderr, nil)
		if rerr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(1)
	}
}
