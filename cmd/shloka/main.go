// Package main is the shloka terminal client: emotion, mood, guidance,
// and chapter screens over a shloka-server, with a persistent local cache
// and client-side bookmarks.
package main

import (
	"fmt"
	"os"

	"github.com/shloka-app/shloka-server/internal/client/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shloka: %v\n", err)
		os.Exit(1)
	}
}
