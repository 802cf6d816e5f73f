package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCache(root *cobra.Command, a *app) {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the local content cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cached content (bookmarks are kept)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.cache.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "cache cleared")
			return nil
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, a.cache.Path())
			return nil
		},
	})

	root.AddCommand(cacheCmd)
}
