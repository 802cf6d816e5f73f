package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shloka-app/shloka-server/internal/client/cache"
	"github.com/shloka-app/shloka-server/internal/client/controller"
	"github.com/shloka-app/shloka-server/internal/domain"
)

func addBookmarks(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "bookmarks",
		Short: "List saved verses",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Always a fresh read, so saves made by other commands show
			// up without any restart or cache step.
			list, err := a.bookmarks.List()
			if err != nil {
				return err
			}
			renderBookmarks(a.out, list)
			return nil
		},
	})
}

func addBookmark(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "bookmark <moodId>",
		Short: "Save or unsave the verse for a mood",
		Long: "Toggles the bookmark for the guidance entry of the given mood. " +
			"The entry is resolved cache-first, so toggling works offline for " +
			"any verse already seen.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moodID := args[0]
			res := loadContent(cmd, a, controller.KindDetail, cache.KeyGuidance(moodID),
				validGuidance,
				func(ctx context.Context) (domain.Guidance, error) {
					return a.client.Guidance(ctx, moodID)
				})

			if res.State == controller.StateError {
				printError(a.out, res.Err)
				return resultErr(res)
			}

			saved, err := a.bookmarks.Toggle(res.Payload)
			if err != nil {
				return fmt.Errorf("toggle bookmark: %w", err)
			}

			renderBanner(a.out, res)
			if saved {
				okText.Fprintf(a.out, "★ saved %q (%s)\n", res.Payload.Title, res.Payload.VerseReference)
			} else {
				faint.Fprintf(a.out, "removed bookmark for %q\n", res.Payload.Title)
			}
			return nil
		},
	})
}
