package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shloka-app/shloka-server/internal/client/cache"
	"github.com/shloka-app/shloka-server/internal/client/controller"
	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

func addEmotions(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "emotions",
		Short: "List the emotion categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := loadContent(cmd, a, controller.KindList, cache.KeyEmotions,
				validEmotions,
				func(ctx context.Context) ([]domain.Emotion, error) {
					return a.client.Emotions(ctx)
				})

			if res.State == controller.StateError {
				printError(a.out, res.Err)
				return resultErr(res)
			}

			renderBanner(a.out, res)
			renderEmotions(a.out, res.Payload)
			return nil
		},
	})
}

func addMoods(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "moods <emotionId>",
		Short: "List the moods under an emotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emotionID := args[0]
			res := loadContent(cmd, a, controller.KindList, cache.KeyMoods(emotionID),
				validMoods,
				func(ctx context.Context) ([]domain.Mood, error) {
					return a.client.Moods(ctx, emotionID)
				})

			if res.State == controller.StateError {
				printError(a.out, res.Err)
				return resultErr(res)
			}

			renderBanner(a.out, res)
			renderMoods(a.out, emotionID, res.Payload)
			return nil
		},
	})
}

func addGuidance(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "guidance <moodId>",
		Short: "Show the verse and guidance for a mood",
		Args:  cobra.ExactArgs(1),
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

			bookmarked, _ := a.bookmarks.Contains(res.Payload.ID)

			renderBanner(a.out, res)
			renderGuidance(a.out, res.Payload, bookmarked)
			return nil
		},
	})
}

func addChapters(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "chapters",
		Short: "List the 18 chapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := loadContent(cmd, a, controller.KindList, cache.KeyChapters,
				validChapters,
				func(ctx context.Context) ([]domain.Chapter, error) {
					return a.client.Chapters(ctx)
				})

			if res.State == controller.StateError {
				printError(a.out, res.Err)
				return resultErr(res)
			}

			renderBanner(a.out, res)
			renderChapters(a.out, res.Payload)
			return nil
		},
	})
}

func addChapter(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "chapter <number>",
		Short: "Show one chapter with its sample verses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number < 1 || number > domain.ChapterCount {
				printError(a.out, domainerrors.Validationf(
					"chapter must be a number between 1 and %d", domain.ChapterCount))
				return domainerrors.Validation("invalid chapter number")
			}

			res := loadContent(cmd, a, controller.KindDetail, cache.KeyChapter(number),
				validChapter,
				func(ctx context.Context) (domain.Chapter, error) {
					return a.client.Chapter(ctx, number)
				})

			if res.State == controller.StateError {
				printError(a.out, res.Err)
				return resultErr(res)
			}

			renderBanner(a.out, res)
			renderChapter(a.out, res.Payload)
			return nil
		},
	})
}
