// Package cli implements the terminal client's screens as cobra commands.
// Each content command is one instantiation of the fetch-cache-retry
// controller bound to its cache key and fetcher; the command renders the
// settled result, with a banner when the content came from the local
// cache instead of a fresh fetch.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	clientapi "github.com/shloka-app/shloka-server/internal/client/api"
	"github.com/shloka-app/shloka-server/internal/client/bookmarks"
	"github.com/shloka-app/shloka-server/internal/client/cache"
	"github.com/shloka-app/shloka-server/internal/client/config"
	"github.com/shloka-app/shloka-server/internal/client/controller"
)

// app holds the wired client state shared by all commands.
type app struct {
	cfg       *config.Config
	cache     *cache.Cache
	bookmarks *bookmarks.Store
	client    *clientapi.Client
	out       io.Writer

	// retry enables one manual retry after a settled error, standing in
	// for the retry button on a failure screen.
	retry bool
}

// NewRootCommand builds the shloka command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "shloka",
		Short: "Bhagavad Gita guidance for what you are feeling",
		Long: "Shloka maps emotions to moods and moods to verses from the " +
			"Bhagavad Gita.\nContent is fetched from a shloka-server and kept " +
			"in a local cache, so\nonce seen it stays readable offline.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String("api", "", "content server base URL (SHLOKA_API_URL)")
	flags.String("data-dir", config.DefaultDataDir, "directory for cache, bookmarks, and config")
	flags.Duration("timeout", 0, "network fetch timeout (default 10s)")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolVar(&a.retry, "retry", false, "retry once manually after a failed load")

	addEmotions(root, a)
	addMoods(root, a)
	addGuidance(root, a)
	addChapters(root, a)
	addChapter(root, a)
	addBookmarks(root, a)
	addBookmark(root, a)
	addCache(root, a)

	return root
}

// setup resolves configuration and wires the stores and the API client.
// Flag values win over environment variables, which win over the config
// file under the data dir.
func (a *app) setup(cmd *cobra.Command) error {
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}

	v, err := config.NewViper(dataDir)
	if err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	// The env var is SHLOKA_API_URL, not SHLOKA_API; bind it explicitly.
	if err := v.BindEnv("api", "SHLOKA_API_URL"); err != nil {
		return fmt.Errorf("bind env: %w", err)
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	a.cfg = cfg
	a.cache = cache.New(cfg.CachePath())
	a.bookmarks = bookmarks.New(cfg.BookmarksPath())
	a.client = clientapi.New(cfg.APIURL, config.InstallID(cfg.DataDir))
	a.out = cmd.OutOrStdout()

	return nil
}

// loadContent runs one screen's load: controller bound to key and fetch,
// then an optional manual retry when --retry is set and the load settled
// in error.
func loadContent[T any](cmd *cobra.Command, a *app, kind controller.Kind, key string,
	validate controller.ValidateFunc[T], fetch controller.FetchFunc[T]) controller.Result[T] {

	ctrl := controller.New[T](a.cache,
		controller.WithFetchTimeout[T](a.cfg.Timeout),
		controller.WithKind[T](kind),
		controller.WithValidator[T](validate),
	)
	defer ctrl.Close()

	res := ctrl.Load(cmd.Context(), key, fetch)
	if res.State == controller.StateError && a.retry && res.Err != nil && res.Err.Code.Retryable() {
		res = ctrl.Retry(cmd.Context())
	}
	return res
}

// resultErr converts a settled error state into the error the command
// returns after the failure screen has been rendered.
func resultErr[T any](res controller.Result[T]) error {
	if res.State != controller.StateError || res.Err == nil {
		return nil
	}
	return fmt.Errorf("load failed (%s)", res.Err.Code.Kind())
}
