package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/url"
)

var (
	placesJSON  bool
	placesLimit int
)

var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "Search visited and bookmarked places",
}

var placesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Match URLs and titles, most visited first",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		places, err := app.Places()
		if err != nil {
			return err
		}
		found, err := places.Search(app.Ctx(), strings.Join(args, " "), placesLimit)
		if err != nil {
			return err
		}
		return printPlaces(cmd, found)
	},
}

var placesVisitCmd = &cobra.Command{
	Use:   "visit <url> [title]",
	Short: "Record a visit",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		places, err := app.Places()
		if err != nil {
			return err
		}
		place, err := places.RecordVisit(app.Ctx(), url.Normalize(args[0]), optionalArg(args, 1))
		if err != nil {
			return err
		}
		return printPlaces(cmd, []*entity.Place{place})
	},
}

var placesBookmarkCmd = &cobra.Command{
	Use:   "bookmark <url> [title]",
	Short: "Bookmark a URL",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		places, err := app.Places()
		if err != nil {
			return err
		}
		place, err := places.Bookmark(app.Ctx(), url.Normalize(args[0]), optionalArg(args, 1))
		if err != nil {
			return err
		}
		return printPlaces(cmd, []*entity.Place{place})
	},
}

var placesUnbookmarkCmd = &cobra.Command{
	Use:   "unbookmark <url>",
	Short: "Remove a bookmark and keep the visit history",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		places, err := app.Places()
		if err != nil {
			return err
		}
		return places.Unbookmark(app.Ctx(), url.Normalize(args[0]))
	},
}

var placesRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently visited places",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		places, err := app.Places()
		if err != nil {
			return err
		}
		recent, err := places.Recent(app.Ctx(), placesLimit)
		if err != nil {
			return err
		}
		return printPlaces(cmd, recent)
	},
}

var placesBookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		places, err := app.Places()
		if err != nil {
			return err
		}
		marks, err := places.Bookmarks(app.Ctx())
		if err != nil {
			return err
		}
		return printPlaces(cmd, marks)
	},
}

var placesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Forget a place by ID (see --json output)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid place id %q", args[0])
		}
		app, err := requireApp()
		if err != nil {
			return err
		}
		places, err := app.Places()
		if err != nil {
			return err
		}
		return places.Delete(app.Ctx(), id)
	},
}

func init() {
	rootCmd.AddCommand(placesCmd)
	placesCmd.AddCommand(placesSearchCmd, placesVisitCmd, placesBookmarkCmd, placesUnbookmarkCmd,
		placesRecentCmd, placesBookmarksCmd, placesDeleteCmd)

	placesCmd.PersistentFlags().BoolVar(&placesJSON, "json", false, "output as JSON")
	placesCmd.PersistentFlags().IntVar(&placesLimit, "limit", 0, "maximum results (0 uses places.max_results)")
}

func printPlaces(cmd *cobra.Command, places []*entity.Place) error {
	out := cmd.OutOrStdout()
	if placesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(places)
	}

	app := GetApp()
	if len(places) == 0 {
		_, _ = fmt.Fprintln(out, app.Theme.Subtle.Render("No places found."))
		return nil
	}
	for _, p := range places {
		_, _ = fmt.Fprintln(out, app.Theme.PlaceLine(p))
	}
	return nil
}

func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
