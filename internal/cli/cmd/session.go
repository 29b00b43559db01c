package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/browse/internal/application/usecase"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/session"
	"github.com/bnema/browse/internal/infrastructure/headless"
)

const defaultSessionsLimit = 20

var (
	sessionJSON        bool
	sessionLimit       int
	sessionMenuTab     int
	sessionRecord      bool
	sessionImportID    string
	sessionPruneMax    int
	sessionPruneMaxAge time.Duration
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"sessions"},
	Short:   "Manage saved tab sessions",
	Long: `View, import and export saved window sessions.

Sessions written by any earlier version are read and shown in the
current format. Tabs that cannot be restored open the home page.`,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Restore a session into a headless window and print its tabs",
	Long: `Restore a session into a headless window and print its tabs.

Without an ID the most recently saved session is shown. Use --tab to
print the back and forward menus of one tab.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionShow,
}

var sessionImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a session file of any known format",
	Long: `Import a session file of any known format.

Use "-" to read from standard input. The session is stored in the
current format under a new ID unless --id is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionImport,
}

var sessionExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Write a session in the current format to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSessionExport,
}

var sessionSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the session format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(session.Schema())
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

var sessionPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old sessions",
	Long: `Delete sessions older than --max-age, then the oldest beyond --max.

--max defaults to session.max_sessions from the config file.`,
	Args: cobra.NoArgs,
	RunE: runSessionPrune,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionListCmd, sessionShowCmd, sessionImportCmd, sessionExportCmd,
		sessionSchemaCmd, sessionDeleteCmd, sessionPruneCmd)

	sessionListCmd.Flags().BoolVar(&sessionJSON, "json", false, "output as JSON")
	sessionListCmd.Flags().IntVar(&sessionLimit, "limit", defaultSessionsLimit, "maximum sessions to show")

	sessionShowCmd.Flags().IntVar(&sessionMenuTab, "tab", 0, "print the back/forward menus of this tab (1-based)")

	sessionImportCmd.Flags().StringVar(&sessionImportID, "id", "", "store under this session ID")
	sessionImportCmd.Flags().BoolVar(&sessionRecord, "record-places", false, "add every imported entry to places")

	sessionPruneCmd.Flags().IntVar(&sessionPruneMax, "max", -1, "sessions to keep (0 keeps all)")
	sessionPruneCmd.Flags().DurationVar(&sessionPruneMaxAge, "max-age", 0, "delete sessions older than this")
}

func runSessionList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	repo, err := app.SessionRepo()
	if err != nil {
		return err
	}

	output, err := usecase.NewListSessionsUseCase(repo).Execute(app.Ctx(), sessionLimit)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if sessionJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(output.Sessions)
	}

	if len(output.Sessions) == 0 {
		_, _ = fmt.Fprintln(out, app.Theme.Subtle.Render("No saved sessions found."))
		return nil
	}
	now := time.Now()
	for _, info := range output.Sessions {
		_, _ = fmt.Fprintln(out, app.Theme.SessionLine(info, now))
	}
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	repo, err := app.SessionRepo()
	if err != nil {
		return err
	}

	var id entity.SessionID
	if len(args) == 1 {
		id = entity.SessionID(args[0])
	}

	ctx := app.Ctx()
	store := app.SessionStore()
	window := headless.NewWindow()
	output, err := usecase.NewRestoreSessionUseCase(repo, store).Execute(ctx, usecase.RestoreInput{
		SessionID: id,
		Window:    window,
	})
	if errors.Is(err, usecase.ErrSessionNotFound) && id == "" {
		return errors.New("no saved sessions")
	}
	if errors.Is(err, usecase.ErrSessionNotFound) {
		return fmt.Errorf("session %q not found", id)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ws := store.SaveWindow(ctx, window)
	_, _ = fmt.Fprintf(out, "%s %s\n",
		app.Theme.Highlight.Render(string(output.State.SessionID)),
		app.Theme.Subtle.Render(output.State.SavedAt.Format(time.DateTime)))
	_, _ = fmt.Fprintln(out, app.Theme.SessionDetail(ws))
	if len(output.Report.Fallbacks) > 0 {
		_, _ = fmt.Fprintln(out, app.Theme.TabFallbacks(output.Report.Fallbacks, "opened the home page"))
	}

	if sessionMenuTab > 0 {
		if sessionMenuTab > len(ws.Tabs) {
			return fmt.Errorf("tab %d out of range (session has %d tabs)", sessionMenuTab, len(ws.Tabs))
		}
		back, forward := session.BackForward(ws.Tabs[sessionMenuTab-1], app.Config.Session.BackForwardItems)
		_, _ = fmt.Fprintln(out, app.Theme.BackForward(back, forward))
	}
	return nil
}

func runSessionImport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	repo, err := app.SessionRepo()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	output, err := usecase.NewImportSessionUseCase(repo).Execute(ctx, usecase.ImportInput{
		SessionID: entity.SessionID(sessionImportID),
		Data:      data,
	})
	if err != nil {
		return err
	}

	if sessionRecord {
		places, err := app.Places()
		if err != nil {
			return err
		}
		ws, _, err := usecase.NormalizeSession(output.State.Data)
		if err != nil {
			return err
		}
		if err := places.RecordHistory(ctx, ws); err != nil {
			return fmt.Errorf("record places: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s %s\n",
		app.Theme.SuccessStyle.Render("imported"),
		app.Theme.Highlight.Render(string(output.State.SessionID)))
	_, _ = fmt.Fprintf(out, "  %d tabs, %d entries\n", output.State.TabCount, output.Entries)
	if len(output.Malformed) > 0 {
		_, _ = fmt.Fprintln(out, app.Theme.TabFallbacks(output.Malformed, "was stored empty"))
	}
	return nil
}

func runSessionExport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	repo, err := app.SessionRepo()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	var id entity.SessionID
	if len(args) == 1 {
		id = entity.SessionID(args[0])
	} else {
		latest, err := usecase.NewListSessionsUseCase(repo).Execute(ctx, 1)
		if err != nil {
			return err
		}
		if len(latest.Sessions) == 0 {
			return usecase.ErrSessionNotFound
		}
		id = latest.Sessions[0].SessionID
	}

	data, err := usecase.ExportSession(ctx, repo, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	repo, err := app.SessionRepo()
	if err != nil {
		return err
	}

	id := entity.SessionID(args[0])
	if err := usecase.NewRestoreSessionUseCase(repo, app.SessionStore()).DeleteSnapshot(app.Ctx(), id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Theme.WarningStyle.Render("deleted"), id)
	return nil
}

func runSessionPrune(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	repo, err := app.SessionRepo()
	if err != nil {
		return err
	}

	maxSessions := sessionPruneMax
	if maxSessions < 0 {
		maxSessions = app.Config.Session.MaxSessions
	}
	output, err := usecase.NewCleanupSessionsUseCase(repo).Execute(app.Ctx(), usecase.CleanupSessionsInput{
		MaxSessions: maxSessions,
		MaxAge:      sessionPruneMaxAge,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d sessions (%d by age, %d by count)\n",
		output.TotalDeleted(), output.DeletedByAge, output.DeletedByCount)
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
