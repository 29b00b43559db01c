package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/application/usecase"
	"github.com/bnema/browse/internal/cli"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/url"
	"github.com/bnema/browse/internal/infrastructure/filesystem"
	"github.com/bnema/browse/internal/infrastructure/mimesniff"
	"github.com/bnema/browse/internal/infrastructure/notification"
	"github.com/bnema/browse/internal/infrastructure/transfer"
	"github.com/bnema/browse/internal/logging"
)

const (
	progressRefresh = 500 * time.Millisecond
	cancelTimeout   = 10 * time.Second
)

var (
	downloadWait  bool
	downloadQuiet bool
)

var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download a URL into the journal",
	Long: `Download a URL into the journal.

The file is fetched into the private instance directory and handed to
the journal when complete. Ctrl-C cancels the transfer and removes the
partial file and its journal record.

With --wait the completion notice stays open and asks whether to show
the new journal entry. Otherwise it is answered with OK.`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

var downloadListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal objects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		store, err := app.Journal()
		if err != nil {
			return err
		}
		objects, err := store.List(app.Ctx())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(objects) == 0 {
			_, _ = fmt.Fprintln(out, app.Theme.Subtle.Render("The journal is empty."))
			return nil
		}
		for _, obj := range objects {
			_, _ = fmt.Fprintf(out, "%s %s\n", app.Theme.Subtle.Render(obj.ID), app.Theme.JournalLine(obj))
		}
		return nil
	},
}

var downloadDeleteCmd = &cobra.Command{
	Use:   "delete <object-id>",
	Short: "Delete a journal object and its file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		store, err := app.Journal()
		if err != nil {
			return err
		}
		return store.Delete(app.Ctx(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.AddCommand(downloadListCmd, downloadDeleteCmd)

	downloadCmd.Flags().BoolVar(&downloadWait, "wait", false, "ask before closing the completion notice")
	downloadCmd.Flags().BoolVarP(&downloadQuiet, "quiet", "q", false, "do not print progress")
}

func runDownload(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(app.Ctx(), "download")
	source := url.Normalize(args[0])

	store, err := app.Journal()
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	notifier := notification.New(func(_ port.NotificationID, notice port.Notice) {
		_, _ = fmt.Fprintln(stderr, app.Theme.Notice(notice))
	})

	cfg := app.Config.Downloads
	engine := transfer.NewEngine(transfer.Config{
		HeaderTimeout: cfg.RequestTimeout,
		UserAgent:     cfg.UserAgent,
	})
	fs := filesystem.New()
	registry := usecase.NewDownloadRegistry()

	out := cmd.OutOrStdout()
	ctrl := usecase.NewDownloadController(ctx, engine.NewTransfer(source), usecase.DownloadDeps{
		Store:    store,
		Notifier: notifier,
		Sniffer:  mimesniff.New(),
		FS:       fs,
		Registry: registry,
		Prepare:  usecase.NewPrepareDownloadUseCase(fs),
		ShowInJournal: func(ctx context.Context, objectID string) {
			showJournalObject(ctx, app, out, objectID)
		},
	}, usecase.DownloadConfig{
		InstanceDir:          cfg.InstanceDir,
		StartedNoticeTimeout: cfg.StartedNoticeTimeout,
		ProgressMinPercent:   cfg.ProgressMinPercent,
		ProgressMinInterval:  cfg.ProgressMinInterval,
		NotifyErrors:         cfg.NotifyErrors,
	})

	logging.FromContext(ctx).Info().
		Str("download_id", ctrl.ID()).
		Str("domain", url.ExtractDomain(source)).
		Msg("starting download")

	if err := ctrl.Start(ctx); err != nil {
		return fmt.Errorf("start download: %w", err)
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go cancelOnInterrupt(ctx, sigCtx, ctrl, registry)

	waitWithProgress(ctrl, app, stderr)
	// Ctrl-C behaves normally again while the completion prompt is open.
	stop()

	rec := ctrl.Record()
	switch rec.Status {
	case entity.DownloadFinished:
		show := false
		if downloadWait {
			show = askYesNo(cmd.InOrStdin(), stderr, "Show in journal? [y/N] ")
		}
		ctrl.Acknowledge(ctx, show)
		if !show {
			_, _ = fmt.Fprintf(out, "%s %s\n", app.Theme.DownloadStatus(rec), rec.ObjectID)
		}
		return nil
	case entity.DownloadCancelled:
		_, _ = fmt.Fprintln(out, app.Theme.DownloadStatus(rec))
		return nil
	default:
		return fmt.Errorf("download failed: %w", ctrl.Err())
	}
}

// cancelOnInterrupt cancels ctrl and every registered download once
// interrupted is done, unless ctrl reached a terminal state first.
func cancelOnInterrupt(ctx, interrupted context.Context, ctrl *usecase.DownloadController, registry *usecase.DownloadRegistry) {
	select {
	case <-interrupted.Done():
	case <-ctrl.Done():
		return
	}
	select {
	case <-ctrl.Done():
		return
	default:
	}

	logging.FromContext(ctx).Info().Str("download_id", ctrl.ID()).Msg("interrupted, cancelling")
	cancelCtx, cancel := context.WithTimeout(ctx, cancelTimeout)
	defer cancel()
	// A download still waiting for response headers is not registered yet.
	ctrl.Cancel(cancelCtx)
	if err := registry.CancelAll(cancelCtx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("cancel did not complete")
	}
}

func waitWithProgress(ctrl *usecase.DownloadController, app *cli.App, w io.Writer) {
	if downloadQuiet {
		<-ctrl.Done()
		return
	}

	ticker := time.NewTicker(progressRefresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctrl.Done():
			_, _ = fmt.Fprint(w, "\r\033[K")
			return
		case <-ticker.C:
			rec := ctrl.Record()
			if rec.Status == entity.DownloadStarted {
				_, _ = fmt.Fprintf(w, "\r\033[K%s %s", app.Theme.DownloadStatus(rec), rec.SuggestedFilename)
			}
		}
	}
}

func showJournalObject(ctx context.Context, app *cli.App, w io.Writer, objectID string) {
	store, err := app.Journal()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("journal unavailable")
		return
	}
	obj, err := store.Get(ctx, objectID)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("object_id", objectID).Msg("journal object not found")
		return
	}
	_, _ = fmt.Fprintln(w, app.Theme.JournalLine(obj))
}

func askYesNo(in io.Reader, w io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(w, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
