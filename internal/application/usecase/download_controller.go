package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/download"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/logging"
)

const (
	// DefaultStartedNoticeTimeout hides the "download started" notice.
	DefaultStartedNoticeTimeout = 9 * time.Second

	fallbackMimeType = "application/octet-stream"
)

// DownloadConfig tunes a DownloadController.
type DownloadConfig struct {
	InstanceDir          string
	StartedNoticeTimeout time.Duration
	// A progress write is skipped unless the percentage advanced by at least
	// ProgressMinPercent or ProgressMinInterval elapsed since the last write.
	// Both zero writes every notification.
	ProgressMinPercent  int
	ProgressMinInterval time.Duration
	NotifyErrors        bool
}

// DownloadDeps are the collaborators shared by all controllers.
type DownloadDeps struct {
	Store    port.ObjectStore
	Notifier port.Notifier
	Sniffer  port.ContentSniffer
	FS       port.FileSystem
	Registry *DownloadRegistry
	Prepare  *PrepareDownloadUseCase
	// ShowInJournal is called when the user asks to see a finished download.
	// Optional.
	ShowInJournal func(ctx context.Context, objectID string)
}

// DownloadController drives one transfer through its lifecycle: journal record,
// registry membership, notices and temp file cleanup. All events, whether they
// come from the engine, the user or the journal, are serialized by one mutex
// and fed to download.Transition.
type DownloadController struct {
	mu sync.Mutex

	id       string
	transfer port.Transfer
	deps     DownloadDeps
	cfg      DownloadConfig
	baseCtx  context.Context
	now      func() time.Time

	machine       download.Machine
	record        entity.DownloadRecord
	object        *entity.JournalObject
	unsubscribe   func()
	startedNotice port.NotificationID
	mimeType      string
	lastWrite     int
	lastWriteAt   time.Time
	err           error
	done          chan struct{}
}

// NewDownloadController wraps a transfer that has not been started yet. ctx
// supplies the logger used for callbacks that arrive without a context.
func NewDownloadController(
	ctx context.Context,
	transfer port.Transfer,
	deps DownloadDeps,
	cfg DownloadConfig,
) *DownloadController {
	if cfg.StartedNoticeTimeout <= 0 {
		cfg.StartedNoticeTimeout = DefaultStartedNoticeTimeout
	}
	id := uuid.NewString()
	c := &DownloadController{
		id:       id,
		transfer: transfer,
		deps:     deps,
		cfg:      cfg,
		now:      time.Now,
		machine:  download.NewMachine(),
		done:     make(chan struct{}),
		record: entity.DownloadRecord{
			ID:        id,
			SourceURI: transfer.SourceURI(),
			Status:    entity.DownloadCreated,
		},
	}
	c.baseCtx = logging.WithDownloadID(context.WithoutCancel(ctx), id)
	return c
}

// ID returns the controller's identifier.
func (c *DownloadController) ID() string {
	return c.id
}

// Done is closed when the download reaches a terminal state.
func (c *DownloadController) Done() <-chan struct{} {
	return c.done
}

// Record returns a copy of the download's observable state.
func (c *DownloadController) Record() entity.DownloadRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// State returns the current status.
func (c *DownloadController) State() entity.DownloadStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.State()
}

// Err returns the failure that ended the download, if any.
func (c *DownloadController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Start hands the controller to the transfer engine as its listener.
func (c *DownloadController) Start(ctx context.Context) error {
	c.mu.Lock()
	terminal := c.machine.Terminal()
	c.mu.Unlock()
	if terminal {
		return download.ErrTerminal
	}
	return c.transfer.Start(ctx, c)
}

// OnTransferEvent implements port.TransferListener.
func (c *DownloadController) OnTransferEvent(ctx context.Context, event port.TransferEvent) {
	ctx = logging.WithDownloadID(ctx, c.id)

	switch event.Type {
	case port.TransferStarted:
		c.handle(ctx, download.Event{Type: download.EventStarted})
	case port.TransferProgress:
		c.handle(ctx, download.Event{Type: download.EventProgress, Percent: event.Percent})
	case port.TransferFinished:
		c.handle(ctx, download.Event{Type: download.EventFinished})
	case port.TransferFailed:
		c.handle(ctx, download.Event{
			Type: download.EventFailed,
			Err:  &download.TransferError{Code: event.Code, Err: event.Err},
		})
	}
}

// Cancel aborts the download. It returns once the download is cancelled, and
// is a no-op when the download already ended.
func (c *DownloadController) Cancel(ctx context.Context) {
	c.handle(logging.WithDownloadID(ctx, c.id), download.Event{Type: download.EventCancel})
}

// Acknowledge answers the completion notice and releases local resources.
func (c *DownloadController) Acknowledge(ctx context.Context, show bool) {
	c.handle(logging.WithDownloadID(ctx, c.id), download.Event{Type: download.EventAcknowledge, Show: show})
}

func (c *DownloadController) handle(ctx context.Context, event download.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.process(ctx, event)
}

// process runs one transition. c.mu must be held.
func (c *DownloadController) process(ctx context.Context, event download.Event) {
	log := logging.FromContext(ctx)

	prev := c.machine
	next, effects := download.Transition(prev, event)
	if len(effects) == 0 && next == prev {
		log.Debug().
			Str("event", event.Type.String()).
			Str("state", string(prev.State())).
			Msg("download event ignored")
		return
	}

	c.machine = next
	c.record.Status = next.State()
	c.record.ProgressPercent = next.Progress
	if next.State() != prev.State() {
		log.Debug().
			Str("from", string(prev.State())).
			Str("to", string(next.State())).
			Str("event", event.Type.String()).
			Msg("download transition")
	}

	for _, effect := range effects {
		if err := c.apply(ctx, log, effect, event); err != nil {
			// Only destination setup can fail hard; the transfer cannot go on.
			c.transfer.Cancel()
			c.process(ctx, download.Event{Type: download.EventFailed, Err: err})
			return
		}
	}

	if next.Terminal() && !prev.Terminal() {
		c.record.FinishedAt = c.now()
		close(c.done)
	}
}

func (c *DownloadController) apply(ctx context.Context, log *zerolog.Logger, effect download.Effect, event download.Event) error {
	switch effect {
	case download.EffectPrepareDestination:
		return c.prepareDestination(ctx)
	case download.EffectCreateRecord:
		c.createRecord(ctx, log)
	case download.EffectWatchRecord:
		c.watchRecord()
	case download.EffectRegister:
		if c.deps.Registry != nil {
			c.deps.Registry.Register(c)
		}
	case download.EffectNotifyStarted:
		c.notifyStarted(ctx)
	case download.EffectWriteProgress:
		c.writeProgress(ctx, log)
	case download.EffectDismissStarted:
		if c.startedNotice != "" {
			c.deps.Notifier.Dismiss(ctx, c.startedNotice)
			c.startedNotice = ""
		}
	case download.EffectSniffContentType:
		c.sniff(log)
	case download.EffectFinalizeRecord:
		c.finalizeRecord(ctx, log)
	case download.EffectPersistRecord:
		c.persistRecord(ctx, log)
	case download.EffectNotifyCompleted:
		c.notifyCompleted(ctx)
	case download.EffectCancelTransfer:
		c.transfer.Cancel()
	case download.EffectDeleteRecord:
		c.deleteRecord(ctx, log)
	case download.EffectRemoveTempFile:
		c.removeTempFile(ctx, log)
	case download.EffectReleaseRecord:
		c.releaseRecord()
	case download.EffectDeregister:
		if c.deps.Registry != nil {
			c.deps.Registry.Deregister(c.id)
		}
	case download.EffectLogFailure:
		c.err = event.Err
		log.Error().Err(event.Err).Str("uri", logging.TruncateURL(c.record.SourceURI, 80)).Msg("download failed")
	case download.EffectNotifyFailed:
		c.notifyFailed(ctx, event.Err)
	case download.EffectShowInJournal:
		if c.deps.ShowInJournal != nil && c.record.ObjectID != "" {
			c.deps.ShowInJournal(ctx, c.record.ObjectID)
		}
	}
	return nil
}

func (c *DownloadController) prepareDestination(ctx context.Context) error {
	suggested := c.transfer.SuggestedFilename()
	out, err := c.deps.Prepare.Execute(ctx, PrepareDownloadInput{
		SuggestedFilename: suggested,
		SourceURI:         c.record.SourceURI,
		Dir:               c.cfg.InstanceDir,
	})
	if err != nil {
		return err
	}

	c.record.SuggestedFilename = suggested
	c.record.DestinationPath = out.DestinationPath
	c.record.StartedAt = c.now()
	c.transfer.SetDestination(out.DestinationPath)
	return nil
}

func (c *DownloadController) createRecord(ctx context.Context, log *zerolog.Logger) {
	obj, err := c.deps.Store.Create(ctx)
	if err != nil {
		log.Warn().Err(&download.StorageWriteError{Op: "create", Err: err}).Msg("journal record not created, download continues without it")
		return
	}

	obj.Metadata[entity.MetaTitle] = download.PlaceholderTitle(c.record.SourceURI, c.record.SuggestedFilename)
	obj.Metadata[entity.MetaProgress] = "0"
	obj.Metadata[entity.MetaKeep] = "0"
	obj.Metadata[entity.MetaMimeType] = ""
	obj.Metadata[entity.MetaSource] = c.record.SourceURI

	c.object = obj
	c.record.ObjectID = obj.ID
	c.lastWrite = 0
	c.lastWriteAt = c.now()
	c.write(ctx, log, "create", port.WriteOptions{})
}

func (c *DownloadController) watchRecord() {
	if c.object == nil {
		return
	}
	c.unsubscribe = c.deps.Store.SubscribeDeleted(c.object.ID, func(string) {
		c.handle(c.baseCtx, download.Event{Type: download.EventRecordDeleted})
	})
}

func (c *DownloadController) notifyStarted(ctx context.Context) {
	c.startedNotice = c.deps.Notifier.Show(ctx, port.Notice{
		Title:   "Download started",
		Message: download.DisplayName(c.record.SourceURI, c.record.SuggestedFilename),
		Type:    port.NotificationInfo,
		Actions: []port.NoticeAction{{ID: port.ActionCancel, Label: "Cancel"}},
		Timeout: c.cfg.StartedNoticeTimeout,
	}, func(action string) {
		if action == port.ActionCancel {
			c.Cancel(c.baseCtx)
		}
	})
}

func (c *DownloadController) writeProgress(ctx context.Context, log *zerolog.Logger) {
	if c.object == nil {
		return
	}
	percent := c.machine.Progress
	if !c.shouldWriteProgress(percent) {
		return
	}
	c.object.Metadata[entity.MetaProgress] = strconv.Itoa(percent)
	c.lastWrite = percent
	c.lastWriteAt = c.now()
	c.write(ctx, log, "progress", port.WriteOptions{})
}

func (c *DownloadController) shouldWriteProgress(percent int) bool {
	minPercent, minInterval := c.cfg.ProgressMinPercent, c.cfg.ProgressMinInterval
	if minPercent <= 0 && minInterval <= 0 {
		return true
	}
	if minPercent > 0 && percent-c.lastWrite >= minPercent {
		return true
	}
	return minInterval > 0 && c.now().Sub(c.lastWriteAt) >= minInterval
}

func (c *DownloadController) sniff(log *zerolog.Logger) {
	c.mimeType = fallbackMimeType
	if c.deps.Sniffer == nil || c.record.DestinationPath == "" {
		return
	}
	mimeType, err := c.deps.Sniffer.DetectFile(c.record.DestinationPath)
	if err != nil {
		log.Warn().Err(err).Str("path", c.record.DestinationPath).Msg("content type detection failed")
		return
	}
	c.mimeType = mimeType
}

func (c *DownloadController) finalizeRecord(ctx context.Context, log *zerolog.Logger) {
	if c.object == nil {
		return
	}
	c.object.Metadata[entity.MetaTitle] = download.DisplayName(c.record.SourceURI, c.record.SuggestedFilename)
	c.object.Metadata[entity.MetaDescription] = download.SourceDescription(c.record.SourceURI)
	c.object.Metadata[entity.MetaProgress] = "100"
	c.object.Metadata[entity.MetaMimeType] = c.mimeType
	c.object.FilePath = c.record.DestinationPath

	size, err := c.deps.FS.GetSize(ctx, c.record.DestinationPath)
	if err != nil {
		log.Warn().Err(err).Str("path", c.record.DestinationPath).Msg("download size unavailable")
		return
	}
	c.record.Size = size
	c.object.Metadata[entity.MetaSize] = strconv.FormatInt(size, 10)
}

func (c *DownloadController) persistRecord(ctx context.Context, log *zerolog.Logger) {
	if c.object == nil {
		return
	}
	c.write(ctx, log, "persist", port.WriteOptions{TransferOwnership: true})
}

// write persists c.object. Failures are logged and never change the state.
func (c *DownloadController) write(ctx context.Context, log *zerolog.Logger, op string, opts port.WriteOptions) {
	if err := c.deps.Store.Write(ctx, c.object, opts); err != nil {
		werr := &download.StorageWriteError{ObjectID: c.object.ID, Op: op, Err: err}
		log.Warn().Err(werr).Msg("journal write failed")
	}
}

func (c *DownloadController) notifyCompleted(ctx context.Context) {
	c.deps.Notifier.Show(ctx, port.Notice{
		Title:   "Download completed",
		Message: download.DisplayName(c.record.SourceURI, c.record.SuggestedFilename),
		Type:    port.NotificationSuccess,
		Actions: []port.NoticeAction{
			{ID: port.ActionShow, Label: "Show in Journal"},
			{ID: port.ActionOK, Label: "OK"},
		},
	}, func(action string) {
		c.Acknowledge(c.baseCtx, action == port.ActionShow)
	})
}

func (c *DownloadController) notifyFailed(ctx context.Context, cause error) {
	if !c.cfg.NotifyErrors {
		return
	}
	msg := download.DisplayName(c.record.SourceURI, c.record.SuggestedFilename)
	if cause != nil {
		var terr *download.TransferError
		if errors.As(cause, &terr) && terr.Err != nil {
			cause = terr.Err
		}
		msg += ": " + cause.Error()
	}
	c.deps.Notifier.Show(ctx, port.Notice{
		Title:   "Download failed",
		Message: msg,
		Type:    port.NotificationError,
		Actions: []port.NoticeAction{{ID: port.ActionOK, Label: "OK"}},
	}, func(string) {})
}

func (c *DownloadController) deleteRecord(ctx context.Context, log *zerolog.Logger) {
	if c.object == nil {
		return
	}
	// Stop listening first so our own deletion is not reported back to us.
	c.releaseWatch()
	if err := c.deps.Store.Delete(ctx, c.object.ID); err != nil {
		log.Warn().Err(&download.StorageWriteError{ObjectID: c.object.ID, Op: "delete", Err: err}).Msg("journal delete failed")
	}
	c.record.ObjectID = ""
}

func (c *DownloadController) removeTempFile(ctx context.Context, log *zerolog.Logger) {
	if c.record.DestinationPath == "" {
		return
	}
	if err := c.deps.FS.Remove(ctx, c.record.DestinationPath); err != nil {
		log.Warn().Err(err).Str("path", c.record.DestinationPath).Msg("failed to remove temporary download file")
	}
}

func (c *DownloadController) releaseWatch() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *DownloadController) releaseRecord() {
	c.releaseWatch()
	c.object = nil
}
