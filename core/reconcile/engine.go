package reconcile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"venue-manager/core/logger"
	"venue-manager/core/media"
	"venue-manager/core/probe"
	"venue-manager/core/scanner"

	"go.uber.org/zap"
)

// Options tune a reconciliation engine.
type Options struct {
	// Threshold is the minimum filename similarity for a match.
	Threshold float64
	// ProbeTimeout bounds the liveness check.
	ProbeTimeout time.Duration
	// ScanTimeout bounds the share walk of one room.
	ScanTimeout time.Duration
	// MountRoot holds room shares for rooms without an explicit share path.
	MountRoot string
	// Kinds optionally narrows which media kinds are scanned.
	Kinds []media.Kind
}

// Engine runs probe, scan, match and commit for one room at a time. It holds no
// per-run state, so a single Engine may serve concurrent runs for different rooms.
type Engine struct {
	store   Datastore
	prober  probe.Prober
	scanner ShareScanner
	opts    Options
	logger  *zap.Logger
	now     func() time.Time
}

// NewEngine creates an engine. Zero options fall back to package defaults.
func NewEngine(store Datastore, prober probe.Prober, sc ShareScanner, opts Options, log *zap.Logger) *Engine {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = 2 * time.Second
	}
	if opts.ScanTimeout <= 0 {
		opts.ScanTimeout = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		store:   store,
		prober:  prober,
		scanner: sc,
		opts:    opts,
		logger:  log,
		now:     time.Now,
	}
}

// SharePath resolves where the share of room is reachable on this host.
func SharePath(room *RoomEndpoint, mountRoot string) string {
	if room.SharePath != "" {
		return room.SharePath
	}
	return filepath.Join(mountRoot, room.Address)
}

// Reconcile runs one pass for req.RoomID and never returns an error: every
// failure ends up in the report's Status, Error and ErrorKind fields.
func (e *Engine) Reconcile(ctx context.Context, req Request) (report *Report) {
	start := e.now()
	report = &Report{
		RoomID:         req.RoomID,
		ScanDate:       start.UTC(),
		State:          StateInit,
		Matches:        []FileMatch{},
		Unmatched:      []scanner.File{},
		MissingUploads: []UploadSummary{},
	}
	log := e.logger.With(zap.Uint("room_id", req.RoomID))

	defer func() {
		if r := recover(); r != nil {
			log.Error("Reconciliation panicked", zap.Any("panic", r))
			e.fail(report, KindInternal, fmt.Errorf("internal error: %v", r))
		}
		runsTotal.WithLabelValues(string(report.Status)).Inc()
		runDuration.Observe(time.Since(start).Seconds())
	}()

	room, err := e.store.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return e.fail(report, KindRoomNotFound, err)
		}
		return e.fail(report, KindDatastore, fmt.Errorf("failed to load room: %w", err))
	}
	if room.Address == "" {
		return e.fail(report, KindConfig, ErrConfig)
	}
	report.IPAddress = room.Address
	log = logger.WithRoom(e.logger, room.ID, room.Address)

	report.State = StateProbing
	if !e.prober.Probe(ctx, room.Address, e.opts.ProbeTimeout) {
		log.Info("Room offline")
		report.State = StateOffline
		report.Status = StatusOffline
		return report
	}

	report.State = StateScanning
	root := SharePath(room, e.opts.MountRoot)
	report.SharePath = root

	scanCtx, cancel := context.WithTimeout(ctx, e.opts.ScanTimeout)
	defer cancel()
	result, err := e.scanner.Scan(scanCtx, root, e.opts.Kinds...)
	if err != nil {
		log.Warn("Share scan failed", zap.String("share", root), zap.Error(err))
		return e.fail(report, scanErrorKind(err), err)
	}
	report.TotalFiles = len(result.Files)
	report.SkippedFiles = result.Skipped
	filesScanned.Add(float64(len(result.Files)))

	records, err := e.store.ListExpectedRecords(ctx, req.filter())
	if err != nil {
		return e.fail(report, KindDatastore, fmt.Errorf("failed to list expected uploads: %w", err))
	}

	report.State = StateMatching
	updates := e.match(report, result.Files, records)

	if err := ctx.Err(); err != nil {
		return e.fail(report, contextKind(err), err)
	}

	if req.Commit {
		report.State = StateCommitting
		if len(updates) > 0 {
			if err := e.store.ApplyMatches(ctx, updates); err != nil {
				log.Error("Failed to commit matches", zap.Int("matches", len(updates)), zap.Error(err))
				return e.fail(report, KindCommit, fmt.Errorf("failed to commit matches: %w", err))
			}
		}
		report.Committed = true
	}

	report.State = StateDone
	report.Status = StatusSuccess
	log.Info("Reconciliation finished",
		zap.Int("files", report.TotalFiles),
		zap.Int("matched", report.MatchedUploads),
		zap.Int("unmatched", report.UnmatchedFiles),
		zap.Int("missing", len(report.MissingUploads)),
		zap.Bool("committed", report.Committed),
	)
	return report
}

// match pairs files with records in traversal order. A matched record leaves the
// pool, so each record takes at most one file.
func (e *Engine) match(report *Report, files []scanner.File, records []ExpectedRecord) []RecordUpdate {
	pool := slices.Clone(records)
	var updates []RecordUpdate
	now := e.now().UTC()

	for _, file := range files {
		m := Match(file, pool, e.opts.Threshold)
		if !m.Matched {
			report.Unmatched = append(report.Unmatched, file)
			continue
		}
		idx := slices.IndexFunc(pool, func(r ExpectedRecord) bool { return r.ID == m.RecordID })
		rec := pool[idx]
		pool = slices.Delete(pool, idx, idx+1)

		report.Matches = append(report.Matches, FileMatch{
			File:             file,
			UploadID:         rec.ID,
			ExpectedFilename: rec.Name(),
			Score:            m.Score,
			Similarity:       m.Similarity,
		})
		updates = append(updates, RecordUpdate{
			ID:        rec.ID,
			SizeBytes: file.Size,
			HasVideo:  file.HasVideo,
			HasAudio:  file.HasAudio,
			FilePath:  file.Path,
			UpdatedAt: now,
		})
	}

	for _, rec := range pool {
		report.MissingUploads = append(report.MissingUploads, summarize(rec))
	}
	report.MatchedUploads = len(report.Matches)
	report.UnmatchedFiles = len(report.Unmatched)
	filesMatched.Add(float64(len(report.Matches)))
	return updates
}

// Verify partitions the expected uploads in scope by their delivered flag without
// touching the network.
func (e *Engine) Verify(ctx context.Context, req Request) (*VerifyReport, error) {
	room, err := e.store.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	records, err := e.store.ListExpectedRecords(ctx, req.filter())
	if err != nil {
		return nil, fmt.Errorf("failed to list expected uploads: %w", err)
	}

	report := &VerifyReport{
		RoomID:         room.ID,
		RoomName:       room.Name,
		TotalExpected:  len(records),
		FoundUploads:   []UploadSummary{},
		MissingUploads: []UploadSummary{},
	}
	for _, rec := range records {
		if rec.Delivered {
			report.FoundUploads = append(report.FoundUploads, summarize(rec))
		} else {
			report.MissingUploads = append(report.MissingUploads, summarize(rec))
		}
	}
	report.Found = len(report.FoundUploads)
	report.Missing = len(report.MissingUploads)
	return report, nil
}

func (e *Engine) fail(report *Report, kind ErrorKind, err error) *Report {
	report.State = StateError
	report.Status = StatusError
	report.ErrorKind = kind
	report.Error = err.Error()
	report.Committed = false
	return report
}

func scanErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, scanner.ErrNotFound):
		return KindShareNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return contextKind(err)
	default:
		return KindShareAccess
	}
}

func contextKind(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindCancelled
}
