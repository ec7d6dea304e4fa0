package reconcile

import (
	"context"
	"errors"
	"time"

	"venue-manager/core/media"
	"venue-manager/core/scanner"
)

var (
	// ErrConfig marks a room that lacks the network configuration a run needs.
	ErrConfig = errors.New("room network configuration missing")
	// ErrRoomNotFound is returned by a Datastore when the room does not exist.
	ErrRoomNotFound = errors.New("room not found")
)

// ExpectedRecord is one scheduled upload slot awaiting a delivered file.
type ExpectedRecord struct {
	ID        uint
	RoomID    uint
	EventID   uint
	Filename  *string
	SizeBytes *int64
	HasVideo  bool
	HasAudio  bool
	Delivered bool
	UpdatedAt time.Time
}

// Name returns the expected filename or "" when none was recorded.
func (r ExpectedRecord) Name() string {
	if r.Filename == nil {
		return ""
	}
	return *r.Filename
}

// Credentials are passed through to whatever mounts the share. They are opaque to
// the engine and never serialized or logged.
type Credentials struct {
	Username string `json:"-"`
	Password string `json:"-"`
}

// RoomEndpoint is the network identity of a room as read from the datastore.
type RoomEndpoint struct {
	ID          uint
	Name        string
	Address     string
	SharePath   string
	Credentials *Credentials
}

// Filter scopes which expected records take part in a run.
type Filter struct {
	RoomID      uint
	EventID     *uint
	SessionDate *time.Time
}

// RecordUpdate is the set of fields a committed match writes back.
type RecordUpdate struct {
	ID        uint
	SizeBytes int64
	HasVideo  bool
	HasAudio  bool
	FilePath  string
	UpdatedAt time.Time
}

// Datastore is the persistence collaborator of the engine.
type Datastore interface {
	// GetRoom returns the room endpoint or an error wrapping ErrRoomNotFound.
	GetRoom(ctx context.Context, id uint) (*RoomEndpoint, error)
	// ListExpectedRecords returns the records in scope, in a stable order.
	ListExpectedRecords(ctx context.Context, filter Filter) ([]ExpectedRecord, error)
	// ApplyMatches marks every record in updates as delivered, all or nothing.
	ApplyMatches(ctx context.Context, updates []RecordUpdate) error
}

// ShareScanner lists candidate files below a root.
type ShareScanner interface {
	Scan(ctx context.Context, root string, allowed ...media.Kind) (*scanner.Result, error)
}

// Request describes one reconciliation or verification run.
type Request struct {
	RoomID      uint
	EventID     *uint
	SessionDate *time.Time
	// Commit applies matches to the datastore.
	Commit bool
}

func (r Request) filter() Filter {
	return Filter{RoomID: r.RoomID, EventID: r.EventID, SessionDate: r.SessionDate}
}

// State is a step of a reconciliation run.
type State string

const (
	StateInit       State = "init"
	StateProbing    State = "probing"
	StateOffline    State = "offline"
	StateScanning   State = "scanning"
	StateMatching   State = "matching"
	StateCommitting State = "committing"
	StateDone       State = "done"
	StateError      State = "error"
)

// Status is the outcome reported to callers.
type Status string

const (
	StatusSuccess Status = "success"
	StatusOffline Status = "offline"
	StatusError   Status = "error"
)

// ErrorKind classifies a failed run so the HTTP layer can pick a status code.
type ErrorKind string

const (
	KindConfig        ErrorKind = "config"
	KindRoomNotFound  ErrorKind = "room_not_found"
	KindShareNotFound ErrorKind = "share_not_found"
	KindShareAccess   ErrorKind = "share_access"
	KindTimeout       ErrorKind = "timeout"
	KindCancelled     ErrorKind = "cancelled"
	KindDatastore     ErrorKind = "datastore"
	KindCommit        ErrorKind = "commit"
	KindBusy          ErrorKind = "busy"
	KindInternal      ErrorKind = "internal"
)

// MatchResult pairs a scanned file with at most one expected record.
type MatchResult struct {
	File       scanner.File
	RecordID   uint
	Matched    bool
	Score      float64
	Similarity float64
}

// FileMatch is one matched file in a report.
type FileMatch struct {
	scanner.File
	UploadID         uint    `json:"upload_id"`
	ExpectedFilename string  `json:"expected_filename"`
	Score            float64 `json:"score"`
	Similarity       float64 `json:"similarity"`
}

// UploadSummary describes an expected record in reports.
type UploadSummary struct {
	UploadID  uint      `json:"upload_id"`
	EventID   uint      `json:"event_id"`
	Filename  string    `json:"filename"`
	SizeBytes *int64    `json:"size_bytes"`
	HasVideo  bool      `json:"has_video"`
	HasAudio  bool      `json:"has_audio"`
	Delivered bool      `json:"delivered"`
	UpdatedAt time.Time `json:"updated_at"`
}

func summarize(r ExpectedRecord) UploadSummary {
	return UploadSummary{
		UploadID:  r.ID,
		EventID:   r.EventID,
		Filename:  r.Name(),
		SizeBytes: r.SizeBytes,
		HasVideo:  r.HasVideo,
		HasAudio:  r.HasAudio,
		Delivered: r.Delivered,
		UpdatedAt: r.UpdatedAt,
	}
}

// Report is the outcome of a reconciliation run. Every scanned file appears in
// exactly one of Matches and Unmatched; every expected record in scope appears in
// exactly one of Matches (by UploadID) and MissingUploads.
type Report struct {
	Status         Status          `json:"status"`
	RoomID         uint            `json:"room_id"`
	IPAddress      string          `json:"ip_address"`
	ScanDate       time.Time       `json:"scan_date"`
	SharePath      string          `json:"share_path,omitempty"`
	TotalFiles     int             `json:"total_files"`
	MatchedUploads int             `json:"matched_uploads"`
	UnmatchedFiles int             `json:"unmatched_files"`
	SkippedFiles   int             `json:"skipped_files"`
	Matches        []FileMatch     `json:"matches"`
	Unmatched      []scanner.File  `json:"unmatched"`
	MissingUploads []UploadSummary `json:"missing_uploads"`
	Committed      bool            `json:"committed"`
	Error          string          `json:"error,omitempty"`
	ErrorKind      ErrorKind       `json:"error_kind,omitempty"`
	// State is the last state the run reached.
	State State `json:"-"`
}

// VerifyReport partitions expected records by their persisted delivered flag.
type VerifyReport struct {
	RoomID         uint            `json:"room_id"`
	RoomName       string          `json:"room_name"`
	TotalExpected  int             `json:"total_expected"`
	Found          int             `json:"found"`
	Missing        int             `json:"missing"`
	FoundUploads   []UploadSummary `json:"found_uploads"`
	MissingUploads []UploadSummary `json:"missing_uploads"`
}
