package models

import "time"

// Room is a venue room whose presentation machine exposes a file share.
type Room struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	Name      string `gorm:"column:name;type:varchar(255)" json:"name"`
	Capacity  *int   `gorm:"column:capacity" json:"capacity"`
	IPAddress string `gorm:"column:ip_address;type:varchar(255)" json:"ip_address"`
	// SharePath overrides <mount_root>/<ip_address> when set.
	SharePath     string    `gorm:"column:share_path;type:varchar(1024)" json:"share_path"`
	ShareUsername string    `gorm:"column:share_username;type:varchar(255)" json:"share_username,omitempty"`
	SharePassword string    `gorm:"column:share_password;type:varchar(255)" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// Event groups the sessions of one conference day or series.
type Event struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	StartTime   time.Time `gorm:"column:start_time;not null" json:"start_time"`
	EndTime     time.Time `gorm:"column:end_time;not null" json:"end_time"`
	Location    string    `gorm:"column:location;type:varchar(255)" json:"location"`
}

func (Event) TableName() string {
	return "events"
}

type Speaker struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	FullName string `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	Title    string `gorm:"column:title;type:varchar(50)" json:"title"`
	Bio      string `gorm:"column:bio;type:text" json:"bio"`
}

func (Speaker) TableName() string {
	return "speakers"
}

// Upload is an expected presentation file. It is created when a session is
// scheduled and marked delivered once a matching file turns up on the room share.
type Upload struct {
	ID            uint       `gorm:"primaryKey;column:id" json:"id"`
	EventID       uint       `gorm:"column:event_id;not null;index" json:"event_id"`
	SpeakerID     *uint      `gorm:"column:speaker_id" json:"speaker_id"`
	RoomID        *uint      `gorm:"column:room_id;index" json:"room_id"`
	SessionDate   *time.Time `gorm:"column:session_date" json:"session_date"`
	Filename      *string    `gorm:"column:filename;type:varchar(512)" json:"filename"`
	Key           string     `gorm:"column:object_key;type:varchar(1024)" json:"key"`
	ETag          string     `gorm:"column:etag;type:varchar(128)" json:"etag"`
	SizeBytes     *int64     `gorm:"column:size_bytes" json:"size_bytes"`
	HasVideo      bool       `gorm:"column:has_video;default:false" json:"has_video"`
	HasAudio      bool       `gorm:"column:has_audio;default:false" json:"has_audio"`
	NeedsInternet bool       `gorm:"column:needs_internet;default:false" json:"needs_internet"`
	Delivered     bool       `gorm:"column:delivered;default:false" json:"delivered"`
	FilePath      string     `gorm:"column:file_path;type:varchar(2048)" json:"file_path"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Upload) TableName() string {
	return "uploads"
}

// Device is a venue machine that reports in with heartbeats.
type Device struct {
	ID       uint       `gorm:"primaryKey;column:id" json:"id"`
	Name     string     `gorm:"column:name;type:varchar(255);not null;uniqueIndex" json:"name"`
	RoomID   *uint      `gorm:"column:room_id" json:"room_id"`
	Active   bool       `gorm:"column:active;default:false" json:"active"`
	LastSeen *time.Time `gorm:"column:last_seen" json:"last_seen"`
}

func (Device) TableName() string {
	return "devices"
}

// All lists every model for migrations and schema checks.
func All() []any {
	return []any{&Room{}, &Event{}, &Speaker{}, &Upload{}, &Device{}}
}
