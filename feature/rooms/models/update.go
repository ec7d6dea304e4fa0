package models

import "time"

// RoomUpdate names every mutable room field. Nil fields are left unchanged.
type RoomUpdate struct {
	Name          *string `json:"name"`
	Capacity      *int    `json:"capacity"`
	IPAddress     *string `json:"ip_address"`
	SharePath     *string `json:"share_path"`
	ShareUsername *string `json:"share_username"`
	SharePassword *string `json:"share_password"`
}

// Columns returns the column assignments of the set fields.
func (u RoomUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Capacity != nil {
		cols["capacity"] = *u.Capacity
	}
	if u.IPAddress != nil {
		cols["ip_address"] = *u.IPAddress
	}
	if u.SharePath != nil {
		cols["share_path"] = *u.SharePath
	}
	if u.ShareUsername != nil {
		cols["share_username"] = *u.ShareUsername
	}
	if u.SharePassword != nil {
		cols["share_password"] = *u.SharePassword
	}
	return cols
}

// UploadUpdate names every mutable upload field. Nil fields are left unchanged.
type UploadUpdate struct {
	Filename      *string    `json:"filename"`
	RoomID        *uint      `json:"room_id"`
	SessionDate   *time.Time `json:"session_date"`
	SizeBytes     *int64     `json:"size_bytes"`
	HasVideo      *bool      `json:"has_video"`
	HasAudio      *bool      `json:"has_audio"`
	NeedsInternet *bool      `json:"needs_internet"`
	Delivered     *bool      `json:"delivered"`
}

// Columns returns the column assignments of the set fields.
func (u UploadUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Filename != nil {
		cols["filename"] = *u.Filename
	}
	if u.RoomID != nil {
		cols["room_id"] = *u.RoomID
	}
	if u.SessionDate != nil {
		cols["session_date"] = u.SessionDate.UTC()
	}
	if u.SizeBytes != nil {
		cols["size_bytes"] = *u.SizeBytes
	}
	if u.HasVideo != nil {
		cols["has_video"] = *u.HasVideo
	}
	if u.HasAudio != nil {
		cols["has_audio"] = *u.HasAudio
	}
	if u.NeedsInternet != nil {
		cols["needs_internet"] = *u.NeedsInternet
	}
	if u.Delivered != nil {
		cols["delivered"] = *u.Delivered
	}
	return cols
}
