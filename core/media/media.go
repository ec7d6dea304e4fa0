package media

import (
	"path/filepath"
	"strings"
)

// Kind is the coarse content category of a file.
type Kind string

const (
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
	KindOther    Kind = "other"
)

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".flv": {}, ".mkv": {}, ".webm": {}, ".m4v": {},
}

// Containers that usually carry a sound track are listed as audio too.
var audioExtensions = map[string]struct{}{
	".mp3": {}, ".wav": {}, ".aac": {}, ".m4a": {}, ".flac": {}, ".ogg": {}, ".wma": {}, ".mp4": {}, ".mkv": {},
}

var documentExtensions = map[string]struct{}{
	".ppt": {}, ".pptx": {}, ".pdf": {}, ".doc": {}, ".docx": {}, ".key": {}, ".odp": {},
}

// Classification holds the content flags derived from a filename.
type Classification struct {
	Extension  string `json:"file_extension"`
	IsVideo    bool   `json:"has_video"`
	IsAudio    bool   `json:"has_audio"`
	IsDocument bool   `json:"-"`
}

// Classify maps a filename's extension to content flags. The lookup is case-insensitive.
func Classify(filename string) Classification {
	ext := Extension(filename)
	_, video := videoExtensions[ext]
	_, audio := audioExtensions[ext]
	_, doc := documentExtensions[ext]
	return Classification{
		Extension:  ext,
		IsVideo:    video,
		IsAudio:    audio,
		IsDocument: doc,
	}
}

// Extension returns the lower-cased final extension including the dot, or "".
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// Kinds returns every kind the classification belongs to; other when none applies.
func (c Classification) Kinds() []Kind {
	var kinds []Kind
	if c.IsVideo {
		kinds = append(kinds, KindVideo)
	}
	if c.IsAudio {
		kinds = append(kinds, KindAudio)
	}
	if c.IsDocument {
		kinds = append(kinds, KindDocument)
	}
	if len(kinds) == 0 {
		kinds = append(kinds, KindOther)
	}
	return kinds
}

// Kind returns the primary kind: video before audio before document.
func (c Classification) Kind() Kind {
	return c.Kinds()[0]
}

// IsMedia reports whether the file belongs to the recognized media set.
func (c Classification) IsMedia() bool {
	return c.IsVideo || c.IsAudio || c.IsDocument
}

// Allowed reports whether the classification matches any of the allowed kinds.
// An empty allow list admits every media file.
func (c Classification) Allowed(allowed []Kind) bool {
	if len(allowed) == 0 {
		return c.IsMedia()
	}
	for _, k := range c.Kinds() {
		for _, a := range allowed {
			if k == a {
				return true
			}
		}
	}
	return false
}

// ParseKinds converts a comma separated list ("video,audio") into kinds, ignoring blanks.
func ParseKinds(s string) ([]Kind, bool) {
	var kinds []Kind
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		switch Kind(part) {
		case KindVideo, KindAudio, KindDocument, KindOther:
			kinds = append(kinds, Kind(part))
		default:
			return nil, false
		}
	}
	return kinds, true
}
