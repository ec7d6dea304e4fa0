package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalid marks a create or update body that fails field validation.
var ErrInvalid = errors.New("invalid input")

const speakerTitleMax = 50

// EventCreate is the body accepted when scheduling an event.
type EventCreate struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
}

// Validate checks the required fields and the time range.
func (e EventCreate) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalid)
	case e.StartTime.IsZero(), e.EndTime.IsZero():
		return fmt.Errorf("%w: start_time and end_time are required", ErrInvalid)
	case e.EndTime.Before(e.StartTime):
		return fmt.Errorf("%w: end_time is before start_time", ErrInvalid)
	}
	return nil
}

// Event builds the row to insert. Times are stored in UTC.
func (e EventCreate) Event() *Event {
	return &Event{
		Title:       strings.TrimSpace(e.Title),
		Description: e.Description,
		StartTime:   e.StartTime.UTC(),
		EndTime:     e.EndTime.UTC(),
		Location:    e.Location,
	}
}

// SpeakerCreate is the body accepted when adding a speaker.
type SpeakerCreate struct {
	FullName string `json:"full_name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
}

func (s SpeakerCreate) Validate() error {
	if strings.TrimSpace(s.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", ErrInvalid)
	}
	return validSpeakerTitle(s.Title)
}

func (s SpeakerCreate) Speaker() *Speaker {
	return &Speaker{FullName: strings.TrimSpace(s.FullName), Title: s.Title, Bio: s.Bio}
}

// SpeakerUpdate names every mutable speaker field. Nil fields are left unchanged.
type SpeakerUpdate struct {
	FullName *string `json:"full_name"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
}

func (u SpeakerUpdate) Validate() error {
	if u.FullName != nil && strings.TrimSpace(*u.FullName) == "" {
		return fmt.Errorf("%w: full_name cannot be empty", ErrInvalid)
	}
	if u.Title != nil {
		return validSpeakerTitle(*u.Title)
	}
	return nil
}

// Columns returns the column assignments of the set fields.
func (u SpeakerUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.FullName != nil {
		cols["full_name"] = strings.TrimSpace(*u.FullName)
	}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Bio != nil {
		cols["bio"] = *u.Bio
	}
	return cols
}

func validSpeakerTitle(title string) error {
	if utf8.RuneCountInString(title) > speakerTitleMax {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalid, speakerTitleMax)
	}
	return nil
}
