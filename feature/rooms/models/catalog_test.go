package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventCreate_Validate(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      EventCreate
		wantErr bool
	}{
		{"valid", EventCreate{Title: "DevConf", StartTime: start, EndTime: start.Add(time.Hour)}, false},
		{"same instant", EventCreate{Title: "DevConf", StartTime: start, EndTime: start}, false},
		{"blank title", EventCreate{Title: "  ", StartTime: start, EndTime: start}, true},
		{"missing end", EventCreate{Title: "DevConf", StartTime: start}, true},
		{"ends before start", EventCreate{Title: "DevConf", StartTime: start, EndTime: start.Add(-time.Minute)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventCreate_EventStoresUTC(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.FixedZone("CET", 60*60))
	event := EventCreate{Title: " DevConf ", StartTime: start, EndTime: start.Add(time.Hour)}.Event()

	assert.Equal(t, "DevConf", event.Title)
	assert.Equal(t, time.UTC, event.StartTime.Location())
	assert.True(t, event.StartTime.Equal(start))
}

func TestSpeakerCreate_Validate(t *testing.T) {
	assert.NoError(t, SpeakerCreate{FullName: "Ada Lovelace", Title: "Dr."}.Validate())
	assert.ErrorIs(t, SpeakerCreate{}.Validate(), ErrInvalid)
	assert.ErrorIs(t, SpeakerCreate{FullName: "Ada", Title: strings.Repeat("x", 51)}.Validate(), ErrInvalid)
}

func TestSpeakerUpdate_Columns(t *testing.T) {
	name, bio := " Grace Hopper ", ""
	u := SpeakerUpdate{FullName: &name, Bio: &bio}

	assert.NoError(t, u.Validate())
	assert.Equal(t, map[string]any{"full_name": "Grace Hopper", "bio": ""}, u.Columns())
	assert.Empty(t, SpeakerUpdate{}.Columns())

	blank := ""
	assert.ErrorIs(t, SpeakerUpdate{FullName: &blank}.Validate(), ErrInvalid)
}
