// Package models defines the persisted entities of the venue manager: rooms,
// events, speakers, expected uploads and venue devices, plus the typed partial
// updates accepted by the API.
package models
