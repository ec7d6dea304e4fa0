// Package utils provides common helpers for the venue-manager application:
// loose boolean conversion for form values, parsing of optional id and date
// query parameters, and strict JSON decoding of typed update bodies.
package utils
