// Package speakers manages the people presenting at events, including bulk
// import from a CSV roster with full_name, title and bio columns.
package speakers
