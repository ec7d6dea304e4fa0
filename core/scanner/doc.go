// Package scanner enumerates candidate media files on a room's file share.
//
// A scan fails only when the root itself is missing (ErrNotFound) or unreadable
// (ErrAccess). Anything that goes wrong below the root, such as an unreadable
// subdirectory or a dangling link, is logged, counted in Result.Skipped and skipped,
// so one bad file never loses the rest of the listing.
//
// The scanner applies no deadline of its own; callers bound it with a context
// (see Config.Timeout).
package scanner
