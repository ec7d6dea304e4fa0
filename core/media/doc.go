// Package media classifies files by extension into video, audio, document or other.
//
// Containers such as mp4 and mkv set both the video and the audio flag. The media set
// used by the share scanner is the union of the three recognized groups.
package media
