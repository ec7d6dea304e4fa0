package reconcile

import "venue-manager/core/scanner"

const (
	// DefaultThreshold is the minimum similarity for a candidate match.
	DefaultThreshold = 0.6
	// SizeBonus is added to the score when file and record agree on size.
	SizeBonus = 0.2
)

// Match picks the best expected record for file. A record is a candidate when
// its filename similarity reaches threshold; its score is the similarity plus
// SizeBonus when both sizes are known and equal. The highest score wins and ties
// go to the earliest record. Records without a filename never match.
func Match(file scanner.File, records []ExpectedRecord, threshold float64) MatchResult {
	result := MatchResult{File: file}
	best := 0.0
	for _, rec := range records {
		if rec.Filename == nil {
			continue
		}
		sim := Similarity(file.Filename, *rec.Filename)
		if sim < threshold {
			continue
		}
		score := sim
		if rec.SizeBytes != nil && *rec.SizeBytes != 0 && file.Size != 0 && *rec.SizeBytes == file.Size {
			score += SizeBonus
		}
		if score > best {
			best = score
			result.RecordID = rec.ID
			result.Matched = true
			result.Score = score
			result.Similarity = sim
		}
	}
	return result
}
