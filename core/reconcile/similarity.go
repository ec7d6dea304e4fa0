package reconcile

import (
	"path/filepath"
	"strings"
)

var separators = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// Normalize reduces a filename to a comparable form: the last extension is
// dropped, the rest lowercased, '_', '-' and '.' become spaces, and runs of
// whitespace collapse to one space. Normalize is idempotent.
func Normalize(filename string) string {
	name := filename
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	name = separators.Replace(strings.ToLower(name))
	return strings.Join(strings.Fields(name), " ")
}

// Similarity returns a score in [0, 1] for two filenames after normalization.
//
// The score is 2*M/T where T is the total length of both normalized names and M
// the number of characters covered by their matching blocks: the longest common
// substring is taken, then the procedure recurses on the parts to its left and
// right. Two empty names score 1.0. Arguments are put in a canonical order first
// so Similarity(a, b) == Similarity(b, a).
func Similarity(a, b string) float64 {
	na, nb := []rune(Normalize(a)), []rune(Normalize(b))
	if string(nb) < string(na) {
		na, nb = nb, na
	}
	return ratio(na, nb)
}

func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedRunes(a, b)) / float64(total)
}

type span struct{ alo, ahi, blo, bhi int }

// matchedRunes sums the sizes of all matching blocks between a and b.
func matchedRunes(a, b []rune) int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	matched := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := longestMatch(a, b2j, s)
		if k == 0 {
			continue
		}
		matched += k
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+k < s.ahi && j+k < s.bhi {
			queue = append(queue, span{i + k, s.ahi, j + k, s.bhi})
		}
	}
	return matched
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] inside s. Ties go to
// the block starting earliest in a, then earliest in b.
func longestMatch(a []rune, b2j map[rune][]int, s span) (int, int, int) {
	besti, bestj, bestk := s.alo, s.blo, 0
	j2len := map[int]int{}
	for i := s.alo; i < s.ahi; i++ {
		next := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < s.blo {
				continue
			}
			if j >= s.bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestk
}
