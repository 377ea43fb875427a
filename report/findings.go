package report

import (
	"strings"

	"github.com/clipperhouse/uax29/sentences"
)

const findingSentences = 2

// keyFinding condenses an analysis into its leading sentences for the key
// findings table.
func keyFinding(analysis string) string {
	seg := sentences.NewSegmenter([]byte(analysis))
	var (
		parts []string
		count int
	)
	for seg.Next() && count < findingSentences {
		sentence := strings.TrimSpace(string(seg.Bytes()))
		if sentence == "" {
			continue
		}
		parts = append(parts, sentence)
		count++
	}
	if seg.Err() != nil || len(parts) == 0 {
		return strings.TrimSpace(analysis)
	}
	return strings.Join(parts, " ")
}
