package reply

import (
	"slices"

	"github.com/easeaico/moodmate/internal/types"
)

// nextFollowUp advances the mood's question sequence by one step. It starts at the first
// question when nothing was asked before, and gives up when the last question is not in
// this mood's sequence or was already the final one.
func nextFollowUp(mood types.Mood, last string, asked bool) (string, bool) {
	seq := followUps[mood]
	if len(seq) == 0 {
		return "", false
	}
	if !asked {
		return seq[0], true
	}
	idx := slices.Index(seq, last)
	if idx < 0 || idx == len(seq)-1 {
		return "", false
	}
	return seq[idx+1], true
}
