package quiz

import "fmt"

// Score tallies one vote per answer into a fixed counter array and returns
// the profile of the winning axis. Ties break toward the lowest axis index:
// the scan takes the first maximum from index 0 upward, so results are
// deterministic. Answers must be one per question, each a valid axis index.
func Score(answers []int) (StyleProfile, error) {
	if len(answers) != len(Questions) {
		return StyleProfile{}, fmt.Errorf("expected %d answers, got %d", len(Questions), len(answers))
	}

	var counts [AxisCount]int
	for _, a := range answers {
		if a < 0 || a >= AxisCount {
			return StyleProfile{}, fmt.Errorf("answer %d out of range [0, %d)", a, AxisCount)
		}
		counts[a]++
	}

	winner := 0
	for axis := 1; axis < AxisCount; axis++ {
		if counts[axis] > counts[winner] {
			winner = axis
		}
	}

	return Profiles[winner], nil
}
