package model

// WinPredicate decides whether a result counts as a win for streak
// purposes. A nil predicate treats any numeric (non-failure) score as
// a win.
type WinPredicate func(Result) bool

func defaultWin(r Result) bool {
	return !r.Score.IsFailure()
}

// LongestStreak returns the longest run of consecutive puzzle numbers
// whose results satisfy the win predicate, anywhere in the timeline.
func (p *Player) LongestStreak(win WinPredicate) int {
	if win == nil {
		win = defaultWin
	}

	wins := make(map[int]struct{}, len(p.Timeline))
	for _, r := range p.Timeline {
		if win(r) {
			wins[r.PuzzleNumber] = struct{}{}
		}
	}
	if len(wins) == 0 {
		return 0
	}

	// Walk forward from each run start (a win whose predecessor is absent).
	longest := 0
	for n := range wins {
		if _, ok := wins[n-1]; ok {
			continue
		}
		length := 1
		for cur := n; ; cur++ {
			if _, ok := wins[cur+1]; !ok {
				break
			}
			length++
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}
