// Package mood holds the 1..5 mood scale shared by sessions, day overrides
// and the views that render them. A rating of 0 means "no mood".
package mood

type Display struct {
	Emoji string
	Label string
	Color string
	Bg    string
}

var displays = map[int]Display{
	1: {Emoji: "😫", Label: "Terrible", Color: "#DC2626", Bg: "#FEE2E2"},
	2: {Emoji: "😕", Label: "Bad", Color: "#EA580C", Bg: "#FFEDD5"},
	3: {Emoji: "😐", Label: "Okay", Color: "#CA8A04", Bg: "#FEF9C3"},
	4: {Emoji: "😊", Label: "Good", Color: "#65A30D", Bg: "#ECFCCB"},
	5: {Emoji: "🤩", Label: "Amazing", Color: "#16A34A", Bg: "#DCFCE7"},
}

// For falls back to the "Okay" entry for ratings outside 1..5.
func For(rating int) Display {
	if d, ok := displays[rating]; ok {
		return d
	}
	return displays[3]
}

func Valid(rating int) bool {
	_, ok := displays[rating]
	return ok
}

// Resolve picks the mood of a day: a valid override wins, otherwise the
// best session mood. Zero entries in sessionMoods are ignored.
func Resolve(override int, sessionMoods []int) int {
	if Valid(override) {
		return override
	}
	best := 0
	for _, m := range sessionMoods {
		if m > best {
			best = m
		}
	}
	return best
}
