package strength

// Tier is a qualitative strength label with its indicator color
type Tier struct {
	MinScore int    `json:"min_score"`
	Label    string `json:"label"`
	Color    string `json:"color"`
}

// Tiers are ordered by ascending MinScore and start at zero.
var tiers = []Tier{
	{MinScore: 0, Label: "Too Weak", Color: "#ff4444"},
	{MinScore: 2, Label: "Weak", Color: "#ffbb33"},
	{MinScore: 3, Label: "Medium", Color: "#00C851"},
	{MinScore: 4, Label: "Strong", Color: "#007E33"},
	{MinScore: 5, Label: "Very Strong", Color: "#003311"},
}

// Tiers returns the tier table ordered by MinScore
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierFor returns the tier with the greatest MinScore not above score.
// Only a score of zero (or below) is Too Weak; any met requirement lifts the
// password to at least the second tier.
func TierFor(score int) Tier {
	if score <= 0 {
		return tiers[0]
	}
	selected := tiers[1]
	for _, t := range tiers[1:] {
		if t.MinScore > score {
			break
		}
		selected = t
	}
	return selected
}
