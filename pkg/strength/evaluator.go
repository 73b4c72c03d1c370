// Package strength scores passwords against a fixed set of composition rules.
//
// Evaluation is pure: the rule and tier tables are read-only, so every function
// in this package is safe for concurrent use.
package strength

// Result is the outcome of evaluating one password
type Result struct {
	Score       int      `json:"score"`
	MaxScore    int      `json:"max_score"`
	Percent     int      `json:"percent"`
	Tier        Tier     `json:"tier"`
	Passed      []Name   `json:"passed"`
	Failed      []Name   `json:"failed"`
	Suggestions []string `json:"suggestions"`
}

// Satisfied reports whether every requirement passed
func (r Result) Satisfied() bool {
	return len(r.Failed) == 0
}

// Evaluate scores password against every requirement. It accepts any string,
// including the empty one.
func Evaluate(password string) Result {
	res := Result{
		MaxScore:    len(requirements),
		Passed:      make([]Name, 0, len(requirements)),
		Failed:      make([]Name, 0, len(requirements)),
		Suggestions: make([]string, 0, len(requirements)),
	}

	for _, r := range requirements {
		if r.Check(password) {
			res.Score++
			res.Passed = append(res.Passed, r.Name)
			continue
		}
		res.Failed = append(res.Failed, r.Name)
		res.Suggestions = append(res.Suggestions, r.Suggestion)
	}

	res.Percent = res.Score * 100 / res.MaxScore
	res.Tier = TierFor(res.Score)
	return res
}
