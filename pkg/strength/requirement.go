package strength

import (
	"strings"
	"unicode/utf8"
)

// Name identifies a requirement
type Name string

// Requirement names
const (
	Length    Name = "length"
	Uppercase Name = "uppercase"
	Lowercase Name = "lowercase"
	Number    Name = "number"
	Special   Name = "special"
)

const (
	// MinLength is the shortest password that satisfies the length requirement
	MinLength = 8

	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SpecialChars   = `!@#$%^&*(),.?":{}|<>`
)

// Requirement is a single named rule a password is checked against
type Requirement struct {
	Name        Name   `json:"name"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Order       int    `json:"order"`

	check func(string) bool
}

// Check reports whether password satisfies the requirement
func (r Requirement) Check(password string) bool {
	return r.check(password)
}

var requirements = []Requirement{
	{
		Name:        Length,
		Description: "At least 8 characters",
		Suggestion:  "Make your password at least 8 characters long",
		Order:       1,
		check: func(p string) bool {
			return utf8.RuneCountInString(p) >= MinLength
		},
	},
	{
		Name:        Uppercase,
		Description: "Contains an uppercase letter",
		Suggestion:  "Add an uppercase letter (A-Z)",
		Order:       2,
		check:       containsAny(UppercaseChars),
	},
	{
		Name:        Lowercase,
		Description: "Contains a lowercase letter",
		Suggestion:  "Add a lowercase letter (a-z)",
		Order:       3,
		check:       containsAny(LowercaseChars),
	},
	{
		Name:        Number,
		Description: "Contains a number",
		Suggestion:  "Include at least one number (0-9)",
		Order:       4,
		check:       containsAny(DigitChars),
	},
	{
		Name:        Special,
		Description: "Contains a special character",
		Suggestion:  "Add a special character (!@#$%^&*)",
		Order:       5,
		check:       containsAny(SpecialChars),
	},
}

func containsAny(chars string) func(string) bool {
	return func(p string) bool {
		return strings.ContainsAny(p, chars)
	}
}

// Requirements returns the rule set in display order
func Requirements() []Requirement {
	out := make([]Requirement, len(requirements))
	copy(out, requirements)
	return out
}

// Names returns the requirement names in display order
func Names() []Name {
	names := make([]Name, len(requirements))
	for i, r := range requirements {
		names[i] = r.Name
	}
	return names
}

// EvaluateAll runs every requirement against password
func EvaluateAll(password string) map[Name]bool {
	out := make(map[Name]bool, len(requirements))
	for _, r := range requirements {
		out[r.Name] = r.Check(password)
	}
	return out
}
