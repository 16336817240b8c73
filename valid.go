package mscfb

// Validation selects how much checking happens before bytes are emitted.
// Strict runs the full SAT and directory checks; permissive only keeps the
// planner's structural limits.
type Validation int

const (
	ValidationStrict     Validation = iota
	ValidationPermissive Validation = iota
)

func (v Validation) IsStrict() bool {
	return v == ValidationStrict
}

func (v Validation) String() string {
	if v.IsStrict() {
		return "strict"
	}
	return "permissive"
}
