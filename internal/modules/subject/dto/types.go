package dto

type AddSubjectInput struct {
	Name               string
	Color              string
	Difficulty         int
	Priority           int
	TargetHoursPerWeek *float64
	TargetHoursPerDay  *float64
}

type UpdateSubjectInput struct {
	ID                 string
	Name               *string
	Color              *string
	Difficulty         *int
	Priority           *int
	TargetHoursPerWeek *float64
	TargetHoursPerDay  *float64
	ClearDailyTarget   bool
}

type SubjectOutput struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Color              string   `json:"color"`
	Difficulty         int      `json:"difficulty"`
	Priority           int      `json:"priority"`
	TargetHoursPerWeek float64  `json:"targetHoursPerWeek"`
	TargetHoursPerDay  *float64 `json:"targetHoursPerDay,omitempty"`
	DailyTarget        float64  `json:"dailyTarget"`
}
