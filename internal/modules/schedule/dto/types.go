package dto

type AddSlotInput struct {
	SubjectID string
	DayOfWeek int
	StartTime string
	EndTime   string
}

type ListSlotsInput struct {
	// Day restricts the listing to one weekday when set.
	Day *int
}

type SlotOutput struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	DayOfWeek int    `json:"dayOfWeek"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}
