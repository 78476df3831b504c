package responses

type Slot struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

type DaySlots struct {
	Date           string `json:"date"`
	Month          string `json:"month"`
	AvailableCount int    `json:"available_count"`
	Slots          []Slot `json:"slots"`
}

type CalendarDay struct {
	Date          string `json:"date"`
	Weekday       string `json:"weekday"`
	Selectable    bool   `json:"selectable"`
	OccupiedCount int    `json:"occupied_count"`
}

type MonthCalendar struct {
	Month               string        `json:"month"`
	PreviousMonth       string        `json:"previous_month"`
	NextMonth           string        `json:"next_month"`
	CanNavigatePrevious bool          `json:"can_navigate_previous"`
	Days                []CalendarDay `json:"days"`
}
