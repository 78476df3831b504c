package responses

type DashboardReport struct {
	Month                string         `json:"month"`
	GeneratedAt          string         `json:"generated_at"`
	TotalAppointments    int            `json:"total_appointments"`
	TodayAppointments    int            `json:"today_appointments"`
	UpcomingAppointments int            `json:"upcoming_appointments"`
	ByStatus             map[string]int `json:"by_status"`
	ByCounselType        map[string]int `json:"by_counsel_type"`
}
