package cache

import (
	"fmt"
	"guidingpath-service/internal/pkg/constvars"
	"time"
)

// TodayAppointmentsKey is the key of the today listing for the date of t.
func TodayAppointmentsKey(t time.Time) string {
	return fmt.Sprintf(constvars.CacheKeyTodayAppointmentsFormat, t.Format(constvars.LayoutDateOnly))
}

// DashboardReportKey is the key of the dashboard report for the month of t.
func DashboardReportKey(t time.Time) string {
	return fmt.Sprintf(constvars.CacheKeyDashboardReportFormat, t.Format(constvars.LayoutMonthKey))
}
