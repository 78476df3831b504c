package constvars

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

const (
	CacheKeyTodayAppointmentsFormat = "guidingpath:appointments:today:%s"
	CacheKeyDashboardReportFormat   = "guidingpath:dashboard:report:%s"
	LockKeyTodayCacheWarmer         = "guidingpath:worker:today-cache:leader"
)
