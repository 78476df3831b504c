package config

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	GuidingPath AppGuidingPath `mapstructure:"guiding_path"`
	Cache       AppCache       `mapstructure:"cache"`
	Worker      AppWorker      `mapstructure:"worker"`
	RabbitMQ    AppRabbitMQ    `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppGuidingPath configures the client for the upstream Guiding Path API.
type AppGuidingPath struct {
	ApiBaseUrl           string  `mapstructure:"api_base_url"`
	ApiTimeoutInSeconds  int     `mapstructure:"api_timeout_in_seconds"`
	ApiRequestsPerSecond float64 `mapstructure:"api_requests_per_second"`
	ApiBurst             int     `mapstructure:"api_burst"`
}

type AppCache struct {
	// Driver selects the cache backend: "redis" or "memory".
	Driver                        string `mapstructure:"driver"`
	DashboardReportTTLInMinutes   int    `mapstructure:"dashboard_report_ttl_in_minutes"`
	TodayAppointmentsTTLInMinutes int    `mapstructure:"today_appointments_ttl_in_minutes"`
}

type AppWorker struct {
	TodayCacheEnabled  bool   `mapstructure:"today_cache_enabled"`
	TodayCacheCronSpec string `mapstructure:"today_cache_cron_spec"`
}

type AppRabbitMQ struct {
	NotificationQueue string `mapstructure:"notification_queue"`
}
