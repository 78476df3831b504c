package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

var defaults = map[string]interface{}{
	"app.env":                            "development",
	"app.port":                           ":8080",
	"app.version":                        "v1",
	"app.address":                        "localhost",
	"app.timezone":                       "Asia/Jakarta",
	"app.endpoint_prefix":                "api",
	"app.max_requests":                   10,
	"app.shutdown_timeout_in_seconds":    10,
	"app.request_timeout_in_seconds":     10,
	"app.request_body_limit_in_megabyte": 2,

	"guiding_path.api_base_url":            "http://localhost:3000",
	"guiding_path.api_timeout_in_seconds":  10,
	"guiding_path.api_requests_per_second": 20.0,
	"guiding_path.api_burst":               5,

	"cache.driver":                            "redis",
	"cache.dashboard_report_ttl_in_minutes":   5,
	"cache.today_appointments_ttl_in_minutes": 10,

	"worker.today_cache_enabled":   true,
	"worker.today_cache_cron_spec": "0 7 * * 1-5",

	"rabbitmq.notification_queue": "guidingpath.appointment.notifications",
	"rabbitmq.host":               "localhost",
	"rabbitmq.port":               "5672",
	"rabbitmq.username":           "guest",
	"rabbitmq.password":           "guest",

	"mongodb.host":     "localhost",
	"mongodb.port":     "27017",
	"mongodb.username": "defaultUsername",
	"mongodb.password": "defaultPassword",
	"mongodb.db_name":  "guidingpath",

	"redis.host":     "localhost",
	"redis.port":     "6379",
	"redis.password": "",
	"redis.db":       0,

	"logger.level":                 "debug",
	"logger.output_filename":       "logger.log",
	"logger.output_error_filename": "logger_error.log",
}

// newViper reads an optional config.yaml and lets environment variables
// override every key, e.g. APP_PORT for app.port.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file, falling back to environment: %v", err)
		}
	}
	return v
}

func NewDriverConfig() *DriverConfig {
	driverConfig := new(DriverConfig)
	err := newViper().Unmarshal(driverConfig)
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}
	return driverConfig
}

func NewInternalConfig() *InternalConfig {
	internalConfig := new(InternalConfig)
	err := newViper().Unmarshal(internalConfig)
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}
	return internalConfig
}
