package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init跟read分開
init : 設置viper watch 與 onConfigChange
read : 一般讀取 需要使用讀寫鎖
*/
var configSingleton *ConfigSingleTon
var muonce sync.Once

// ConfigFileEnv overrides the default ".env" location.
const ConfigFileEnv = "CONFIG_FILE"

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort          string        `mapstructure:"SERVER_PORT"`
	ApiBaseUrl          string        `mapstructure:"API_BASE_URL"`
	ApiTimeout          time.Duration `mapstructure:"API_TIMEOUT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	Env                 string        `mapstructure:"ENV"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	RedisPassword       string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB             int           `mapstructure:"REDIS_DB"`
	CatalogCacheTTL     time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	KafkaBrokers        string        `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic          string        `mapstructure:"KAFKA_TOPIC"`
	RateLimitType       string        `mapstructure:"RATE_LIMIT_TYPE"`
	RateLimitCapacity   int           `mapstructure:"RATE_LIMIT_CAPACITY"`
	RateLimitRate       float64       `mapstructure:"RATE_LIMIT_RATE"`
	RateLimitWindow     time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	SessionIdleTTL      time.Duration `mapstructure:"SESSION_IDLE_TTL"`
	SessionCookieSecure bool          `mapstructure:"SESSION_COOKIE_SECURE"`
}

// Brokers splits the comma separated KAFKA_BROKERS value.
func (c *Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	v.SetDefault("API_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENV", "development")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_CACHE_TTL", "60s")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "storefront-events")
	v.SetDefault("RATE_LIMIT_TYPE", "token_bucket")
	v.SetDefault("RATE_LIMIT_CAPACITY", 60)
	v.SetDefault("RATE_LIMIT_RATE", 1)
	v.SetDefault("RATE_LIMIT_WINDOW", "1s")
	v.SetDefault("SESSION_IDLE_TTL", "30m")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	muonce.Do(func() {
		configSingleton = &ConfigSingleTon{}
		path := os.Getenv(ConfigFileEnv)
		if path == "" {
			path = ".env"
		}

		v := viper.New()
		cf, err := Load(v, path)
		if err != nil {
			log.Fatalf("error read config: %v", err)
		}
		configSingleton.Config = cf

		if v.ConfigFileUsed() == "" {
			return
		}
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			cf, err := unmarshal(v)
			if err != nil {
				log.Printf("failed to reload config file %s: %v", e.Name, err)
				return
			}
			configSingleton.mu.Lock()
			configSingleton.Config = cf
			configSingleton.mu.Unlock()
			log.Printf("config reloaded from %s", e.Name)
		})
	})
}

/*
單純回傳錯誤 由外部決定要不要Fatal
設定檔不存在時只讀環境變數
*/
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
