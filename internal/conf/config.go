package conf

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// 編譯時注入的 Telegram 預設值 (最後一層備援)
// go build -ldflags "-X github.com/jy02739244/Domain-AutoCheck/internal/conf.DefaultBotToken=xxx"
var (
	DefaultBotToken = ""
	DefaultChatID   = ""
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig
	MongoDB    MongoConfig
	Redis      RedisConfig
	Whois      WhoisConfig
	Telegram   TelegramConfig
	Scheduler  SchedulerConfig
	Cloudflare CloudflareConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
}

type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig 留空 URL 代表不啟用 WHOIS 快取
type RedisConfig struct {
	URL string
	TTL time.Duration
}

type WhoisConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	StructuredURL  string        `mapstructure:"structured_url"`
	EnvelopeURL    string        `mapstructure:"envelope_url"`
	RelayURL       string        `mapstructure:"relay_url"`
	RelayOriginURL string        `mapstructure:"relay_origin_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	BatchLimit     int           `mapstructure:"batch_limit"`
	Routes         []RouteConfig `mapstructure:"routes"`
}

// RouteConfig 後綴 -> provider 名稱，後綴可含 "." (co.uk)
type RouteConfig struct {
	Suffix   string `mapstructure:"suffix"`
	Provider string `mapstructure:"provider"`
}

// TelegramConfig 平台密鑰 (環境變數 TG_TOKEN / TG_ID)，優先序低於資料庫設定
type TelegramConfig struct {
	APIBase       string        `mapstructure:"api_base"`
	Interval      time.Duration `mapstructure:"interval"`
	PlatformToken string        `mapstructure:"platform_token"`
	PlatformChat  string        `mapstructure:"platform_chat"`
}

type SchedulerConfig struct {
	Enabled  bool
	Schedule string
}

type CloudflareConfig struct {
	APIToken string `mapstructure:"api_token"`
}

func LoadConfig() (*Config, error) {
	// .env 不存在是正常情況
	if err := godotenv.Load(); err == nil {
		logrus.Info("📄 [Config] 已載入 .env")
	}
	return load(viper.New(), "./config")
}

func load(v *viper.Viper, path string) (*Config, error) {
	v.AddConfigPath(path)     // 設定檔路徑
	v.SetConfigName("config") // 檔名
	v.SetConfigType("yaml")   // 格式
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // 允許讀取環境變數
	_ = v.BindEnv("telegram.platform_token", "TG_TOKEN")
	_ = v.BindEnv("telegram.platform_chat", "TG_ID")
	_ = v.BindEnv("whois.api_key", "WHOISJSON_API_KEY", "WHOIS_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Warn("⚠️ [Config] 找不到 config.yaml，使用預設值與環境變數")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	logrus.Info("設定檔讀取成功")
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "domain_autocheck")
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.ttl", 6*time.Hour)
	v.SetDefault("whois.api_key", "")
	v.SetDefault("whois.structured_url", "https://whoisjson.com/api/v1/whois")
	v.SetDefault("whois.envelope_url", "https://nic.ua/en/whois-info")
	v.SetDefault("whois.relay_url", "https://corsproxy.io/")
	v.SetDefault("whois.relay_origin_url", "https://dash.domain.digitalplat.org/whois")
	v.SetDefault("whois.timeout", 15*time.Second)
	v.SetDefault("whois.batch_limit", 5)
	v.SetDefault("telegram.api_base", "https://api.telegram.org")
	v.SetDefault("telegram.interval", 1100*time.Millisecond)
	v.SetDefault("telegram.platform_token", "")
	v.SetDefault("telegram.platform_chat", "")
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.schedule", "0 0 * * *") // 每日一次
	v.SetDefault("cloudflare.api_token", "")
}
