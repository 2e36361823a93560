package util

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`

	// 存储后端选择：postgres（生产）或 file（开发/降级）
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	MigrationURL  string `mapstructure:"MIGRATION_URL"`
	FileStoreDir  string `mapstructure:"FILE_STORE_DIR"`

	RedisAddress  string `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// AI 文本解析服务配置（可选，未配置时仅用正则解析）
	AIExtractBaseURL string        `mapstructure:"AI_EXTRACT_BASE_URL"`
	AIExtractAPIKey  string        `mapstructure:"AI_EXTRACT_API_KEY"`
	AIExtractModel   string        `mapstructure:"AI_EXTRACT_MODEL"`
	AIExtractTimeout time.Duration `mapstructure:"AI_EXTRACT_TIMEOUT"`

	// 支付宝实名认证配置（未配置时实名认证返回可重试错误）
	AlipayGatewayURL string        `mapstructure:"ALIPAY_GATEWAY_URL"`
	AlipayAppID      string        `mapstructure:"ALIPAY_APP_ID"`
	AlipayPrivateKey string        `mapstructure:"ALIPAY_PRIVATE_KEY"`
	AlipayTimeout    time.Duration `mapstructure:"ALIPAY_TIMEOUT"`

	// 本地数据加密配置（举报描述等敏感信息落库加密）
	DataEncryptionKey string `mapstructure:"DATA_ENCRYPTION_KEY"`

	// 管理员手机号列表（管理操作白名单）
	AdminPhones []string `mapstructure:"ADMIN_PHONES"`

	// 风险分衰减重算周期（cron 表达式）
	RescoreCronSpec string `mapstructure:"RESCORE_CRON_SPEC"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Normalize common quoted values from .env (e.g. REDIS_PASSWORD="...")
	config.RedisPassword = trimOptionalQuotes(config.RedisPassword)
	config.AIExtractAPIKey = trimOptionalQuotes(config.AIExtractAPIKey)
	return
}

func trimOptionalQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\"")
	s = strings.TrimSuffix(s, "\"")
	s = strings.TrimPrefix(s, "'")
	s = strings.TrimSuffix(s, "'")
	return s
}
