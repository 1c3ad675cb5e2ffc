package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var instance *Config

// Init 加载配置：先读 config.yaml，再用环境变量覆盖
func Init() {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// 默认值
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("prefix", "api")
	v.SetDefault("mode", string(ModeDebug))
	v.SetDefault("storage.media_dir", "./public/medien")
	v.SetDefault("storage.base_url", "/medien")
	v.SetDefault("jwt.accessexpire", 72*3600)
	v.SetDefault("log.level", "info")

	cfg := &Config{}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("读取配置文件失败: %w", err))
		}
		// 没有配置文件时仅依赖默认值和环境变量
	}
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Errorf("解析配置文件失败: %w", err))
	}

	// 环境变量覆盖，前缀 ECMS，如 ECMS_MYSQL_HOST
	if err := envconfig.Process("ecms", cfg); err != nil {
		panic(fmt.Errorf("解析环境变量失败: %w", err))
	}

	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	instance = cfg
}

// Get 获取全局配置，必须先调用 Init
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

// Use 直接注入配置，供测试使用
func Use(cfg *Config) {
	instance = cfg
}
