package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/classifier"
)

type CategoryConfig struct {
	Name       string   `mapstructure:"name"`
	Extensions []string `mapstructure:"extensions"`
}

type Config struct {
	State struct {
		Path string
	}
	History struct {
		Enabled bool
		Path    string
	}
	Scanner struct {
		Sniff bool
	}
	Logging struct {
		Level string
		File  string
	}
	// 为空时使用内置分类表
	Categories []CategoryConfig
}

// Load 读取配置文件，未找到配置文件时使用默认值
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom 读取指定的配置文件，file 为空时按默认路径查找
func LoadFrom(file string) (*Config, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath("$HOME/.tidydesk")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/tidydesk")
	}

	v.SetEnvPrefix("TIDYDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("state.path", internal.DefaultStatePath)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", internal.DefaultHistoryPath)
	v.SetDefault("scanner.sniff", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, err
	}

	return &loaded, nil
}

// CategoryTable 根据配置构造分类表
func (c *Config) CategoryTable() (*classifier.Table, error) {
	if len(c.Categories) == 0 {
		return classifier.Default(), nil
	}

	categories := make([]classifier.Category, 0, len(c.Categories))
	for _, cc := range c.Categories {
		categories = append(categories, classifier.Category{
			Name:       cc.Name,
			Extensions: cc.Extensions,
		})
	}
	return classifier.NewTable(categories)
}
