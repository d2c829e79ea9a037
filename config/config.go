package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// RedisConfig is shared by the main store and the push subscription,
// which usually point at different databases of the same server.
type RedisConfig struct {
	Ip       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Db       int    `yaml:"db"`
	Username string `yaml:"username"`
	Passwd   string `yaml:"passwd"`
}

type Config struct {
	Env struct {
		BotApiKey   string `yaml:"bot_api_key"`
		Debug       string `yaml:"debug"`
		TgHook      string `yaml:"tg_hook"`
		WebHookOpen bool   `yaml:"web_hook_open"`
		TgHookToken string `yaml:"tg_hook_token"`
		LocalHost   string `yaml:"local_host"`
	} `yaml:"env"`

	Vybe struct {
		ApiEndpoint string `yaml:"api_endpoint"`
		ApiKey      string `yaml:"api_key"`
		CacheTtlSec int    `yaml:"cache_ttl_sec"`
		AlphaUrl    string `yaml:"alpha_url"`
		DocsUrl     string `yaml:"docs_url"`
	} `yaml:"vybe"`

	Redis RedisConfig `yaml:"redis"`

	RedisPush struct {
		RedisConfig `yaml:",inline"`
		MessageCh   string `yaml:"message_channel"`
	} `yaml:"redis_push"`
}

var YmlConfig *Config

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func init() {
	confFilePath := os.Getenv("VYBEBOT_APP_ENV")
	explicit := confFilePath != ""
	if !explicit {
		confFilePath = "./prod.yml"
	}

	cfg, err := LoadConfig(confFilePath)
	if err != nil {
		// a missing default file leaves zero values, bot startup
		// reports the absent credentials itself
		if explicit || !os.IsNotExist(err) {
			panic(err)
		}
		cfg = &Config{}
	}
	YmlConfig = cfg
}
