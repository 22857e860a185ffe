package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTest struct {
	suite.Suite
}

func (c *ConfigTest) SetupTest() {
	// 重置单例状态（用于测试）
	instance = nil
	once = sync.Once{}
}

func (c *ConfigTest) TestEnvBindings() {
	c.T().Setenv("NOTION_API_KEY", "secret-key")
	c.T().Setenv("TASKS_DB_ID", "db-tasks")
	c.T().Setenv("DAILY_LOG_DB_ID", "db-log")
	c.T().Setenv("TIMEZONE", "Europe/Belgrade")
	c.T().Setenv("TELEGRAM_BOT_TOKEN", "bot-token")

	cfg := GetInstance()

	c.Equal("secret-key", cfg.GetString(NotionAPIKey))
	c.Equal("db-tasks", cfg.GetString(NotionTasksDB))
	c.Equal("db-log", cfg.GetString(NotionDailyLogDB))
	c.Equal("Europe/Belgrade", cfg.GetString(AppTimezone))
	c.Equal("bot-token", cfg.GetString(TelegramBotToken))

	// 没配置的键为空
	c.Equal("", cfg.GetString(NotionStrategyDB))
}

func (c *ConfigTest) TestGetOrDefault() {
	cfg := GetInstance()

	c.Equal("fallback", cfg.GetStringOrDefault("does.not.exist", "fallback"))
	c.Equal(42, cfg.GetIntOrDefault("does.not.exist", 42))
	c.True(cfg.GetBoolOrDefault("does.not.exist", true))
	c.Equal(0.4, cfg.GetFloat64OrDefault("does.not.exist", 0.4))
}

func (c *ConfigTest) TestEnvOverride() {
	c.T().Setenv("OPENAI_API_KEY", "override-token")

	cfg := GetInstance()

	c.Equal("override-token", cfg.GetString(ClientChatModelToken))
	c.Equal("override-token", cfg.GetStringOrDefault(ClientChatModelToken, "default"))
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigTest))
}
