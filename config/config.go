//nolint:typecheck
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"daily_pilot/constant"
	"daily_pilot/pkg/file"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	OSConfigPath      = "CONFIG_PATH"
	DefaultConfigName = "config.yaml"
	TypeYaml          = "yaml"

	AppLogLevel        = "app.log.level"
	AppLogReportcaller = "app.log.reportcaller"
	AppTimezone        = "app.timezone"

	ClientsCommonRequestLog = "clients.http.requestLog" // pkg/clients http client 是否打印请求日志

	// Notion 数据库配置
	NotionBaseURL    = "clients.notion.base_url"
	NotionAPIKey     = "clients.notion.api_key"
	NotionTasksDB    = "clients.notion.tasks_db_id"
	NotionDailyLogDB = "clients.notion.daily_log_db_id"
	NotionStrategyDB = "clients.notion.strategy_db_id"

	// 大模型调用配置
	ClientChatModelAddr        = "clients.llmModel.addr"
	ClientChatModelModel       = "clients.llmModel.model"
	ClientChatModelToken       = "clients.llmModel.token"
	ClientChatModelTemperature = "clients.llmModel.temperature"
	ClientChatModelMaxTokens   = "clients.llmModel.maxTokens"

	// 通知渠道配置
	TelegramBotToken  = "clients.telegram.bot_token"
	TelegramChatID    = "clients.telegram.chat_id"
	DiscordWebhookURL = "clients.discord.webhook_url"

	// 每日任务作业配置
	DailyAdviceFilePath = "daily.advice_file_path"
	DailyDocumentDir    = "daily.document_dir"
)

// 环境变量绑定表：部署侧（cron、CI secret）只暴露这些裸名字，
// 配置文件键和环境变量在这里对上
var envBindings = map[string]string{
	NotionAPIKey:         "NOTION_API_KEY",
	NotionTasksDB:        "TASKS_DB_ID",
	NotionDailyLogDB:     "DAILY_LOG_DB_ID",
	NotionStrategyDB:     "STRATEGY_DB_ID",
	ClientChatModelToken: "OPENAI_API_KEY",
	AppTimezone:          "TIMEZONE",
	TelegramBotToken:     "TELEGRAM_BOT_TOKEN",
	TelegramChatID:       "TELEGRAM_CHAT_ID",
	DiscordWebhookURL:    "DISCORD_WEBHOOK_URL",
	DailyAdviceFilePath:  "ADVICE_FILE_PATH",
}

var instance *config
var once sync.Once

type config struct {
	*viper.Viper
}

func GetInstance() *config {
	once.Do(func() {
		var configPath string

		envConfigPath := os.Getenv(OSConfigPath)
		if strings.EqualFold(envConfigPath, constant.EmptyString) {
			configPath = fmt.Sprintf("./%v", DefaultConfigName)
		} else {
			log.Infof("find success in constant CONFIG_PATH, use %s", envConfigPath)
			configPath = fmt.Sprintf("%v/%v", envConfigPath, DefaultConfigName)
		}

		configInstance := &config{Viper: viper.New()}
		configInstance.SetConfigType(TypeYaml)
		configInstance.SetConfigFile(configPath)

		// 定时任务通常只靠环境变量跑，config.yaml 是可选的
		if file.CheckFileIsExist(configPath) {
			if err := configInstance.ReadInConfig(); err != nil {
				panic(err)
			}
			log.Infof("loaded config file %s", configPath)
		} else {
			log.Infof("config file %s not found, using environment only", configPath)
		}

		configInstance.AutomaticEnv()
		replacer := strings.NewReplacer(".", "_")
		configInstance.SetEnvKeyReplacer(replacer)

		for key, envName := range envBindings {
			if err := configInstance.BindEnv(key, envName); err != nil {
				panic("bind env " + envName + " error: " + err.Error())
			}
		}

		instance = configInstance
	})
	return instance
}

func (c *config) GetString(key string) string {
	return c.Viper.GetString(key)
}

func (c *config) GetStringOrDefault(key string, defaultValue string) string {
	if c.IsSet(key) && c.GetString(key) != constant.EmptyString {
		return c.GetString(key)
	}

	return defaultValue
}

func (c *config) GetInt(key string) int {
	return c.Viper.GetInt(key)
}

func (c *config) GetIntOrDefault(key string, defaultValue int) int {
	if c.IsSet(key) {
		return c.GetInt(key)
	}

	return defaultValue
}

func (c *config) GetBool(key string) bool {
	return c.Viper.GetBool(key)
}

func (c *config) GetBoolOrDefault(key string, defaultValue bool) bool {
	if c.IsSet(key) {
		return c.GetBool(key)
	}

	return defaultValue
}

func (c *config) GetFloat64(key string) float64 {
	return c.Viper.GetFloat64(key)
}

func (c *config) GetFloat64OrDefault(key string, defaultValue float64) float64 {
	if c.IsSet(key) {
		return c.GetFloat64(key)
	}

	return defaultValue
}
