package constant

const (
	EmptyString = ""
)

// 策略快照最多取多少条记录
const (
	StrategySnapshotLimit = 50
)

// 建议文件过滤：清洗后长度在 [40, 300] 个字符之内的行才会被采用
const (
	AdviceLineMinLen = 40
	AdviceLineMaxLen = 300
)

// 大模型调用默认值（原始部署走 OpenRouter 的 deepseek）
const (
	DefaultLLMBaseURL = "https://openrouter.ai/api/v1"
	DefaultLLMModel   = "deepseek/deepseek-chat"

	SummaryMaxTokens   = 700
	SummaryTemperature = 0.4

	CommentMaxTokens   = 120
	CommentTemperature = 0.3
)

// Notion API 默认值
const (
	DefaultNotionBaseURL = "https://api.notion.com"
	NotionVersion        = "2022-06-28"
)
