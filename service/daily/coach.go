package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"daily_pilot/config"
	"daily_pilot/constant"
	"daily_pilot/entity"
	"daily_pilot/model"
	"daily_pilot/pkg/clients/llm"
	"daily_pilot/pkg/str"
	"daily_pilot/pkg/timeutil"

	"github.com/spf13/cast"
)

// Coach 封装两类模型调用：日总结+计划（长回复、JSON），单任务点评（短回复、纯文本）。
// 两个客户端共用地址和密钥，温度与 token 上限各走各的。
type Coach struct {
	summaryClient *llm.Client
	commentClient *llm.Client
}

// NewCoach 按配置创建教练
func NewCoach() *Coach {
	cfg := config.GetInstance()

	params := llm.ClientParams{
		BaseURL:   cfg.GetStringOrDefault(config.ClientChatModelAddr, constant.DefaultLLMBaseURL),
		APIKey:    cfg.GetString(config.ClientChatModelToken),
		ModelName: cfg.GetStringOrDefault(config.ClientChatModelModel, constant.DefaultLLMModel),
	}

	return &Coach{
		summaryClient: llm.NewClientWithParams(params,
			llm.WithMaxTokens(cfg.GetIntOrDefault(config.ClientChatModelMaxTokens, constant.SummaryMaxTokens)),
			llm.WithTemperature(cast.ToFloat32(cfg.GetFloat64OrDefault(config.ClientChatModelTemperature, constant.SummaryTemperature))),
		),
		commentClient: llm.NewClientWithParams(params,
			llm.WithMaxTokens(constant.CommentMaxTokens),
			llm.WithTemperature(constant.CommentTemperature),
		),
	}
}

// GenerateSummaryAndPlan 请求日总结与明日计划。
// 请求失败返回错误；回复不是合法 JSON 时降级为纯文本 summary，不算错误。
func (c *Coach) GenerateSummaryAndPlan(ctx context.Context, stats model.DailyStats, summaryDay time.Time, strategySnapshot string) (*model.PlanResult, error) {
	statsJSON, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, model.NewError(model.ErrorParams, err)
	}

	prompt := fmt.Sprintf(PromptSummaryUserTemplate,
		timeutil.FormatDay(summaryDay),
		string(statsJSON),
		strategySnapshot,
	)

	raw, err := c.summaryClient.ChatWithSystemPrompt(ctx, PromptSummarySystem, prompt)
	if err != nil {
		return nil, model.NewError(model.ErrorLLMRequest, err)
	}

	return parsePlanResult(raw), nil
}

// parsePlanResult 解析模型回复。
// 先剥掉可能的 ```json 围栏再解析；失败时整段文本清洗后当 summary。
func parsePlanResult(raw string) *model.PlanResult {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var decoded struct {
		Summary           string      `json:"summary"`
		StrategyAlignment string      `json:"strategy_alignment"`
		PlanTomorrow      interface{} `json:"plan_tomorrow"`
	}

	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return &model.PlanResult{
			Summary:           str.CleanText(raw),
			StrategyAlignment: "",
			PlanTomorrow:      []string{},
		}
	}

	// plan_tomorrow 不是数组时按空数组处理
	plan := []string{}
	if items, ok := decoded.PlanTomorrow.([]interface{}); ok {
		for _, item := range items {
			if s, ok := item.(string); ok {
				plan = append(plan, str.CleanText(s))
			}
		}
	}

	return &model.PlanResult{
		Summary:           str.CleanText(decoded.Summary),
		StrategyAlignment: str.CleanText(decoded.StrategyAlignment),
		PlanTomorrow:      plan,
	}
}

// CommentForTask 请求一条任务点评，返回清洗后的单段文本
func (c *Coach) CommentForTask(ctx context.Context, task *entity.Task) (string, error) {
	prompt := buildCommentPrompt(task)

	raw, err := c.commentClient.ChatWithSystemPrompt(ctx, PromptCommentSystem, prompt)
	if err != nil {
		return "", model.NewError(model.ErrorLLMRequest, err)
	}

	return str.CleanText(raw), nil
}

func buildCommentPrompt(task *entity.Task) string {
	taskType := task.Type.String()
	if taskType == "" {
		taskType = "-"
	}

	return fmt.Sprintf(PromptCommentUserTemplate,
		task.Name,
		taskType,
		task.Complexity,
		task.Rollovers,
		task.PlannedMin,
	)
}
