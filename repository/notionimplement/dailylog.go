package notionimplement

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"daily_pilot/entity"
	"daily_pilot/model"
	"daily_pilot/pkg/timeutil"
	"daily_pilot/repository"
)

// ========== DailyLogRepository 实现 ==========

type DailyLogRepository struct {
	client *Client
	dbID   string
}

func NewDailyLogRepository(client *Client, dbID string) repository.DailyLogRepository {
	return &DailyLogRepository{client: client, dbID: dbID}
}

func (r *DailyLogRepository) Create(ctx context.Context, cond *model.CreateDailyLogCondition) (string, error) {
	if cond == nil {
		return "", model.NewError(model.ErrorParams, nil)
	}

	rawStats, err := json.Marshal(cond.Stats)
	if err != nil {
		return "", model.NewError(model.ErrorParams, err)
	}

	planText := ""
	if len(cond.PlanTomorrow) > 0 {
		items := make([]string, 0, len(cond.PlanTomorrow))
		for _, p := range cond.PlanTomorrow {
			items = append(items, "- "+p)
		}
		planText = strings.Join(items, "\n")
	}

	props := properties{
		entity.DailyLogPropName:        titleProp(fmt.Sprintf("Day %s", timeutil.FormatDay(cond.Date))),
		entity.DailyLogPropDate:        dateProp(cond.Date),
		entity.DailyLogPropStatus:      selectProp(cond.Status.String()),
		entity.DailyLogPropTotalTasks:  numberProp(cond.Stats.Total),
		entity.DailyLogPropDoneTasks:   numberProp(cond.Stats.Done),
		entity.DailyLogPropPlannedMin:  numberProp(cond.Stats.PlannedMin),
		entity.DailyLogPropActualMin:   numberProp(cond.Stats.ActualMin),
		entity.DailyLogPropDeepWorkMin: numberProp(cond.Stats.DeepWorkMin),
		entity.DailyLogPropPlan:        richTextProp(planText),
		entity.DailyLogPropRawJSON:     richTextProp(string(rawStats)),
	}

	id, err := r.client.CreatePage(ctx, r.dbID, props, dailyLogBlocks(cond))
	if err != nil {
		return "", model.NewError(model.ErrorNotionCreate, err)
	}
	return id, nil
}

// dailyLogBlocks 组装日志正文，空文本对应的小节不生成
func dailyLogBlocks(cond *model.CreateDailyLogCondition) []block {
	var children []block

	if cond.Summary != "" {
		children = append(children, paragraphBlock(cond.Summary))
	}

	if cond.StrategyAlignment != "" {
		children = append(children,
			heading3Block(entity.DailyLogHeadingStrategy),
			paragraphBlock(cond.StrategyAlignment),
		)
	}

	if cond.DailyAdvice != "" {
		children = append(children,
			heading3Block(entity.DailyLogHeadingAdvice),
			paragraphBlock(cond.DailyAdvice),
		)
	}

	return children
}
