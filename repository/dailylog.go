package repository

import (
	"context"

	"daily_pilot/model"
)

// DailyLogRepository 每日日志库接口，只创建，每次运行一条，创建后不再更新
type DailyLogRepository interface {
	// Create 创建日志记录，返回新记录 id
	Create(ctx context.Context, cond *model.CreateDailyLogCondition) (string, error)
}
