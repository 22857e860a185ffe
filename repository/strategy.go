package repository

import (
	"context"

	"daily_pilot/entity"
)

// StrategyRepository 策略库接口，只读
type StrategyRepository interface {
	// List 取最多 limit 条策略条目
	List(ctx context.Context, limit int) ([]*entity.StrategyItem, error)
}
