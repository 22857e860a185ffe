package daily

import (
	"context"
	"fmt"
	"strings"

	"daily_pilot/constant"
	"daily_pilot/entity"
	"daily_pilot/pkg/str"

	log "github.com/sirupsen/logrus"
)

// 策略快照的三种占位文案：库未配置 / 查询失败 / 库为空
const (
	strategyPlaceholderUnset  = "No strategy data (strategy database id is not set)."
	strategyPlaceholderFailed = "Failed to load strategy: %v"
	strategyPlaceholderEmpty  = "Strategy is not filled in."
)

// LoadStrategySnapshot 把策略库格式化成给模型看的纯文本。
// 任何失败都降级为占位文案，不会让运行中断。
func (s *Service) LoadStrategySnapshot(ctx context.Context) string {
	if s.strategy == nil {
		return strategyPlaceholderUnset
	}

	items, err := s.strategy.List(ctx, constant.StrategySnapshotLimit)
	if err != nil {
		log.Warnf("strategy snapshot query failed: %v", err)
		return fmt.Sprintf(strategyPlaceholderFailed, err)
	}

	if len(items) == 0 {
		return strategyPlaceholderEmpty
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, formatStrategyLine(item))
	}
	return strings.Join(lines, "\n")
}

// formatStrategyLine 单条格式: "{name} [Status: S, Priority: P, Horizon: H]"，缺失字段用 "-"
func formatStrategyLine(item *entity.StrategyItem) string {
	return fmt.Sprintf("%s [Status: %s, Priority: %s, Horizon: %s]",
		str.FirstNonEmpty("Untitled", item.Name),
		orDash(item.Status),
		orDash(item.Priority),
		orDash(item.Horizon),
	)
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
