package daily

import (
	"daily_pilot/constant"
	"daily_pilot/entity"
	"daily_pilot/model"
)

// CalculateStats 对任务快照做聚合统计。
// 缺失的数值字段在解码层已经归零，这里不再判空。
func CalculateStats(tasks []*entity.Task) model.DailyStats {
	stats := model.DailyStats{Total: len(tasks)}

	for _, t := range tasks {
		if t.IsDone() {
			stats.Done++
		}

		stats.PlannedMin += t.PlannedMin
		stats.ActualMin += t.ActualMin

		if t.Type == constant.TaskTypeDeepWork {
			stats.DeepWorkMin += t.ActualMin
		}
	}

	return stats
}

// DetermineStatus 由完成率推一天的状态：
// total 为 0 按计划算；>=0.9 超前；>=0.6 按计划；否则落后。
func DetermineStatus(stats model.DailyStats) constant.DayStatus {
	if stats.Total == 0 {
		return constant.DayStatusOnTrack
	}

	ratio := float64(stats.Done) / float64(stats.Total)
	switch {
	case ratio >= 0.9:
		return constant.DayStatusAhead
	case ratio >= 0.6:
		return constant.DayStatusOnTrack
	default:
		return constant.DayStatusBehind
	}
}
