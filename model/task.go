package model

import (
	"time"

	"daily_pilot/constant"
)

// ========== 任务查询条件 ==========

// TaskQueryCondition 任务查询条件。
// 远端库只支持 Date 等值、Name（title）等值，以及两者的 AND，
// 这里的字段组合就是全部可表达的过滤能力。
type TaskQueryCondition struct {
	Date *time.Time `json:"date"`
	Name *string    `json:"name"`
}

// CreateTaskCondition 创建任务条件
type CreateTaskCondition struct {
	Name       string              `json:"name"`
	Date       time.Time           `json:"date"`
	Status     constant.TaskStatus `json:"status"`
	Type       constant.TaskType   `json:"type"`
	AutoRoll   bool                `json:"auto_roll"`
	Rollovers  int                 `json:"rollovers"`
	PlannedMin int                 `json:"planned_min"`
	ActualMin  int                 `json:"actual_min"`
}

// RescheduleTaskCondition 顺延任务条件（auto-roll 用）
type RescheduleTaskCondition struct {
	PageID    string    `json:"page_id"`
	Date      time.Time `json:"date"`
	Rollovers int       `json:"rollovers"`
}

// ========== 每日统计 ==========

// DailyStats 一天的任务统计，每次运行从任务快照现算，
// 只以 JSON blob 的形式随日志记录落库
type DailyStats struct {
	Total       int `json:"total"`
	Done        int `json:"done"`
	PlannedMin  int `json:"planned_min"`
	ActualMin   int `json:"actual_min"`
	DeepWorkMin int `json:"deep_work_min"`
}

// ========== AI 总结与计划 ==========

// PlanResult 大模型返回的总结与计划。
// 解析失败时降级：Summary 放清洗后的原始文本，其余为空。
type PlanResult struct {
	Summary           string   `json:"summary"`
	StrategyAlignment string   `json:"strategy_alignment"`
	PlanTomorrow      []string `json:"plan_tomorrow"`
}

// PlanTask 计划日的一条任务，通知消息和计划文档共用
type PlanTask struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PlannedMin int    `json:"planned_min"`
	Comment    string `json:"comment"`
	Advice     string `json:"advice"`
}

// ========== 每日日志 ==========

// CreateDailyLogCondition 创建每日日志条件。
// Summary / StrategyAlignment / DailyAdvice 为空时对应正文块不生成。
type CreateDailyLogCondition struct {
	Date              time.Time          `json:"date"`
	Status            constant.DayStatus `json:"status"`
	Stats             DailyStats         `json:"stats"`
	PlanTomorrow      []string           `json:"plan_tomorrow"`
	Summary           string             `json:"summary"`
	StrategyAlignment string             `json:"strategy_alignment"`
	DailyAdvice       string             `json:"daily_advice"`
}
