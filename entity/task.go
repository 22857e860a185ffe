package entity

import (
	"time"

	"daily_pilot/constant"
)

// ========== 任务库 ==========

// 任务库的 Notion 属性名
const (
	TaskPropName       = "Name"
	TaskPropDate       = "Date"
	TaskPropStatus     = "Status"
	TaskPropType       = "Type"
	TaskPropAutoRoll   = "Auto-roll?"
	TaskPropRollovers  = "Rollovers"
	TaskPropComplexity = "Complexity"
	TaskPropPlannedMin = "Planned duration (min)"
	TaskPropActualMin  = "Actual duration (min)"
	TaskPropAIComment  = "AI comment"
)

// Task 任务记录。由播种器或手工创建，
// auto-roll 改 Date/Rollovers，点评器写 AIComment，系统从不删除。
type Task struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Date       time.Time           `json:"date"`
	Status     constant.TaskStatus `json:"status"`
	Type       constant.TaskType   `json:"type"`
	AutoRoll   bool                `json:"auto_roll"`
	Rollovers  int                 `json:"rollovers"`
	Complexity int                 `json:"complexity"`
	PlannedMin int                 `json:"planned_min"`
	ActualMin  int                 `json:"actual_min"`
	AIComment  string              `json:"ai_comment"`
}

// IsDone 任务是否已完成
func (t *Task) IsDone() bool {
	return t.Status == constant.TaskStatusDone
}
