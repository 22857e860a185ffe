package constant

// =============================================
// 任务状态常量
// =============================================

// TaskStatus 任务状态类型，对应任务库 Status select 的选项名
type TaskStatus string

const (
	// TaskStatusTodo 待办
	TaskStatusTodo TaskStatus = "Todo"
	// TaskStatusDone 已完成
	TaskStatusDone TaskStatus = "Done"
)

// String 返回状态的字符串值
func (s TaskStatus) String() string {
	return string(s)
}

// =============================================
// 任务类型常量
// =============================================

// TaskType 任务类型，对应任务库 Type select 的选项名
type TaskType string

const (
	TaskTypeAdmin    TaskType = "Admin"
	TaskTypeLearning TaskType = "Learning"
	TaskTypeGym      TaskType = "Gym"
	TaskTypeDeepWork TaskType = "Deep work"
)

// String 返回类型的字符串值
func (t TaskType) String() string {
	return string(t)
}

// =============================================
// 日状态常量（完成率 vs 计划）
// =============================================

// DayStatus 一天的整体状态
type DayStatus string

const (
	// DayStatusAhead 超前：完成率 >= 0.9
	DayStatusAhead DayStatus = "Ahead"
	// DayStatusOnTrack 按计划：完成率 >= 0.6，或当天没有任务
	DayStatusOnTrack DayStatus = "On track"
	// DayStatusBehind 落后：完成率 < 0.6
	DayStatusBehind DayStatus = "Behind"
)

// String 返回状态的字符串值
func (s DayStatus) String() string {
	return string(s)
}

// IsValid 检查状态是否有效
func (s DayStatus) IsValid() bool {
	switch s {
	case DayStatusAhead, DayStatusOnTrack, DayStatusBehind:
		return true
	}
	return false
}

// =============================================
// 每日固定任务模板
// =============================================

// RecurringTemplate 每日固定任务模板
type RecurringTemplate struct {
	Name       string
	PlannedMin int
	Type       TaskType
}

// DailyRecurringTasks 每天要保证存在的固定任务集合。
// 播种器按 (Name, Date) 去重，重复跑不会产生重复任务。
var DailyRecurringTasks = []RecurringTemplate{
	{
		Name:       "Morning ritual — read the plan, write down tasks",
		PlannedMin: 10,
		Type:       TaskTypeAdmin,
	},
	{
		Name:       "Programming practice / courses",
		PlannedMin: 120,
		Type:       TaskTypeLearning,
	},
	{
		Name:       "Workout",
		PlannedMin: 60,
		Type:       TaskTypeGym,
	},
	{
		Name:       "German — keep the streak",
		PlannedMin: 20,
		Type:       TaskTypeLearning,
	},
	{
		Name:       "Evening ritual — read the summary, write down tasks and notes",
		PlannedMin: 10,
		Type:       TaskTypeAdmin,
	},
}
