package entity

// ========== 每日日志库 ==========

// 每日日志库的 Notion 属性名
const (
	DailyLogPropName        = "Name"
	DailyLogPropDate        = "Date"
	DailyLogPropStatus      = "Status vs plan"
	DailyLogPropTotalTasks  = "Total tasks"
	DailyLogPropDoneTasks   = "Done tasks"
	DailyLogPropPlannedMin  = "Planned min"
	DailyLogPropActualMin   = "Actual min"
	DailyLogPropDeepWorkMin = "Deep work min"
	DailyLogPropPlan        = "AI plan for tomorrow"
	DailyLogPropRawJSON     = "Raw data (JSON)"
)

// 每日日志正文里的小节标题
const (
	DailyLogHeadingStrategy = "Strategy and the day"
	DailyLogHeadingAdvice   = "Advice of the day"
)
