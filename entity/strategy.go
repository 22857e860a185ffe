package entity

// ========== 策略库 ==========

// 策略库的 Notion 属性名
const (
	StrategyPropName     = "Name"
	StrategyPropStatus   = "Status"
	StrategyPropPriority = "Priority"
	StrategyPropHorizon  = "Horizon"
)

// StrategyItem 策略条目，只读快照，系统不会改写
type StrategyItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Horizon  string `json:"horizon"`
}
