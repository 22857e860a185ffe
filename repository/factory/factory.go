package factory

import (
	"daily_pilot/repository"
)

// Factory 仓库工厂。数据库 id 未配置时返回错误，由调用方决定是致命还是降级。
type Factory interface {
	NewTaskRepository() (repository.TaskRepository, error)
	NewStrategyRepository() (repository.StrategyRepository, error)
	NewDailyLogRepository() (repository.DailyLogRepository, error)
}
