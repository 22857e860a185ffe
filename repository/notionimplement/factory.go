package notionimplement

import (
	"sync"

	"daily_pilot/config"
	"daily_pilot/constant"
	"daily_pilot/model"
	"daily_pilot/repository"
	"daily_pilot/repository/factory"
)

var once sync.Once
var instance *Factory

type Factory struct {
	client *Client
}

// GetRepositoryFactoryInstance 获取一个 factory 实例
func GetRepositoryFactoryInstance() factory.Factory {
	once.Do(func() {
		cfg := config.GetInstance()
		instance = &Factory{
			client: NewClient(
				cfg.GetStringOrDefault(config.NotionBaseURL, constant.DefaultNotionBaseURL),
				cfg.GetString(config.NotionAPIKey),
				constant.NotionVersion,
			),
		}
	})
	return instance
}

func (f *Factory) NewTaskRepository() (repository.TaskRepository, error) {
	dbID := config.GetInstance().GetString(config.NotionTasksDB)
	if dbID == constant.EmptyString {
		return nil, model.NewError(model.ErrorNotionDBUnset, nil)
	}
	return NewTaskRepository(f.client, dbID), nil
}

func (f *Factory) NewStrategyRepository() (repository.StrategyRepository, error) {
	dbID := config.GetInstance().GetString(config.NotionStrategyDB)
	if dbID == constant.EmptyString {
		return nil, model.NewError(model.ErrorNotionDBUnset, nil)
	}
	return NewStrategyRepository(f.client, dbID), nil
}

func (f *Factory) NewDailyLogRepository() (repository.DailyLogRepository, error) {
	dbID := config.GetInstance().GetString(config.NotionDailyLogDB)
	if dbID == constant.EmptyString {
		return nil, model.NewError(model.ErrorNotionDBUnset, nil)
	}
	return NewDailyLogRepository(f.client, dbID), nil
}
