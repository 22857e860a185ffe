package factory

import (
	"sync"

	"daily_pilot/repository/factory"
	"daily_pilot/repository/notionimplement"
	"daily_pilot/service/daily"
)

var instance *Factory
var once sync.Once

// 创建
type Factory struct {
	repositoryFactory factory.Factory
}

// 实例化instance
func init() {
	once.Do(func() {
		instance = &Factory{repositoryFactory: notionimplement.GetRepositoryFactoryInstance()}
	})
}

// 单例模式，
func GetServiceFactory() *Factory {
	return instance
}

// NewDailyService 获取每日作业服务
func (f *Factory) NewDailyService() (*daily.Service, error) {
	return daily.NewService(f.repositoryFactory)
}
