package repository

import (
	"context"
	"time"

	"daily_pilot/entity"
	"daily_pilot/model"
)

// TaskRepository 任务库接口。
// 远端库只保证 (Name, Date) 去重语义，没有事务。
type TaskRepository interface {
	// ListByDate 取某天的全部任务
	ListByDate(ctx context.Context, day time.Time) ([]*entity.Task, error)
	// ExistsByNameAndDate 按 (Name, Date) 判重，播种器用
	ExistsByNameAndDate(ctx context.Context, name string, day time.Time) (bool, error)
	// Create 创建任务，返回新记录 id
	Create(ctx context.Context, cond *model.CreateTaskCondition) (string, error)
	// Reschedule 顺延任务：改日期并写入新的 rollover 计数
	Reschedule(ctx context.Context, cond *model.RescheduleTaskCondition) error
	// UpdateAIComment 回写 AI 点评
	UpdateAIComment(ctx context.Context, pageID, comment string) error
}
