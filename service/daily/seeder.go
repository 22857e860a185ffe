package daily

import (
	"context"
	"time"

	"daily_pilot/constant"
	"daily_pilot/model"

	log "github.com/sirupsen/logrus"
)

// EnsureRecurringTasks 保证固定任务模板在 day 这一天都存在。
// 按 (Name, Date) 判重，已存在的跳过，返回实际创建的数量。
// 判重靠先查后建，幂等；并发运行可能重复创建，属于已知且不处理的竞态。
func (s *Service) EnsureRecurringTasks(ctx context.Context, day time.Time) (int, error) {
	created := 0

	for _, tpl := range constant.DailyRecurringTasks {
		exists, err := s.tasks.ExistsByNameAndDate(ctx, tpl.Name, day)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		cond := &model.CreateTaskCondition{
			Name:       tpl.Name,
			Date:       day,
			Status:     constant.TaskStatusTodo,
			Type:       tpl.Type,
			AutoRoll:   false,
			Rollovers:  0,
			PlannedMin: tpl.PlannedMin,
			ActualMin:  0,
		}

		id, err := s.tasks.Create(ctx, cond)
		if err != nil {
			return created, err
		}

		log.Debugf("created recurring task %q for %s, id=%s", tpl.Name, day.Format("2006-01-02"), id)
		created++
	}

	return created, nil
}
