package daily

import (
	"context"
	"time"

	"daily_pilot/entity"
	"daily_pilot/model"
	"daily_pilot/pkg/timeutil"

	log "github.com/sirupsen/logrus"
)

// AutoRoll 把 sourceDay 当天没做完、且勾了 auto-roll 的任务顺延到下一天，
// 顺延计数 +1。目标日固定是 sourceDay+1。
// 没有事务：循环中途失败时已顺延的不回滚，错误直接上抛。
func (s *Service) AutoRoll(ctx context.Context, tasks []*entity.Task, sourceDay time.Time) (int, error) {
	target := timeutil.NextDay(sourceDay)
	rolled := 0

	for _, t := range tasks {
		if t.IsDone() || !t.AutoRoll {
			continue
		}

		cond := &model.RescheduleTaskCondition{
			PageID:    t.ID,
			Date:      target,
			Rollovers: t.Rollovers + 1,
		}

		if err := s.tasks.Reschedule(ctx, cond); err != nil {
			return rolled, err
		}

		log.Debugf("rolled task %q from %s to %s", t.Name, timeutil.FormatDay(sourceDay), timeutil.FormatDay(target))
		rolled++
	}

	return rolled, nil
}
