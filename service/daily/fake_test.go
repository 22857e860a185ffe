package daily

import (
	"context"
	"fmt"
	"time"

	"daily_pilot/entity"
	"daily_pilot/model"
	"daily_pilot/pkg/timeutil"
)

// 内存版任务库，测试用
type fakeTaskRepository struct {
	tasks []*entity.Task

	created     []*model.CreateTaskCondition
	rescheduled []*model.RescheduleTaskCondition
	comments    map[string]string

	rescheduleErr error
}

func newFakeTaskRepository(tasks ...*entity.Task) *fakeTaskRepository {
	return &fakeTaskRepository{
		tasks:    tasks,
		comments: map[string]string{},
	}
}

func (f *fakeTaskRepository) ListByDate(_ context.Context, day time.Time) ([]*entity.Task, error) {
	var result []*entity.Task
	for _, t := range f.tasks {
		if timeutil.FormatDay(t.Date) == timeutil.FormatDay(day) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTaskRepository) ExistsByNameAndDate(_ context.Context, name string, day time.Time) (bool, error) {
	for _, t := range f.tasks {
		if t.Name == name && timeutil.FormatDay(t.Date) == timeutil.FormatDay(day) {
			return true, nil
		}
	}
	for _, c := range f.created {
		if c.Name == name && timeutil.FormatDay(c.Date) == timeutil.FormatDay(day) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTaskRepository) Create(_ context.Context, cond *model.CreateTaskCondition) (string, error) {
	f.created = append(f.created, cond)
	return fmt.Sprintf("fake-%d", len(f.created)), nil
}

func (f *fakeTaskRepository) Reschedule(_ context.Context, cond *model.RescheduleTaskCondition) error {
	if f.rescheduleErr != nil {
		return f.rescheduleErr
	}
	f.rescheduled = append(f.rescheduled, cond)
	return nil
}

func (f *fakeTaskRepository) UpdateAIComment(_ context.Context, pageID, comment string) error {
	f.comments[pageID] = comment
	return nil
}

// 内存版策略库，测试用
type fakeStrategyRepository struct {
	items []*entity.StrategyItem
	err   error
}

func (f *fakeStrategyRepository) List(_ context.Context, limit int) ([]*entity.StrategyItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func mustDay(s string) time.Time {
	day, err := timeutil.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return day
}
