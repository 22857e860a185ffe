package daily

import (
	"context"
	"testing"

	"daily_pilot/constant"
	"daily_pilot/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 一天收尾的组合场景：5 个任务，3 个完成，没完成的 2 个里只有 1 个勾了 auto-roll
func TestYesterdayCloseoutScenario(t *testing.T) {
	day := mustDay("2026-08-24")
	tasks := []*entity.Task{
		{ID: "t1", Name: "Morning ritual", Date: day, Status: constant.TaskStatusDone, Type: constant.TaskTypeAdmin, PlannedMin: 10, ActualMin: 10},
		{ID: "t2", Name: "Programming practice", Date: day, Status: constant.TaskStatusDone, Type: constant.TaskTypeLearning, PlannedMin: 120, ActualMin: 100},
		{ID: "t3", Name: "Workout", Date: day, Status: constant.TaskStatusDone, Type: constant.TaskTypeGym, PlannedMin: 60, ActualMin: 55},
		{ID: "t4", Name: "German", Date: day, Status: constant.TaskStatusTodo, Type: constant.TaskTypeLearning, PlannedMin: 20},
		{ID: "t5", Name: "Write design doc", Date: day, Status: constant.TaskStatusTodo, Type: constant.TaskTypeDeepWork, PlannedMin: 90, AutoRoll: true, Rollovers: 1},
	}
	repo := newFakeTaskRepository(tasks...)
	s := &Service{tasks: repo}

	stats := CalculateStats(tasks)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.Done)

	// 3/5 = 0.6 正好落在按计划的下界
	assert.Equal(t, constant.DayStatusOnTrack, DetermineStatus(stats))

	rolled, err := s.AutoRoll(context.Background(), tasks, day)
	require.NoError(t, err)
	assert.Equal(t, 1, rolled)

	require.Len(t, repo.rescheduled, 1)
	assert.Equal(t, "t5", repo.rescheduled[0].PageID)
	assert.Equal(t, mustDay("2026-08-25"), repo.rescheduled[0].Date)
	assert.Equal(t, 2, repo.rescheduled[0].Rollovers)
}
