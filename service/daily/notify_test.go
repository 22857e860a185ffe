package daily

import (
	"testing"

	"daily_pilot/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildTasksMessage(t *testing.T) {
	planDay := mustDay("2026-08-25")
	tasks := []model.PlanTask{
		{Name: "Workout", Type: "Gym", PlannedMin: 60, Comment: "Keep the intensity moderate."},
		{Name: "Morning ritual", Type: "Admin", PlannedMin: 10},
	}

	msg := BuildTasksMessage(planDay, tasks, "Do the hard thing first.")

	assert.Contains(t, msg, "*Task plan for 2026-08-25:*")
	assert.Contains(t, msg, "- *Workout* [Gym] — 60 min")
	assert.Contains(t, msg, "    _Keep the intensity moderate._")
	assert.Contains(t, msg, "- *Morning ritual* [Admin] — 10 min")
	assert.Contains(t, msg, "*Advice of the day:* Do the hard thing first.")
	// 没有点评的任务不带斜体行
	assert.NotContains(t, msg, "_Morning ritual_")
}

func TestBuildTasksMessageEmpty(t *testing.T) {
	planDay := mustDay("2026-08-25")

	msg := BuildTasksMessage(planDay, nil, "")

	assert.Contains(t, msg, "No tasks found for 2026-08-25.")
	assert.NotContains(t, msg, "Advice of the day")
}
