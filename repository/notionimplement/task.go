package notionimplement

import (
	"context"
	"time"

	"daily_pilot/constant"
	"daily_pilot/entity"
	"daily_pilot/model"
	"daily_pilot/repository"
)

// ========== TaskRepository 实现 ==========

type TaskRepository struct {
	client *Client
	dbID   string
}

func NewTaskRepository(client *Client, dbID string) repository.TaskRepository {
	return &TaskRepository{client: client, dbID: dbID}
}

func (r *TaskRepository) ListByDate(ctx context.Context, day time.Time) ([]*entity.Task, error) {
	pages, err := r.client.QueryDatabase(ctx, r.dbID, dateEqualsFilter(entity.TaskPropDate, day))
	if err != nil {
		return nil, model.NewError(model.ErrorNotionQuery, err)
	}

	tasks := make([]*entity.Task, 0, len(pages))
	for _, p := range pages {
		tasks = append(tasks, taskFromPage(p))
	}
	return tasks, nil
}

func (r *TaskRepository) ExistsByNameAndDate(ctx context.Context, name string, day time.Time) (bool, error) {
	f := andFilter(
		dateEqualsFilter(entity.TaskPropDate, day),
		titleEqualsFilter(entity.TaskPropName, name),
	)

	pages, err := r.client.QueryDatabase(ctx, r.dbID, f)
	if err != nil {
		return false, model.NewError(model.ErrorNotionQuery, err)
	}
	return len(pages) > 0, nil
}

func (r *TaskRepository) Create(ctx context.Context, cond *model.CreateTaskCondition) (string, error) {
	if cond == nil {
		return "", model.NewError(model.ErrorParams, nil)
	}

	props := properties{
		entity.TaskPropName:       titleProp(cond.Name),
		entity.TaskPropDate:       dateProp(cond.Date),
		entity.TaskPropStatus:     selectProp(cond.Status.String()),
		entity.TaskPropType:       selectProp(cond.Type.String()),
		entity.TaskPropAutoRoll:   checkboxProp(cond.AutoRoll),
		entity.TaskPropRollovers:  numberProp(cond.Rollovers),
		entity.TaskPropPlannedMin: numberProp(cond.PlannedMin),
		entity.TaskPropActualMin:  numberProp(cond.ActualMin),
	}

	id, err := r.client.CreatePage(ctx, r.dbID, props, nil)
	if err != nil {
		return "", model.NewError(model.ErrorNotionCreate, err)
	}
	return id, nil
}

func (r *TaskRepository) Reschedule(ctx context.Context, cond *model.RescheduleTaskCondition) error {
	if cond == nil || cond.PageID == "" {
		return model.NewError(model.ErrorEmptyID, nil)
	}

	props := properties{
		entity.TaskPropDate:      dateProp(cond.Date),
		entity.TaskPropRollovers: numberProp(cond.Rollovers),
	}

	if err := r.client.UpdatePage(ctx, cond.PageID, props); err != nil {
		return model.NewError(model.ErrorNotionUpdate, err)
	}
	return nil
}

func (r *TaskRepository) UpdateAIComment(ctx context.Context, pageID, comment string) error {
	if pageID == "" {
		return model.NewError(model.ErrorEmptyID, nil)
	}

	props := properties{
		entity.TaskPropAIComment: richTextProp(comment),
	}

	if err := r.client.UpdatePage(ctx, pageID, props); err != nil {
		return model.NewError(model.ErrorNotionUpdate, err)
	}
	return nil
}

func taskFromPage(p page) *entity.Task {
	props := p.Properties
	return &entity.Task{
		ID:         p.ID,
		Name:       props.title(entity.TaskPropName),
		Date:       props.day(entity.TaskPropDate),
		Status:     constant.TaskStatus(props.selectName(entity.TaskPropStatus)),
		Type:       constant.TaskType(props.selectName(entity.TaskPropType)),
		AutoRoll:   props.checkbox(entity.TaskPropAutoRoll),
		Rollovers:  props.number(entity.TaskPropRollovers),
		Complexity: props.number(entity.TaskPropComplexity),
		PlannedMin: props.number(entity.TaskPropPlannedMin),
		ActualMin:  props.number(entity.TaskPropActualMin),
		AIComment:  props.richText(entity.TaskPropAIComment),
	}
}
