package notionimplement

import (
	"context"

	"daily_pilot/entity"
	"daily_pilot/model"
	"daily_pilot/repository"
)

// ========== StrategyRepository 实现 ==========

type StrategyRepository struct {
	client *Client
	dbID   string
}

func NewStrategyRepository(client *Client, dbID string) repository.StrategyRepository {
	return &StrategyRepository{client: client, dbID: dbID}
}

func (r *StrategyRepository) List(ctx context.Context, limit int) ([]*entity.StrategyItem, error) {
	pages, err := r.client.QueryDatabase(ctx, r.dbID, nil)
	if err != nil {
		return nil, model.NewError(model.ErrorNotionQuery, err)
	}

	items := make([]*entity.StrategyItem, 0, len(pages))
	for _, p := range pages {
		if limit > 0 && len(items) >= limit {
			break
		}
		items = append(items, strategyFromPage(p))
	}
	return items, nil
}

func strategyFromPage(p page) *entity.StrategyItem {
	props := p.Properties
	return &entity.StrategyItem{
		ID:       p.ID,
		Name:     props.title(entity.StrategyPropName),
		Status:   props.selectName(entity.StrategyPropStatus),
		Priority: props.selectName(entity.StrategyPropPriority),
		Horizon:  props.selectName(entity.StrategyPropHorizon),
	}
}
