package queries

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCampaignNotFound = errs.New("campaign not found")

type CampaignReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CampaignView, error)
}

type CampaignQueries interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignView, error)
}

type campaignQueriesImpl struct {
	store CampaignReadStore
}

func NewCampaignQueries(store CampaignReadStore) CampaignQueries {
	return &campaignQueriesImpl{store: store}
}

func (q *campaignQueriesImpl) GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Wrap(err, "failed to find campaign")
	}
	return view, nil
}
