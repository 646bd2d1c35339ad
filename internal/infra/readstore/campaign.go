package readstore

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/campaign"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CampaignReadStore struct {
	db db.DBTX
}

func NewCampaignReadStore(dbtx db.DBTX) *CampaignReadStore {
	return &CampaignReadStore{db: dbtx}
}

type campaignProductRow struct {
	productID        uuid.UUID
	productName      string
	unitPriceTwd     int64
	supplyQuantity   int32
	reservedQuantity int32
}

func (s *CampaignReadStore) loadProducts(ctx context.Context, campaignID uuid.UUID) (string, []campaignProductRow, error) {
	const q = `
		SELECT c.name, cp.product_id, cp.product_name, cp.unit_price_twd,
		       cp.supply_quantity, cp.reserved_quantity
		FROM campaigns c
		JOIN campaign_products cp ON cp.campaign_id = c.id
		WHERE c.id = $1
		ORDER BY cp.product_name`

	rows, err := s.db.Query(ctx, q, campaignID)
	if err != nil {
		return "", nil, infra.WrapRepoErr("failed to query campaign products", err)
	}
	defer rows.Close()

	var name string
	var products []campaignProductRow
	for rows.Next() {
		var p campaignProductRow
		if err := rows.Scan(&name, &p.productID, &p.productName, &p.unitPriceTwd,
			&p.supplyQuantity, &p.reservedQuantity); err != nil {
			return "", nil, infra.WrapRepoErr("failed to scan campaign product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return "", nil, infra.WrapRepoErr("failed to read campaign products", err)
	}
	if len(products) == 0 {
		return "", nil, infra.WrapRepoErr("campaign not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return name, products, nil
}

// FindSnapshot returns the domain snapshot the command layer validates and
// prices against.
func (s *CampaignReadStore) FindSnapshot(ctx context.Context, campaignID uuid.UUID) (*campaign.Campaign, error) {
	name, rows, err := s.loadProducts(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	products := make([]campaign.Product, len(rows))
	for i, r := range rows {
		products[i] = campaign.Product{
			ProductID:        r.productID,
			ProductName:      r.productName,
			UnitPrice:        money.NewMoney(r.unitPriceTwd),
			SupplyQuantity:   r.supplyQuantity,
			ReservedQuantity: r.reservedQuantity,
		}
	}
	return campaign.NewCampaign(campaignID, name, products), nil
}

// GetByID returns the view served to the storefront.
func (s *CampaignReadStore) GetByID(ctx context.Context, campaignID uuid.UUID) (*queries.CampaignView, error) {
	name, rows, err := s.loadProducts(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	view := &queries.CampaignView{
		ID:       campaignID,
		Name:     name,
		Products: make([]queries.CampaignProductView, len(rows)),
	}
	for i, r := range rows {
		view.Products[i] = queries.CampaignProductView{
			ProductID:         r.productID,
			ProductName:       r.productName,
			UnitPriceTwd:      r.unitPriceTwd,
			SupplyQuantity:    r.supplyQuantity,
			ReservedQuantity:  r.reservedQuantity,
			RemainingQuantity: r.supplyQuantity - r.reservedQuantity,
		}
	}
	return view, nil
}
