package postgres

import (
	"context"

	"rotulos/internal/domain/entity"
	domainerrors "rotulos/internal/domain/errors"
	"rotulos/internal/domain/repository"
	"rotulos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// UpsertOrders persists a batch of parsed orders keyed by their derived ID.
// Conflicting keys are left untouched: the first ingestion wins, matching the
// parser's own deduplication policy.
func (repo *orderRepository) UpsertOrders(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderModels := make([]*model.OrderModel, 0, len(orders))
	for _, order := range orders {
		orderModels = append(orderModels, fromOrderDomain(order))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&orderModels).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderSaveFailed.WrapMessage("missing required order field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert orders")
	}

	applyInsertTimestamps(orders, orderModels)

	return nil
}

// applyInsertTimestamps copies DB-assigned timestamps back onto the domain
// orders. Rows skipped by the conflict clause come back with zero timestamps,
// and those must not overwrite whatever the order already carries.
func applyInsertTimestamps(orders []*entity.Order, models []*model.OrderModel) {
	for i, orderM := range models {
		if orderM.CreatedAt.IsZero() {
			continue
		}
		orders[i].CreatedAt = orderM.CreatedAt
		orders[i].UpdatedAt = orderM.UpdatedAt
	}
}

// FindOrderByID retrieves a single order by its derived key.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByDate retrieves all orders for a calendar date in insertion order.
func (repo *orderRepository) FindOrdersByDate(ctx context.Context, date string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by date")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindOrdersByIDs retrieves orders for the given keys, preserving the order
// the keys were given in. Unknown keys are skipped, not errors.
func (repo *orderRepository) FindOrdersByIDs(ctx context.Context, ids []string) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by IDs")
	}

	byID := make(map[string]*model.OrderModel, len(orderModels))
	for _, orderM := range orderModels {
		byID[orderM.ID] = orderM
	}

	orders := make([]*entity.Order, 0, len(ids))
	for _, id := range ids {
		if orderM, ok := byID[id]; ok {
			orders = append(orders, toOrderDomain(orderM))
		}
	}

	return orders, nil
}

// UpdateOrder applies a partial update and returns the updated order.
func (repo *orderRepository) UpdateOrder(ctx context.Context, id string, update *repository.OrderUpdate) (*entity.Order, error) {
	values := updateValues(update)
	if len(values) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Updates(values)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrOrderNotFound
		}
	}

	return repo.FindOrderByID(ctx, id)
}

// DeleteOrder removes an order (soft delete).
func (repo *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func updateValues(update *repository.OrderUpdate) map[string]any {
	values := make(map[string]any)
	if update == nil {
		return values
	}

	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.NationalID != nil {
		values["national_id"] = *update.NationalID
	}
	if update.Phone != nil {
		values["phone"] = *update.Phone
	}
	if update.Address != nil {
		values["address"] = *update.Address
	}
	if update.CityRegion != nil {
		values["city_region"] = *update.CityRegion
	}
	if update.Product != nil {
		values["product"] = *update.Product
	}
	if update.Quantity != nil {
		values["quantity"] = *update.Quantity
	}
	if update.Notes != nil {
		values["notes"] = *update.Notes
	}
	if update.Price != nil {
		values["price"] = *update.Price
	}
	if update.Selected != nil {
		values["selected"] = *update.Selected
	}

	return values
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:         order.ID,
		Date:       order.Date,
		Name:       order.Name,
		NationalID: order.NationalID,
		Phone:      order.Phone,
		Address:    order.Address,
		CityRegion: order.CityRegion,
		Product:    order.Product,
		Quantity:   order.Quantity,
		Notes:      order.Notes,
		Price:      order.Price,
		Selected:   order.Selected,
	}
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:         orderM.ID,
		Date:       orderM.Date,
		Name:       orderM.Name,
		NationalID: orderM.NationalID,
		Phone:      orderM.Phone,
		Address:    orderM.Address,
		CityRegion: orderM.CityRegion,
		Product:    orderM.Product,
		Quantity:   orderM.Quantity,
		Notes:      orderM.Notes,
		Price:      orderM.Price,
		Selected:   orderM.Selected,
		CreatedAt:  orderM.CreatedAt,
		UpdatedAt:  orderM.UpdatedAt,
	}
}
