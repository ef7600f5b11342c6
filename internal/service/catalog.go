package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/repository"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/query"
	"storefront/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CatalogService 操作租戶資料庫的商品/訂單/顧客。
// stores 由 tenant middleware 依請求解析出的資料庫注入，service 本身無狀態。
type CatalogService struct {
	logger *zap.Logger
	trace  *telemetry.Trace
}

func NewCatalogService(logger *zap.Logger, trace *telemetry.Trace) *CatalogService {
	return &CatalogService{logger: logger, trace: trace}
}

// ─── Products ──────────────────────────────────────────────────────────────────

func (s *CatalogService) CreateProduct(ctx context.Context, stores *repository.TenantSet, payload *dto.CreateProductDto) (*model.Product, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	currency := payload.Currency
	if currency == "" {
		currency = "TWD"
	}
	product := &model.Product{
		ID:          primitive.NewObjectID(),
		Name:        payload.Name,
		SKU:         payload.SKU,
		Description: payload.Description,
		Image:       payload.Image,
		Price:       payload.Price,
		Currency:    currency,
		Stock:       payload.Stock,
		Published:   payload.Published,
	}
	created, err := stores.Products.Create(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("sku already exists")
		}
		return nil, cErr.DatabaseError("database CreateProduct error")
	}
	return created, nil
}

func (s *CatalogService) GetProductByID(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID) (*model.Product, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	product, err := stores.Products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("product not found")
		}
		return nil, cErr.DatabaseError("database GetProductByID error")
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, stores *repository.TenantSet, params map[string]string) (*query.Result[model.Product], error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	result, err := query.Paginate(ctx, stores.Products, params, nil)
	if err != nil {
		return nil, cErr.DatabaseError("database ListProducts error")
	}
	return result, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID, payload *dto.UpdateProductDto) (*model.Product, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	set := bson.M{}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.SKU != nil {
		set["sku"] = *payload.SKU
	}
	if payload.Description != nil {
		set["description"] = *payload.Description
	}
	if payload.Image != nil {
		set["image"] = *payload.Image
	}
	if payload.Price != nil {
		set["price"] = *payload.Price
	}
	if payload.Currency != nil {
		set["currency"] = *payload.Currency
	}
	if payload.Stock != nil {
		set["stock"] = *payload.Stock
	}
	if payload.Published != nil {
		set["published"] = *payload.Published
	}
	if len(set) == 0 {
		return nil, cErr.BadRequest("no fields to update")
	}

	product, err := stores.Products.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("product not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("sku already exists")
		}
		return nil, cErr.DatabaseError("database UpdateProduct error")
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := stores.Products.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("product not found")
		}
		return cErr.DatabaseError("database DeleteProduct error")
	}
	return nil
}

// ─── Orders ────────────────────────────────────────────────────────────────────

// CreateOrder 以商品現價計算金額；條件式扣庫存後寫入訂單，失敗回補
func (s *CatalogService) CreateOrder(ctx context.Context, stores *repository.TenantSet, payload *dto.CreateOrderDto) (*model.Order, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	customerID, err := primitive.ObjectIDFromHex(payload.CustomerID)
	if err != nil {
		return nil, cErr.BadRequest("invalid customer id")
	}
	if _, err := stores.Customers.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("customer not found")
		}
		return nil, cErr.DatabaseError("database FindCustomer error")
	}

	var (
		items    []model.OrderItem
		total    int64
		currency string
	)
	for _, item := range payload.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, cErr.BadRequest("invalid product id")
		}
		product, err := stores.Products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, cErr.NotFound("product not found: " + item.ProductID)
			}
			return nil, cErr.DatabaseError("database FindProduct error")
		}
		if product.Stock < item.Quantity {
			return nil, cErr.BadRequest("insufficient stock for " + product.SKU)
		}
		if currency == "" {
			currency = product.Currency
		}
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		total += product.Price * item.Quantity
	}

	// 寫單前逐件條件式扣庫存；$gte 守門擋下並發搶購，失敗時回補已扣的件
	var deducted []model.OrderItem
	for _, item := range items {
		if err := stores.Products.DecrementIfAtLeast(ctx, item.ProductID, "stock", item.Quantity); err != nil {
			s.restock(context.WithoutCancel(ctx), stores, deducted)
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, cErr.BadRequest("insufficient stock for " + item.Name)
			}
			return nil, cErr.DatabaseError("database DecrementStock error")
		}
		deducted = append(deducted, item)
	}

	order := &model.Order{
		ID:         primitive.NewObjectID(),
		Number:     newOrderNumber(),
		CustomerID: customerID,
		Items:      items,
		Total:      total,
		Currency:   currency,
		Status:     model.OrderStatusPending,
	}
	created, err := stores.Orders.Create(ctx, order)
	if err != nil {
		s.restock(context.WithoutCancel(ctx), stores, deducted)
		return nil, cErr.DatabaseError("database CreateOrder error")
	}
	return created, nil
}

// restock 回補已扣的庫存；回補失敗記 log 供人工對帳
func (s *CatalogService) restock(ctx context.Context, stores *repository.TenantSet, items []model.OrderItem) {
	for _, item := range items {
		if _, err := stores.Products.IncrementByID(ctx, item.ProductID, "stock", item.Quantity); err != nil {
			s.logger.Error("stock restore failed",
				zap.String("product_id", item.ProductID.Hex()),
				zap.Int64("quantity", item.Quantity),
				zap.Error(err))
		}
	}
}

func (s *CatalogService) GetOrderByID(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID) (*model.Order, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	order, err := stores.Orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("order not found")
		}
		return nil, cErr.DatabaseError("database GetOrderByID error")
	}
	return order, nil
}

func (s *CatalogService) ListOrders(ctx context.Context, stores *repository.TenantSet, params map[string]string) (*query.Result[model.Order], error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	result, err := query.Paginate(ctx, stores.Orders, params, nil)
	if err != nil {
		return nil, cErr.DatabaseError("database ListOrders error")
	}
	return result, nil
}

func (s *CatalogService) UpdateOrderStatus(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID, status model.OrderStatus) (*model.Order, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	order, err := stores.Orders.UpdateByID(ctx, id, bson.M{"status": status})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("order not found")
		}
		return nil, cErr.DatabaseError("database UpdateOrderStatus error")
	}
	return order, nil
}

// ─── Customers ─────────────────────────────────────────────────────────────────

func (s *CatalogService) CreateCustomer(ctx context.Context, stores *repository.TenantSet, payload *dto.CreateCustomerDto) (*model.Customer, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	customer := &model.Customer{
		ID:      primitive.NewObjectID(),
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
	}
	created, err := stores.Customers.Create(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("customer email already exists")
		}
		return nil, cErr.DatabaseError("database CreateCustomer error")
	}
	return created, nil
}

func (s *CatalogService) GetCustomerByID(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID) (*model.Customer, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	customer, err := stores.Customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("customer not found")
		}
		return nil, cErr.DatabaseError("database GetCustomerByID error")
	}
	return customer, nil
}

func (s *CatalogService) ListCustomers(ctx context.Context, stores *repository.TenantSet, params map[string]string) (*query.Result[model.Customer], error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	result, err := query.Paginate(ctx, stores.Customers, params, nil)
	if err != nil {
		return nil, cErr.DatabaseError("database ListCustomers error")
	}
	return result, nil
}

func (s *CatalogService) UpdateCustomer(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID, payload *dto.UpdateCustomerDto) (*model.Customer, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	set := bson.M{}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Email != nil {
		set["email"] = *payload.Email
	}
	if payload.Phone != nil {
		set["phone"] = *payload.Phone
	}
	if payload.Address != nil {
		set["address"] = *payload.Address
	}
	if len(set) == 0 {
		return nil, cErr.BadRequest("no fields to update")
	}

	customer, err := stores.Customers.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("customer not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("customer email already exists")
		}
		return nil, cErr.DatabaseError("database UpdateCustomer error")
	}
	return customer, nil
}

func (s *CatalogService) DeleteCustomer(ctx context.Context, stores *repository.TenantSet, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := stores.Customers.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("customer not found")
		}
		return cErr.DatabaseError("database DeleteCustomer error")
	}
	return nil
}

// newOrderNumber 以時間戳 + 隨機 ObjectID 後綴組單號
func newOrderNumber() string {
	return fmt.Sprintf("SO-%s-%s",
		time.Now().UTC().Format("20060102"),
		primitive.NewObjectID().Hex()[18:])
}
