package handler

import (
	"storefront/internal/dto"
	"storefront/internal/middleware"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/pkg/response"
	"storefront/internal/service"
	"storefront/internal/telemetry"
	"storefront/utils/validate"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 處理租戶端商品、訂單、客戶 API；
// 所有路由掛在 tenant middleware 之後，stores 由 context 取得。
type CatalogHandler struct {
	trace          *telemetry.Trace
	catalogService *service.CatalogService
}

func NewCatalogHandler(trace *telemetry.Trace, catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{trace: trace, catalogService: catalogService}
}

// ---------- Product ----------

// ListProducts 商品列表
// @Summary 取得商品列表
// @Tags Shop-Product
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param search query string false "關鍵字"
// @Success 200 {object} map[string]any
// @Router /shop/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}

	result, err := h.catalogService.ListProducts(ctx, stores, queryParams(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("product"))
}

// GetProduct 單一商品
// @Summary 取得商品
// @Tags Shop-Product
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param productID path string true "Product ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /shop/products/{productID} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "productID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	product, err := h.catalogService.GetProductByID(ctx, stores, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// CreateProduct 新增商品
// @Summary 新增商品
// @Tags Shop-Product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param body body dto.CreateProductDto true "商品內容"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /shop/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}

	var req dto.CreateProductDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	product, err := h.catalogService.CreateProduct(ctx, stores, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"product": product})
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Tags Shop-Product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param productID path string true "Product ID"
// @Param body body dto.UpdateProductDto true "商品更新內容"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /shop/products/{productID} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "productID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateProductDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	product, err := h.catalogService.UpdateProduct(ctx, stores, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct 刪除商品
// @Summary 刪除商品（軟刪除）
// @Tags Shop-Product
// @Security BearerAuth
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param productID path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shop/products/{productID} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "productID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.catalogService.DeleteProduct(ctx, stores, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "product deleted successfully"})
}

// ---------- Order ----------

// ListOrders 訂單列表
// @Summary 取得訂單列表
// @Tags Shop-Order
// @Security BearerAuth
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param status query string false "訂單狀態"
// @Success 200 {object} map[string]any
// @Router /shop/orders [get]
func (h *CatalogHandler) ListOrders(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}

	result, err := h.catalogService.ListOrders(ctx, stores, queryParams(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("order"))
}

// GetOrder 單一訂單
// @Summary 取得訂單
// @Tags Shop-Order
// @Security BearerAuth
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param orderID path string true "Order ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /shop/orders/{orderID} [get]
func (h *CatalogHandler) GetOrder(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "orderID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	order, err := h.catalogService.GetOrderByID(ctx, stores, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// CreateOrder 建立訂單
// @Summary 建立訂單並扣減庫存
// @Tags Shop-Order
// @Accept json
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param body body dto.CreateOrderDto true "訂單內容"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /shop/orders [post]
func (h *CatalogHandler) CreateOrder(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}

	var req dto.CreateOrderDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	order, err := h.catalogService.CreateOrder(ctx, stores, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"order": order})
}

// UpdateOrderStatus 更新訂單狀態
// @Summary 更新訂單狀態
// @Tags Shop-Order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param orderID path string true "Order ID"
// @Param body body dto.UpdateOrderStatusDto true "狀態"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /shop/orders/{orderID}/status [patch]
func (h *CatalogHandler) UpdateOrderStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "orderID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateOrderStatusDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	order, err := h.catalogService.UpdateOrderStatus(ctx, stores, id, req.Status)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// ---------- Customer ----------

// ListCustomers 客戶列表
// @Summary 取得客戶列表
// @Tags Shop-Customer
// @Security BearerAuth
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param search query string false "關鍵字"
// @Success 200 {object} map[string]any
// @Router /shop/customers [get]
func (h *CatalogHandler) ListCustomers(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}

	result, err := h.catalogService.ListCustomers(ctx, stores, queryParams(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("customer"))
}

// GetCustomer 單一客戶
// @Summary 取得客戶
// @Tags Shop-Customer
// @Security BearerAuth
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param customerID path string true "Customer ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /shop/customers/{customerID} [get]
func (h *CatalogHandler) GetCustomer(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "customerID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	customer, err := h.catalogService.GetCustomerByID(ctx, stores, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"customer": customer})
}

// CreateCustomer 新增客戶
// @Summary 新增客戶
// @Tags Shop-Customer
// @Accept json
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param body body dto.CreateCustomerDto true "客戶內容"
// @Success 201 {object} map[string]any
// @Failure 409 {object} map[string]string
// @Router /shop/customers [post]
func (h *CatalogHandler) CreateCustomer(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}

	var req dto.CreateCustomerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	customer, err := h.catalogService.CreateCustomer(ctx, stores, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"customer": customer})
}

// UpdateCustomer 更新客戶
// @Summary 更新客戶
// @Tags Shop-Customer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param customerID path string true "Customer ID"
// @Param body body dto.UpdateCustomerDto true "客戶更新內容"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /shop/customers/{customerID} [put]
func (h *CatalogHandler) UpdateCustomer(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "customerID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateCustomerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	customer, err := h.catalogService.UpdateCustomer(ctx, stores, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"customer": customer})
}

// DeleteCustomer 刪除客戶
// @Summary 刪除客戶（軟刪除）
// @Tags Shop-Customer
// @Security BearerAuth
// @Produce json
// @Param X-Shop-Subdomain header string false "商店子網域"
// @Param customerID path string true "Customer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shop/customers/{customerID} [delete]
func (h *CatalogHandler) DeleteCustomer(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stores := middleware.TenantStores(c)
	if stores == nil {
		response.AbortWithError(c, cErr.InternalServer("tenant stores not attached"))
		return
	}
	id, cause, respErr := validate.ParseObjectID(c, "customerID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.catalogService.DeleteCustomer(ctx, stores, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "customer deleted successfully"})
}
