package handler

import (
	"storefront/internal/dto"
	"storefront/internal/pkg/response"
	"storefront/internal/service"
	"storefront/internal/telemetry"
	"storefront/utils/validate"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	trace          *telemetry.Trace
	contactService *service.ContactService
}

func NewContactHandler(trace *telemetry.Trace, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{trace: trace, contactService: contactService}
}

// Create 送出聯絡表單（公開端）
// @Summary 送出聯絡表單
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body dto.CreateContactDto true "表單內容"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateContactDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	contact, err := h.contactService.CreateContact(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"contact": contact})
}

// List 聯絡表單列表
// @Summary 取得聯絡表單列表
// @Tags Admin-Contact
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param search query string false "關鍵字"
// @Param status query string false "狀態"
// @Success 200 {object} map[string]any
// @Router /admin/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	result, err := h.contactService.ListContacts(ctx, queryParams(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("contact"))
}

// Get 單筆聯絡表單
// @Summary 取得聯絡表單
// @Tags Admin-Contact
// @Security BearerAuth
// @Produce json
// @Param contactID path string true "Contact ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/contacts/{contactID} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "contactID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	contact, err := h.contactService.GetContactByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"contact": contact})
}

// UpdateStatus 更新聯絡狀態
// @Summary 更新聯絡表單狀態
// @Tags Admin-Contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param contactID path string true "Contact ID"
// @Param body body dto.UpdateContactStatusDto true "狀態"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/contacts/{contactID}/status [patch]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "contactID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateContactStatusDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	contact, err := h.contactService.UpdateContactStatus(ctx, id, req.Status)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"contact": contact})
}

// Delete 刪除聯絡表單
// @Summary 刪除聯絡表單（軟刪除）
// @Tags Admin-Contact
// @Security BearerAuth
// @Produce json
// @Param contactID path string true "Contact ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/contacts/{contactID} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "contactID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.contactService.DeleteContact(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "contact deleted successfully"})
}
