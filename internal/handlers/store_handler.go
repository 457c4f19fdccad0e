package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amogh004/store-ratings-platform/internal/services"
	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
)

type StoreHandler struct {
	*BaseHandler
	storeService services.StoreService
}

func NewStoreHandler(base *BaseHandler, storeService services.StoreService) *StoreHandler {
	return &StoreHandler{
		BaseHandler:  base,
		storeService: storeService,
	}
}

func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	store, err := h.storeService.CreateStore(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) ListStoresAdmin(c *gin.Context) {
	var query dto.StoreListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	stores, err := h.storeService.ListStoresAdmin(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

// ListStores is the authenticated store browser; each row carries the
// viewer's own rating alongside the overall aggregate.
func (h *StoreHandler) ListStores(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var query dto.StoreListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	stores, err := h.storeService.ListStores(h.GetDB(c), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) OwnerDashboard(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	reports, err := h.storeService.OwnerDashboard(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}
