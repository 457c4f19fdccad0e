package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amogh004/store-ratings-platform/internal/services"
	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
)

type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

// Create is the first submission for a (user, store) pair.
func (h *RatingHandler) Create(c *gin.Context) {
	userID, storeID, value, ok := h.bindRatingRequest(c)
	if !ok {
		return
	}

	rating, err := h.ratingService.SubmitRating(h.GetDB(c), userID, storeID, value)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// Update overwrites an existing rating in place.
func (h *RatingHandler) Update(c *gin.Context) {
	userID, storeID, value, ok := h.bindRatingRequest(c)
	if !ok {
		return
	}

	rating, err := h.ratingService.UpdateRating(h.GetDB(c), userID, storeID, value)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) bindRatingRequest(c *gin.Context) (userID, storeID uint, value int, ok bool) {
	userID, ok = h.CurrentUserID(c)
	if !ok {
		return 0, 0, 0, false
	}

	storeID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return 0, 0, 0, false
	}

	var req dto.RatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return 0, 0, 0, false
	}

	return userID, storeID, req.Rating, true
}
