package handler

import (
	"log/slog"
	"net/http"

	"cafemap/internal/delivery/api/response"
	"cafemap/internal/delivery/api/validator"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ReviewUC  usecase.ReviewUsecase
	Logger    *slog.Logger
}

// ReviewHandler serves cafe reviews. Reviewing needs no account, only a name.
type ReviewHandler struct {
	catalogUC usecase.CatalogUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		catalogUC: params.CatalogUC,
		reviewUC:  params.ReviewUC,
		logger:    params.Logger,
	}
}

// SubmitReviewRequest is the body of a review submission
type SubmitReviewRequest struct {
	CafeID       string `json:"cafeId" validate:"required,uuid"`
	ReviewerName string `json:"reviewerName" validate:"max=100"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
}

// ListReviews returns a page of a cafe's reviews, newest first
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	cafeID, err := uuid.Parse(c.Param("cafeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cafe ID")
	}

	page := atoiOrZero(c.QueryParam("page"))
	limit := atoiOrZero(c.QueryParam("limit"))

	reviews, err := h.catalogUC.ListReviews(c.Request().Context(), cafeID, page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if reviews.Degraded {
		return response.Degraded(c, reviews)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// SubmitReview stores a review; the response is sent after the cafe's rating summary is refreshed
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid review input", validator.FieldErrors(err))
	}

	// Already checked by the uuid rule
	cafeID := uuid.MustParse(req.CafeID)

	review, err := h.reviewUC.SubmitReview(c.Request().Context(), &usecase.SubmitReviewInput{
		CafeID:       cafeID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}
