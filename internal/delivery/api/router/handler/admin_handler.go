package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cafemap/internal/delivery/api/response"
	"cafemap/internal/delivery/api/validator"
	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	CatalogUC    usecase.CatalogUsecase
	ModerationUC usecase.ModerationUsecase
	Logger       *slog.Logger
}

// AdminHandler serves the operator moderation routes
type AdminHandler struct {
	catalogUC    usecase.CatalogUsecase
	moderationUC usecase.ModerationUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		catalogUC:    params.CatalogUC,
		moderationUC: params.ModerationUC,
		logger:       params.Logger,
	}
}

// OpeningHoursRequest holds one weekday's opening times
type OpeningHoursRequest struct {
	Open  string `json:"open" validate:"required,hhmm"`
	Close string `json:"close" validate:"required,hhmm"`
}

// EditCafeRequest carries a partial cafe edit; absent fields are left unchanged
type EditCafeRequest struct {
	Name         *string                        `json:"name" validate:"omitempty,max=200"`
	Description  *string                        `json:"description" validate:"omitempty,max=2000"`
	Address      *string                        `json:"address" validate:"omitempty,max=500"`
	Phone        *string                        `json:"phone" validate:"omitempty,max=30"`
	Website      *string                        `json:"website" validate:"omitempty,max=500"`
	PriceRange   *string                        `json:"priceRange" validate:"omitempty,pricerange"`
	Features     map[string]bool                `json:"features" validate:"omitempty,dive,keys,featurekey,endkeys"`
	Photos       []string                       `json:"photos" validate:"omitempty,max=20,dive,url"`
	Tags         []string                       `json:"tags" validate:"omitempty,max=30,dive,max=50"`
	Location     *LocationRequest               `json:"location"`
	OpeningHours map[string]OpeningHoursRequest `json:"openingHours" validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
}

// VerifyAllResponse reports how many pending cafes were approved
type VerifyAllResponse struct {
	Verified int64 `json:"verified"`
}

// ListAllCafes lists the catalog including pending submissions
func (h *AdminHandler) ListAllCafes(c echo.Context) error {
	var req ListCafesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid query parameters", validator.FieldErrors(err))
	}

	opts := req.toOptions(c)
	opts.ShowAll = true

	page, err := h.catalogUC.ListCafes(c.Request().Context(), opts, deliverycontext.GetCapability(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if page.Degraded {
		return response.Degraded(c, page)
	}

	return response.Success(c, http.StatusOK, page)
}

// VerifyCafe approves a cafe
func (h *AdminHandler) VerifyCafe(c echo.Context) error {
	return h.moderate(c, h.moderationUC.VerifyCafe)
}

// FeatureCafe promotes a verified cafe
func (h *AdminHandler) FeatureCafe(c echo.Context) error {
	return h.moderate(c, h.moderationUC.FeatureCafe)
}

// UnfeatureCafe demotes a featured cafe
func (h *AdminHandler) UnfeatureCafe(c echo.Context) error {
	return h.moderate(c, h.moderationUC.UnfeatureCafe)
}

type moderationFunc func(ctx context.Context, id uuid.UUID, capability entity.Capability) (*entity.Cafe, error)

func (h *AdminHandler) moderate(c echo.Context, fn moderationFunc) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cafe ID")
	}

	cafe, err := fn(c.Request().Context(), id, deliverycontext.GetCapability(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.InfoContext(c.Request().Context(), "Cafe moderated",
		slog.String("cafe_id", id.String()),
		slog.String("state", cafe.State().String()),
		slog.String("operator", deliverycontext.GetOperatorSubject(c)),
	)

	return response.Success(c, http.StatusOK, cafe)
}

// EditCafe applies an operator edit
func (h *AdminHandler) EditCafe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cafe ID")
	}

	var req EditCafeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cafe edit")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid cafe edit", validator.FieldErrors(err))
	}

	cafe, err := h.moderationUC.EditCafe(c.Request().Context(), id, req.toInput(), deliverycontext.GetCapability(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cafe)
}

func (r *EditCafeRequest) toInput() *usecase.EditCafeInput {
	input := &usecase.EditCafeInput{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Phone:       r.Phone,
		Website:     r.Website,
		Features:    toFeatureSet(r.Features),
		Photos:      r.Photos,
		Tags:        r.Tags,
		Location:    r.Location.toEntity(),
	}

	if r.PriceRange != nil {
		priceRange := entity.PriceRange(*r.PriceRange)
		input.PriceRange = &priceRange
	}

	if r.OpeningHours != nil {
		input.OpeningHours = make(map[string]entity.OpeningHours, len(r.OpeningHours))
		for day, hours := range r.OpeningHours {
			input.OpeningHours[day] = entity.OpeningHours{Open: hours.Open, Close: hours.Close}
		}
	}

	return input
}

// DeleteCafe removes a cafe and all of its reviews
func (h *AdminHandler) DeleteCafe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cafe ID")
	}

	if err := h.moderationUC.DeleteCafe(c.Request().Context(), id, deliverycontext.GetCapability(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// VerifyAll approves every pending cafe
func (h *AdminHandler) VerifyAll(c echo.Context) error {
	n, err := h.moderationUC.VerifyAll(c.Request().Context(), deliverycontext.GetCapability(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VerifyAllResponse{Verified: n})
}
