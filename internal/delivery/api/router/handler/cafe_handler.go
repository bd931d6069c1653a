// Package handler contains the echo handlers of the public and operator API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cafemap/internal/delivery/api/response"
	"cafemap/internal/delivery/api/validator"
	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/service"
	"cafemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CafeHandlerParams holds dependencies for CafeHandler, injected by Fx.
type CafeHandlerParams struct {
	fx.In

	CatalogUC    usecase.CatalogUsecase
	ModerationUC usecase.ModerationUsecase
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

// CafeHandler serves the public cafe catalog
type CafeHandler struct {
	catalogUC    usecase.CatalogUsecase
	moderationUC usecase.ModerationUsecase
	qrCode       service.QRCodeService
	logger       *slog.Logger
}

// NewCafeHandler is the constructor for CafeHandler
func NewCafeHandler(params CafeHandlerParams) *CafeHandler {
	return &CafeHandler{
		catalogUC:    params.CatalogUC,
		moderationUC: params.ModerationUC,
		qrCode:       params.QRCode,
		logger:       params.Logger,
	}
}

// ListCafesRequest holds the catalog query string.
// Page, limit and radius stay strings so malformed values fall back to defaults instead of failing the bind.
// Unknown features and price ranges are not rejected; they match no cafe.
type ListCafesRequest struct {
	Search     string   `query:"search" validate:"max=200"`
	Features   []string `query:"features"`
	PriceRange string   `query:"priceRange"`
	SortBy     string   `query:"sortBy"`
	Order      string   `query:"order"`
	Page       string   `query:"page"`
	Limit      string   `query:"limit"`
	Lat        string   `query:"lat" validate:"required_with=Lng,omitempty,latitude"`
	Lng        string   `query:"lng" validate:"required_with=Lat,omitempty,longitude"`
	Radius     string   `query:"radius"`
	ShowAll    bool     `query:"showAll"`
}

// LocationRequest is a longitude/latitude pair in degrees.
type LocationRequest struct {
	Lng float64 `json:"lng" validate:"longitude"`
	Lat float64 `json:"lat" validate:"latitude"`
}

// SubmitCafeRequest is the body of a public cafe submission
type SubmitCafeRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Address     string           `json:"address" validate:"required,max=500"`
	Phone       string           `json:"phone" validate:"max=30"`
	Website     string           `json:"website" validate:"omitempty,url"`
	Description string           `json:"description" validate:"max=2000"`
	PriceRange  string           `json:"priceRange" validate:"omitempty,pricerange"`
	Photos      []string         `json:"photos" validate:"max=20,dive,url"`
	Features    map[string]bool  `json:"features" validate:"omitempty,dive,keys,featurekey,endkeys"`
	Location    *LocationRequest `json:"location"`
	OwnerName   string           `json:"ownerName" validate:"required,max=100"`
	OwnerPhone  string           `json:"ownerPhone" validate:"required,max=30"`
}

// SubmitCafeResponse only echoes public fields; the submitter contact stays private.
type SubmitCafeResponse struct {
	Message string                 `json:"message"`
	Name    string                 `json:"name"`
	Slug    string                 `json:"slug"`
	State   entity.ModerationState `json:"state"`
}

// ListCafes returns one page of the catalog
func (h *CafeHandler) ListCafes(c echo.Context) error {
	var req ListCafesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid query parameters", validator.FieldErrors(err))
	}

	opts := req.toOptions(c)
	page, err := h.catalogUC.ListCafes(c.Request().Context(), opts, deliverycontext.GetCapability(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if page.Degraded {
		return response.Degraded(c, page)
	}

	return response.Success(c, http.StatusOK, page)
}

func (r *ListCafesRequest) toOptions(c echo.Context) *usecase.CafeListOptions {
	opts := &usecase.CafeListOptions{
		Search:     r.Search,
		PriceRange: entity.PriceRange(r.PriceRange),
		SortBy:     r.SortBy,
		Order:      r.Order,
		Page:       atoiOrZero(r.Page),
		Limit:      atoiOrZero(r.Limit),
		Lat:        parseCoordinate(r.Lat),
		Lng:        parseCoordinate(r.Lng),
		Radius:     floatOrZero(r.Radius),
		ShowAll:    r.ShowAll,
	}

	seen := make(map[entity.FeatureKey]bool)
	for _, raw := range r.Features {
		key := entity.FeatureKey(raw)
		if !seen[key] {
			seen[key] = true
			opts.Features = append(opts.Features, key)
		}
	}

	// Single-flag form: ?wifi=true&outdoor=true
	for _, f := range entity.Features {
		if c.QueryParam(f.Key.String()) == "true" && !seen[f.Key] {
			seen[f.Key] = true
			opts.Features = append(opts.Features, f.Key)
		}
	}

	return opts
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}

// parseCoordinate returns nil for an absent value. The validator has already checked the format.
func parseCoordinate(s string) *float64 {
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &v
}

// GetCafe returns a cafe by slug
func (h *CafeHandler) GetCafe(c echo.Context) error {
	cafe, err := h.catalogUC.GetCafeBySlug(c.Request().Context(), c.Param("slug"), deliverycontext.GetCapability(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cafe)
}

// GetCafeQRCode returns a PNG share code for the cafe page
func (h *CafeHandler) GetCafeQRCode(c echo.Context) error {
	cafe, err := h.catalogUC.GetCafeBySlug(c.Request().Context(), c.Param("slug"), deliverycontext.GetCapability(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCode.GenerateCafeQR(cafe.Slug)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMarkers returns the map markers of every verified cafe
func (h *CafeHandler) ListMarkers(c echo.Context) error {
	list, err := h.catalogUC.ListMapMarkers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if list.Degraded {
		return response.Degraded(c, list.Markers)
	}

	return response.Success(c, http.StatusOK, list.Markers)
}

// ListFeatures returns the static feature table
func (h *CafeHandler) ListFeatures(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Features)
}

// SubmitCafe handles a public cafe submission
func (h *CafeHandler) SubmitCafe(c echo.Context) error {
	var req SubmitCafeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cafe submission")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Please fill in all required fields", validator.FieldErrors(err))
	}

	input := &usecase.SubmitCafeInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
		Description: req.Description,
		PriceRange:  entity.PriceRange(req.PriceRange),
		Photos:      req.Photos,
		Features:    toFeatureSet(req.Features),
		Location:    req.Location.toEntity(),
		OwnerName:   req.OwnerName,
		OwnerPhone:  req.OwnerPhone,
	}

	cafe, err := h.moderationUC.SubmitCafe(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SubmitCafeResponse{
		Message: "Submission received and awaiting review",
		Name:    cafe.Name,
		Slug:    cafe.Slug,
		State:   cafe.State(),
	})
}

func (l *LocationRequest) toEntity() *entity.Location {
	if l == nil {
		return nil
	}

	return &entity.Location{Lng: l.Lng, Lat: l.Lat}
}

func toFeatureSet(in map[string]bool) entity.FeatureSet {
	if in == nil {
		return nil
	}

	out := make(entity.FeatureSet, len(in))
	for k, v := range in {
		out[entity.FeatureKey(k)] = v
	}

	return out
}
