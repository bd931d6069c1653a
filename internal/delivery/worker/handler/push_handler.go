// Package handler contains the Pub/Sub push handlers of the catalog worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cafemap/config"
	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/repository"
	"cafemap/internal/domain/service"
	"cafemap/internal/infra/pubsub"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier validates the OIDC token Google attaches to push requests.
type tokenVerifier func(req *http.Request) error

// PushHandler consumes catalog events delivered by a Pub/Sub push subscription.
// Every action it takes is idempotent, so redelivery is harmless.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	aggregator     usecase.RatingAggregator
	reviewRepo     repository.ReviewRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Aggregator usecase.RatingAggregator
	ReviewRepo repository.ReviewRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google deliveries carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		!params.Config.IsDevelopment()

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		aggregator:     params.Aggregator,
		reviewRepo:     params.ReviewRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.CatalogEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse catalog event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing catalog event",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("cafe_id", event.CafeID),
	)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process catalog event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; anything else is acked to avoid poison loops
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the request header
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.CatalogEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.CatalogEvent) error {
	switch event.Type {
	case service.EventReviewCreated:
		cafeID, err := uuid.Parse(event.CafeID)
		if err != nil {
			return errors.Wrap(err, "invalid cafe_id")
		}

		// Repairs a summary left stale by a crash between the review write and the recompute
		summary, err := h.aggregator.Recompute(ctx, cafeID)
		if err != nil {
			return newRetryableError(err)
		}

		logger.Debug("[Worker] Rating summary confirmed",
			slog.String("cafe_id", event.CafeID),
			slog.Float64("average_rating", summary.AverageRating),
			slog.Int64("total_reviews", summary.TotalReviews),
		)

	case service.EventCafeDeleted:
		cafeID, err := uuid.Parse(event.CafeID)
		if err != nil {
			return errors.Wrap(err, "invalid cafe_id")
		}

		removed, err := h.reviewRepo.DeleteReviewsByCafe(ctx, cafeID)
		if err != nil {
			return newRetryableError(err)
		}
		if removed > 0 {
			logger.Warn("[Worker] Swept reviews left behind by a cafe delete",
				slog.String("cafe_id", event.CafeID),
				slog.Int64("removed", removed),
			)
		}

	case service.EventCafeSubmitted:
		logger.Info("[Worker] Cafe awaiting moderation",
			slog.String("cafe_id", event.CafeID),
			slog.String("slug", event.CafeSlug),
			slog.String("name", event.CafeName),
		)

	case service.EventCafeVerified:
		logger.Info("[Worker] Cafe published",
			slog.String("cafe_id", event.CafeID),
			slog.String("slug", event.CafeSlug),
		)

	default:
		logger.Warn("[Worker] Ignoring unknown catalog event", slog.String("type", string(event.Type)))
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
