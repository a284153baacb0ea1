// Package metrics defines and registers the custom Prometheus metrics of the
// emsp API. It is the single source of truth for metric names, labels, and
// help strings. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
)

const namespace = "emsp"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts auth operations by outcome.
// Labels:
//   - operation: "login", "register", "logout" or "verify"
//   - result: "success" or the error kind (e.g. "invalid_credentials", "conflict")
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// TokensRevokedTotal counts tokens written to the revocation set.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens revoked before their natural expiry.",
	},
)

// ── Catalogue metrics ─────────────────────────────────────────────────────────

var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

var MomentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moments_created_total",
		Help:      "Total number of moments published.",
	},
)

// CountRevocations wraps a RevokedTokenSet so that every successful Revoke
// increments TokensRevokedTotal.
func CountRevocations(next ports.RevokedTokenSet) ports.RevokedTokenSet {
	return &countingSet{next: next}
}

type countingSet struct {
	next ports.RevokedTokenSet
}

func (s *countingSet) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.next.Revoke(ctx, tokenID, expiresAt); err != nil {
		return err
	}
	TokensRevokedTotal.Inc()
	return nil
}

func (s *countingSet) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.next.IsRevoked(ctx, tokenID)
}

// Outcome turns the error of an auth operation into a low-cardinality result label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "account_disabled"
	case errors.Is(err, domain.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
