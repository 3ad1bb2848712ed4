package service

import (
	"context"
	"time"

	"campus-placement-backend/internal/database"
	apperrors "campus-placement-backend/internal/errors"
	"campus-placement-backend/internal/logger"

	"github.com/cenkalti/backoff/v5"
	"gorm.io/gorm"
)

// RetryPolicy bounds how often a transaction is re-run after a retryable conflict
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
}

// DefaultRetryPolicy is used when no policy is configured
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, InitialInterval: 50 * time.Millisecond}

func (p RetryPolicy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = 2 * time.Second
	return b
}

// inTransaction runs fn in a transaction and re-runs the whole transaction while it fails
// with a retryable conflict, up to MaxAttempts.
func (p RetryPolicy) inTransaction(ctx context.Context, db *gorm.DB, operation string, fn func(tx *gorm.DB) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		err := db.WithContext(ctx).Transaction(fn)
		if err == nil {
			return struct{}{}, nil
		}
		if !apperrors.IsConflict(err) {
			// serialization failures can surface on COMMIT or from statements the repositories don't classify
			err = database.ClassifyError(operation, err)
		}
		if !apperrors.IsRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		if attempt < attempts {
			contactTxRetriesTotal.WithLabelValues(operation).Inc()
			logger.WithContext(ctx).WithField("operation", operation).WithField("attempt", attempt).
				WithError(err).Warn("retrying transaction after write conflict")
		}
		return struct{}{}, err
	}, backoff.WithBackOff(p.backOff()), backoff.WithMaxTries(uint(attempts)))

	return err
}
