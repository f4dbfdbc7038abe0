package service

import (
	"testing"

	"github.com/craftmarket/order-service/internal/entities"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountCartRejection(t *testing.T) {
	before := testutil.ToFloat64(reservationRejected.WithLabelValues("cart"))

	countCartRejection(entities.ErrInsufficientStock)
	countCartRejection(entities.ErrConflict)
	countCartRejection(entities.ErrSKUNotFound)

	after := testutil.ToFloat64(reservationRejected.WithLabelValues("cart"))
	assert.Equal(t, 2.0, after-before)
}
