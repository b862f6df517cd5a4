package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/INFIxChatnify/mercur/internal/domain"
)

func TestWithEntityID(t *testing.T) {
	sellerID := uuid.New()

	data, err := domain.WithEntityID(
		json.RawMessage(`{"seller":{"name":"Acme"}}`), "seller_id", sellerID)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &got))

	assert.JSONEq(t, `{"name":"Acme"}`, string(got["seller"]))
	assert.JSONEq(t, `"`+sellerID.String()+`"`, string(got["seller_id"]))
}

func TestWithEntityIDEmptyPayload(t *testing.T) {
	productID := uuid.New()

	data, err := domain.WithEntityID(nil, "product_id", productID)
	require.NoError(t, err)

	assert.JSONEq(t, `{"product_id":"`+productID.String()+`"}`, string(data))
}

func TestWithEntityIDMalformedPayload(t *testing.T) {
	_, err := domain.WithEntityID(json.RawMessage(`not json`), "seller_id", uuid.New())
	assert.Error(t, err)
}
