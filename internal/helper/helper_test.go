package helper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	var body struct {
		ProductID  FlexString `json:"productId"`
		CustomerID FlexString `json:"customerId"`
		SessionID  FlexString `json:"sessionId"`
	}

	err := json.Unmarshal([]byte(`{"productId": 8123456789, "customerId": " 42 ", "sessionId": null}`), &body)
	require.NoError(t, err)

	assert.Equal(t, FlexString("8123456789"), body.ProductID)
	assert.Equal(t, "42", body.CustomerID.String())
	assert.Empty(t, body.SessionID)

	assert.Error(t, json.Unmarshal([]byte(`{"productId": true}`), &body))
}

func TestValidatorStruct(t *testing.T) {
	type payload struct {
		Shop      string     `json:"shop" validate:"required"`
		ProductID FlexString `json:"productId" validate:"required"`
	}
	v := NewValidator()

	assert.Nil(t, v.Struct(payload{Shop: "s1", ProductID: "1"}))

	fields := v.Struct(payload{})
	require.Len(t, fields, 2)
	assert.Equal(t, "shop is a required field", fields["shop"])
	assert.Contains(t, fields, "productId")
}

func TestCheckDeadline(t *testing.T) {
	assert.NoError(t, CheckDeadline(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, CheckDeadline(ctx), context.Canceled)
}
