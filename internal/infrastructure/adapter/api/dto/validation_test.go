package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutRequestValidation(t *testing.T) {
	require.NoError(t, RegisterValidators())

	tests := []struct {
		name       string
		req        PayoutRequest
		wantFields map[string]string
	}{
		{
			name: "valid",
			req:  PayoutRequest{Amount: 100, Phone: "670000000"},
		},
		{
			name:       "amount below minimum",
			req:        PayoutRequest{Amount: 99, Phone: "670000000"},
			wantFields: map[string]string{"amount": "must be at least 100"},
		},
		{
			name:       "phone with country code",
			req:        PayoutRequest{Amount: 500, Phone: "237670000000"},
			wantFields: map[string]string{"phone": "must be a 9-digit mobile number starting with 6"},
		},
		{
			name:       "landline",
			req:        PayoutRequest{Amount: 500, Phone: "222000000"},
			wantFields: map[string]string{"phone": "must be a 9-digit mobile number starting with 6"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := binding.Validator.ValidateStruct(&tt.req)

			// Assert
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantFields, FieldErrors(err))
		})
	}
}
