package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Rating int    `validate:"required,min=1,max=5"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
	}{
		{"valid", sampleRequest{Email: "guest@example.com", Rating: 4}, false},
		{"missing email", sampleRequest{Rating: 3}, true},
		{"bad email", sampleRequest{Email: "not-an-email", Rating: 3}, true},
		{"rating too low", sampleRequest{Email: "guest@example.com", Rating: 0}, true},
		{"rating too high", sampleRequest{Email: "guest@example.com", Rating: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
