package service

import (
	"crypto/sha512"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidtransSignature(t *testing.T) {
	orderId := "RESV-abc-1700000000"
	statusCode := "200"
	grossAmount := "25000.00"
	serverKey := "SB-Mid-server-test"

	want := fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+serverKey)))
	got := midtransSignature(orderId, statusCode, grossAmount, serverKey)

	assert.Equal(t, want, got)
	assert.Len(t, got, 128)
}

func TestMidtransSignature_DiffersPerField(t *testing.T) {
	base := midtransSignature("O1", "200", "25000.00", "key")

	assert.NotEqual(t, base, midtransSignature("O2", "200", "25000.00", "key"))
	assert.NotEqual(t, base, midtransSignature("O1", "201", "25000.00", "key"))
	assert.NotEqual(t, base, midtransSignature("O1", "200", "25000.01", "key"))
	assert.NotEqual(t, base, midtransSignature("O1", "200", "25000.00", "other"))
}
