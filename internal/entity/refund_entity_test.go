package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRefundDecision(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RefundStatus
		wantErr bool
	}{
		{name: "accept", input: "Diterima", want: RefundStatusAccepted},
		{name: "reject", input: "Ditolak", want: RefundStatusRejected},
		{name: "initial state is not a decision", input: "Belum diproses", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown value", input: "approved", wantErr: true},
		{name: "wrong case", input: "diterima", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRefundDecision(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefundStatusCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from RefundStatus
		to   RefundStatus
		want bool
	}{
		{name: "pending to accepted", from: RefundStatusPending, to: RefundStatusAccepted, want: true},
		{name: "pending to rejected", from: RefundStatusPending, to: RefundStatusRejected, want: true},
		{name: "pending to pending", from: RefundStatusPending, to: RefundStatusPending, want: false},
		{name: "accepted is terminal", from: RefundStatusAccepted, to: RefundStatusRejected, want: false},
		{name: "rejected is terminal", from: RefundStatusRejected, to: RefundStatusAccepted, want: false},
		{name: "accepted cannot repeat", from: RefundStatusAccepted, to: RefundStatusAccepted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestRefundDecide(t *testing.T) {
	now := time.Now()

	r := &Refund{Status: RefundStatusPending}
	err := r.Decide(RefundStatusAccepted, now)
	assert.NoError(t, err)
	assert.Equal(t, RefundStatusAccepted, r.Status)
	assert.NotNil(t, r.ProcessedAt)
	assert.Equal(t, now, *r.ProcessedAt)

	// Second decision must fail regardless of the value supplied.
	err = r.Decide(RefundStatusRejected, now.Add(time.Minute))
	assert.Error(t, err)
	assert.Equal(t, RefundStatusAccepted, r.Status)
	assert.Equal(t, now, *r.ProcessedAt)

	err = r.Decide(RefundStatusAccepted, now.Add(time.Minute))
	assert.Error(t, err)
}

func TestRefundStatusIsTerminal(t *testing.T) {
	assert.False(t, RefundStatusPending.IsTerminal())
	assert.True(t, RefundStatusAccepted.IsTerminal())
	assert.True(t, RefundStatusRejected.IsTerminal())
}
