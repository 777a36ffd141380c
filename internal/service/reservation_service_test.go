package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDuplicateKeyClassification(t *testing.T) {
	slotErr := errors.New(`ERROR: duplicate key value violates unique constraint "idx_reservations_slot" (SQLSTATE 23505)`)
	pkErr := errors.New(`ERROR: duplicate key value violates unique constraint "reservations_pkey" (SQLSTATE 23505)`)

	assert.True(t, isSlotConflict(slotErr))
	assert.True(t, isDuplicateKey(slotErr))

	// A reused reservation id trips the primary key, not the slot index.
	assert.False(t, isSlotConflict(pkErr))
	assert.True(t, isDuplicateKey(pkErr))

	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isSlotConflict(nil))
}
