package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		want     ItemStatus
	}{
		{"zero quantity is out of stock", 0, StatusOutOfStock},
		{"negative quantity is out of stock", -3, StatusOutOfStock},
		{"one is low stock", 1, StatusLowStock},
		{"five is low stock", 5, StatusLowStock},
		{"threshold boundary is low stock", 10, StatusLowStock},
		{"just above threshold is active", 11, StatusActive},
		{"fifty is active", 50, StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.quantity))
		})
	}
}

func TestItemStatusFollowsQuantity(t *testing.T) {
	item := InventoryItem{Quantity: 3}
	assert.Equal(t, StatusLowStock, item.Status())

	item.Quantity = 0
	assert.Equal(t, StatusOutOfStock, item.Status())
}

func TestHasImage(t *testing.T) {
	item := InventoryItem{ImageIDs: []string{"img-1", "img-2"}}
	assert.True(t, item.HasImage("img-2"))
	assert.False(t, item.HasImage("img-3"))
}

func TestIsValidVocabularyKind(t *testing.T) {
	assert.True(t, IsValidVocabularyKind(VocabCategory))
	assert.True(t, IsValidVocabularyKind(VocabPaidTo))
	assert.False(t, IsValidVocabularyKind(VocabularyKind("colour")))
}
