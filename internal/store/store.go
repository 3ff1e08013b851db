// Package store provides storage for parsed transactions and for custom
// merchant-to-category mappings.
package store

import (
	"jmoret/bankparse/internal/models"
)

// TransactionStore is the injected storage capability for transaction
// records. Implementations assign identifiers on insert and keep the
// records in insertion order.
type TransactionStore interface {
	// List returns all stored transactions in order.
	List() []models.Transaction

	// Get returns the transaction with the given id.
	Get(id string) (models.Transaction, bool)

	// Insert stores a new transaction and returns it with an assigned id.
	Insert(tx models.Transaction) models.Transaction

	// Update replaces the stored fields of the transaction with the given
	// id, keeping its identifier.
	Update(id string, tx models.Transaction) (models.Transaction, bool)

	// Delete removes the transaction with the given id.
	Delete(id string) bool

	// ReplaceAll swaps the entire stored set for the given records and
	// returns them with assigned ids. Used after a statement upload.
	ReplaceAll(txs []models.Transaction) []models.Transaction
}
