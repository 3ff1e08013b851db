package store

import (
	"sync"

	"github.com/google/uuid"

	"jmoret/bankparse/internal/models"
)

// MemoryStore is the in-memory TransactionStore backend. It is safe for
// concurrent use; records live only for the lifetime of the process.
type MemoryStore struct {
	mu  sync.RWMutex
	txs []models.Transaction
}

// NewMemoryStore creates an empty in-memory transaction store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

func (s *MemoryStore) Get(id string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

func (s *MemoryStore) Insert(tx models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = uuid.NewString()
	s.txs = append(s.txs, tx)
	return tx
}

func (s *MemoryStore) Update(id string, tx models.Transaction) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.txs {
		if s.txs[i].ID == id {
			tx.ID = id
			s.txs[i] = tx
			return tx, true
		}
	}
	return models.Transaction{}, false
}

func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.txs {
		if s.txs[i].ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemoryStore) ReplaceAll(txs []models.Transaction) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		tx.ID = uuid.NewString()
		s.txs = append(s.txs, tx)
	}
	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}
