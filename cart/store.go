package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/lahuerta/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storageKey matches the localStorage key of the original storefront, so a
// migrated cart dump stays readable.
const storageKey = "carrito_de_la_huerta"

// Store owns the persisted product-id → quantity mapping. All cart mutation
// funnels through it; nothing here ever touches the network.
type Store struct {
	mu  sync.Mutex
	db  *gorm.DB
	key string
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, key: storageKey}
}

// Read returns the current mapping. A missing or corrupt persisted value
// yields an empty mapping, never an error.
func (s *Store) Read() map[string]int {
	var entry models.KVEntry
	if err := s.db.First(&entry, "key = ?", s.key).Error; err != nil {
		return map[string]int{}
	}

	var cart map[string]int
	if err := json.Unmarshal([]byte(entry.Value), &cart); err != nil || cart == nil {
		return map[string]int{}
	}

	// A previous version may have persisted junk quantities; they never
	// survive a read.
	for id, qty := range cart {
		if qty <= 0 {
			delete(cart, id)
		}
	}
	return cart
}

// Add increments the stored quantity for id, creating the entry if absent.
func (s *Store) Add(id string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.Read()
	cart[id] += quantity
	s.write(cart)
}

// RemoveOne decrements the quantity for id; at zero the entry is deleted.
// Decrementing an absent id is a no-op.
func (s *Store) RemoveOne(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.Read()
	qty, ok := cart[id]
	if !ok {
		return
	}
	qty--
	if qty <= 0 {
		delete(cart, id)
	} else {
		cart[id] = qty
	}
	s.write(cart)
}

// RemoveAll deletes the entry for id regardless of its quantity.
func (s *Store) RemoveAll(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.Read()
	if _, ok := cart[id]; !ok {
		return
	}
	delete(cart, id)
	s.write(cart)
}

// Clear resets the cart to an empty mapping.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(map[string]int{})
}

func (s *Store) write(cart map[string]int) {
	data, err := json.Marshal(cart)
	if err != nil {
		log.Printf("❌ cart: failed to serialize: %v", err)
		return
	}
	entry := models.KVEntry{Key: s.key, Value: string(data)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
		log.Printf("❌ cart: failed to persist: %v", err)
	}
}
