// Package cart owns the session shopping cart: one line per product, merged
// on re-add, with the whole collection re-serialized to the persister on
// every mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

// MaxLineQuantity caps a single line. The storefront UI has no spinner going
// anywhere near this; the cap only stops runaway growth from replayed
// requests.
const MaxLineQuantity = 999

// ErrDecodeSnapshot marks a persisted cart that no longer parses.
var ErrDecodeSnapshot = errors.New("cart: malformed snapshot")

// Persister stores one serialized snapshot per session key. Load returns
// (nil, nil) when no snapshot exists.
type Persister interface {
	Save(ctx context.Context, sessionID string, snapshot []byte) error
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Delete(ctx context.Context, sessionID string) error
}

// Store is the authoritative cart for one session. It is single-writer: the
// handling goroutine of the session's request owns it for the request's
// lifetime.
type Store struct {
	sessionID string
	items     []models.CartItem
	persister Persister
}

// Open loads the session's cart from the persister. A snapshot that fails to
// decode is logged and discarded in favor of an empty cart; a corrupted cart
// must never take the storefront down. Persister failures do propagate.
func Open(ctx context.Context, p Persister, sessionID string) (*Store, error) {
	s := &Store{sessionID: sessionID, persister: p}

	raw, err := p.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
	}
	if raw == nil {
		return s, nil
	}

	items, err := DecodeSnapshot(raw)
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("discarding malformed cart snapshot")
		return s, nil
	}
	s.items = items
	return s, nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddToCart merges quantity into the existing line for the product, or
// appends a new line. Callers pass positive quantities; the line clamps at
// MaxLineQuantity.
func (s *Store) AddToCart(ctx context.Context, item models.CartItem, quantity int) error {
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += quantity
			if s.items[i].Quantity > MaxLineQuantity {
				s.items[i].Quantity = MaxLineQuantity
			}
			return s.persist(ctx)
		}
	}

	item.Quantity = quantity
	if item.Quantity > MaxLineQuantity {
		item.Quantity = MaxLineQuantity
	}
	s.items = append(s.items, item)
	return s.persist(ctx)
}

// RemoveFromCart drops the product's line. Removing an absent product is a
// no-op, but still persists so the snapshot converges.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) error {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return s.persist(ctx)
}

// UpdateQuantity sets the line's quantity exactly. Zero or negative removes
// the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}
	if quantity > MaxLineQuantity {
		quantity = MaxLineQuantity
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persist(ctx)
}

// Clear empties the cart and deletes the persisted snapshot.
func (s *Store) Clear(ctx context.Context) error {
	s.items = nil
	if err := s.persister.Delete(ctx, s.sessionID); err != nil {
		return fmt.Errorf("clear cart %s: %w", s.sessionID, err)
	}
	return nil
}

// Total sums the promotion-aware line subtotals.
func (s *Store) Total() float64 {
	var total float64
	for i := range s.items {
		total += s.items[i].Subtotal()
	}
	return total
}

// ItemsCount is the total unit count across lines, not the line count.
func (s *Store) ItemsCount() int {
	var count int
	for i := range s.items {
		count += s.items[i].Quantity
	}
	return count
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := EncodeSnapshot(s.items)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", s.sessionID, err)
	}
	if err := s.persister.Save(ctx, s.sessionID, raw); err != nil {
		return fmt.Errorf("save cart %s: %w", s.sessionID, err)
	}
	return nil
}

// EncodeSnapshot serializes the full line collection.
func EncodeSnapshot(items []models.CartItem) ([]byte, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	return json.Marshal(items)
}

// DecodeSnapshot parses a persisted snapshot. The caller decides what to do
// with a malformed one; Open chooses the empty cart.
func DecodeSnapshot(raw []byte) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}
	return items, nil
}
