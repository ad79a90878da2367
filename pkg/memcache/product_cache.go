package mem

import (
	"sync"
	"time"

	"prodfeedback/internal/models/response_models"
)

// ProductCache keeps one catalog page per fetch size so the admin
// picker does not hit the remote API on every load.
type ProductCache interface {
	Get(first int) ([]response_models.Product, bool)
	Set(first int, products []response_models.Product, ttl time.Duration)
}

type entry struct {
	products  []response_models.Product
	expiresAt time.Time
}

type Products struct {
	mu   sync.RWMutex
	data map[int]entry
}

func NewProductCache() *Products {
	return &Products{data: make(map[int]entry)}
}

func (p *Products) Get(first int) ([]response_models.Product, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.data[first]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.products, true
}

func (p *Products) Set(first int, products []response_models.Product, ttl time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[first] = entry{products: products, expiresAt: time.Now().Add(ttl)}
}
