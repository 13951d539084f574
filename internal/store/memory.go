package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

// MemoryStore keeps everything in process. It backs local development
// (STORE_DRIVER=memory) and the handler tests.
type MemoryStore struct {
	mu sync.RWMutex

	categoryIDs []string
	categories  map[string]models.Category
	productIDs  []string
	products    map[string]models.Product
	orders      []models.Order
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories: make(map[string]models.Category),
		products:   make(map[string]models.Product),
	}
}

func (m *MemoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Category, 0, len(m.categoryIDs))
	for _, id := range m.categoryIDs {
		out = append(out, cloneCategory(m.categories[id]))
	}
	return out, nil
}

func (m *MemoryStore) CreateCategory(ctx context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.categoryIDs = append(m.categoryIDs, c.ID)
	m.categories[c.ID] = cloneCategory(*c)
	return nil
}

func (m *MemoryStore) UpdateCategory(ctx context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[c.ID]; !ok {
		return ErrNotFound
	}
	m.categories[c.ID] = cloneCategory(*c)
	return nil
}

func (m *MemoryStore) DeleteCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[id]; !ok {
		return nil
	}
	delete(m.categories, id)
	m.categoryIDs = removeID(m.categoryIDs, id)
	return nil
}

func (m *MemoryStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Product, 0, len(m.productIDs))
	for _, id := range m.productIDs {
		out = append(out, cloneProduct(m.products[id]))
	}
	return out, nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = cloneProduct(p)
	return &p, nil
}

func (m *MemoryStore) CreateProduct(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.productIDs = append(m.productIDs, p.ID)
	m.products[p.ID] = cloneProduct(*p)
	return nil
}

func (m *MemoryStore) UpdateProduct(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.products[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	m.products[p.ID] = cloneProduct(*p)
	return nil
}

func (m *MemoryStore) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return nil
	}
	delete(m.products, id)
	m.productIDs = removeID(m.productIDs, id)
	return nil
}

// AddOrder records an order as the storefront checkout would.
func (m *MemoryStore) AddOrder(o models.Order) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	m.orders = append(m.orders, o)
	return o
}

func (m *MemoryStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func cloneCategory(c models.Category) models.Category {
	c.Parent = nil
	props := make([]models.PropertyDefinition, len(c.Properties))
	for i, p := range c.Properties {
		props[i] = models.PropertyDefinition{
			Name:   p.Name,
			Values: append([]string(nil), p.Values...),
		}
	}
	c.Properties = props
	return c
}

func cloneProduct(p models.Product) models.Product {
	p.Images = append([]string{}, p.Images...)
	props := make(map[string]string, len(p.Properties))
	for k, v := range p.Properties {
		props[k] = v
	}
	p.Properties = props
	return p
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
