package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

type FirestoreStore struct {
	client *firestore.Client
}

var _ Store = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

type propertyDoc struct {
	Name   string   `firestore:"name"`
	Values []string `firestore:"values"`
}

type categoryDoc struct {
	Name       string        `firestore:"name"`
	Parent     string        `firestore:"parent,omitempty"`
	Properties []propertyDoc `firestore:"properties"`
}

type productDoc struct {
	Title       string            `firestore:"title"`
	Description string            `firestore:"description"`
	Price       float64           `firestore:"price"`
	Images      []string          `firestore:"images"`
	Category    string            `firestore:"category,omitempty"`
	Properties  map[string]string `firestore:"properties"`
	CreatedAt   time.Time         `firestore:"createdAt"`
	UpdatedAt   time.Time         `firestore:"updatedAt"`
}

type lineItemDoc struct {
	Quantity  int `firestore:"quantity"`
	PriceData struct {
		Currency    string `firestore:"currency"`
		UnitAmount  int64  `firestore:"unit_amount"`
		ProductData struct {
			Name string `firestore:"name"`
		} `firestore:"product_data"`
	} `firestore:"price_data"`
}

type orderDoc struct {
	LineItems     []lineItemDoc `firestore:"line_items"`
	Name          string        `firestore:"name"`
	Email         string        `firestore:"email"`
	City          string        `firestore:"city"`
	PostalCode    string        `firestore:"postalCode"`
	State         string        `firestore:"state"`
	StreetAddress string        `firestore:"streetAddress"`
	Country       string        `firestore:"country"`
	Paid          bool          `firestore:"paid"`
	CreatedAt     time.Time     `firestore:"createdAt"`
	UpdatedAt     time.Time     `firestore:"updatedAt"`
}

func (s *FirestoreStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	iter := s.client.Collection(categoriesCollection).Documents(ctx)
	defer iter.Stop()

	var out []models.Category
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing categories: %w", err)
		}
		var doc categoryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("error decoding category %s: %w", snap.Ref.ID, err)
		}
		out = append(out, doc.toModel(snap.Ref.ID))
	}
	return out, nil
}

func (s *FirestoreStore) CreateCategory(ctx context.Context, c *models.Category) error {
	ref := s.client.Collection(categoriesCollection).NewDoc()
	if _, err := ref.Set(ctx, newCategoryDoc(c)); err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	c.ID = ref.ID
	return nil
}

func (s *FirestoreStore) UpdateCategory(ctx context.Context, c *models.Category) error {
	doc := newCategoryDoc(c)
	var parent any = doc.Parent
	if doc.Parent == "" {
		parent = firestore.Delete
	}
	_, err := s.client.Collection(categoriesCollection).Doc(c.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: doc.Name},
		{Path: "parent", Value: parent},
		{Path: "properties", Value: doc.Properties},
	})
	return firestoreError("updating category", err)
}

func (s *FirestoreStore) DeleteCategory(ctx context.Context, id string) error {
	_, err := s.client.Collection(categoriesCollection).Doc(id).Delete(ctx)
	return firestoreError("deleting category", err)
}

func (s *FirestoreStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	iter := s.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	var out []models.Product
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing products: %w", err)
		}
		var doc productDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("error decoding product %s: %w", snap.Ref.ID, err)
		}
		out = append(out, doc.toModel(snap.Ref.ID))
	}
	return out, nil
}

func (s *FirestoreStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	snap, err := s.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, firestoreError("reading product", err)
	}
	var doc productDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("error decoding product %s: %w", id, err)
	}
	p := doc.toModel(id)
	return &p, nil
}

func (s *FirestoreStore) CreateProduct(ctx context.Context, p *models.Product) error {
	ref := s.client.Collection(productsCollection).NewDoc()
	if _, err := ref.Set(ctx, newProductDoc(p)); err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	p.ID = ref.ID
	return nil
}

func (s *FirestoreStore) UpdateProduct(ctx context.Context, p *models.Product) error {
	doc := newProductDoc(p)
	var category any = doc.Category
	if doc.Category == "" {
		category = firestore.Delete
	}
	_, err := s.client.Collection(productsCollection).Doc(p.ID).Update(ctx, []firestore.Update{
		{Path: "title", Value: doc.Title},
		{Path: "description", Value: doc.Description},
		{Path: "price", Value: doc.Price},
		{Path: "images", Value: doc.Images},
		{Path: "category", Value: category},
		{Path: "properties", Value: doc.Properties},
		{Path: "updatedAt", Value: doc.UpdatedAt},
	})
	return firestoreError("updating product", err)
}

func (s *FirestoreStore) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.client.Collection(productsCollection).Doc(id).Delete(ctx)
	return firestoreError("deleting product", err)
}

func (s *FirestoreStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	iter := s.client.Collection(ordersCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []models.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing orders: %w", err)
		}
		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("error decoding order %s: %w", snap.Ref.ID, err)
		}
		out = append(out, doc.toModel(snap.Ref.ID))
	}
	return out, nil
}

func (s *FirestoreStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	snap, err := s.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, firestoreError("reading order", err)
	}
	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("error decoding order %s: %w", id, err)
	}
	o := doc.toModel(id)
	return &o, nil
}

func (s *FirestoreStore) Close(ctx context.Context) error {
	return s.client.Close()
}

func firestoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return fmt.Errorf("error %s: %w", op, err)
}

func newCategoryDoc(c *models.Category) categoryDoc {
	props := make([]propertyDoc, len(c.Properties))
	for i, p := range c.Properties {
		props[i] = propertyDoc{Name: p.Name, Values: p.Values}
	}
	return categoryDoc{Name: c.Name, Parent: c.ParentID, Properties: props}
}

func (d categoryDoc) toModel(id string) models.Category {
	props := make([]models.PropertyDefinition, len(d.Properties))
	for i, p := range d.Properties {
		props[i] = models.PropertyDefinition{Name: p.Name, Values: p.Values}
	}
	return models.Category{ID: id, Name: d.Name, ParentID: d.Parent, Properties: props}
}

func newProductDoc(p *models.Product) productDoc {
	return productDoc{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Images:      p.Images,
		Category:    p.Category,
		Properties:  p.Properties,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productDoc) toModel(id string) models.Product {
	return models.Product{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Price:       models.PriceFromFloat(d.Price),
		Images:      emptyImages(d.Images),
		Category:    d.Category,
		Properties:  emptyProperties(d.Properties),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d orderDoc) toModel(id string) models.Order {
	items := make([]models.LineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = models.LineItem{
			Quantity: li.Quantity,
			PriceData: models.PriceData{
				Currency:    li.PriceData.Currency,
				UnitAmount:  li.PriceData.UnitAmount,
				ProductData: models.ProductData{Name: li.PriceData.ProductData.Name},
			},
		}
	}
	return models.Order{
		ID:            id,
		LineItems:     items,
		Name:          d.Name,
		Email:         d.Email,
		City:          d.City,
		PostalCode:    d.PostalCode,
		State:         d.State,
		StreetAddress: d.StreetAddress,
		Country:       d.Country,
		Paid:          d.Paid,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
