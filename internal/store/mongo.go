package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

// MongoStore reads and writes the same collections the original admin
// panel used, so an existing database can be pointed at directly.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

type propertyBSON struct {
	Name   string   `bson:"name"`
	Values []string `bson:"values"`
}

type categoryBSON struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	Name       string              `bson:"name"`
	Parent     *primitive.ObjectID `bson:"parent,omitempty"`
	Properties []propertyBSON      `bson:"properties"`
}

type productBSON struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Title       string              `bson:"title"`
	Description string              `bson:"description"`
	Price       float64             `bson:"price"`
	Images      []string            `bson:"images"`
	Category    *primitive.ObjectID `bson:"category,omitempty"`
	Properties  map[string]string   `bson:"properties"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

type lineItemBSON struct {
	Quantity  int `bson:"quantity"`
	PriceData struct {
		Currency    string `bson:"currency"`
		UnitAmount  int64  `bson:"unit_amount"`
		ProductData struct {
			Name string `bson:"name"`
		} `bson:"product_data"`
	} `bson:"price_data"`
}

type orderBSON struct {
	ID            primitive.ObjectID `bson:"_id"`
	LineItems     []lineItemBSON     `bson:"line_items"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	City          string             `bson:"city"`
	PostalCode    string             `bson:"postalCode"`
	State         string             `bson:"state"`
	StreetAddress string             `bson:"streetAddress"`
	Country       string             `bson:"country"`
	Paid          bool               `bson:"paid"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	cur, err := s.db.Collection(categoriesCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	var docs []categoryBSON
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}
	out := make([]models.Category, len(docs))
	for i, d := range docs {
		out[i] = d.toModel()
	}
	return out, nil
}

func (s *MongoStore) CreateCategory(ctx context.Context, c *models.Category) error {
	doc, err := newCategoryBSON(c)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()
	if _, err := s.db.Collection(categoriesCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	c.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) UpdateCategory(ctx context.Context, c *models.Category) error {
	id, err := objectID(c.ID)
	if err != nil {
		return ErrNotFound
	}
	doc, err := newCategoryBSON(c)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"name": doc.Name, "properties": doc.Properties}}
	if doc.Parent != nil {
		update["$set"].(bson.M)["parent"] = doc.Parent
	} else {
		update["$unset"] = bson.M{"parent": ""}
	}
	return s.updateOne(ctx, categoriesCollection, id, update)
}

func (s *MongoStore) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteOne(ctx, categoriesCollection, id)
}

func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := s.db.Collection(productsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	var docs []productBSON
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding products: %w", err)
	}
	out := make([]models.Product, len(docs))
	for i, d := range docs {
		out[i] = d.toModel()
	}
	return out, nil
}

func (s *MongoStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc productBSON
	err = s.db.Collection(productsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading product: %w", err)
	}
	p := doc.toModel()
	return &p, nil
}

func (s *MongoStore) CreateProduct(ctx context.Context, p *models.Product) error {
	doc, err := newProductBSON(p)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()
	if _, err := s.db.Collection(productsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	p.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) UpdateProduct(ctx context.Context, p *models.Product) error {
	id, err := objectID(p.ID)
	if err != nil {
		return ErrNotFound
	}
	doc, err := newProductBSON(p)
	if err != nil {
		return err
	}
	set := bson.M{
		"title":       doc.Title,
		"description": doc.Description,
		"price":       doc.Price,
		"images":      doc.Images,
		"properties":  doc.Properties,
		"updatedAt":   doc.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if doc.Category != nil {
		set["category"] = doc.Category
	} else {
		update["$unset"] = bson.M{"category": ""}
	}
	return s.updateOne(ctx, productsCollection, id, update)
}

func (s *MongoStore) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteOne(ctx, productsCollection, id)
}

func (s *MongoStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.db.Collection(ordersCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	var docs []orderBSON
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}
	out := make([]models.Order, len(docs))
	for i, d := range docs {
		out[i] = d.toModel()
	}
	return out, nil
}

func (s *MongoStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc orderBSON
	err = s.db.Collection(ordersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading order: %w", err)
	}
	o := doc.toModel()
	return &o, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) updateOne(ctx context.Context, collection string, id primitive.ObjectID, update bson.M) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating %s: %w", collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteOne treats malformed and unknown ids alike: there is nothing to delete.
func (s *MongoStore) deleteOne(ctx context.Context, collection, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return nil
	}
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting from %s: %w", collection, err)
	}
	return nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func optionalObjectID(id string) (*primitive.ObjectID, error) {
	if id == "" {
		return nil, nil
	}
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

func newCategoryBSON(c *models.Category) (categoryBSON, error) {
	parent, err := optionalObjectID(c.ParentID)
	if err != nil {
		return categoryBSON{}, err
	}
	props := make([]propertyBSON, len(c.Properties))
	for i, p := range c.Properties {
		props[i] = propertyBSON{Name: p.Name, Values: p.Values}
	}
	return categoryBSON{Name: c.Name, Parent: parent, Properties: props}, nil
}

func (d categoryBSON) toModel() models.Category {
	c := models.Category{ID: d.ID.Hex(), Name: d.Name}
	if d.Parent != nil {
		c.ParentID = d.Parent.Hex()
	}
	c.Properties = make([]models.PropertyDefinition, len(d.Properties))
	for i, p := range d.Properties {
		c.Properties[i] = models.PropertyDefinition{Name: p.Name, Values: p.Values}
	}
	return c
}

func newProductBSON(p *models.Product) (productBSON, error) {
	category, err := optionalObjectID(p.Category)
	if err != nil {
		return productBSON{}, err
	}
	return productBSON{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Images:      p.Images,
		Category:    category,
		Properties:  p.Properties,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (d productBSON) toModel() models.Product {
	p := models.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       models.PriceFromFloat(d.Price),
		Images:      emptyImages(d.Images),
		Properties:  emptyProperties(d.Properties),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Category != nil {
		p.Category = d.Category.Hex()
	}
	return p
}

func (d orderBSON) toModel() models.Order {
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
		ID:            d.ID.Hex(),
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
