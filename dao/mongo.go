package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no database connection so the prog must
	// crash here as the service cannot continue.
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = mongoClient.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// Disconnect closes the connection to mongodb, if one was made
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}

	err := client.Disconnect(ctx)
	if err != nil {
		return fmt.Errorf("error disconnecting from mongodb: [%v]", err)
	}
	client = nil
	return nil
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
}

// NewMongoService returns a MongoService connected to the given database
func NewMongoService(mongoDBURL, databaseName, collectionName string) *MongoService {
	return &MongoService{
		db:             getMongoDatabase(mongoDBURL, databaseName),
		CollectionName: collectionName,
	}
}

// GetPaymentResource gets a payment resource from the DB
// If payment not found in DB, return nil
func (m *MongoService) GetPaymentResource(ctx context.Context, id string) (*models.PaymentResourceDB, error) {
	var resource models.PaymentResourceDB

	collection := m.db.Collection(m.CollectionName)
	dbResource := collection.FindOne(ctx, bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Debug("no payment resource found", log.Data{"payment_id": id})
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// StorePayPalOrderID records the PayPal order created for a payment
func (m *MongoService) StorePayPalOrderID(ctx context.Context, id, orderID string) error {
	update := bson.M{"$set": bson.M{
		"details." + models.PayPalOrderIDDetail: orderID,
		"updated_at":                            time.Now(),
	}}

	return m.updateOne(ctx, id, update)
}

// AddRefund appends a refund attempt to a payment
func (m *MongoService) AddRefund(ctx context.Context, id string, refund models.RefundResourceDB) error {
	update := bson.M{
		"$push": bson.M{"refunds": refund},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	return m.updateOne(ctx, id, update)
}

// UpdatePaymentState sets the state of a payment
func (m *MongoService) UpdatePaymentState(ctx context.Context, id, state string) error {
	update := bson.M{"$set": bson.M{
		"state":      state,
		"updated_at": time.Now(),
	}}

	return m.updateOne(ctx, id, update)
}

func (m *MongoService) updateOne(ctx context.Context, id string, update bson.M) error {
	collection := m.db.Collection(m.CollectionName)

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating payment resource [%s]: [%v]", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("error updating payment resource [%s]: no such payment", id)
	}

	return nil
}
