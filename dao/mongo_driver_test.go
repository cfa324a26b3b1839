package dao

import (
	"context"
	"testing"
	"time"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const namespace = "databaseName.payments"

func setDriverUp() (MongoService, mtest.CommandError, *mtest.Options) {
	mongoService := MongoService{
		CollectionName: "payments",
	}

	commandError := mtest.CommandError{
		Code:    1,
		Message: "Message",
		Name:    "Name",
		Labels:  []string{"label1"},
	}

	opts := mtest.NewOptions().DatabaseName("databaseName").ClientType(mtest.Mock)

	return mongoService, commandError, opts
}

func TestUnitGetPaymentResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetPaymentResource successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "ID"},
			{Key: "amount", Value: int64(10000)},
			{Key: "currency_code", Value: "PLN"},
			{Key: "details", Value: bson.D{{Key: "paypal_order_id", Value: "ORDER-1"}}},
			{Key: "method", Value: bson.D{
				{Key: "code", Value: "paypal"},
				{Key: "factory_name", Value: "sylius.pay_pal"},
			}},
			{Key: "order", Value: bson.D{
				{Key: "number", Value: "000001"},
				{Key: "currency_code", Value: "PLN"},
				{Key: "total", Value: int64(10000)},
			}},
		}))

		mongoService.db = mt.DB

		paymentResource, err := mongoService.GetPaymentResource(context.Background(), "ID")
		assert.Nil(t, err)
		assert.NotNil(t, paymentResource)
		assert.Equal(t, "ID", paymentResource.ID)
		assert.Equal(t, int64(10000), paymentResource.Amount)
		assert.Equal(t, "ORDER-1", paymentResource.Details["paypal_order_id"])
		assert.Equal(t, "sylius.pay_pal", paymentResource.Method.FactoryName)
		assert.Equal(t, "000001", paymentResource.Order.Number)
	})

	mt.Run("GetPaymentResource not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch))

		mongoService.db = mt.DB

		paymentResource, err := mongoService.GetPaymentResource(context.Background(), "ID")
		assert.Nil(t, err)
		assert.Nil(t, paymentResource)
	})

	mt.Run("GetPaymentResource with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		paymentResource, err := mongoService.GetPaymentResource(context.Background(), "ID")
		assert.NotNil(t, err)
		assert.Nil(t, paymentResource)
	})

	mt.Run("GetPaymentResource with decoding error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "ID"},
			{Key: "refunds", Value: bson.D{{Key: "refund_id", Value: "R-1"}}},
		}))

		mongoService.db = mt.DB

		paymentResource, err := mongoService.GetPaymentResource(context.Background(), "ID")
		assert.Nil(t, paymentResource)
		assert.NotNil(t, err)
	})
}

func TestUnitStorePayPalOrderIDDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("StorePayPalOrderID runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		mongoService.db = mt.DB

		err := mongoService.StorePayPalOrderID(context.Background(), "ID", "ORDER-1")
		assert.Nil(t, err)
	})

	mt.Run("StorePayPalOrderID with no matching payment", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		mongoService.db = mt.DB

		err := mongoService.StorePayPalOrderID(context.Background(), "ID", "ORDER-1")
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "no such payment")
	})

	mt.Run("StorePayPalOrderID runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.StorePayPalOrderID(context.Background(), "ID", "ORDER-1")
		assert.NotNil(t, err)
	})
}

func TestUnitAddRefundDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	refund := models.RefundResourceDB{
		RefundID:      "REFUND-1",
		Amount:        10000,
		Status:        "COMPLETED",
		TransactionID: "REFUND-1",
		UpdatedAt:     "2024-01-01 10:00:00",
		CreatedAt:     time.Now(),
	}

	mt.Run("AddRefund runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		mongoService.db = mt.DB

		err := mongoService.AddRefund(context.Background(), "ID", refund)
		assert.Nil(t, err)
	})

	mt.Run("AddRefund runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.AddRefund(context.Background(), "ID", refund)
		assert.NotNil(t, err)
	})
}

func TestUnitUpdatePaymentStateDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("UpdatePaymentState runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		mongoService.db = mt.DB

		err := mongoService.UpdatePaymentState(context.Background(), "ID", "refunded")
		assert.Nil(t, err)
	})

	mt.Run("UpdatePaymentState runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.UpdatePaymentState(context.Background(), "ID", "refunded")
		assert.NotNil(t, err)
	})
}
