package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/config"
)

// ProducerTopic is the topic to which the refund processed kafka message is sent
const ProducerTopic = "paypal-refund-processed"

// ProducerSchemaName is the schema which will be used to send the refund processed kafka message with
const ProducerSchemaName = "paypal-refund-processed"

// refundProcessed represents the avro schema registered under ProducerSchemaName
type refundProcessed struct {
	PaymentID string `avro:"payment_id"`
	RefundID  string `avro:"refund_id"`
	Status    string `avro:"status"`
}

// produceRefundMessage handles creating a producer, marshalling the refund into the correct avro schema and sending
// the message to the topic defined in ProducerTopic
func produceRefundMessage(paymentID, refundID, status string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config for kafka message production: [%v]", err)
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}

	refundProcessedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: refundProcessedSchema,
	}

	message, err := prepareKafkaMessage(refundProcessed{PaymentID: paymentID, RefundID: refundID, Status: status}, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}

	return nil
}

// prepareKafkaMessage is pulled out of produceRefundMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(refund refundProcessed, refundProcessedSchema avro.Schema) (*producer.Message, error) {
	messageBytes, err := refundProcessedSchema.Marshal(refund)
	if err != nil {
		return nil, fmt.Errorf("error marshalling refund processed message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
