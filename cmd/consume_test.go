package cmd

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"catalog/internal/models"
	"catalog/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLogProductEvent(t *testing.T) {
	logs := captureLog(t)
	msg, err := rabbitmq.NewProductEventMessage("product.created",
		models.Product{ID: 3, Name: "Monitor", Price: 300, Availability: true}, time.Now())
	require.NoError(t, err)

	err = logProductEvent(amqp.Delivery{MessageId: msg.MessageId, Body: msg.Body})

	assert.NoError(t, err)
	assert.Contains(t, logs.String(), "Received product.created for product 3 (Monitor, 300.00, available=true)")
}

func TestLogProductEvent_DropsMalformedMessages(t *testing.T) {
	logs := captureLog(t)

	err := logProductEvent(amqp.Delivery{MessageId: "m-1", Body: []byte("{")})

	assert.NoError(t, err)
	assert.Contains(t, logs.String(), "Dropping message")
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := loadConfig()

	assert.ErrorContains(t, err, "invalid configuration")
}
