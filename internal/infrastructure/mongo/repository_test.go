package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
)

func TestDocID(t *testing.T) {
	d := domain.Delivery{Topic: "work-units", Partition: 3, Offset: 42}
	assert.Equal(t, "work-units/3/42", docID(d))
}
