package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	good, err := json.Marshal(model.Event{Kind: model.EventReturned, InstanceID: &id, Actor: "librarian"})
	require.NoError(t, err)

	var recorded []model.Event
	record := func(_ context.Context, e model.Event) error {
		recorded = append(recorded, e)
		return nil
	}

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 2)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: good}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte("{not json")}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	consumer := handler.NewConsumer(record, zap.NewNop())
	require.NoError(t, consumer.Setup(session))
	require.NoError(t, consumer.Setup(session))
	<-consumer.Ready()

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.NoError(t, consumer.Cleanup(session))

	require.Len(t, recorded, 1)
	require.Equal(t, model.EventReturned, recorded[0].Kind)
	require.Equal(t, id, *recorded[0].InstanceID)
	require.Equal(t, []int64{1, 2}, session.marked)
}

func TestConsumer_ConsumeClaim_StoreFailure(t *testing.T) {
	t.Parallel()
	first, err := json.Marshal(model.Event{Kind: model.EventRenewed, Actor: "librarian"})
	require.NoError(t, err)
	second, err := json.Marshal(model.Event{Kind: model.EventReturned, Actor: "librarian"})
	require.NoError(t, err)

	messages := func() *fakeClaim {
		claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 2)}
		claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: first}
		claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: second}
		close(claim.messages)
		return claim
	}

	errDB := errors.New("db down")
	down := handler.NewConsumer(func(context.Context, model.Event) error { return errDB }, zap.NewNop())
	session := &fakeSession{ctx: context.Background()}
	err = down.ConsumeClaim(session, messages())
	require.ErrorIs(t, err, errDB)
	require.Empty(t, session.marked)

	// the next session starts again from the failed offset
	var recorded []model.EventKind
	up := handler.NewConsumer(func(_ context.Context, e model.Event) error {
		recorded = append(recorded, e.Kind)
		return nil
	}, zap.NewNop())
	session = &fakeSession{ctx: context.Background()}
	require.NoError(t, up.ConsumeClaim(session, messages()))
	require.Equal(t, []model.EventKind{model.EventRenewed, model.EventReturned}, recorded)
	require.Equal(t, []int64{1, 2}, session.marked)
}
