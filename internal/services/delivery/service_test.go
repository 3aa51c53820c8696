package delivery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	uuidMocks "github.com/KirkDiggler/sketchphone/internal/common/uuid/mocks"
	"github.com/KirkDiggler/sketchphone/internal/models"
	"github.com/KirkDiggler/sketchphone/internal/services/delivery"
	"github.com/KirkDiggler/sketchphone/internal/services/delivery/mocks"
)

type DeliveryServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSender    *mocks.MockSender
	mockUUID      *uuidMocks.MockUUID
	service       delivery.Service
	ctx           context.Context
	promptEffect  *models.Effect
	galleryEffect *models.Effect
}

func (s *DeliveryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSender = mocks.NewMockSender(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.ctx = context.Background()

	svc, err := delivery.New(&delivery.Config{
		Sender:        s.mockSender,
		UUIDGenerator: s.mockUUID,
		MaxAttempts:   3,
		RetryDelay:    time.Millisecond,
	})
	s.Require().NoError(err)
	s.service = svc

	s.promptEffect = &models.Effect{
		Kind:        models.EffectKindPrompt,
		GameID:      "ABCD",
		Round:       1,
		RecipientID: "player-1",
		TurnKind:    models.TurnKindWrite,
		Text:        "Starting round 2 of 3. DESCRIBE the image",
		MediaURL:    "https://cdn.example.com/cat.png",
	}
	s.galleryEffect = &models.Effect{
		Kind:        models.EffectKindGallery,
		GameID:      "ABCD",
		RecipientID: "player-2",
		Text:        "Game is over!",
	}
}

func (s *DeliveryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DeliveryServiceTestSuite) TestNewValidatesConfig() {
	_, err := delivery.New(nil)
	s.Error(err)

	_, err = delivery.New(&delivery.Config{UUIDGenerator: s.mockUUID})
	s.Error(err)

	_, err = delivery.New(&delivery.Config{Sender: s.mockSender})
	s.Error(err)
}

func (s *DeliveryServiceTestSuite) TestDeliverNilInput() {
	_, err := s.service.Deliver(s.ctx, nil)
	s.Error(err)
}

func (s *DeliveryServiceTestSuite) TestDeliverInOrder() {
	gomock.InOrder(
		s.mockUUID.EXPECT().NewUUID().Return("delivery-1"),
		s.mockSender.EXPECT().Send(gomock.Any(), &delivery.SendInput{
			RecipientID: "player-1",
			Text:        s.promptEffect.Text,
			MediaURL:    s.promptEffect.MediaURL,
		}).Return(&delivery.SendOutput{Handle: "msg-1"}, nil),
		s.mockUUID.EXPECT().NewUUID().Return("delivery-2"),
		s.mockSender.EXPECT().Send(gomock.Any(), &delivery.SendInput{
			RecipientID: "player-2",
			Text:        s.galleryEffect.Text,
		}).Return(&delivery.SendOutput{Handle: "msg-2"}, nil),
	)

	output, err := s.service.Deliver(s.ctx, &delivery.DeliverInput{
		Effects: []*models.Effect{s.promptEffect, nil, s.galleryEffect},
	})

	s.Require().NoError(err)
	s.Empty(output.Failed)
	s.Require().Len(output.Delivered, 2)
	s.Equal("delivery-1", output.Delivered[0].ID)
	s.Equal("msg-1", output.Delivered[0].Handle)
	s.Equal(1, output.Delivered[0].Attempts)
	s.Equal(s.galleryEffect, output.Delivered[1].Effect)
}

func (s *DeliveryServiceTestSuite) TestDeliverRetriesThenSucceeds() {
	s.mockUUID.EXPECT().NewUUID().Return("delivery-1")
	gomock.InOrder(
		s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited")),
		s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&delivery.SendOutput{Handle: "msg-1"}, nil),
	)

	output, err := s.service.Deliver(s.ctx, &delivery.DeliverInput{
		Effects: []*models.Effect{s.promptEffect},
	})

	s.Require().NoError(err)
	s.Require().Len(output.Delivered, 1)
	s.Equal(2, output.Delivered[0].Attempts)
}

func (s *DeliveryServiceTestSuite) TestDeliverFailureDoesNotStopOthers() {
	sendErr := errors.New("cannot send messages to this user")

	s.mockUUID.EXPECT().NewUUID().Return("delivery-1")
	s.mockUUID.EXPECT().NewUUID().Return("delivery-2")
	s.mockSender.EXPECT().
		Send(gomock.Any(), &delivery.SendInput{
			RecipientID: "player-1",
			Text:        s.promptEffect.Text,
			MediaURL:    s.promptEffect.MediaURL,
		}).
		Return(nil, sendErr).
		Times(3)
	s.mockSender.EXPECT().
		Send(gomock.Any(), &delivery.SendInput{
			RecipientID: "player-2",
			Text:        s.galleryEffect.Text,
		}).
		Return(&delivery.SendOutput{Handle: "msg-2"}, nil)

	output, err := s.service.Deliver(s.ctx, &delivery.DeliverInput{
		Effects: []*models.Effect{s.promptEffect, s.galleryEffect},
	})

	s.Require().NoError(err)
	s.Require().Len(output.Failed, 1)
	s.Equal("delivery-1", output.Failed[0].ID)
	s.Equal(3, output.Failed[0].Attempts)
	s.ErrorIs(output.Failed[0].Err, sendErr)
	s.Require().Len(output.Delivered, 1)
	s.Equal("delivery-2", output.Delivered[0].ID)
}

func (s *DeliveryServiceTestSuite) TestDeliverStopsRetryingWhenCancelled() {
	svc, err := delivery.New(&delivery.Config{
		Sender:        s.mockSender,
		UUIDGenerator: s.mockUUID,
		MaxAttempts:   5,
		RetryDelay:    time.Hour,
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	sendErr := errors.New("gateway unavailable")

	s.mockUUID.EXPECT().NewUUID().Return("delivery-1")
	s.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *delivery.SendInput) (*delivery.SendOutput, error) {
			cancel()
			return nil, sendErr
		})

	output, err := svc.Deliver(ctx, &delivery.DeliverInput{
		Effects: []*models.Effect{s.promptEffect},
	})

	s.Require().NoError(err)
	s.Require().Len(output.Failed, 1)
	s.Equal(1, output.Failed[0].Attempts)
	s.ErrorIs(output.Failed[0].Err, sendErr)
	s.ErrorIs(output.Failed[0].Err, context.Canceled)
}

func TestDeliveryServiceSuite(t *testing.T) {
	suite.Run(t, new(DeliveryServiceTestSuite))
}
