package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

func TestResetPhoneRequest_SendsToCurrentPhone(t *testing.T) {
	uc, mockRepo, _, mockNotify := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).
		Return(&models.Customer{ID: customerID, PhoneNumber: "0500000001"}, nil)
	mockRepo.EXPECT().SetCustomerAuthToken(gomock.Any(), customerID, gomock.Any(), gomock.Any()).
		Return(nil)

	var sentEvent *models.NotificationEvent
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			sentEvent = event
			return nil
		})

	resp, err := uc.ResetPhoneRequest(context.Background(), customerID.String())

	require.NoError(t, err)
	assert.Equal(t, customerID.String(), resp.ID)
	require.NotNil(t, sentEvent)
	assert.Equal(t, []string{"0500000001"}, sentEvent.Recipients)
}

func TestResetPhone_StagesAndNotifiesNewPhone(t *testing.T) {
	uc, mockRepo, _, mockNotify := newTestUC(t)

	customerID := uuid.New()
	token := "123456"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		PhoneNumber:         "0500000001",
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)
	mockRepo.EXPECT().GetCustomerByPhone(gomock.Any(), "0500000002").
		Return(nil, errs.NotFound("customer not found"))

	var stagedToken string
	mockRepo.EXPECT().StageNewPhone(gomock.Any(), customerID, "0500000002", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, authToken string, _ time.Time) error {
			stagedToken = authToken
			return nil
		})

	var sentEvent *models.NotificationEvent
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			sentEvent = event
			return nil
		})

	resp, err := uc.ResetPhone(context.Background(), customerID.String(), "+233500000002", token)

	require.NoError(t, err)
	assert.Equal(t, customerID.String(), resp.ID)
	require.NotNil(t, sentEvent)
	assert.Equal(t, []string{"0500000002"}, sentEvent.Recipients)
	assert.Equal(t, stagedToken, sentEvent.Details["token"])
}

func TestResetPhone_TargetPhoneTaken(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	token := "123456"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		PhoneNumber:         "0500000001",
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)
	mockRepo.EXPECT().GetCustomerByPhone(gomock.Any(), "0500000002").
		Return(&models.Customer{ID: uuid.New(), PhoneNumber: "0500000002"}, nil)

	_, err := uc.ResetPhone(context.Background(), customerID.String(), "0500000002", token)

	assert.True(t, errs.IsKind(err, errs.KindResourceExists))
}

func TestResetPhone_WrongToken(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	token := "123456"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)

	_, err := uc.ResetPhone(context.Background(), customerID.String(), "0500000002", "000000")

	assert.True(t, errs.IsKind(err, errs.KindBadRequest))
}

func TestUpdatePhone_Commits(t *testing.T) {
	uc, mockRepo, _, mockNotify := newTestUC(t)

	customerID := uuid.New()
	token := "654321"
	exp := time.Now().Add(3 * time.Minute)
	newPhone := "0500000002"
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		PhoneNumber:         "0500000001",
		NewPhoneNumber:      &newPhone,
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)
	mockRepo.EXPECT().CommitNewPhone(gomock.Any(), customerID).Return(nil)
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.UpdatePhone(context.Background(), customerID.String(), token)

	assert.NoError(t, err)
}

func TestUpdatePhone_ConsumedToken(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:        customerID,
		AuthToken: nil,
	}, nil)

	err := uc.UpdatePhone(context.Background(), customerID.String(), "654321")

	assert.True(t, errs.IsKind(err, errs.KindExpiredToken))
}
