package application

import (
	"errors"
	"testing"

	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/repository"
	"github.com/femfund/femfund/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestPreQualify_Thresholds(t *testing.T) {
	low := PreQualify(40, 0)
	assert.False(t, low.Microloan)
	assert.False(t, low.PeerToPeer)
	assert.False(t, low.Grant)
	assert.False(t, low.VentureCapital)

	mid := PreQualify(60, 0)
	assert.True(t, mid.Microloan)
	assert.True(t, mid.PeerToPeer)
	assert.False(t, mid.Grant)
	assert.False(t, mid.VentureCapital)
	// 5000 * (60/50) * 1.0 = 6000
	assert.Equal(t, 6000, mid.RecommendedAmount)

	grant := PreQualify(75, 0)
	assert.True(t, grant.Grant)
	assert.False(t, grant.VentureCapital)

	high := PreQualify(90, 2)
	assert.True(t, high.Microloan)
	assert.True(t, high.PeerToPeer)
	assert.True(t, high.Grant)
	assert.True(t, high.VentureCapital)
	// 5000 * (90/50) * (1 + 2*0.2) = 12600
	assert.Equal(t, 12600, high.RecommendedAmount)
}

func setupFundingServiceMocks(t *testing.T) (*FundingService, *mock.MockUserRepo, *mock.MockApplicationRepo, *mock.MockFundingRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockApp := mock.NewMockApplicationRepo(ctrl)
	mockFunding := mock.NewMockFundingRepo(ctrl)
	repos := &repository.Repos{User: mockUser, Application: mockApp, Funding: mockFunding}
	return NewFundingService(repos), mockUser, mockApp, mockFunding
}

func TestPreQualifyUser_DefaultsScoreTo50(t *testing.T) {
	svc, mockUser, mockApp, _ := setupFundingServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1}, nil)
	mockApp.EXPECT().CountSuccessfulByUser(uint(1)).Return(int64(0), nil)

	result, err := svc.PreQualifyUser(1)
	assert.NoError(t, err)
	assert.False(t, result.Microloan)
	assert.Equal(t, 5000, result.RecommendedAmount)
}

func TestPreQualifyUser_ConservativeOnHistoryError(t *testing.T) {
	svc, mockUser, mockApp, _ := setupFundingServiceMocks(t)

	score := 90
	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, FinancialScore: &score}, nil)
	mockApp.EXPECT().CountSuccessfulByUser(uint(1)).Return(int64(0), errors.New("db down"))

	result, err := svc.PreQualifyUser(1)
	assert.NoError(t, err)
	assert.True(t, result.Microloan)
	assert.True(t, result.PeerToPeer)
	assert.False(t, result.Grant)
	assert.False(t, result.VentureCapital)
	assert.Equal(t, 5000, result.RecommendedAmount)
}

func TestPreQualifyUser_UnknownUser(t *testing.T) {
	svc, mockUser, _, _ := setupFundingServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(user.User{}, errors.New("not found"))

	_, err := svc.PreQualifyUser(99)
	assert.Equal(t, ErrUserNotFound, err)
}

func TestScoreRecommendations_Brackets(t *testing.T) {
	svc, mockUser, _, _ := setupFundingServiceMocks(t)

	low := 30
	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, FinancialScore: &low}, nil)
	recs, err := svc.ScoreRecommendations(1)
	assert.NoError(t, err)
	assert.Len(t, recs, 4)
	assert.Contains(t, recs[0], "debt-to-income")

	high := 85
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, FinancialScore: &high}, nil)
	recs, err = svc.ScoreRecommendations(2)
	assert.NoError(t, err)
	assert.Contains(t, recs[0], "strong financial position")
}
