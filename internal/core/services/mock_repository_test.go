package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
)

// --- Mock UserRecordRepository (shared by the service suites) ---
type MockUserRecordRepository struct {
	mock.Mock
}

func (m *MockUserRecordRepository) Create(ctx context.Context, username string, record domain.UserRecord) error {
	args := m.Called(ctx, username, record)
	return args.Error(0)
}

func (m *MockUserRecordRepository) Load(ctx context.Context, username string) (*domain.UserRecord, error) {
	args := m.Called(ctx, username)
	var record *domain.UserRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.UserRecord)
	}
	return record, args.Error(1)
}

func (m *MockUserRecordRepository) Save(ctx context.Context, username string, record domain.UserRecord) error {
	args := m.Called(ctx, username, record)
	return args.Error(0)
}
