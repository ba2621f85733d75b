// Package testutil provides shared test doubles for the service layer.
package testutil

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/mock"

	"echoscribe/internal/app/model"
)

// MockServices contains all mock services for testing
type MockServices struct {
	AuthService          *MockAuthService
	TranscriptionService *MockTranscriptionService
	TranscriptService    *MockTranscriptService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		AuthService:          NewMockAuthService(t),
		TranscriptionService: NewMockTranscriptionService(t),
		TranscriptService:    NewMockTranscriptService(t),
	}
}

// MockAuthService is a mock implementation of services.AuthService
type MockAuthService struct {
	mock.Mock
}

func NewMockAuthService(t *testing.T) *MockAuthService {
	m := &MockAuthService{}
	m.Test(t)
	return m
}

func (m *MockAuthService) IssueToken(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTranscriptionService is a mock implementation of services.TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func NewMockTranscriptionService(t *testing.T) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, file, header)
	return args.String(0), args.Error(1)
}

// MockTranscriptService is a mock implementation of services.TranscriptService
type MockTranscriptService struct {
	mock.Mock
}

func NewMockTranscriptService(t *testing.T) *MockTranscriptService {
	m := &MockTranscriptService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptService) Save(ctx context.Context, content string) (*model.Transcript, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcript), args.Error(1)
}
