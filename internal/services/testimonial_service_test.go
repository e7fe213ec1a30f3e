package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"seacatering/internal/models/db_models"
	"seacatering/pkg/utils"
)

// MockTestimonialRepository is a mock implementation of TestimonialRepositoryInterface.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) CreateTestimonial(ctx context.Context, testimonial *db_models.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) ListLatest(ctx context.Context, limit int) ([]db_models.Testimonial, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Testimonial), args.Error(1)
}

func TestTestimonialService_AddTestimonial(t *testing.T) {
	tests := []struct {
		name          string
		auth          utils.AuthContext
		message       string
		rating        int
		setupMock     func(*MockTestimonialRepository)
		expectedError error
	}{
		{
			name:    "successful testimonial",
			auth:    testAuth(),
			message: "  Great food, on time every week.  ",
			rating:  5,
			setupMock: func(repo *MockTestimonialRepository) {
				repo.On("CreateTestimonial", mock.Anything, mock.MatchedBy(func(tm *db_models.Testimonial) bool {
					return tm.Name == "Customer One" &&
						tm.Message == "Great food, on time every week." &&
						tm.Rating == 5
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing profile name",
			auth:          utils.AuthContext{UserID: uuid.New(), Email: "x@example.com"},
			message:       "Nice",
			rating:        4,
			setupMock:     func(*MockTestimonialRepository) {},
			expectedError: utils.ErrMissingProfileName,
		},
		{
			name:          "empty message",
			auth:          testAuth(),
			message:       "   ",
			rating:        3,
			setupMock:     func(*MockTestimonialRepository) {},
			expectedError: utils.ErrEmptyReviewMessage,
		},
		{
			name:          "rating below range",
			auth:          testAuth(),
			message:       "Meh",
			rating:        0,
			setupMock:     func(*MockTestimonialRepository) {},
			expectedError: utils.ErrInvalidRating,
		},
		{
			name:          "rating above range",
			auth:          testAuth(),
			message:       "Amazing",
			rating:        6,
			setupMock:     func(*MockTestimonialRepository) {},
			expectedError: utils.ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTestimonialRepository)
			tt.setupMock(repo)

			service := NewTestimonialService(repo)
			err := service.AddTestimonial(context.Background(), tt.auth, tt.message, tt.rating)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestTestimonialService_GetTestimonials(t *testing.T) {
	repo := new(MockTestimonialRepository)

	first := db_models.Testimonial{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Customer One",
		Message:   "Great food",
		Rating:    5,
		CreatedAt: time.Now(),
	}
	second := db_models.Testimonial{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Customer Two",
		Message:   "Good value",
		Rating:    4,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	repo.On("ListLatest", mock.Anything, 10).
		Return([]db_models.Testimonial{first, second}, nil)

	service := NewTestimonialService(repo)
	out, err := service.GetTestimonials(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, out, 2) {
		assert.Equal(t, first.ID, out[0].ID)
		assert.Equal(t, "Customer One", out[0].Name)
		assert.Equal(t, 5, out[0].Rating)
		assert.Equal(t, second.ID, out[1].ID)
	}
	repo.AssertExpectations(t)
}
