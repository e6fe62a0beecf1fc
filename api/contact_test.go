package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/contact"
)

// MockContactUseCase is a mock implementation of contact.ContactUseCase
type MockContactUseCase struct {
	mock.Mock
}

func (m *MockContactUseCase) Submit(ctx context.Context, input contact.SubmitInput) (*contact.Receipt, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Receipt), args.Error(1)
}

func TestContactHandler_submit(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := contact.SubmitInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Subject:   "Baggage allowance",
		Message:   "How many bags can I check in?",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/contact", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	receipt := &contact.Receipt{MessageID: "b2b9e7e0", Status: "received"}
	mockService.On("Submit", mock.Anything, input).Return(receipt, nil)

	handler.submit(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response contact.Receipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "received", response.Status)

	mockService.AssertExpectations(t)
}

func TestContactHandler_submit_validationError(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]string{"firstName": "Grace"})
	c.Request = httptest.NewRequest("POST", "/api/contact", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	verr := domain.NewValidationError(
		domain.FieldViolation{Field: "lastName", Message: "is required"},
		domain.FieldViolation{Field: "email", Message: "is required"},
	)
	mockService.On("Submit", mock.Anything, mock.Anything).Return(nil, verr)

	handler.submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}
