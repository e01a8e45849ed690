package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	cases := map[string]int{
		ErrCodeNotFound:         http.StatusNotFound,
		ErrCodeAlreadyExists:    http.StatusConflict,
		ErrCodeAlreadyFavorited: http.StatusConflict,
		ErrCodeFavoriteNotFound: http.StatusNotFound,
		ErrCodeTooManyFiles:     http.StatusBadRequest,
		ErrCodeFileTooLarge:     http.StatusRequestEntityTooLarge,
		ErrCodeUnauthorized:     http.StatusUnauthorized,
		ErrCodeValidation:       http.StatusBadRequest,
		"SOMETHING_ELSE":        http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, GetHTTPStatus(code), "code %s", code)
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeAlreadyFavorited, NormalizeErrorCode("ALREADY_FAVORITED"))
	assert.Equal(t, ErrCodeFileTooLarge, NormalizeErrorCode("FILE_TOO_LARGE"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CUSTOM_CODE", NormalizeErrorCode("CUSTOM_CODE"))
}

// Entity-specific domain codes must fold into their category so missing
// resources answer 404 and validation failures 400, never 500.
func TestNormalizeErrorCode_EntityCodes(t *testing.T) {
	notFound := []string{"PROPERTY_NOT_FOUND", "USER_NOT_FOUND"}
	for _, code := range notFound {
		normalized := NormalizeErrorCode(code)
		assert.Equal(t, ErrCodeNotFound, normalized, "code %s", code)
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus(normalized), "code %s", code)
	}

	validation := []string{"INVALID_TITLE", "INVALID_PROPERTY_TYPE", "INVALID_PRICE", "INVALID_PHOTO_URL"}
	for _, code := range validation {
		normalized := NormalizeErrorCode(code)
		assert.Equal(t, ErrCodeValidation, normalized, "code %s", code)
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(normalized), "code %s", code)
	}

	// The explicit favorites mapping wins over the suffix rule, and
	// already-normalized codes pass through untouched
	assert.Equal(t, ErrCodeFavoriteNotFound, NormalizeErrorCode("FAVORITE_NOT_FOUND"))
	assert.Equal(t, ErrCodeFavoriteNotFound, NormalizeErrorCode(ErrCodeFavoriteNotFound))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Imóvel não encontrado", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Imóvel não encontrado", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "title", Message: "This field is required"},
		{Field: "type", Message: "Must be one of: apartment house commercial"},
	}

	resp := NewValidationErrorResponse("Request validation failed", "req-456", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "title", resp.Error.Details[0].Field)
}
