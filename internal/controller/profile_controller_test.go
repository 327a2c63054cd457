package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type fakeProfileService struct {
	lastUserID string
}

func (s *fakeProfileService) FindAllByUser(ctx context.Context, userID string) ([]dto.ProfileResponse, error) {
	s.lastUserID = userID
	return []dto.ProfileResponse{}, nil
}

func newProfileTestApp(svc *fakeProfileService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewProfileController(svc).RegisterRoutes(api)
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestListRequiresToken(t *testing.T) {
	app := newProfileTestApp(&fakeProfileService{})

	req := httptest.NewRequest("GET", "/api/profile/v1", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestListAcceptsStringUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeProfileService{}
	app := newProfileTestApp(svc)

	req := httptest.NewRequest("GET", "/api/profile/v1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"user_id": "user-1"}))
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "user-1", svc.lastUserID)
}

func TestListRejectsNonStringUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProfileTestApp(&fakeProfileService{})

	// Validly signed, but the subject claim is a number
	req := httptest.NewRequest("GET", "/api/profile/v1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"user_id": 42}))
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestListRejectsMissingUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProfileTestApp(&fakeProfileService{})

	req := httptest.NewRequest("GET", "/api/profile/v1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"email": "alice@example.com"}))
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
