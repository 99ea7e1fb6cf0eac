package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen-service/internal/domain"
	"canteen-service/internal/mocks"
	"canteen-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newUserHandler(users *mocks.MockUserRepository) *Handler {
	return &Handler{users: services.NewUserService(users)}
}

func TestHandler_GetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const userID = "9f1c7e5a-0000-4000-8000-000000000001"

	t.Run("found", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", userID).Return(&domain.User{
			ID:       userID,
			Username: "siti",
			RoleID:   domain.RoleCustomer,
		}, nil)

		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/"+userID, nil)
		c.Params = gin.Params{{Key: "id", Value: userID}}

		newUserHandler(users).GetUser(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body domain.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "siti", body.Username)
	})

	t.Run("not found", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", "missing").Return(nil, nil)

		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/missing", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		newUserHandler(users).GetUser(c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
