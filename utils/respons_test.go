package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	InitLogger()

	cases := []struct {
		err    error
		status int
		body   string
	}{
		{ValidationError("Missing required fields"), http.StatusBadRequest, `{"error":"Missing required fields"}`},
		{NotFoundError("Customer not found"), http.StatusBadRequest, `{"error":"Customer not found"}`},
		{errors.New("database is locked"), http.StatusInternalServerError, `{"error":"database is locked"}`},
		{&AppError{Kind: KindValidation, Message: "Missing required fields", Required: []string{"itemName"}},
			http.StatusBadRequest, `{"error":"Missing required fields","required":["itemName"]}`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/test", nil)

		RespondError(c, tc.err)
		assert.Equal(t, tc.status, w.Code)
		assert.JSONEq(t, tc.body, w.Body.String())
	}
}
