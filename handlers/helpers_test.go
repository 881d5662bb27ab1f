package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dulce-tentacion/pasteleria-backend/middleware"
	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asClient(c echo.Context, userID primitive.ObjectID) {
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserType, models.UserTypeClient)
}
