package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"littlelemon/cmd"
	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres/pgtest"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/category"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServerIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	e        *echo.Echo

	adminToken   string
	managerToken string
	crewToken    string
	aliceToken   string
	bobToken     string

	crew  *identity.User
	bob   *identity.User
	mains *category.Category
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Reset())

	app := cmd.NewCompositionRoot(cmd.Config{TokenTTL: time.Hour}, suite.database.DB)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	suite.e = httpin.NewEcho(app.CreateHTTPServer(), app.CreateAuthenticateTokenQueryHandler(), logger)

	_, _, err := app.CreateEnsureAdminCommandHandler().Handle(ctx,
		commands.NewEnsureAdminCommand("admin", "admin@littlelemon.test", "password123"))
	suite.Require().NoError(err)

	_, err = suite.database.SeedUser(ctx, "maria", identity.Managers)
	suite.Require().NoError(err)
	suite.crew, err = suite.database.SeedUser(ctx, "dave", identity.DeliveryCrew)
	suite.Require().NoError(err)
	_, err = suite.database.SeedUser(ctx, "alice")
	suite.Require().NoError(err)
	suite.bob, err = suite.database.SeedUser(ctx, "bob")
	suite.Require().NoError(err)

	suite.mains, err = suite.database.SeedCategory(ctx, "main-course", "Main Course")
	suite.Require().NoError(err)

	suite.adminToken = suite.login("admin")
	suite.managerToken = suite.login("maria")
	suite.crewToken = suite.login("dave")
	suite.aliceToken = suite.login("alice")
	suite.bobToken = suite.login("bob")
}

func (suite *ServerIntegrationTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Token "+token)
	}

	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerIntegrationTestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (suite *ServerIntegrationTestSuite) login(username string) string {
	rec := suite.do(http.MethodPost, "/api/token/login/", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var token httpin.TokenResponse
	suite.decode(rec, &token)
	return token.AuthToken
}

func (suite *ServerIntegrationTestSuite) seedMenu(prices ...string) []*menu.Item {
	items := make([]*menu.Item, 0, len(prices))
	for i, price := range prices {
		item, err := suite.database.SeedMenuItem(context.Background(), "Dish "+string(rune('A'+i)), price, suite.mains.ID())
		suite.Require().NoError(err)
		items = append(items, item)
	}
	return items
}

func (suite *ServerIntegrationTestSuite) checkout(token string, items ...*menu.Item) httpin.OrderResponse {
	for _, item := range items {
		rec := suite.do(http.MethodPost, "/api/cart/", token, map[string]any{
			"menuitem": item.ID().String(),
			"quantity": 2,
		})
		suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := suite.do(http.MethodPost, "/api/orders/", token, nil)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var placed httpin.OrderResponse
	suite.decode(rec, &placed)
	return placed
}

func (suite *ServerIntegrationTestSuite) Test_Health() {
	rec := suite.do(http.MethodGet, "/health", "", nil)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerIntegrationTestSuite) Test_Authentication() {
	suite.Run("anonymous request to a protected route", func() {
		rec := suite.do(http.MethodGet, "/api/cart/", "", nil)

		suite.Equal(http.StatusUnauthorized, rec.Code)
		suite.Equal("Token", rec.Header().Get(echo.HeaderWWWAuthenticate))
	})

	suite.Run("unknown token", func() {
		rec := suite.do(http.MethodGet, "/api/menu-items/paginate/", "not-a-token", nil)

		suite.Equal(http.StatusUnauthorized, rec.Code)
		suite.JSONEq(`{"error":"authentication required: invalid token"}`, rec.Body.String())
	})

	suite.Run("wrong password", func() {
		rec := suite.do(http.MethodPost, "/api/token/login/", "", map[string]string{
			"username": "alice",
			"password": "password124",
		})

		suite.Equal(http.StatusUnauthorized, rec.Code)
	})

	suite.Run("logout revokes the token", func() {
		token := suite.login("alice")

		rec := suite.do(http.MethodPost, "/api/token/logout/", token, nil)
		suite.Equal(http.StatusNoContent, rec.Code)

		rec = suite.do(http.MethodGet, "/api/users/me/", token, nil)
		suite.Equal(http.StatusUnauthorized, rec.Code)

		rec = suite.do(http.MethodGet, "/api/users/me/", suite.aliceToken, nil)
		suite.Equal(http.StatusOK, rec.Code)
	})
}

func (suite *ServerIntegrationTestSuite) Test_RegisterAndProfile() {
	rec := suite.do(http.MethodPost, "/api/users/", "", map[string]string{
		"username": "mario",
		"email":    "mario@littlelemon.test",
		"password": "lemon-tree-42",
	})
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created httpin.UserResponse
	suite.decode(rec, &created)
	suite.Equal("mario", created.Username)
	suite.False(created.IsStaff)
	suite.Empty(created.Groups)

	rec = suite.do(http.MethodPost, "/api/users/", "", map[string]string{
		"username": "mario",
		"password": "lemon-tree-42",
	})
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPost, "/api/users/", "", map[string]string{"username": "luigi"})
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONEq(`{"error":"password: this field is required"}`, rec.Body.String())

	token := suite.login("mario")
	rec = suite.do(http.MethodGet, "/api/users/me", token, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var me httpin.UserResponse
	suite.decode(rec, &me)
	suite.Equal(created.ID, me.ID)
}

func (suite *ServerIntegrationTestSuite) Test_CreateCategory() {
	suite.Run("customer is forbidden and nothing is stored", func() {
		rec := suite.do(http.MethodPost, "/api/categories/", suite.aliceToken, map[string]string{
			"slug":  "desserts",
			"title": "Desserts",
		})
		suite.Equal(http.StatusForbidden, rec.Code)

		rec = suite.do(http.MethodGet, "/api/categories/", suite.aliceToken, nil)
		var categories []httpin.CategoryResponse
		suite.decode(rec, &categories)
		suite.Len(categories, 1)
	})

	suite.Run("staff creates", func() {
		rec := suite.do(http.MethodPost, "/api/categories/", suite.adminToken, map[string]string{
			"slug":  "desserts",
			"title": "Desserts",
		})
		suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		var created httpin.CategoryResponse
		suite.decode(rec, &created)
		suite.Equal("desserts", created.Slug)
	})

	suite.Run("duplicate slug", func() {
		rec := suite.do(http.MethodPost, "/api/categories/", suite.adminToken, map[string]string{
			"slug":  "main-course",
			"title": "Mains again",
		})
		suite.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (suite *ServerIntegrationTestSuite) Test_MenuItemLifecycle() {
	body := map[string]any{
		"title":       "Greek Salad",
		"price":       "12.50",
		"category_id": suite.mains.ID().String(),
	}

	rec := suite.do(http.MethodPost, "/api/menu-items/", suite.managerToken, body)
	suite.Equal(http.StatusForbidden, rec.Code)

	rec = suite.do(http.MethodPost, "/api/menu-items/", suite.adminToken, body)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created httpin.MenuItemResponse
	suite.decode(rec, &created)
	suite.Equal("12.50", created.Price)
	suite.Equal("main-course", created.Category.Slug)
	suite.False(created.Featured)

	path := "/api/menu-items/" + created.ID.String() + "/"

	rec = suite.do(http.MethodPut, path, suite.aliceToken, body)
	suite.Equal(http.StatusForbidden, rec.Code)

	body["price"] = "13.00"
	rec = suite.do(http.MethodPut, path, suite.managerToken, body)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodGet, path, suite.aliceToken, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var fetched httpin.MenuItemResponse
	suite.decode(rec, &fetched)
	suite.Equal("13.00", fetched.Price)

	rec = suite.do(http.MethodDelete, path, suite.managerToken, nil)
	suite.Equal(http.StatusNoContent, rec.Code)

	rec = suite.do(http.MethodGet, path, suite.aliceToken, nil)
	suite.Equal(http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodGet, "/api/menu-items/not-a-uuid/", suite.aliceToken, nil)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerIntegrationTestSuite) Test_MalformedID_ChecksRoleFirst() {
	body := map[string]any{"title": "Soup", "price": "4.00", "category_id": suite.mains.ID().String()}

	cases := []struct {
		method  string
		path    string
		body    any
		denied  string
		allowed string
	}{
		{http.MethodPut, "/api/menu-items/not-a-uuid/", body, suite.aliceToken, suite.managerToken},
		{http.MethodDelete, "/api/menu-items/not-a-uuid/", nil, suite.aliceToken, suite.managerToken},
		{http.MethodPost, "/api/menu-items/not-a-uuid/set-item-of-the-day/", nil, suite.crewToken, suite.managerToken},
		{http.MethodPost, "/api/orders/not-a-uuid/assign-delivery-crew/", nil, suite.aliceToken, suite.managerToken},
		{http.MethodPost, "/api/users/not-a-uuid/assign-group/", nil, suite.managerToken, suite.adminToken},
	}
	for _, tc := range cases {
		rec := suite.do(tc.method, tc.path, tc.denied, tc.body)
		suite.Equal(http.StatusForbidden, rec.Code, "%s %s", tc.method, tc.path)

		rec = suite.do(tc.method, tc.path, tc.allowed, tc.body)
		suite.Equal(http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}

	rec := suite.do(http.MethodPut, "/api/menu-items/not-a-uuid/", "", body)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerIntegrationTestSuite) Test_Browse() {
	items := suite.seedMenu("5.00", "3.00", "12.00", "3.00", "7.00")

	suite.Run("pagination", func() {
		rec := suite.do(http.MethodGet, "/api/menu-items/paginate/?page_size=2&page_number=2", "", nil)
		suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var page []httpin.MenuItemResponse
		suite.decode(rec, &page)
		suite.Require().Len(page, 2)
		suite.Equal(items[2].ID().String(), page[0].ID.String())
		suite.Equal(items[3].ID().String(), page[1].ID.String())

		rec = suite.do(http.MethodGet, "/api/menu-items/paginate/?page_size=2", "", nil)
		suite.decode(rec, &page)
		suite.Require().Len(page, 2)
		suite.Equal(items[0].ID().String(), page[0].ID.String())
	})

	suite.Run("pagination input errors", func() {
		for _, query := range []string{"page_size=abc", "page_number=x", "page_size=0", "page_size=101", "page_number=0"} {
			rec := suite.do(http.MethodGet, "/api/menu-items/paginate/?"+query, "", nil)
			suite.Equal(http.StatusBadRequest, rec.Code, query)
		}
	})

	suite.Run("sort by price", func() {
		rec := suite.do(http.MethodGet, "/api/menu-items/sort-by-price/", "", nil)
		suite.Require().Equal(http.StatusOK, rec.Code)

		var sorted []httpin.MenuItemResponse
		suite.decode(rec, &sorted)
		suite.Require().Len(sorted, 5)
		for i := 1; i < len(sorted); i++ {
			prev := decimal.RequireFromString(sorted[i-1].Price)
			suite.True(prev.LessThanOrEqual(decimal.RequireFromString(sorted[i].Price)), "%v", sorted)
		}
		suite.Equal("12.00", sorted[len(sorted)-1].Price)
	})

	suite.Run("by category", func() {
		rec := suite.do(http.MethodGet, "/api/categories/"+suite.mains.ID().String()+"/menu-items/", "", nil)
		suite.Require().Equal(http.StatusOK, rec.Code)

		var listed []httpin.MenuItemResponse
		suite.decode(rec, &listed)
		suite.Len(listed, 5)
	})

	suite.Run("full list needs a caller", func() {
		rec := suite.do(http.MethodGet, "/api/menu-items/", "", nil)
		suite.Equal(http.StatusUnauthorized, rec.Code)

		rec = suite.do(http.MethodGet, "/api/menu-items/", suite.aliceToken, nil)
		suite.Equal(http.StatusOK, rec.Code)
	})
}

func (suite *ServerIntegrationTestSuite) Test_SetItemOfTheDay() {
	items := suite.seedMenu("5.00", "6.00", "7.00")

	for _, pick := range []int{0, 2} {
		rec := suite.do(http.MethodPost, "/api/menu-items/"+items[pick].ID().String()+"/set-item-of-the-day/", suite.managerToken, nil)
		suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = suite.do(http.MethodGet, "/api/menu-items/", suite.managerToken, nil)
		var listed []httpin.MenuItemResponse
		suite.decode(rec, &listed)

		var featured []string
		for _, item := range listed {
			if item.Featured {
				featured = append(featured, item.ID.String())
			}
		}
		suite.Equal([]string{items[pick].ID().String()}, featured)
	}

	rec := suite.do(http.MethodPost, "/api/menu-items/"+items[1].ID().String()+"/set-item-of-the-day/", suite.aliceToken, nil)
	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *ServerIntegrationTestSuite) Test_CartAndCheckout() {
	items := suite.seedMenu("12.50", "4.75")

	placed := suite.checkout(suite.aliceToken, items...)
	suite.Equal("pending", placed.Status)
	suite.Equal("34.50", placed.Total)
	suite.Nil(placed.DeliveryCrew)
	suite.Len(placed.Items, 2)
	suite.Equal(time.Now().UTC().Format(time.DateOnly), placed.Date)

	rec := suite.do(http.MethodGet, "/api/cart/", suite.aliceToken, nil)
	suite.JSONEq(`[]`, rec.Body.String())

	rec = suite.do(http.MethodPost, "/api/orders/", suite.aliceToken, nil)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPost, "/api/cart/", suite.bobToken, map[string]any{
		"menuitem": items[0].ID().String(),
		"quantity": 1,
	})
	suite.Require().Equal(http.StatusCreated, rec.Code)

	rec = suite.do(http.MethodGet, "/api/cart/", suite.aliceToken, nil)
	suite.JSONEq(`[]`, rec.Body.String())

	rec = suite.do(http.MethodGet, "/api/orders/", suite.bobToken, nil)
	suite.JSONEq(`[]`, rec.Body.String())

	rec = suite.do(http.MethodGet, "/api/orders/"+placed.ID.String()+"/", suite.bobToken, nil)
	suite.Equal(http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodGet, "/api/orders/"+placed.ID.String()+"/", suite.aliceToken, nil)
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodDelete, "/api/cart/", suite.bobToken, nil)
	suite.Equal(http.StatusNoContent, rec.Code)
	rec = suite.do(http.MethodGet, "/api/cart/", suite.bobToken, nil)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerIntegrationTestSuite) Test_CartInputErrors() {
	rec := suite.do(http.MethodPost, "/api/cart/", suite.aliceToken, map[string]any{"quantity": 1})
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONEq(`{"error":"menuitem: this field is required"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/", bytes.NewBufferString("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Token "+suite.aliceToken)
	raw := httptest.NewRecorder()
	suite.e.ServeHTTP(raw, req)
	suite.Equal(http.StatusBadRequest, raw.Code)
}

func (suite *ServerIntegrationTestSuite) Test_DeliveryWorkflow() {
	items := suite.seedMenu("10.00")
	placed := suite.checkout(suite.aliceToken, items...)

	assignPath := "/api/orders/" + placed.ID.String() + "/assign-delivery-crew/"

	suite.Run("customer cannot assign", func() {
		rec := suite.do(http.MethodPost, assignPath, suite.aliceToken, map[string]string{
			"delivery_crew_id": suite.crew.ID().String(),
		})
		suite.Equal(http.StatusForbidden, rec.Code)
	})

	suite.Run("target outside the crew leaves the order unchanged", func() {
		rec := suite.do(http.MethodPost, assignPath, suite.managerToken, map[string]string{
			"delivery_crew_id": suite.bob.ID().String(),
		})
		suite.Equal(http.StatusBadRequest, rec.Code)

		rec = suite.do(http.MethodGet, "/api/orders/"+placed.ID.String()+"/", suite.aliceToken, nil)
		var current httpin.OrderResponse
		suite.decode(rec, &current)
		suite.Equal("pending", current.Status)
		suite.Nil(current.DeliveryCrew)
	})

	suite.Run("missing crew id", func() {
		rec := suite.do(http.MethodPost, assignPath, suite.managerToken, map[string]string{})
		suite.Equal(http.StatusBadRequest, rec.Code)
	})

	suite.Run("manager assigns crew", func() {
		rec := suite.do(http.MethodPost, assignPath, suite.managerToken, map[string]string{
			"delivery_crew_id": suite.crew.ID().String(),
		})
		suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var assigned httpin.OrderResponse
		suite.decode(rec, &assigned)
		suite.Equal("assigned", assigned.Status)
		suite.Require().NotNil(assigned.DeliveryCrew)
		suite.Equal(suite.crew.ID().String(), assigned.DeliveryCrew.String())
	})

	deliveryPath := "/api/delivery-orders/" + placed.ID.String() + "/"

	suite.Run("crew sees the delivery", func() {
		rec := suite.do(http.MethodGet, "/api/delivery-orders/", suite.crewToken, nil)
		var deliveries []httpin.OrderResponse
		suite.decode(rec, &deliveries)
		suite.Require().Len(deliveries, 1)
		suite.Equal(placed.ID, deliveries[0].ID)

		rec = suite.do(http.MethodGet, deliveryPath, suite.crewToken, nil)
		suite.Equal(http.StatusOK, rec.Code)

		rec = suite.do(http.MethodGet, deliveryPath, suite.aliceToken, nil)
		suite.Equal(http.StatusNotFound, rec.Code)
	})

	suite.Run("only the assigned crew updates the status", func() {
		rec := suite.do(http.MethodPut, deliveryPath, suite.bobToken, map[string]string{"status": "delivered"})
		suite.Equal(http.StatusNotFound, rec.Code)
	})

	suite.Run("illegal transition", func() {
		rec := suite.do(http.MethodPut, deliveryPath, suite.crewToken, map[string]string{"status": "pending"})
		suite.Equal(http.StatusBadRequest, rec.Code)
	})

	suite.Run("crew delivers", func() {
		rec := suite.do(http.MethodPut, deliveryPath, suite.crewToken, map[string]string{"status": "out_for_delivery"})
		suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = suite.do(http.MethodPut, deliveryPath, suite.crewToken, map[string]string{"status": "delivered"})
		suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var delivered httpin.OrderResponse
		suite.decode(rec, &delivered)
		suite.Equal("delivered", delivered.Status)

		rec = suite.do(http.MethodPut, deliveryPath, suite.crewToken, map[string]string{"status": "out_for_delivery"})
		suite.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (suite *ServerIntegrationTestSuite) Test_AssignUserToGroup() {
	path := "/api/users/" + suite.bob.ID().String() + "/assign-group/"

	rec := suite.do(http.MethodPost, path, suite.managerToken, map[string]string{"group": "Managers"})
	suite.Equal(http.StatusForbidden, rec.Code)
	suite.JSONEq(`{"error":"only admin can assign users to groups"}`, rec.Body.String())

	rec = suite.do(http.MethodPost, path, suite.adminToken, map[string]string{"group": "Cooks"})
	suite.Equal(http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodPost, path, suite.adminToken, map[string]string{"group": ""})
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPost, path, suite.adminToken, map[string]string{"group": "Managers"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var updated httpin.UserResponse
	suite.decode(rec, &updated)
	suite.Equal([]string{"Managers"}, updated.Groups)

	rec = suite.do(http.MethodPut, "/api/menu-items/"+suite.seedMenu("5.00")[0].ID().String()+"/", suite.bobToken, map[string]any{
		"title":       "Bruschetta",
		"price":       "6.00",
		"category_id": suite.mains.ID().String(),
	})
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func TestServerIntegration(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}
