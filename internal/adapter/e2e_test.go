package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-shop-keeper/internal/handler/http"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// newShopServer starts the full application stack on top of a private
// in-memory SQLite database.
func newShopServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	db, err := store.NewConnect(ctx, config.DB{
		DSN:    "file:" + uuid.NewString() + "?mode=memory",
		Driver: config.DriverSQLite,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Migrate(ctx)
	require.NoError(t, err)

	services := service.NewServices(store.NewStorages(db, log), config.App{
		TokenSignKey:     "e2e-sign-key",
		TokenIssuer:      "go-shop-keeper",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}, models.NewAppBuildInfo("v0.0.1-test", "", ""), log)

	handler := myHTTP.NewHandler(services, config.Server{RequestTimeout: 10 * time.Second}, log)

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newE2EClient(t *testing.T, srv *httptest.Server) ShopClient {
	t.Helper()

	c, err := NewHTTPShopClient(ClientConfig{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestE2E_SignUpThenValidate(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)
	ctx := context.Background()

	auth, err := c.SignUp(ctx, models.SignUpRequest{Email: "ann@shop.test", Name: "Ann", Password: "secret"})
	require.NoError(t, err)
	assert.Positive(t, auth.User.ID)
	assert.NotNil(t, auth.User.Orders)
	assert.Empty(t, auth.User.Orders)

	user, err := c.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.User.ID, user.ID)
	assert.Equal(t, "ann@shop.test", user.Email)
}

func TestE2E_SignUpResponseHasNoPasswordField(t *testing.T) {
	srv := newShopServer(t)

	resp, err := http.Post(srv.URL+"/sign-up", "application/json",
		strings.NewReader(`{"email":"raw@shop.test","name":"Raw","password":"secret"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, strings.ToLower(string(body)), "password")
	assert.NotContains(t, string(body), "$2a$")
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

func TestE2E_DuplicateSignUp(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)
	ctx := context.Background()

	req := models.SignUpRequest{Email: "dup@shop.test", Name: "Dup", Password: "secret"}
	_, err := c.SignUp(ctx, req)
	require.NoError(t, err)

	_, err = c.SignUp(ctx, req)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestE2E_SignIn(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)
	ctx := context.Background()

	signedUp, err := c.SignUp(ctx, models.SignUpRequest{Email: "bob@shop.test", Name: "Bob", Password: "right"})
	require.NoError(t, err)
	c.SetToken("")

	auth, err := c.SignIn(ctx, models.SignInRequest{Email: "bob@shop.test", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, auth.User.ID)

	user, err := c.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, user.ID)

	_, wrongPassword := c.SignIn(ctx, models.SignInRequest{Email: "bob@shop.test", Password: "wrong"})
	_, unknownEmail := c.SignIn(ctx, models.SignInRequest{Email: "nobody@shop.test", Password: "right"})

	require.ErrorIs(t, wrongPassword, ErrBadRequest)
	require.ErrorIs(t, unknownEmail, ErrBadRequest)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Contains(t, wrongPassword.Error(), "Email/password invalid")
}

func TestE2E_ValidateRejectsGarbage(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)

	c.SetToken("not.a.token")
	_, err := c.Validate(context.Background())

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid or expired token")
}

func TestE2E_GetUserErrors(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)

	_, err := c.GetUser(context.Background(), 424242)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "User not found")

	resp, err := http.Get(srv.URL + "/users/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"invalid id"}`, string(body))
}

func TestE2E_OrderWithMissingReference(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)
	ctx := context.Background()

	item, err := c.CreateItem(ctx, models.CreateItemRequest{Title: "Mug", Image: "mug.png", Price: decimal.RequireFromString("9.99")})
	require.NoError(t, err)

	_, err = c.CreateOrder(ctx, models.CreateOrderRequest{Quantity: 1, UserID: 999, ItemID: item.ID})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "referenced user or item does not exist")

	orders, err := c.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestE2E_DeleteOrderTwice(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)
	ctx := context.Background()

	auth, err := c.SignUp(ctx, models.SignUpRequest{Email: "del@shop.test", Name: "Del", Password: "x"})
	require.NoError(t, err)
	item, err := c.CreateItem(ctx, models.CreateItemRequest{Title: "Pen", Price: decimal.RequireFromString("1.50")})
	require.NoError(t, err)
	order, err := c.CreateOrder(ctx, models.CreateOrderRequest{Quantity: 2, UserID: auth.User.ID, ItemID: item.ID})
	require.NoError(t, err)

	deleted, err := c.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, deleted)

	_, err = c.DeleteOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Order not found")
}

func TestE2E_UpdateUserKeepsOrders(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)
	ctx := context.Background()

	auth, err := c.SignUp(ctx, models.SignUpRequest{Email: "old@shop.test", Name: "Carl", Password: "x"})
	require.NoError(t, err)
	item, err := c.CreateItem(ctx, models.CreateItemRequest{Title: "Lamp", Image: "lamp.png", Price: decimal.RequireFromString("25")})
	require.NoError(t, err)
	_, err = c.CreateOrder(ctx, models.CreateOrderRequest{Quantity: 3, UserID: auth.User.ID, ItemID: item.ID})
	require.NoError(t, err)

	newEmail := "new@shop.test"
	updated, err := c.UpdateUser(ctx, auth.User.ID, models.UpdateUserRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, "Carl", updated.Name)

	got, err := c.GetUser(ctx, auth.User.ID)
	require.NoError(t, err)
	assert.Equal(t, newEmail, got.Email)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, 3, got.Orders[0].Quantity)
	require.NotNil(t, got.Orders[0].Item)
	assert.Equal(t, "Lamp", got.Orders[0].Item.Title)
	assert.True(t, decimal.RequireFromString("25").Equal(got.Orders[0].Item.Price))
}

func TestE2E_GetItemIncludesOrderUsers(t *testing.T) {
	srv := newShopServer(t)
	c := newE2EClient(t, srv)
	ctx := context.Background()

	auth, err := c.SignUp(ctx, models.SignUpRequest{Email: "dora@shop.test", Name: "Dora", Password: "x"})
	require.NoError(t, err)
	item, err := c.CreateItem(ctx, models.CreateItemRequest{Title: "Book", Price: decimal.RequireFromString("12.34")})
	require.NoError(t, err)
	_, err = c.CreateOrder(ctx, models.CreateOrderRequest{Quantity: 1, UserID: auth.User.ID, ItemID: item.ID})
	require.NoError(t, err)

	got, err := c.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, got.Orders, 1)
	require.NotNil(t, got.Orders[0].User)
	assert.Equal(t, "dora@shop.test", got.Orders[0].User.Email)
	assert.Nil(t, got.Orders[0].User.Orders)

	items, err := c.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Orders)
}

func TestE2E_Health(t *testing.T) {
	srv := newShopServer(t)

	health, err := newE2EClient(t, srv).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.HealthResponse{Status: "ok", Version: "v0.0.1-test"}, health)
}
