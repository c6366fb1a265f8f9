package handlers_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"candela/internal/apperrors"
	"candela/internal/handlers"
	"candela/internal/middleware"
	"candela/internal/models"
	"candela/internal/payments"
	"candela/internal/repositories"
	"candela/internal/services"
	"candela/pkg/money"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testJWTSecret     = "test_jwt_secret"
	testWebhookSecret = "whsec_test_secret"
	adminEmail        = "admin@candela.test"
)

// fakeProvider is an offline payments.Provider backing checkout and the
// redirect re-query. Webhook signature verification goes through the real
// Stripe implementation, which needs no network.
type fakeProvider struct {
	mu      sync.Mutex
	counter int
	intents map[string]payments.Intent
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{intents: make(map[string]payments.Intent)}
}

func (f *fakeProvider) CreateIntent(_ context.Context, amount money.Cents, currency string) (payments.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.counter++
	intent := payments.Intent{
		ID:           fmt.Sprintf("pi_test_%d", f.counter),
		ClientSecret: fmt.Sprintf("pi_test_%d_secret", f.counter),
		Status:       payments.IntentStatusRequiresPayment,
		Amount:       amount,
	}
	f.intents[intent.ID] = intent
	return intent, nil
}

func (f *fakeProvider) RetrieveIntent(_ context.Context, id string) (payments.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	intent, ok := f.intents[id]
	if !ok {
		return payments.Intent{}, apperrors.Upstream("no such payment intent", nil)
	}
	return intent, nil
}

func (f *fakeProvider) UpdateIntentAmount(_ context.Context, id string, amount money.Cents) (payments.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	intent, ok := f.intents[id]
	if !ok {
		return payments.Intent{}, apperrors.Upstream("no such payment intent", nil)
	}
	if intent.Status == payments.IntentStatusSucceeded || intent.Status == payments.IntentStatusCanceled {
		return payments.Intent{}, apperrors.InvalidState("intent already settled")
	}
	intent.Amount = amount
	f.intents[id] = intent
	return intent, nil
}

func (f *fakeProvider) VerifyWebhook([]byte, string) (payments.Event, error) {
	return payments.Event{}, apperrors.Signature("fakeProvider does not verify webhooks")
}

// settle flips a stored intent's status, simulating the hosted payment step.
func (f *fakeProvider) settle(id string, status payments.IntentStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()

	intent := f.intents[id]
	intent.Status = status
	f.intents[id] = intent
}

type testEnv struct {
	app      *fiber.App
	provider *fakeProvider
}

// setupApp builds a Fiber app over in-memory SQLite with the same wiring
// as main, except the payment provider used by checkout is the offline
// fake and no message broker is attached.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	viper.SetDefault("JWT_SECRET", testJWTSecret)
	viper.AutomaticEnv()

	// A named shared-cache database keeps one schema across pooled
	// connections while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
		&models.WishlistItem{},
	)
	assert.NoError(t, err)

	provider := newFakeProvider()
	stripeProvider := payments.NewStripeProvider("sk_test_unused", testWebhookSecret)

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)

	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, provider, "gbp")
	reconcileService := services.NewReconcileService(orderRepo, provider, nil)
	accountService := services.NewAccountService(addressRepo, wishlistRepo)

	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, reconcileService)
	paymentHandler := handlers.NewPaymentHandler(stripeProvider, reconcileService)
	accountHandler := handlers.NewAccountHandler(accountService)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})

	adminEmails := []string{adminEmail}
	authRequired := middleware.AuthRequired(authService, adminEmails)
	optionalAuth := middleware.OptionalAuth(authService, adminEmails)
	adminRequired := middleware.AdminRequired()

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1, authRequired, adminRequired)
	orderHandler.RegisterRoutes(apiV1, authRequired, optionalAuth, adminRequired)
	paymentHandler.RegisterRoutes(apiV1)
	accountHandler.RegisterRoutes(apiV1, authRequired)

	return &testEnv{app: app, provider: provider}
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func (e *testEnv) request(t *testing.T, method, url, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	assert.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func (e *testEnv) registerAndLogin(t *testing.T, email, password string) string {
	t.Helper()

	resp, _ := e.request(t, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"email":    email,
		"name":     "Test User",
		"password": password,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := e.request(t, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func (e *testEnv) createProduct(t *testing.T, adminToken string, name string, price float64) string {
	t.Helper()

	resp, body := e.request(t, http.MethodPost, "/api/v1/products", adminToken, fiber.Map{
		"name":            name,
		"fragrance_notes": "amber, cedar",
		"price":           price,
		"stock":           25,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	assert.NotEmpty(t, id)
	return id
}

// checkout creates an order and returns its id and payment intent id.
func (e *testEnv) checkout(t *testing.T, token, productID string, quantity int) (string, string) {
	t.Helper()

	resp, body := e.request(t, http.MethodPost, "/api/v1/checkout", token, fiber.Map{
		"items": []fiber.Map{{"product_id": productID, "quantity": quantity}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	order, _ := body["order"].(map[string]interface{})
	assert.NotNil(t, order)
	orderID, _ := order["id"].(string)
	intentID, _ := order["payment_intent_id"].(string)
	assert.NotEmpty(t, orderID)
	assert.NotEmpty(t, intentID)
	return orderID, intentID
}

// stripeSignature computes a valid Stripe-Signature header over payload.
func stripeSignature(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func webhookPayload(eventType, intentID string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_test_1","object":"event","type":"%s","data":{"object":{"id":"%s","object":"payment_intent"}}}`,
		eventType, intentID))
}

func (e *testEnv) postWebhook(t *testing.T, payload []byte, signature string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signature)

	resp, err := e.app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func (e *testEnv) getOrder(t *testing.T, token, orderID string) map[string]interface{} {
	t.Helper()
	resp, body := e.request(t, http.MethodGet, "/api/v1/orders/"+orderID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	return body
}

func TestCheckoutWebhookPaidScenario(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	// 46.04 + standard shipping 3.95 = 49.99 (4999 minor units).
	productID := env.createProduct(t, adminToken, "Amber Noir Candle", 46.04)
	orderID, intentID := env.checkout(t, customerToken, productID, 1)

	order := env.getOrder(t, customerToken, orderID)
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, 49.99, order["total"])

	payload := webhookPayload("payment_intent.succeeded", intentID)
	resp := env.postWebhook(t, payload, stripeSignature(payload, testWebhookSecret))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	order = env.getOrder(t, customerToken, orderID)
	assert.Equal(t, "paid", order["status"])
	assert.Equal(t, 49.99, order["total"])

	// At-least-once delivery: the retry is a successful no-op.
	resp = env.postWebhook(t, payload, stripeSignature(payload, testWebhookSecret))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	order = env.getOrder(t, customerToken, orderID)
	assert.Equal(t, "paid", order["status"])
}

func TestWebhookInvalidSignature(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Fig & Vetiver Candle", 28.00)
	orderID, intentID := env.checkout(t, customerToken, productID, 1)

	payload := webhookPayload("payment_intent.succeeded", intentID)

	resp := env.postWebhook(t, payload, "t=1,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A signed payload for a different secret must also be rejected.
	resp = env.postWebhook(t, payload, stripeSignature(payload, "whsec_wrong"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	order := env.getOrder(t, customerToken, orderID)
	assert.Equal(t, "pending", order["status"])
}

func TestWebhookPaymentFailed(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Sea Salt Candle", 22.50)
	orderID, intentID := env.checkout(t, customerToken, productID, 1)

	payload := webhookPayload("payment_intent.payment_failed", intentID)
	resp := env.postWebhook(t, payload, stripeSignature(payload, testWebhookSecret))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	order := env.getOrder(t, customerToken, orderID)
	assert.Equal(t, "failed", order["status"])
}

func TestCrossUserAccessHidden(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	ownerToken := env.registerAndLogin(t, "owner@example.com", "password123")
	strangerToken := env.registerAndLogin(t, "stranger@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Oud Candle", 35.00)
	orderID, intentID := env.checkout(t, ownerToken, productID, 1)

	// Another authenticated user must not learn the order exists.
	resp, body := env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["code"])

	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/lookup?payment_intent="+intentID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The admin sees it.
	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// No session at all is a 401.
	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminStatusUpdate(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Tobacco Flower Candle", 31.00)
	orderID, intentID := env.checkout(t, customerToken, productID, 1)

	// Re-asserting the current status is a no-op success.
	resp, _ := env.request(t, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", adminToken,
		fiber.Map{"status": "pending"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pending", env.getOrder(t, customerToken, orderID)["status"])

	payload := webhookPayload("payment_intent.succeeded", intentID)
	resp = env.postWebhook(t, payload, stripeSignature(payload, testWebhookSecret))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Unrecognized status value is a validation error and changes nothing.
	resp, body := env.request(t, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", adminToken,
		fiber.Map{"status": "shipped-ish"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", body["code"])
	assert.Equal(t, "paid", env.getOrder(t, customerToken, orderID)["status"])

	// Non-admins cannot reach the endpoint.
	resp, _ = env.request(t, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", customerToken,
		fiber.Map{"status": "processing"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// paid -> processing -> shipped -> delivered.
	for _, status := range []string{"processing", "shipped", "delivered"} {
		resp, _ = env.request(t, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", adminToken,
			fiber.Map{"status": status})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, status, env.getOrder(t, customerToken, orderID)["status"])
	}

	// delivered is terminal.
	resp, body = env.request(t, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", adminToken,
		fiber.Map{"status": "processing"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid_state", body["code"])
	assert.Equal(t, "delivered", env.getOrder(t, customerToken, orderID)["status"])
}

func TestRedirectReturn(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Neroli Candle", 27.00)
	orderID, intentID := env.checkout(t, customerToken, productID, 1)

	// A forged redirect claiming success navigates to retry when the
	// provider disagrees, and never flips the order.
	resp, _ := env.request(t, http.MethodGet,
		"/api/v1/payments/return?payment_intent="+intentID+"&redirect_status=succeeded", "", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/checkout/retry", resp.Header.Get("Location"))
	assert.Equal(t, "pending", env.getOrder(t, customerToken, orderID)["status"])

	// Once the provider reports success, the server-side re-query settles
	// the order without waiting for the webhook.
	env.provider.settle(intentID, payments.IntentStatusSucceeded)
	resp, _ = env.request(t, http.MethodGet,
		"/api/v1/payments/return?payment_intent="+intentID+"&redirect_status=succeeded", "", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/checkout/success", resp.Header.Get("Location"))
	assert.Equal(t, "paid", env.getOrder(t, customerToken, orderID)["status"])

	// No intent id navigates home.
	resp, _ = env.request(t, http.MethodGet, "/api/v1/payments/return", "", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGuestCheckout(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Lavender Candle", 18.00)

	// No Authorization header: a guest order with no owner.
	orderID, _ := env.checkout(t, "", productID, 2)

	// A guest order belongs to nobody; an authenticated customer cannot
	// read it, the admin can.
	resp, _ := env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, customerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, body := env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["user_id"])
}

func TestCheckoutValidation(t *testing.T) {
	env := setupApp(t)

	resp, body := env.request(t, http.MethodPost, "/api/v1/checkout", "", fiber.Map{
		"items": []fiber.Map{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", body["code"])

	resp, _ = env.request(t, http.MethodPost, "/api/v1/checkout", "", fiber.Map{
		"items": []fiber.Map{{"product_id": "prod-x", "quantity": -1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateShippingPrePaymentOnly(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Cedarwood Candle", 24.00)
	orderID, intentID := env.checkout(t, customerToken, productID, 1)

	// 24.00 + express 7.95 = 31.95.
	resp, body := env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/shipping", customerToken,
		fiber.Map{"shipping_option": "express"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 31.95, body["total"])
	assert.Equal(t, 7.95, body["shipping"])

	payload := webhookPayload("payment_intent.succeeded", intentID)
	respW := env.postWebhook(t, payload, stripeSignature(payload, testWebhookSecret))
	assert.Equal(t, http.StatusOK, respW.StatusCode)

	// Settled orders can no longer change amounts.
	resp, body = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/shipping", customerToken,
		fiber.Map{"shipping_option": "standard"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid_state", body["code"])
}

func TestOwnerCancel(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")
	strangerToken := env.registerAndLogin(t, "stranger@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Bergamot Candle", 20.00)
	orderID, _ := env.checkout(t, customerToken, productID, 1)

	// A stranger cannot cancel what they cannot see.
	resp, _ := env.request(t, http.MethodPost, "/api/v1/orders/"+orderID+"/cancel", strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.request(t, http.MethodPost, "/api/v1/orders/"+orderID+"/cancel", customerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cancelled", env.getOrder(t, customerToken, orderID)["status"])
}

func TestListOrders(t *testing.T) {
	env := setupApp(t)
	adminToken := env.registerAndLogin(t, adminEmail, "admin-password")
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")

	productID := env.createProduct(t, adminToken, "Rose Candle", 26.00)
	env.checkout(t, customerToken, productID, 1)
	env.checkout(t, customerToken, productID, 2)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/orders/", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &orders))
	assert.Len(t, orders, 2)
}

func TestAccountAddressesAndWishlist(t *testing.T) {
	env := setupApp(t)
	customerToken := env.registerAndLogin(t, "customer@example.com", "password123")
	strangerToken := env.registerAndLogin(t, "stranger@example.com", "password123")

	resp, body := env.request(t, http.MethodPost, "/api/v1/account/addresses", customerToken, fiber.Map{
		"line1":       "12 Wax Lane",
		"city":        "London",
		"postal_code": "E1 6AN",
		"country":     "GB",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	addressID, _ := body["id"].(string)
	assert.NotEmpty(t, addressID)

	// Deleting someone else's address reads as absent.
	resp, _ = env.request(t, http.MethodDelete, "/api/v1/account/addresses/"+addressID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.request(t, http.MethodDelete, "/api/v1/account/addresses/"+addressID, customerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.request(t, http.MethodPost, "/api/v1/account/wishlist", customerToken, fiber.Map{
		"product_id": "prod-1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	wishID, _ := body["id"].(string)

	resp, _ = env.request(t, http.MethodDelete, "/api/v1/account/wishlist/"+wishID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = env.request(t, http.MethodDelete, "/api/v1/account/wishlist/"+wishID, customerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
