package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-finance/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-finance/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-finance/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-finance/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/services"
)

type testApp struct {
	router      *gin.Engine
	broadcaster *currency.Broadcaster
	users       *repository.InMemoryUserRepository
	auth        *services.AuthService
	tokens      *services.TokenService
}

type testServices struct {
	profiles     *services.ProfileService
	transactions *services.TransactionService
	challenges   *services.ChallengeService
	currencies   *services.CurrencyService
	insights     *services.InsightsService
}

func newTestServices(users *repository.InMemoryUserRepository, b *currency.Broadcaster) (testServices, *services.TokenService, *services.AuthService) {
	profileRepo := repository.NewInMemoryProfileRepository()
	txRepo := repository.NewInMemoryTransactionRepository()
	challengeRepo := repository.NewInMemoryChallengeRepository()

	currencies := services.NewCurrencyService(cache.NewInMemoryPreferenceStore(), b, "USD", nil)
	insights := services.NewInsightsService(profileRepo, txRepo, challengeRepo, currencies, cache.NewInMemoryInsightsCache(), time.Minute, nil)
	queue := services.NewInvalidatingQueue(insights, nil)

	tokens := services.NewTokenService("handler-test-secret", "kanso-finance-test", time.Hour, users)

	return testServices{
		profiles:     services.NewProfileService(profileRepo, queue),
		transactions: services.NewTransactionService(txRepo, queue),
		challenges:   services.NewChallengeService(challengeRepo, queue),
		currencies:   currencies,
		insights:     insights,
	}, tokens, services.NewAuthService(users, tokens)
}

// setupRouter mounts the protected handlers behind a stub that trusts X-User-ID.
func setupRouter(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repository.NewInMemoryUserRepository()
	b := currency.NewBroadcaster(8)
	t.Cleanup(b.Close)

	svcs, tokens, auth := newTestServices(users, b)

	r := gin.New()
	api := r.Group("/api/v1")
	adapterHTTP.NewAuthHandler(auth).RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set(middleware.ContextUserIDKey, id)
		}
		c.Next()
	})
	adapterHTTP.NewProfileHandler(svcs.profiles).RegisterRoutes(protected)
	adapterHTTP.NewTransactionHandler(svcs.transactions).RegisterRoutes(protected)
	adapterHTTP.NewChallengeHandler(svcs.challenges).RegisterRoutes(protected)
	adapterHTTP.NewInsightsHandler(svcs.insights).RegisterRoutes(protected)
	adapterHTTP.NewCurrencyHandler(svcs.currencies).RegisterRoutes(protected)

	return &testApp{router: r, broadcaster: b, users: users, auth: auth, tokens: tokens}
}

func (a *testApp) do(t *testing.T, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch v := body.(type) {
		case string:
			buf.WriteString(v)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(v))
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
