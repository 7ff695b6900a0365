//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	assetrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/asset"
	choicerepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/choice"
	progressrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/progress"
	scenariorepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/scenario"
	scenerepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/scene"
	"github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/testhelper"
	tokenrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/token"
	userrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/user"
	"github.com/nmoreaux/storyforge-backend/internal/adapter/provider/googletts"
	"github.com/nmoreaux/storyforge-backend/internal/adapter/provider/huggingface"
	"github.com/nmoreaux/storyforge-backend/internal/adapter/storage/local"
	authpkg "github.com/nmoreaux/storyforge-backend/internal/auth"
	"github.com/nmoreaux/storyforge-backend/internal/config"
	assetsvc "github.com/nmoreaux/storyforge-backend/internal/service/asset"
	authsvc "github.com/nmoreaux/storyforge-backend/internal/service/auth"
	progresssvc "github.com/nmoreaux/storyforge-backend/internal/service/progress"
	storysvc "github.com/nmoreaux/storyforge-backend/internal/service/story"
	usersvc "github.com/nmoreaux/storyforge-backend/internal/service/user"
	gqlpkg "github.com/nmoreaux/storyforge-backend/internal/transport/graphql"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/dataloader"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/generated"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/resolver"
	"github.com/nmoreaux/storyforge-backend/internal/transport/middleware"
	"github.com/nmoreaux/storyforge-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlPayload extracts a specific field from the data map.
func gqlPayload(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	payload, ok := data[field].(map[string]any)
	require.True(t, ok, "expected %q in data", field)
	return payload
}

// gqlList extracts a list field from the data map.
func gqlList(t *testing.T, result map[string]any, field string) []any {
	t.Helper()
	data := gqlData(t, result)
	list, ok := data[field].([]any)
	require.True(t, ok, "expected %q list in data", field)
	return list
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errors, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errors)

	firstErr, ok := errors[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	DB     *mongo.Database
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real MongoDB container (shared via testhelper). The AI providers are
// left unconfigured, so generation requests fail with GENERATION_UNAVAILABLE.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get database from testcontainers-backed helper.
	db := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 3. Repositories.
	users := userrepo.New(db)
	tokens := tokenrepo.New(db)
	scenarios := scenariorepo.New(db)
	scenes := scenerepo.New(db)
	choices := choicerepo.New(db)
	progresses := progressrepo.New(db)
	assets := assetrepo.New(db)

	// 4. File storage and AI providers. No HF token: generation unavailable.
	files, err := local.New(config.MediaConfig{Dir: t.TempDir(), BaseURL: "/media/assets"})
	require.NoError(t, err)

	aiCfg := config.AIConfig{
		TTSLanguage:    "en",
		RequestTimeout: 5 * time.Second,
	}
	hf := huggingface.NewProvider(aiCfg, logger)
	tts := googletts.NewProvider("", "en", logger)

	// 5. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	authCfg := config.AuthConfig{
		JWTSecret:       jwtSecret,
		JWTIssuer:       jwtIssuer,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 720 * time.Hour,
		BcryptCost:      4,
	}

	// 6. Services.
	authService := authsvc.NewService(logger, users, tokens, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users, tokens, authCfg.BcryptCost)
	assetService := assetsvc.NewService(logger, assets, files, hf, tts, aiCfg)
	storyService := storysvc.NewService(logger, scenarios, scenes, choices, progresses, assetService)
	progressService := progresssvc.NewService(logger, progresses, scenarios, scenes)

	// 7. GraphQL resolver + handler.
	res := resolver.NewResolver(logger, authService, userService, storyService, progressService, assetService)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.NewDefaultServer(schema)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))

	// 8. DataLoader repositories.
	dlRepos := &dataloader.Repos{
		User:     users,
		Scenario: scenarios,
		Scene:    scenes,
		Choice:   choices,
		Asset:    assets,
	}

	// 9. Middleware chain.
	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)

	graphqlHandler := chain(gqlSrv)
	uploadHandler := chain(http.HandlerFunc(
		rest.NewUploadHandler(assetService, storyService, 8<<20, logger).Upload,
	))

	// 10. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(dbPinger{db}, "test-version")
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)
	mux.Handle("POST /upload", uploadHandler)

	// 11. httptest server.
	srv := httptest.NewServer(mux)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		DB:     db,
	}
}

type dbPinger struct{ db *mongo.Database }

func (p dbPinger) Ping(ctx context.Context) error {
	return p.db.Client().Ping(ctx, nil)
}

// ---------------------------------------------------------------------------
// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, map[string]any) {
	t.Helper()

	body := map[string]any{
		"query":     query,
		"variables": variables,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal graphql body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// uploadFile posts a multipart form to /upload and returns status + decoded body.
func (ts *testServer) uploadFile(t *testing.T, token string, fields map[string]string, filename string, content []byte) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write file content: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/upload", &buf)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	var result map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			t.Fatalf("decode response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// Account helpers. Users are created through the public register mutation so
// the password hash is real and login works.
// ---------------------------------------------------------------------------

var userSeq int

// registerUser registers a fresh player account and returns its access
// token, refresh token, and user id.
func registerUser(t *testing.T, ts *testServer) (accessToken, refreshToken, userID string) {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("player-%d-%d@example.com", time.Now().UnixNano(), userSeq)
	return registerEmail(t, ts, email)
}

func registerEmail(t *testing.T, ts *testServer, email string) (accessToken, refreshToken, userID string) {
	t.Helper()

	query := `mutation($input: RegisterInput!) {
		register(input: $input) { accessToken refreshToken user { id email role } }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"email":    email,
			"password": "securepassword123",
		},
	}

	status, result := ts.graphqlQuery(t, query, vars, "")
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "register")
	user := payload["user"].(map[string]any)
	return payload["accessToken"].(string), payload["refreshToken"].(string), user["id"].(string)
}

// registerAdmin creates a player account via register, promotes it to admin
// directly in the database, and logs in again so the access token carries
// the admin role claim.
func registerAdmin(t *testing.T, ts *testServer) (accessToken, userID string) {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("admin-%d-%d@example.com", time.Now().UnixNano(), userSeq)
	_, _, id := registerEmail(t, ts, email)

	testhelper.PromoteToAdmin(t, ts.DB, id)

	query := `mutation($email: String!, $password: String!) {
		login(email: $email, password: $password) { accessToken user { id role } }
	}`
	status, result := ts.graphqlQuery(t, query, map[string]any{
		"email":    email,
		"password": "securepassword123",
	}, "")
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "login")
	require.Equal(t, "admin", payload["user"].(map[string]any)["role"])
	return payload["accessToken"].(string), id
}

// ---------------------------------------------------------------------------
// Story fixtures built through the public API.
// ---------------------------------------------------------------------------

// createScenario creates a scenario as the given user and returns its id.
func createScenario(t *testing.T, ts *testServer, token, title string, published bool) string {
	t.Helper()

	query := `mutation($input: CreateScenarioInput!) {
		createScenario(input: $input) { id title isPublished }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"title":       title,
			"isPublished": published,
		},
	}
	status, result := ts.graphqlQuery(t, query, vars, token)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	return gqlPayload(t, result, "createScenario")["id"].(string)
}

// createScene creates a scene and returns its id.
func createScene(t *testing.T, ts *testServer, token, scenarioID, title string, order int, start, end bool) string {
	t.Helper()

	query := `mutation($input: CreateSceneInput!) {
		createScene(input: $input) { id title order isStartScene isEndScene }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"scenarioId":   scenarioID,
			"title":        title,
			"text":         "You are standing in " + title + ".",
			"order":        order,
			"isStartScene": start,
			"isEndScene":   end,
		},
	}
	status, result := ts.graphqlQuery(t, query, vars, token)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	return gqlPayload(t, result, "createScene")["id"].(string)
}

// createChoice links two scenes and returns the choice id.
func createChoice(t *testing.T, ts *testServer, token, fromID, toID, text string) string {
	t.Helper()

	query := `mutation($input: CreateChoiceInput!) {
		createChoice(input: $input) { id text }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"fromSceneId": fromID,
			"toSceneId":   toID,
			"text":        text,
		},
	}
	status, result := ts.graphqlQuery(t, query, vars, token)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	return gqlPayload(t, result, "createChoice")["id"].(string)
}
