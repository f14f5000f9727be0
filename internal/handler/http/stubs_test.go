package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/stretchr/testify/require"
)

// testToken is accepted by stubAuthService.ParseToken as user testUserID.
const (
	testToken  = "valid-token"
	testUserID = int64(42)
)

// ── Service stubs ──

type stubAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return s.registerFn(ctx, user)
}

func (s *stubAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return s.loginFn(ctx, user)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if s.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + user.Login, UserID: user.UserID}, nil
	}
	return s.createTokenFn(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn != nil {
		return s.parseTokenFn(ctx, tokenString)
	}
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, UserID: testUserID}, nil
}

type stubNoteService struct {
	listFn      func(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	createFn    func(ctx context.Context, note models.Note) (models.Note, error)
	updateFn    func(ctx context.Context, note models.Note) (models.Note, error)
	deleteFn    func(ctx context.Context, id string, userID int64) error
	getPublicFn func(ctx context.Context, id string) (models.Note, error)
}

func (s *stubNoteService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	return s.listFn(ctx, filter)
}

func (s *stubNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return s.createFn(ctx, note)
}

func (s *stubNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return s.updateFn(ctx, note)
}

func (s *stubNoteService) DeleteNote(ctx context.Context, id string, userID int64) error {
	return s.deleteFn(ctx, id, userID)
}

func (s *stubNoteService) GetPublicNote(ctx context.Context, id string) (models.Note, error) {
	return s.getPublicFn(ctx, id)
}

type stubFolderService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Folder, error)
	createFn func(ctx context.Context, folder models.Folder) (models.Folder, error)
	deleteFn func(ctx context.Context, id string, userID int64) error
}

func (s *stubFolderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	return s.listFn(ctx, userID)
}

func (s *stubFolderService) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	return s.createFn(ctx, folder)
}

func (s *stubFolderService) DeleteFolder(ctx context.Context, id string, userID int64) error {
	return s.deleteFn(ctx, id, userID)
}

type stubStudySessionService struct {
	recordFn func(ctx context.Context, session models.StudySession) (models.StudySession, error)
	statsFn  func(ctx context.Context, userID int64) (models.StudyStats, error)
}

func (s *stubStudySessionService) RecordSession(ctx context.Context, session models.StudySession) (models.StudySession, error) {
	return s.recordFn(ctx, session)
}

func (s *stubStudySessionService) GetStats(ctx context.Context, userID int64) (models.StudyStats, error) {
	return s.statsFn(ctx, userID)
}

type stubAIService struct {
	generateFn func(ctx context.Context, req models.AIRequest) (models.AIResponse, error)
}

func (s *stubAIService) Generate(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	return s.generateFn(ctx, req)
}

type stubAppInfoService struct {
	version   string
	aiEnabled bool
}

func (s *stubAppInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func (s *stubAppInfoService) AIEnabled(context.Context) bool {
	return s.aiEnabled
}

// ── Helpers ──

// newTestServices returns services whose auth accepts testToken; the other
// services are filled in by each test.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &stubAuthService{},
		AppInfoService: &stubAppInfoService{version: "test-version"},
	}
}

func newRouter(svcs *service.Services) http.Handler {
	return NewHandler(svcs, nil, logger.Nop()).Init()
}

func newRouterWithMetrics(svcs *service.Services, m *metrics.Metrics) http.Handler {
	return NewHandler(svcs, m, logger.Nop()).Init()
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// serve sends one request through router, authorized with testToken when
// authorized is true.
func serve(router http.Handler, method, target string, body io.Reader, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
