package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The address may omit the scheme; "http://" is assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClientFor(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ── identity ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

// authenticate posts credentials and takes the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password, Name: user.Name}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse user id: %w", path, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// ── notes ────────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	params := map[string]string{}
	if filter.FolderID != "" {
		params["folder_id"] = filter.FolderID
	}
	if filter.Query != "" {
		params["q"] = filter.Query
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.FormatUint(filter.Limit, 10)
	}

	var notes []models.Note
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var updated models.Note
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", note.ID).
		SetBody(note).
		SetResult(&updated).
		Put("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetPublicNote(ctx context.Context, id string) (models.Note, error) {
	var note models.Note
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&note).
		Get("/api/public/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get public note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// ── folders ──────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	resp, err := h.authedRequest(ctx).
		SetResult(&folders).
		Get("/api/folders")
	if err != nil {
		return nil, fmt.Errorf("list folders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return folders, nil
}

func (h *httpServerAdapter) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	var created models.Folder
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(folder).
		SetResult(&created).
		Post("/api/folders")
	if err != nil {
		return models.Folder{}, fmt.Errorf("create folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) DeleteFolder(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/folders/{id}")
	if err != nil {
		return fmt.Errorf("delete folder request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── AI and study analytics ───────────────────────────────────────────────────

func (h *httpServerAdapter) GenerateAI(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	var out models.AIResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/ai/generate")
	if err != nil {
		return models.AIResponse{}, fmt.Errorf("ai generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AIResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) RecordStudySession(ctx context.Context, session models.StudySession) (models.StudySession, error) {
	var created models.StudySession
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(session).
		SetResult(&created).
		Post("/api/study-sessions")
	if err != nil {
		return models.StudySession{}, fmt.Errorf("record study session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StudySession{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) GetStudyStats(ctx context.Context) (models.StudyStats, error) {
	var stats models.StudyStats
	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/study-sessions/stats")
	if err != nil {
		return models.StudyStats{}, fmt.Errorf("study stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StudyStats{}, err
	}

	return stats, nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
