// Package client is a thin Go facade over the portal REST API. Each method
// maps to exactly one endpoint and performs a single HTTP call; non-2xx
// responses surface the server's message as an *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/models/dto"
)

// APIError carries the server-side error message and HTTP status.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Client talks to the portal API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody dto.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr != nil || errBody.Message == "" {
			errBody.Message = resp.Status
		}
		return &APIError{Message: errBody.Message, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Me returns the profile behind the stored token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRating submits a lecturer rating.
func (c *Client) CreateRating(ctx context.Context, req dto.CreateRatingRequest) (*dto.CreateRatingResponse, error) {
	var out dto.CreateRatingResponse
	if err := c.do(ctx, http.MethodPost, "/ratings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRatings fetches every rating, newest first.
func (c *Client) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	var out []*models.Rating
	if err := c.do(ctx, http.MethodGet, "/ratings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRatingsByStudent fetches the ratings a student submitted.
func (c *Client) ListRatingsByStudent(ctx context.Context, studentID int64) ([]*models.Rating, error) {
	var out []*models.Rating
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ratings/student/%d", studentID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRatingsByLecturer fetches the ratings a lecturer received.
func (c *Client) ListRatingsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Rating, error) {
	var out []*models.Rating
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ratings/lecturer/%d", lecturerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReport submits a lecture report.
func (c *Client) CreateReport(ctx context.Context, req dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	var out dto.CreateReportResponse
	if err := c.do(ctx, http.MethodPost, "/reports", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReports fetches every lecture report, newest first.
func (c *Client) ListReports(ctx context.Context) ([]*models.Report, error) {
	var out []*models.Report
	if err := c.do(ctx, http.MethodGet, "/reports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListReportsByLecturer fetches a single lecturer's reports.
func (c *Client) ListReportsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Report, error) {
	var out []*models.Report
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reports/lecturer/%d", lecturerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLecturers fetches the lecturer roster.
func (c *Client) ListLecturers(ctx context.Context) ([]*dto.LecturerResponse, error) {
	var out []*dto.LecturerResponse
	if err := c.do(ctx, http.MethodGet, "/prl/lecturers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddLecturer adds a lecturer account to the roster.
func (c *Client) AddLecturer(ctx context.Context, req dto.AddLecturerRequest) (*dto.AddLecturerResponse, error) {
	var out dto.AddLecturerResponse
	if err := c.do(ctx, http.MethodPost, "/prl/lecturers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStreams fetches the fixed faculty streams.
func (c *Client) ListStreams(ctx context.Context) ([]models.Stream, error) {
	var out []models.Stream
	if err := c.do(ctx, http.MethodGet, "/streams", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListModules fetches the modules of every stream.
func (c *Client) ListModules(ctx context.Context) ([]*models.Module, error) {
	var out []*models.Module
	if err := c.do(ctx, http.MethodGet, "/modules", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListModulesByStream fetches the modules of one stream by full name.
func (c *Client) ListModulesByStream(ctx context.Context, stream string) ([]*models.Module, error) {
	var out []*models.Module
	if err := c.do(ctx, http.MethodGet, "/modules/"+url.PathEscape(stream), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCourses fetches the course catalogue.
func (c *Client) ListCourses(ctx context.Context) ([]*models.Course, error) {
	var out []*models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
