package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Messages surfaced for failures the server gave no message for.
const (
	errConnection = "Erro de conexão. Tente novamente."
	errRequest    = "Erro na requisição. Tente novamente."
)

// SessionStore is the part of the session the client depends on: the current
// token and the ability to wipe the session when the server rejects it.
type SessionStore interface {
	Token() string
	Clear() error
}

// Result is the uniform outcome of every API call. Exactly one of the success
// fields (OK, Data) or Err is meaningful; no error from this layer escapes as
// a Go panic or naked error.
type Result struct {
	OK     bool
	Status int
	Data   json.RawMessage
	Err    string
}

func failure(status int, msg string) Result {
	return Result{Status: status, Err: msg}
}

// Client issues authorized requests against the TransCall backend. The token
// dependency is explicit: it is read from the session store per request, and
// a 401 clears the store and fires onUnauthorized before the caller sees the
// failure.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	session        SessionStore
	onUnauthorized func()
}

// New creates a client for the API server at baseURL. onUnauthorized is
// invoked once per 401 response, after the session has been cleared; the
// application uses it to navigate to the login entry point.
func New(baseURL string, session SessionStore, onUnauthorized func()) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/") + "/api",
		httpClient:     &http.Client{},
		session:        session,
		onUnauthorized: onUnauthorized,
	}
}

// needsAuth reports whether path gets the Authorization header. Login and
// register are the only anonymous endpoints.
func needsAuth(path string) bool {
	return path != "/auth/login" && path != "/auth/register"
}

func (c *Client) do(method, path string, body any) Result {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return failure(0, errRequest)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return failure(0, errRequest)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" && needsAuth(path) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(0, errConnection)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(resp.StatusCode, errConnection)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && needsAuth(path) {
			// Session is dead. Clear it and send the user to login
			// before the caller observes the failure. A 401 from the
			// anonymous endpoints means bad credentials, not expiry,
			// and carries the server's own message.
			c.session.Clear()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
			return failure(resp.StatusCode, "Sessão expirada")
		}
		return failure(resp.StatusCode, errorMessage(raw))
	}

	return Result{OK: true, Status: resp.StatusCode, Data: raw}
}

// errorMessage pulls the `error` field from a failure body, falling back to
// a generic message.
func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return errRequest
}

// decode unmarshals a success payload into out. A malformed body is reported
// through the same failure shape as everything else.
func decode[T any](res Result) (T, Result) {
	var out T
	if !res.OK {
		return out, res
	}
	if len(res.Data) > 0 {
		if err := json.Unmarshal(res.Data, &out); err != nil {
			return out, failure(res.Status, errRequest)
		}
	}
	return out, res
}

// --- Auth ---

// Login exchanges credentials for a bearer token and user profile.
func (c *Client) Login(email, password string) (LoginResponse, Result) {
	res := c.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	return decode[LoginResponse](res)
}

// Register creates a new account.
func (c *Client) Register(req RegisterRequest) (MessageResponse, Result) {
	res := c.do(http.MethodPost, "/auth/register", req)
	return decode[MessageResponse](res)
}

// Profile fetches the current user's profile.
func (c *Client) Profile() (User, Result) {
	return decode[User](c.do(http.MethodGet, "/auth/profile", nil))
}

// UpdateProfile saves profile changes, optionally rotating the password.
func (c *Client) UpdateProfile(update ProfileUpdate) (MessageResponse, Result) {
	return decode[MessageResponse](c.do(http.MethodPut, "/auth/profile", update))
}

// UpdateAPISettings stores third-party API credentials.
func (c *Client) UpdateAPISettings(settings APISettings) (MessageResponse, Result) {
	return decode[MessageResponse](c.do(http.MethodPut, "/auth/api-settings", settings))
}

// UpdatePreferences stores UI and behavior preferences.
func (c *Client) UpdatePreferences(prefs Preferences) (MessageResponse, Result) {
	return decode[MessageResponse](c.do(http.MethodPut, "/auth/preferences", prefs))
}

// Organization fetches the current user's organization.
func (c *Client) Organization() (Organization, Result) {
	return decode[Organization](c.do(http.MethodGet, "/auth/organization", nil))
}

// UpdateOrganization renames the organization. Admin only, enforced server-side.
func (c *Client) UpdateOrganization(name string) (MessageResponse, Result) {
	return decode[MessageResponse](c.do(http.MethodPut, "/auth/organization", map[string]string{
		"name": name,
	}))
}

// InviteUser invites someone into the organization with the given role.
func (c *Client) InviteUser(email, role string) (MessageResponse, Result) {
	return decode[MessageResponse](c.do(http.MethodPost, "/auth/invite", map[string]string{
		"email": email,
		"role":  role,
	}))
}

// Users lists the organization's members.
func (c *Client) Users() ([]User, Result) {
	return decode[[]User](c.do(http.MethodGet, "/auth/users", nil))
}

// --- Recordings ---

// Recordings lists the account's call recordings.
func (c *Client) Recordings() ([]Recording, Result) {
	return decode[[]Recording](c.do(http.MethodGet, "/upload/recordings", nil))
}

// DeleteRecording removes a recording server-side.
func (c *Client) DeleteRecording(id int) Result {
	return c.do(http.MethodDelete, fmt.Sprintf("/upload/recordings/%d", id), nil)
}

// DownloadRecording fetches the raw file for a recording and writes it into
// destDir, returning the saved path.
func (c *Client) DownloadRecording(id int, destDir string) (string, Result) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/upload/recordings/%d/download", c.baseURL, id), nil)
	if err != nil {
		return "", failure(0, errRequest)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", failure(0, errConnection)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			c.session.Clear()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
			return "", failure(resp.StatusCode, "Sessão expirada")
		}
		return "", failure(resp.StatusCode, errorMessage(raw))
	}

	name := downloadName(resp.Header.Get("Content-Disposition"), id)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", failure(0, errRequest)
	}
	dest := filepath.Join(destDir, name)
	out, err := os.Create(dest)
	if err != nil {
		return "", failure(0, errRequest)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dest)
		return "", failure(0, errConnection)
	}
	return dest, Result{OK: true, Status: resp.StatusCode}
}

func downloadName(contentDisposition string, id int) string {
	if contentDisposition != "" {
		if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
			if name := filepath.Base(params["filename"]); name != "" && name != "." {
				return name
			}
		}
	}
	return fmt.Sprintf("gravacao_%d", id)
}

// --- Transcriptions ---

// Transcribe starts a transcription job for an uploaded recording.
func (c *Client) Transcribe(recordingID int) Result {
	return c.do(http.MethodPost, fmt.Sprintf("/transcription/transcribe/%d", recordingID), nil)
}

// Transcriptions lists completed transcriptions.
func (c *Client) Transcriptions() ([]Transcription, Result) {
	return decode[[]Transcription](c.do(http.MethodGet, "/transcription/transcriptions", nil))
}

// Transcription fetches one transcription with segments and keywords.
func (c *Client) Transcription(id int) (Transcription, Result) {
	return decode[Transcription](c.do(http.MethodGet, fmt.Sprintf("/transcription/transcriptions/%d", id), nil))
}

// --- 4COM ---

// FourcomStatus checks the 4COM integration's connectivity.
func (c *Client) FourcomStatus() (FourcomStatus, Result) {
	return decode[FourcomStatus](c.do(http.MethodGet, "/fourcom/status", nil))
}

// FourcomRecordings lists recordings available for import from 4COM.
func (c *Client) FourcomRecordings(f FourcomFilters) (FourcomRecordingList, Result) {
	params := url.Values{}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	if f.AgentID != "" {
		params.Set("agent_id", f.AgentID)
	}
	if f.CustomerID != "" {
		params.Set("customer_id", f.CustomerID)
	}
	if f.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", f.Limit))
	}
	path := "/fourcom/recordings"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return decode[FourcomRecordingList](c.do(http.MethodGet, path, nil))
}

// ImportFourcomRecording pulls one 4COM recording into the account.
func (c *Client) ImportFourcomRecording(recordingID string) (ImportResult, Result) {
	return decode[ImportResult](c.do(http.MethodPost, "/fourcom/import", map[string]string{
		"recording_id": recordingID,
	}))
}

// --- Dashboard ---

func dashboardQuery(f DashboardFilters) string {
	params := url.Values{}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	if f.Operator != "" {
		params.Set("operator", f.Operator)
	}
	if f.Sentiment != "" {
		params.Set("sentiment", f.Sentiment)
	}
	return params.Encode()
}

// DashboardStats fetches aggregate analytics, optionally filtered.
func (c *Client) DashboardStats(f DashboardFilters) (DashboardStats, Result) {
	path := "/dashboard/stats"
	if q := dashboardQuery(f); q != "" {
		path += "?" + q
	}
	return decode[DashboardStats](c.do(http.MethodGet, path, nil))
}

// RecentTranscriptions fetches the dashboard's recent-activity list.
func (c *Client) RecentTranscriptions() ([]Transcription, Result) {
	return decode[[]Transcription](c.do(http.MethodGet, "/dashboard/recent-transcriptions", nil))
}

// --- Export URLs ---
// Export artifacts are opened externally (browser navigation), never fetched
// through the client, so only the URLs are built here.

// ExportPDFURL is the report PDF for one transcription.
func (c *Client) ExportPDFURL(transcriptionID int) string {
	return fmt.Sprintf("%s/export/pdf/%d", c.baseURL, transcriptionID)
}

// ExportCSVURL is the CSV export for one transcription.
func (c *Client) ExportCSVURL(transcriptionID int) string {
	return fmt.Sprintf("%s/export/csv/%d", c.baseURL, transcriptionID)
}

// ExportDashboardCSVURL is the filtered dashboard CSV export.
func (c *Client) ExportDashboardCSVURL(f DashboardFilters) string {
	u := c.baseURL + "/export/dashboard/csv"
	if q := dashboardQuery(f); q != "" {
		u += "?" + q
	}
	return u
}
