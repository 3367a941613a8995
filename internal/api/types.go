// Package api provides the HTTP client and wire types for the TransCall
// backend REST API.
package api

// User is the authenticated user's profile as returned by the auth endpoints.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
}

// LoginResponse is the body of a successful POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Organization is the tenant the current user belongs to.
type Organization struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Plan string `json:"plan"`
}

// Recording is one uploaded or imported call recording.
type Recording struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	CreatedAt       string `json:"created_at"`
	FileType        string `json:"file_type"`
	Status          string `json:"status"`
	TranscriptionID int    `json:"transcription_id,omitempty"`
}

// Keyword is one extracted keyword with its occurrence count.
type Keyword struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Segment is one speaker turn within a transcription.
type Segment struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
	Sentiment float64 `json:"sentiment"`
}

// Transcription is a completed transcription with its analysis results.
type Transcription struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	CreatedAt      string    `json:"created_at"`
	Duration       float64   `json:"duration"`
	Operator       string    `json:"operator"`
	SentimentScore float64   `json:"sentiment_score"`
	Summary        string    `json:"summary"`
	Keywords       []Keyword `json:"keywords"`
	Segments       []Segment `json:"segments"`
}

// DayCount is one point in the calls-by-day series.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SentimentDistribution holds call counts per sentiment class.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// OperatorPerformance is one operator's aggregate in the dashboard.
type OperatorPerformance struct {
	Name      string  `json:"name"`
	Calls     int     `json:"calls"`
	Sentiment float64 `json:"sentiment"`
}

// DashboardStats is the aggregate analytics payload behind the dashboard page.
type DashboardStats struct {
	TotalCalls            int                   `json:"total_calls"`
	AverageTMA            float64               `json:"average_tma"`
	AverageSentiment      float64               `json:"average_sentiment"`
	CriticalMoments       int                   `json:"critical_moments"`
	CallsByDay            []DayCount            `json:"calls_by_day"`
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
	TopKeywords           []Keyword             `json:"top_keywords"`
	OperatorsPerformance  []OperatorPerformance `json:"operators_performance"`
}

// DashboardFilters narrows the stats query. Zero values are omitted.
type DashboardFilters struct {
	StartDate string
	EndDate   string
	Operator  string
	Sentiment string
}

// FourcomStatus reports the state of the 4COM telephony integration.
type FourcomStatus struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	SimulationMode bool   `json:"simulation_mode"`
}

// FourcomRecording is one call available for import from 4COM.
type FourcomRecording struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Duration  float64 `json:"duration"`
	AgentName string  `json:"agent_name"`
}

// FourcomRecordingList is the body of GET /fourcom/recordings.
type FourcomRecordingList struct {
	Recordings []FourcomRecording `json:"recordings"`
	Count      int                `json:"count"`
	Simulation bool               `json:"simulation"`
}

// FourcomFilters narrows the 4COM recordings query.
type FourcomFilters struct {
	StartDate  string
	EndDate    string
	AgentID    string
	CustomerID string
	Limit      int
}

// ImportResult is the body of POST /fourcom/import.
type ImportResult struct {
	Message     string `json:"message"`
	RecordingID int    `json:"recording_id"`
	Status      string `json:"status"`
	Simulation  bool   `json:"simulation"`
}

// UploadResponse is the body of a successful multipart upload.
type UploadResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ProfileUpdate carries a profile change. Password fields are sent only when
// the user is changing their password.
type ProfileUpdate struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

// APISettings stores third-party credentials on the backend.
type APISettings struct {
	FourcomAPIKey string `json:"fourcom_api_key"`
	FourcomAPIURL string `json:"fourcom_api_url"`
	OpenAIAPIKey  string `json:"openai_api_key"`
}

// Preferences stores UI and behavior preferences on the backend.
type Preferences struct {
	Language       string `json:"language"`
	Theme          string `json:"theme"`
	Notifications  bool   `json:"notifications"`
	AutoTranscribe bool   `json:"auto_transcribe"`
}

// RegisterRequest creates a new account with its organization.
type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// MessageResponse is the generic `{"message": ...}` acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
