package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// fakeSession is an in-memory SessionStore for client tests.
type fakeSession struct {
	token   string
	cleared bool
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) Clear() error {
	f.token = ""
	f.cleared = true
	return nil
}

func TestLoginSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken: "tok-1",
			User:        User{ID: 1, Name: "Ana"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "stale"}, nil)
	resp, res := c.Login("ana@example.com", "secret")

	if !res.OK {
		t.Fatalf("Login failed: %+v", res)
	}
	if gotAuth != "" {
		t.Errorf("login sent Authorization %q, want none", gotAuth)
	}
	if gotBody["email"] != "ana@example.com" || gotBody["password"] != "secret" {
		t.Errorf("login body = %v", gotBody)
	}
	if resp.AccessToken != "tok-1" || resp.User.Name != "Ana" {
		t.Errorf("login response = %+v", resp)
	}
}

func TestAuthorizedRequestCarriesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Recording{{ID: 3, Title: "Chamada"}})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok-xyz"}, nil)
	recs, res := c.Recordings()

	if !res.OK {
		t.Fatalf("Recordings failed: %+v", res)
	}
	if gotAuth != "Bearer tok-xyz" {
		t.Errorf("Authorization = %q, want Bearer tok-xyz", gotAuth)
	}
	if len(recs) != 1 || recs[0].ID != 3 {
		t.Errorf("recordings = %+v", recs)
	}
}

func TestServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Arquivo muito grande"})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	_, res := c.Transcriptions()

	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Err != "Arquivo muito grande" {
		t.Errorf("Err = %q, want server message", res.Err)
	}
	if res.Status != http.StatusBadRequest {
		t.Errorf("Status = %d", res.Status)
	}
}

func TestServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	_, res := c.Profile()

	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Err != errRequest {
		t.Errorf("Err = %q, want %q", res.Err, errRequest)
	}
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	session := &fakeSession{token: "expired"}
	calls := 0
	c := New(srv.URL, session, func() { calls++ })
	_, res := c.Profile()

	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Err != "Sessão expirada" {
		t.Errorf("Err = %q", res.Err)
	}
	if !session.cleared {
		t.Error("session should be cleared on 401")
	}
	if calls != 1 {
		t.Errorf("onUnauthorized called %d times, want 1", calls)
	}
}

func TestLoginRejectionKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Credenciais inválidas"})
	}))
	defer srv.Close()

	session := &fakeSession{token: "tok-other"}
	calls := 0
	c := New(srv.URL, session, func() { calls++ })
	_, res := c.Login("ana@example.com", "wrong")

	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Err != "Credenciais inválidas" {
		t.Errorf("Err = %q, want the server message", res.Err)
	}
	if session.cleared {
		t.Error("rejected login must not clear the session")
	}
	if calls != 0 {
		t.Errorf("onUnauthorized called %d times, want 0", calls)
	}
}

func TestConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := New(srv.URL, &fakeSession{}, nil)
	_, res := c.DashboardStats(DashboardFilters{})

	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Err != errConnection {
		t.Errorf("Err = %q, want %q", res.Err, errConnection)
	}
}

func TestFourcomRecordingsQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(FourcomRecordingList{Count: 0})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	_, res := c.FourcomRecordings(FourcomFilters{StartDate: "2025-01-01", EndDate: "2025-01-31"})

	if !res.OK {
		t.Fatalf("FourcomRecordings failed: %+v", res)
	}
	if gotQuery != "end_date=2025-01-31&start_date=2025-01-01" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestImportBody(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(ImportResult{Message: "ok", RecordingID: 12})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	resp, res := c.ImportFourcomRecording("4c-77")

	if !res.OK {
		t.Fatalf("import failed: %+v", res)
	}
	if gotBody["recording_id"] != "4c-77" {
		t.Errorf("body = %v", gotBody)
	}
	if resp.RecordingID != 12 {
		t.Errorf("RecordingID = %d", resp.RecordingID)
	}
}

func TestDownloadRecording(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="chamada.mp3"`)
		w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	dest := t.TempDir()
	path, res := c.DownloadRecording(5, dest)

	if !res.OK {
		t.Fatalf("download failed: %+v", res)
	}
	if got := filepath.Base(path); got != "chamada.mp3" {
		t.Errorf("saved as %q, want chamada.mp3", got)
	}
}

func TestDownloadNameFallback(t *testing.T) {
	if got := downloadName("", 9); got != "gravacao_9" {
		t.Errorf("downloadName = %q", got)
	}
	if got := downloadName(`attachment; filename="call.wav"`, 9); got != "call.wav" {
		t.Errorf("downloadName = %q", got)
	}
}

func TestExportURLs(t *testing.T) {
	c := New("http://backend:5000", &fakeSession{}, nil)

	if got := c.ExportPDFURL(4); got != "http://backend:5000/api/export/pdf/4" {
		t.Errorf("ExportPDFURL = %q", got)
	}
	if got := c.ExportCSVURL(4); got != "http://backend:5000/api/export/csv/4" {
		t.Errorf("ExportCSVURL = %q", got)
	}
	got := c.ExportDashboardCSVURL(DashboardFilters{StartDate: "2025-02-01"})
	want := "http://backend:5000/api/export/dashboard/csv?start_date=2025-02-01"
	if got != want {
		t.Errorf("ExportDashboardCSVURL = %q, want %q", got, want)
	}
}
