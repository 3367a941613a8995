package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAllowedFileType(t *testing.T) {
	cases := map[string]bool{
		"call.mp3":      true,
		"call.MP3":      true,
		"video.mp4":     true,
		"audio.wav":     true,
		"meeting.webm":  true,
		"notes.txt":     false,
		"archive.ogg":   false,
		"noextension":   false,
		"/tmp/a/b.webm": true,
	}
	for path, want := range cases {
		if got := AllowedFileType(path); got != want {
			t.Errorf("AllowedFileType(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestAllowedFileTypesLabel(t *testing.T) {
	if got := AllowedFileTypesLabel(); got != "mp3, mp4, wav, webm" {
		t.Errorf("AllowedFileTypesLabel = %q", got)
	}
}

func writeTestFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "call.mp3")
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

// drain collects every event until the channel closes or the deadline hits.
func drain(t *testing.T, u *Upload) []UploadEvent {
	t.Helper()
	var events []UploadEvent
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-u.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("timed out waiting for upload events")
		}
	}
}

func TestUploadSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
		} else {
			io.Copy(io.Discard, file)
			file.Close()
			if header.Filename != "call.mp3" {
				t.Errorf("filename = %q", header.Filename)
			}
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{ID: 31, Title: "call"})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	u, err := c.StartUpload(writeTestFile(t, 4096))
	if err != nil {
		t.Fatalf("StartUpload: %v", err)
	}

	events := drain(t, u)
	if len(events) == 0 {
		t.Fatal("no events")
	}
	last := events[len(events)-1]
	if !last.Done {
		t.Fatal("last event should be terminal")
	}
	if !last.Result.OK {
		t.Fatalf("upload failed: %+v", last.Result)
	}
	if last.Response.ID != 31 {
		t.Errorf("Response.ID = %d, want 31", last.Response.ID)
	}
	if last.Progress != 100 {
		t.Errorf("terminal Progress = %d, want 100", last.Progress)
	}
	for _, ev := range events[:len(events)-1] {
		if ev.Done {
			t.Error("non-terminal event marked Done")
		}
	}
}

func TestUploadMissingFile(t *testing.T) {
	c := New("http://localhost:0", &fakeSession{}, nil)
	if _, err := c.StartUpload(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Formato inválido"})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	u, err := c.StartUpload(writeTestFile(t, 128))
	if err != nil {
		t.Fatalf("StartUpload: %v", err)
	}

	events := drain(t, u)
	last := events[len(events)-1]
	if !last.Done || last.Result.OK {
		t.Fatalf("expected terminal failure, got %+v", last)
	}
	if last.Result.Err != "Formato inválido" {
		t.Errorf("Err = %q", last.Result.Err)
	}
}

func TestUploadCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	u, err := c.StartUpload(writeTestFile(t, 1<<20))
	if err != nil {
		t.Fatalf("StartUpload: %v", err)
	}

	u.Cancel()
	events := drain(t, u)
	if len(events) == 0 {
		t.Fatal("expected a terminal cancel event")
	}
	last := events[len(events)-1]
	if !last.Done || !last.Canceled {
		t.Fatalf("terminal event = %+v, want Canceled", last)
	}
	for _, ev := range events[:len(events)-1] {
		if ev.Done {
			t.Error("extra terminal event before cancel")
		}
	}
}

func TestEmitAfterCloseIsDropped(t *testing.T) {
	// The copy goroutine can still be ticking when the server has already
	// answered and the stream was closed.
	u := &Upload{events: make(chan UploadEvent, 16)}
	u.closeEvents()
	u.emit(context.Background(), UploadEvent{Progress: 50})

	if _, ok := <-u.events; ok {
		t.Error("event delivered after close")
	}
}

func TestEarlyResponseWithSlowBody(t *testing.T) {
	// Server rejects without reading the request body, so the multipart
	// copy keeps running past the response.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		json.NewEncoder(w).Encode(map[string]string{"error": "Arquivo muito grande"})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "tok"}, nil)
	u, err := c.StartUpload(writeTestFile(t, 4<<20))
	if err != nil {
		t.Fatalf("StartUpload: %v", err)
	}

	events := drain(t, u)
	last := events[len(events)-1]
	if !last.Done || last.Result.OK {
		t.Fatalf("expected terminal failure, got %+v", last)
	}
	if last.Result.Err != "Arquivo muito grande" {
		t.Errorf("Err = %q", last.Result.Err)
	}
}

func TestProgressReaderTicks(t *testing.T) {
	var ticks []int
	src, err := os.Open(writeTestFile(t, 1000))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	p := &progressReader{
		reader: src,
		total:  1000,
		onTick: func(pct int) { ticks = append(ticks, pct) },
	}
	buf := make([]byte, 250)
	for {
		if _, err := p.Read(buf); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}

	want := []int{25, 50, 75, 100}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("ticks = %v, want %v", ticks, want)
		}
	}
}
