package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// allowedFileTypes is the client-side allow-list for uploads.
var allowedFileTypes = []string{"mp3", "mp4", "wav", "webm"}

// AllowedFileType reports whether the file's extension is an accepted
// audio/video container. Checked before any network traffic happens.
func AllowedFileType(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, allowed := range allowedFileTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// AllowedFileTypesLabel lists the accepted extensions for validation messages.
func AllowedFileTypesLabel() string {
	return strings.Join(allowedFileTypes, ", ")
}

// UploadEvent is one observation of an in-flight upload. Progress events
// arrive on every tick; exactly one terminal event (Done) follows, unless the
// upload was cancelled, in which case the terminal event has Canceled set and
// carries no success or failure result.
type UploadEvent struct {
	Progress int // 0..100
	Done     bool
	Canceled bool
	Response UploadResponse
	Result   Result
}

// Upload is a handle on an in-flight file upload.
type Upload struct {
	events   chan UploadEvent
	cancel   context.CancelFunc
	canceled atomic.Bool

	// mu orders sends against the channel close. Progress ticks come from
	// the multipart copy goroutine, which can still be running when the
	// server has already answered.
	mu     sync.Mutex
	closed bool
}

// Events delivers progress and the terminal event.
func (u *Upload) Events() <-chan UploadEvent {
	return u.events
}

// Cancel aborts the transfer. Progress and completion observed after the
// abort are dropped; the terminal event reports cancellation.
func (u *Upload) Cancel() {
	u.canceled.Store(true)
	u.cancel()
}

// StartUpload begins a multipart upload of the file at path. The returned
// error covers only local problems (unreadable file); everything that happens
// on the wire is reported through events.
func (c *Client) StartUpload(path string) (*Upload, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	u := &Upload{
		events: make(chan UploadEvent, 16),
		cancel: cancel,
	}
	go u.run(ctx, c, file, info.Size())
	return u, nil
}

func (u *Upload) emit(ctx context.Context, ev UploadEvent) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return
	}
	if u.canceled.Load() && !ev.Canceled {
		return
	}
	if !ev.Done {
		// Progress is best effort and must never stall the transfer
		// behind a slow consumer.
		select {
		case u.events <- ev:
		default:
		}
		return
	}
	select {
	case u.events <- ev:
	case <-ctx.Done():
		// The channel is buffered, so this only drops the terminal
		// event if the consumer is gone.
		select {
		case u.events <- ev:
		default:
		}
	}
}

// closeEvents marks the stream finished and closes the channel. Emits that
// lose the race observe closed and drop their event instead of panicking.
func (u *Upload) closeEvents() {
	u.mu.Lock()
	u.closed = true
	close(u.events)
	u.mu.Unlock()
}

func (u *Upload) run(ctx context.Context, c *Client, file *os.File, size int64) {
	defer file.Close()
	defer u.closeEvents()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	counter := &progressReader{
		reader: file,
		total:  size,
		onTick: func(pct int) {
			u.emit(ctx, UploadEvent{Progress: pct})
		},
	}

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(file.Name()))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, counter); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/upload", pr)
	if err != nil {
		u.emit(ctx, UploadEvent{Done: true, Result: failure(0, errRequest)})
		return
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if u.canceled.Load() || ctx.Err() != nil {
			u.emit(ctx, UploadEvent{Done: true, Canceled: true})
			return
		}
		u.emit(ctx, UploadEvent{Done: true, Result: failure(0, errConnection)})
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		u.emit(ctx, UploadEvent{Done: true, Result: failure(resp.StatusCode, errConnection)})
		return
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusUnauthorized {
			c.session.Clear()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
			u.emit(ctx, UploadEvent{Done: true, Result: failure(resp.StatusCode, "Sessão expirada")})
			return
		}
		u.emit(ctx, UploadEvent{Done: true, Result: failure(resp.StatusCode, errorMessage(raw))})
		return
	}

	uploaded, res := decode[UploadResponse](Result{OK: true, Status: resp.StatusCode, Data: raw})
	u.emit(ctx, UploadEvent{Progress: 100, Done: true, Response: uploaded, Result: res})
}

// progressReader counts bytes through it and reports whole-percent ticks.
type progressReader struct {
	reader  io.Reader
	total   int64
	read    int64
	lastPct int
	onTick  func(pct int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	if n > 0 && p.total > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct != p.lastPct {
			p.lastPct = pct
			p.onTick(pct)
		}
	}
	return n, err
}
