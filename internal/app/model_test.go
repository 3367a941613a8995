package app

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/config"
	"github.com/transcall/transcall/internal/session"
	"github.com/transcall/transcall/internal/views"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.sqlite"))
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestModel builds a model against a throwaway session store. The client
// points at a closed port; tests never execute the returned commands.
func newTestModel(t *testing.T) Model {
	t.Helper()
	store := newTestStore(t)
	client := api.New("http://127.0.0.1:0", store, nil)
	cfg := config.Config{
		ServerURL:   "http://127.0.0.1:0",
		DataDir:     t.TempDir(),
		DownloadDir: t.TempDir(),
	}
	return New(client, store, cfg)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsAtLogin(t *testing.T) {
	m := newTestModel(t)
	if m.page != PageLogin {
		t.Errorf("page = %v, want PageLogin", m.page)
	}
	if m.Init() != nil {
		t.Error("logged-out model should have no initial command")
	}
}

func TestNewModelRestoresSession(t *testing.T) {
	store := newTestStore(t)
	store.SetSession("tok", api.User{ID: 1, Name: "Ana", Role: "admin"})
	client := api.New("http://127.0.0.1:0", store, nil)

	m := New(client, store, config.Config{})
	if m.page != PageDashboard {
		t.Errorf("page = %v, want PageDashboard", m.page)
	}
	if m.user.Name != "Ana" {
		t.Errorf("user = %+v", m.user)
	}
	if m.Init() == nil {
		t.Error("restored session should load the dashboard")
	}
}

func TestLoginSuccess(t *testing.T) {
	m := newTestModel(t)
	m.login.busy = true

	updated, cmd := m.Update(LoginResultMsg{
		Resp: api.LoginResponse{
			AccessToken: "tok-9",
			User:        api.User{ID: 2, Name: "Bruno", Role: "operator"},
		},
		Res: api.Result{OK: true, Status: 200},
	})
	model := updated.(Model)

	if model.page != PageDashboard {
		t.Errorf("page = %v, want PageDashboard", model.page)
	}
	if model.user.Name != "Bruno" {
		t.Errorf("user = %+v", model.user)
	}
	if got := model.store.Token(); got != "tok-9" {
		t.Errorf("stored token = %q", got)
	}
	if len(model.notifications) != 1 {
		t.Errorf("notifications = %d, want 1", len(model.notifications))
	}
	if cmd == nil {
		t.Error("login success should load dashboard data")
	}
}

func TestLoginFailure(t *testing.T) {
	m := newTestModel(t)
	m.login.busy = true

	updated, _ := m.Update(LoginResultMsg{
		Res: api.Result{Status: 401, Err: "Credenciais inválidas"},
	})
	model := updated.(Model)

	if model.page != PageLogin {
		t.Errorf("page = %v, want PageLogin", model.page)
	}
	if model.login.busy {
		t.Error("busy should clear after the result")
	}
	if model.login.errText != "Credenciais inválidas" {
		t.Errorf("errText = %q", model.login.errText)
	}
	if model.store.IsAuthenticated() {
		t.Error("failed login should not store a session")
	}
}

func TestLoginValidation(t *testing.T) {
	m := newTestModel(t)
	m.login.focus = 2 // entrar

	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if cmd != nil {
		t.Error("empty form should not fire a request")
	}
	if model.login.errText != "Preencha email e senha" {
		t.Errorf("errText = %q", model.login.errText)
	}
}

func TestSessionExpiredReturnsToLogin(t *testing.T) {
	m := newTestModel(t)
	m.page = PageRecordings
	m.user = api.User{ID: 1, Name: "Ana"}

	updated, _ := m.Update(SessionExpiredMsg{})
	model := updated.(Model)

	if model.page != PageLogin {
		t.Errorf("page = %v, want PageLogin", model.page)
	}
	if len(model.notifications) != 1 || model.notifications[0].Message != "Sessão expirada" {
		t.Errorf("notifications = %+v", model.notifications)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	m := newTestModel(t)
	m.store.SetSession("tok", api.User{ID: 1})
	m.page = PageDashboard

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	model := updated.(Model)

	if model.page != PageLogin {
		t.Errorf("page = %v, want PageLogin", model.page)
	}
	if model.store.IsAuthenticated() {
		t.Error("logout should clear the stored session")
	}
}

func TestToastDismiss(t *testing.T) {
	m := newTestModel(t)
	m.notify("info", "primeira")
	m.notify("info", "segunda")

	id := m.notifications[0].ID
	updated, _ := m.Update(DismissToastMsg{ID: id})
	model := updated.(Model)

	if len(model.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(model.notifications))
	}
	if model.notifications[0].Message != "segunda" {
		t.Errorf("remaining toast = %q", model.notifications[0].Message)
	}
}

func TestDigitNavigation(t *testing.T) {
	m := newTestModel(t)
	m.page = PageDashboard

	updated, cmd := m.handleKey(keyRunes("2"))
	model := updated.(Model)

	if model.page != PageRecordings {
		t.Errorf("page = %v, want PageRecordings", model.page)
	}
	if cmd == nil {
		t.Error("navigation should load the recordings list")
	}
}

func TestTypingSuspendsGlobalKeys(t *testing.T) {
	m := newTestModel(t)
	// Login page, focus on the email field: digits are input, not navigation.
	updated, _ := m.handleKey(keyRunes("1"))
	model := updated.(Model)

	if model.page != PageLogin {
		t.Errorf("page = %v, want PageLogin", model.page)
	}
	if model.login.fields[0].value != "1" {
		t.Errorf("email field = %q, want 1", model.login.fields[0].value)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	m := newTestModel(t)
	m.page = PageRegister
	m.register = newRegisterState()
	m.register.fields[0].value = "Ana"
	m.register.fields[1].value = "ana@example.com"
	m.register.fields[3].value = "Senha123"
	m.register.fields[4].value = "Senha124"
	m.register.focus = 5

	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if cmd != nil {
		t.Error("mismatched passwords should not fire a request")
	}
	if model.register.errText != "As senhas não coincidem" {
		t.Errorf("errText = %q", model.register.errText)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	m := newTestModel(t)
	m.page = PageRegister
	m.register = newRegisterState()
	m.register.fields[0].value = "Ana"
	m.register.fields[1].value = "ana@example.com"
	m.register.fields[3].value = "fraca"
	m.register.fields[4].value = "fraca"
	m.register.focus = 5

	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if cmd != nil {
		t.Error("weak password should not fire a request")
	}
	if model.register.errText == "" {
		t.Error("weak password should set a validation message")
	}
}

func TestValidPassword(t *testing.T) {
	cases := map[string]bool{
		"Senha123":   true,
		"senha123":   false, // no upper case
		"SENHA123":   false, // no lower case
		"SenhaForte": false, // no digit
		"Ab1":        false, // too short
	}
	for pw, want := range cases {
		if got := validPassword(pw); got != want {
			t.Errorf("validPassword(%q) = %v, want %v", pw, got, want)
		}
	}
}

func TestRecordingsNavigation(t *testing.T) {
	m := newTestModel(t)
	m.page = PageRecordings
	m.recordings.list = []api.Recording{{ID: 1}, {ID: 2}, {ID: 3}}

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	model := updated.(Model)
	if model.recordings.selected != 1 {
		t.Errorf("selected = %d, want 1", model.recordings.selected)
	}

	updated, _ = model.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(Model)
	if model.recordings.selected != 0 {
		t.Errorf("selected = %d, want 0", model.recordings.selected)
	}
}

func TestRecordingDeleteConfirm(t *testing.T) {
	m := newTestModel(t)
	m.page = PageRecordings
	m.recordings.list = []api.Recording{{ID: 5, Title: "Chamada"}}

	updated, _ := m.handleKey(keyRunes("d"))
	model := updated.(Model)
	if !model.recordings.confirmDelete {
		t.Fatal("d should ask for confirmation")
	}

	// Anything but s cancels.
	updated, cmd := model.handleKey(keyRunes("n"))
	model = updated.(Model)
	if model.recordings.confirmDelete || cmd != nil {
		t.Error("n should cancel the deletion")
	}

	updated, _ = model.handleKey(keyRunes("d"))
	model = updated.(Model)
	updated, cmd = model.handleKey(keyRunes("s"))
	model = updated.(Model)
	if model.recordings.confirmDelete {
		t.Error("confirmation should close after s")
	}
	if cmd == nil {
		t.Error("s should fire the delete request")
	}
}

func TestUploadProgressAndSuccess(t *testing.T) {
	m := newTestModel(t)
	m.page = PageUpload

	updated, cmd := m.Update(UploadStartedMsg{Upload: &api.Upload{}, Name: "call.mp3"})
	model := updated.(Model)
	if model.upload.phase != uploadSending {
		t.Fatal("upload should enter the sending phase")
	}
	if cmd == nil {
		t.Fatal("sending phase should subscribe to events")
	}

	updated, _ = model.Update(UploadEventMsg{Event: api.UploadEvent{Progress: 42}, OK: true})
	model = updated.(Model)
	if model.upload.progress != 42 {
		t.Errorf("progress = %d, want 42", model.upload.progress)
	}

	updated, _ = model.Update(UploadEventMsg{
		Event: api.UploadEvent{
			Progress: 100,
			Done:     true,
			Response: api.UploadResponse{ID: 77, Title: "call"},
			Result:   api.Result{OK: true, Status: 201},
		},
		OK: true,
	})
	model = updated.(Model)
	if model.upload.phase != uploadDone {
		t.Errorf("phase = %v, want uploadDone", model.upload.phase)
	}
	if model.upload.resp.ID != 77 {
		t.Errorf("resp.ID = %d", model.upload.resp.ID)
	}
	if got := model.store.LastRecordingID(); got != 77 {
		t.Errorf("LastRecordingID = %d, want 77", got)
	}
}

func TestUploadCancelReturnsToPick(t *testing.T) {
	m := newTestModel(t)
	m.page = PageUpload
	m.upload.phase = uploadSending
	m.upload.upload = &api.Upload{}

	updated, _ := m.Update(UploadEventMsg{
		Event: api.UploadEvent{Done: true, Canceled: true},
		OK:    true,
	})
	model := updated.(Model)

	if model.upload.phase != uploadPick {
		t.Errorf("phase = %v, want uploadPick", model.upload.phase)
	}
	if len(model.notifications) != 1 || model.notifications[0].Message != "Upload cancelado" {
		t.Errorf("notifications = %+v", model.notifications)
	}
	if model.notifications[0].Kind != "info" {
		t.Errorf("Kind = %q, want info", model.notifications[0].Kind)
	}
}

func TestTranscribeFromUploadOpensTranscriptions(t *testing.T) {
	m := newTestModel(t)
	m.page = PageUpload
	m.upload.phase = uploadDone
	m.upload.resp = api.UploadResponse{ID: 77}
	m.upload.transcribing = true

	updated, cmd := m.Update(TranscribeResultMsg{Res: api.Result{OK: true, Status: 200}})
	model := updated.(Model)

	if model.page != PageTranscriptions {
		t.Errorf("page = %v, want PageTranscriptions", model.page)
	}
	if model.upload.transcribing {
		t.Error("transcribing should clear after the result")
	}
	if cmd == nil {
		t.Error("expected the transcriptions page to start loading")
	}
}

func TestUploadRejectsBadExtension(t *testing.T) {
	m := newTestModel(t)
	m.page = PageUpload
	m.upload.path.value = "/tmp/notas.txt"
	m.upload.focus = 1

	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if cmd != nil {
		t.Error("disallowed extension should not start an upload")
	}
	if model.upload.errText == "" {
		t.Error("disallowed extension should set a validation message")
	}
}

func TestFourcomImportFailureResets(t *testing.T) {
	m := newTestModel(t)
	m.page = PageFourcom

	updated, cmd := m.Update(FourcomImportedMsg{
		ID:  "4c-1",
		Res: api.Result{Status: 502, Err: "Falha na importação"},
	})
	model := updated.(Model)

	if got := model.fourcom.importStates["4c-1"]; got != views.ImportFailed {
		t.Errorf("import state = %q, want %q", got, views.ImportFailed)
	}
	if cmd == nil {
		t.Error("failure should schedule the button reset")
	}

	updated, _ = model.Update(FourcomImportResetMsg{ID: "4c-1"})
	model = updated.(Model)
	if got := model.fourcom.importStates["4c-1"]; got != views.ImportIdle {
		t.Errorf("import state after reset = %q, want idle", got)
	}
}

func TestFourcomImportSuccess(t *testing.T) {
	m := newTestModel(t)
	m.page = PageFourcom

	updated, _ := m.Update(FourcomImportedMsg{
		ID:   "4c-2",
		Resp: api.ImportResult{Message: "Gravação importada", RecordingID: 9},
		Res:  api.Result{OK: true, Status: 201},
	})
	model := updated.(Model)

	if got := model.fourcom.importStates["4c-2"]; got != views.ImportDone {
		t.Errorf("import state = %q, want %q", got, views.ImportDone)
	}
	if len(model.notifications) != 1 {
		t.Errorf("notifications = %d, want 1", len(model.notifications))
	}
}

func TestFourcomFilterValidation(t *testing.T) {
	m := newTestModel(t)
	m.page = PageFourcom
	m.fourcom.openFilters()
	m.fourcom.filterFields[0].value = "2025-03-10"
	m.fourcom.filterFields[1].value = "2025-03-01"

	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if cmd != nil {
		t.Error("inverted range should not fire a request")
	}
	if model.fourcom.filterErr == "" {
		t.Error("inverted range should set a validation message")
	}
	if !model.fourcom.filtering {
		t.Error("filter form should stay open on validation failure")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 81, Height: 25})
	model := updated.(Model)
	if model.width != 81 || model.height != 25 {
		t.Errorf("size = %dx%d", model.width, model.height)
	}
}

func TestViewSmoke(t *testing.T) {
	m := newTestModel(t)
	if out := m.View(); out == "" {
		t.Error("login view should render")
	}

	m.page = PageDashboard
	m.user = api.User{Name: "Ana", Role: "admin"}
	out := m.View()
	if out == "" {
		t.Fatal("dashboard view should render")
	}
	for _, want := range []string{"TransCall", "Dashboard", "Gravações"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard view missing %q", want)
		}
	}
}
