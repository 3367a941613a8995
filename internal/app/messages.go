package app

import "github.com/transcall/transcall/internal/api"

// SessionExpiredMsg is sent when any authorized call came back 401. The
// session store has already been cleared by the API client at this point.
type SessionExpiredMsg struct{}

// LoginResultMsg carries the outcome of a login attempt.
type LoginResultMsg struct {
	Resp api.LoginResponse
	Res  api.Result
}

// RegisterResultMsg carries the outcome of an account registration.
type RegisterResultMsg struct {
	Resp api.MessageResponse
	Res  api.Result
}

// ProfileLoadedMsg carries the current user's profile.
type ProfileLoadedMsg struct {
	User api.User
	Res  api.Result
}

// ProfileSavedMsg carries the outcome of a profile update.
type ProfileSavedMsg struct {
	Res api.Result
}

// APISettingsSavedMsg carries the outcome of saving API credentials.
type APISettingsSavedMsg struct {
	Res api.Result
}

// PreferencesSavedMsg carries the outcome of saving preferences.
type PreferencesSavedMsg struct {
	Res api.Result
}

// OrganizationLoadedMsg carries the current organization.
type OrganizationLoadedMsg struct {
	Org api.Organization
	Res api.Result
}

// OrganizationSavedMsg carries the outcome of renaming the organization.
type OrganizationSavedMsg struct {
	Res api.Result
}

// InviteResultMsg carries the outcome of inviting a user.
type InviteResultMsg struct {
	Resp api.MessageResponse
	Res  api.Result
}

// UsersLoadedMsg carries the organization member list.
type UsersLoadedMsg struct {
	Users []api.User
	Res   api.Result
}

// RecordingsLoadedMsg carries the recordings list.
type RecordingsLoadedMsg struct {
	Recordings []api.Recording
	Res        api.Result
}

// RecordingDeletedMsg carries the outcome of deleting a recording.
type RecordingDeletedMsg struct {
	Res api.Result
}

// RecordingDownloadedMsg carries the path a recording was saved to.
type RecordingDownloadedMsg struct {
	Path string
	Res  api.Result
}

// TranscribeResultMsg carries the outcome of starting a transcription job.
type TranscribeResultMsg struct {
	Res api.Result
}

// TranscriptionsLoadedMsg carries the transcriptions list.
type TranscriptionsLoadedMsg struct {
	Transcriptions []api.Transcription
	Res            api.Result
}

// TranscriptionDetailMsg carries one transcription with its analysis.
type TranscriptionDetailMsg struct {
	Transcription api.Transcription
	Res           api.Result
}

// FourcomStatusMsg carries the 4COM integration status.
type FourcomStatusMsg struct {
	Status api.FourcomStatus
	Res    api.Result
}

// FourcomRecordingsMsg carries the importable 4COM recordings.
type FourcomRecordingsMsg struct {
	List api.FourcomRecordingList
	Res  api.Result
}

// FourcomImportedMsg carries the outcome of importing one 4COM recording.
type FourcomImportedMsg struct {
	ID   string
	Resp api.ImportResult
	Res  api.Result
}

// FourcomImportResetMsg restores a failed import button to its idle state.
type FourcomImportResetMsg struct {
	ID string
}

// DashboardStatsMsg carries the dashboard aggregates.
type DashboardStatsMsg struct {
	Stats api.DashboardStats
	Res   api.Result
}

// RecentTranscriptionsMsg carries the dashboard's recent-activity list.
type RecentTranscriptionsMsg struct {
	Transcriptions []api.Transcription
	Res            api.Result
}

// UploadStartedMsg hands the in-flight upload handle to the model.
type UploadStartedMsg struct {
	Upload *api.Upload
	Name   string
}

// UploadInvalidMsg reports a local problem before any network traffic.
type UploadInvalidMsg struct {
	Err string
}

// UploadEventMsg wraps one progress or terminal event of the upload.
type UploadEventMsg struct {
	Event api.UploadEvent
	OK    bool // false once the event channel is drained
}

// BrowserOpenedMsg reports the attempt to open an export URL externally.
type BrowserOpenedMsg struct {
	URL string
	Err error
}

// DismissToastMsg removes one notification, either after its 5s lifetime or
// on explicit dismissal.
type DismissToastMsg struct {
	ID string
}
