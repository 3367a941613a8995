package app

import (
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
)

// Command constructors. Each wraps one API call and delivers its outcome as
// a typed message; the Result inside is the only failure channel.

func loginCmd(c *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, res := c.Login(email, password)
		return LoginResultMsg{Resp: resp, Res: res}
	}
}

func registerCmd(c *api.Client, req api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		resp, res := c.Register(req)
		return RegisterResultMsg{Resp: resp, Res: res}
	}
}

func profileCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		user, res := c.Profile()
		return ProfileLoadedMsg{User: user, Res: res}
	}
}

func updateProfileCmd(c *api.Client, update api.ProfileUpdate) tea.Cmd {
	return func() tea.Msg {
		_, res := c.UpdateProfile(update)
		return ProfileSavedMsg{Res: res}
	}
}

func apiSettingsCmd(c *api.Client, settings api.APISettings) tea.Cmd {
	return func() tea.Msg {
		_, res := c.UpdateAPISettings(settings)
		return APISettingsSavedMsg{Res: res}
	}
}

func preferencesCmd(c *api.Client, prefs api.Preferences) tea.Cmd {
	return func() tea.Msg {
		_, res := c.UpdatePreferences(prefs)
		return PreferencesSavedMsg{Res: res}
	}
}

func organizationCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		org, res := c.Organization()
		return OrganizationLoadedMsg{Org: org, Res: res}
	}
}

func updateOrganizationCmd(c *api.Client, name string) tea.Cmd {
	return func() tea.Msg {
		_, res := c.UpdateOrganization(name)
		return OrganizationSavedMsg{Res: res}
	}
}

func inviteCmd(c *api.Client, email, role string) tea.Cmd {
	return func() tea.Msg {
		resp, res := c.InviteUser(email, role)
		return InviteResultMsg{Resp: resp, Res: res}
	}
}

func usersCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		users, res := c.Users()
		return UsersLoadedMsg{Users: users, Res: res}
	}
}

func recordingsCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		recordings, res := c.Recordings()
		return RecordingsLoadedMsg{Recordings: recordings, Res: res}
	}
}

func deleteRecordingCmd(c *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return RecordingDeletedMsg{Res: c.DeleteRecording(id)}
	}
}

func downloadRecordingCmd(c *api.Client, id int, destDir string) tea.Cmd {
	return func() tea.Msg {
		path, res := c.DownloadRecording(id, destDir)
		return RecordingDownloadedMsg{Path: path, Res: res}
	}
}

func transcribeCmd(c *api.Client, recordingID int) tea.Cmd {
	return func() tea.Msg {
		return TranscribeResultMsg{Res: c.Transcribe(recordingID)}
	}
}

func transcriptionsCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		list, res := c.Transcriptions()
		return TranscriptionsLoadedMsg{Transcriptions: list, Res: res}
	}
}

func transcriptionDetailCmd(c *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		tr, res := c.Transcription(id)
		return TranscriptionDetailMsg{Transcription: tr, Res: res}
	}
}

func fourcomStatusCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		status, res := c.FourcomStatus()
		return FourcomStatusMsg{Status: status, Res: res}
	}
}

func fourcomRecordingsCmd(c *api.Client, filters api.FourcomFilters) tea.Cmd {
	return func() tea.Msg {
		list, res := c.FourcomRecordings(filters)
		return FourcomRecordingsMsg{List: list, Res: res}
	}
}

func fourcomImportCmd(c *api.Client, recordingID string) tea.Cmd {
	return func() tea.Msg {
		resp, res := c.ImportFourcomRecording(recordingID)
		return FourcomImportedMsg{ID: recordingID, Resp: resp, Res: res}
	}
}

// fourcomImportResetCmd restores a failed import button after 3 seconds.
func fourcomImportResetCmd(recordingID string) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return FourcomImportResetMsg{ID: recordingID}
	})
}

func dashboardStatsCmd(c *api.Client, filters api.DashboardFilters) tea.Cmd {
	return func() tea.Msg {
		stats, res := c.DashboardStats(filters)
		return DashboardStatsMsg{Stats: stats, Res: res}
	}
}

func recentTranscriptionsCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		list, res := c.RecentTranscriptions()
		return RecentTranscriptionsMsg{Transcriptions: list, Res: res}
	}
}

func startUploadCmd(c *api.Client, path, name string) tea.Cmd {
	return func() tea.Msg {
		upload, err := c.StartUpload(path)
		if err != nil {
			return UploadInvalidMsg{Err: "Não foi possível abrir o arquivo"}
		}
		return UploadStartedMsg{Upload: upload, Name: name}
	}
}

// uploadEventCmd reads the next upload event. The model re-issues it until
// the terminal event arrives, mirroring a streamed subscription.
func uploadEventCmd(u *api.Upload) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-u.Events()
		return UploadEventMsg{Event: ev, OK: ok}
	}
}

// openBrowserCmd opens an export URL as an external navigation.
func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		return BrowserOpenedMsg{URL: url, Err: cmd.Start()}
	}
}
