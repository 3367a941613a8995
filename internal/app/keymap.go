package app

// Key binding constants used in handleKey.
const (
	KeyCtrlC        = "ctrl+c"
	KeyTab          = "tab"
	KeyShiftTab     = "shift+tab"
	KeyUp           = "up"
	KeyDown         = "down"
	KeyLeft         = "left"
	KeyRight        = "right"
	KeyEnter        = "enter"
	KeyEsc          = "esc"
	KeyLogout       = "ctrl+l"
	KeyDismissToast = "ctrl+x"
	KeyRefresh      = "r"
	KeyFilter       = "f"
	KeyExport       = "e"
	KeyDownload     = "b"
	KeyDelete       = "d"
	KeyTranscribe   = "t"
	KeyInvite       = "i"
	KeyCancel       = "c"
	KeyPDF          = "p"
	KeyNew          = "n"
)
