package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/api"
	"github.com/transcall/transcall/internal/app"
	"github.com/transcall/transcall/internal/config"
	"github.com/transcall/transcall/internal/session"
)

func main() {
	cfg := config.Load()

	// The terminal owns stdout, so logs go to a file under the data dir.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "transcall: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "transcall.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transcall: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	store, err := session.Open(session.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "transcall: abrir sessão: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// The program is created after the client, so the expired-session
	// notification goes through this indirection.
	var program *tea.Program
	client := api.New(cfg.ServerURL, store, func() {
		if program != nil {
			program.Send(app.SessionExpiredMsg{})
		}
	})

	program = tea.NewProgram(app.New(client, store, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("run: %v", err)
		fmt.Fprintf(os.Stderr, "transcall: %v\n", err)
		os.Exit(1)
	}
}
