package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/favbackup/bookmark-backup/internal/backup"
	"github.com/favbackup/bookmark-backup/internal/commands"
	"github.com/favbackup/bookmark-backup/internal/models"
	"github.com/favbackup/bookmark-backup/internal/ui"
)

func main() {
	backupDir := flag.String("dir", "", "Backup root directory (default: ~/BookmarkBackups)")
	runBackup := flag.Bool("backup", false, "Back up all enabled browsers and exit")
	listBrowser := flag.String("list", "", "List backups for a browser (Chrome, Edge, Firefox) and exit")
	cleanupDays := flag.Int("cleanup", 0, "Delete backups older than N days and exit")
	exportZip := flag.String("export-zip", "", "Export all backups to a ZIP archive and exit")
	zipPassword := flag.String("password", "", "Optional password for the ZIP archive")
	exportHTML := flag.String("export-html", "", "Export the newest backup of a browser as HTML and exit")
	outPath := flag.String("out", "", "Destination path for -export-html")
	restoreBrowser := flag.String("restore", "", "Restore a backup for a browser (requires -file)")
	restoreFile := flag.String("file", "", "Backup file to restore for -restore")
	scheduleHours := flag.Int("schedule", 0, "Run an automatic backup every N hours while the UI is open")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	dir := *backupDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		dir = filepath.Join(home, "BookmarkBackups")
	}

	manager, err := backup.NewManager(dir)
	if err != nil {
		slog.Error("failed to initialize backup directory", "error", err)
		os.Exit(1)
	}

	switch {
	case *runBackup:
		run(commands.NewBackupCommand(manager).Execute())
	case *listBrowser != "":
		run(commands.NewListCommand(manager).Execute(parseBrowser(*listBrowser)))
	case *cleanupDays > 0:
		run(commands.NewCleanupCommand(manager).Execute(*cleanupDays))
	case *exportZip != "":
		run(commands.NewExportZipCommand(manager).Execute(*exportZip, *zipPassword))
	case *exportHTML != "":
		if *outPath == "" {
			slog.Error("-export-html requires -out")
			os.Exit(1)
		}
		run(commands.NewExportHTMLCommand(manager).Execute(parseBrowser(*exportHTML), *outPath))
	case *restoreBrowser != "":
		if *restoreFile == "" {
			slog.Error("-restore requires -file")
			os.Exit(1)
		}
		run(commands.NewRestoreCommand(manager).Execute(parseBrowser(*restoreBrowser), *restoreFile))
	default:
		if *scheduleHours > 0 {
			backup.Schedule(manager, time.Duration(*scheduleHours)*time.Hour)
		}
		app := ui.NewApp(manager)
		if err := app.Run(); err != nil {
			slog.Error("ui error", "error", err)
			os.Exit(1)
		}
	}
}

func run(err error) {
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func parseBrowser(name string) models.Browser {
	for _, b := range models.Browsers() {
		if string(b) == name {
			return b
		}
	}
	slog.Error("unknown browser", "name", name)
	os.Exit(1)
	return ""
}
