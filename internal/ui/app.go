// Package ui implements the interactive terminal application: browse
// backups per browser, trigger backups, restore a chosen slot, prune
// old slots and export the set. All state changes go through the
// shared backup manager, which serializes against the scheduler.
package ui

import (
	"fmt"

	"github.com/favbackup/bookmark-backup/internal/backup"
	"github.com/favbackup/bookmark-backup/internal/config"
	"github.com/favbackup/bookmark-backup/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	ModeNormal = 1
	ModeForm   = 2
	ModeModal  = 3
)

// App represents the TUI application
type App struct {
	app         *tview.Application
	browserList *tview.List
	backupList  *tview.List
	detail      *tview.TextView
	status      *tview.TextView
	pages       *tview.Pages
	mode        uint8

	manager  *backup.Manager
	selected models.Browser
	backups  []models.BackupFile
}

// NewApp creates a new application instance
func NewApp(manager *backup.Manager) *App {
	return &App{
		app:         tview.NewApplication(),
		browserList: tview.NewList().ShowSecondaryText(false),
		backupList:  tview.NewList(),
		detail:      tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		status:      tview.NewTextView().SetDynamicColors(true),
		pages:       tview.NewPages(),
		mode:        ModeNormal,
		manager:     manager,
		selected:    models.BrowserChrome,
	}
}

// Run starts the application
func (a *App) Run() error {
	a.browserList.SetBorder(true).SetTitle("Browsers")
	a.backupList.SetBorder(true).SetTitle("Backups")
	a.detail.SetBorder(true).SetTitle("Messages")

	for _, b := range models.Browsers() {
		a.browserList.AddItem(string(b), "", 0, nil)
	}
	a.browserList.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		browsers := models.Browsers()
		if index >= 0 && index < len(browsers) {
			a.selected = browsers[index]
			a.reloadBackups()
		}
	})

	cols := tview.NewFlex().
		AddItem(a.browserList, 0, 1, false).
		AddItem(a.backupList, 0, 2, true).
		AddItem(a.detail, 0, 2, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cols, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.pages.AddPage("main", main, true, true)

	a.reloadBackups()
	a.updateStatus()
	a.showMessage(fmt.Sprintf("Backup directory: %s", a.manager.Dir()))

	a.app.SetRoot(a.pages, true)
	a.app.SetInputCapture(a.globalInput)
	a.app.SetFocus(a.backupList)
	return a.app.Run()
}

func (a *App) updateStatus() {
	a.status.SetText("[::b]Tab[::r] switch  [::b]b[::r] backup now  [::b]r[::r] restore  [::b]c[::r] cleanup  [::b]z[::r] export zip  [::b]h[::r] export html  [::b]s[::r] settings  [::b]q[::r] quit")
}

func (a *App) reloadBackups() {
	a.backups = a.manager.List(a.selected)
	a.backupList.Clear()
	a.backupList.SetTitle(fmt.Sprintf("Backups (%s)", a.selected))
	for _, b := range a.backups {
		secondary := fmt.Sprintf("%s  %d bytes", b.Date.Format("2006-01-02 15:04:05"), b.Size)
		a.backupList.AddItem(b.Name, secondary, 0, nil)
	}
}

func (a *App) showMessage(text string) {
	fmt.Fprintf(a.detail, "%s\n", text)
	a.detail.ScrollToEnd()
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.mode != ModeNormal {
		return event
	}

	switch event.Key() {
	case tcell.KeyTab:
		if a.app.GetFocus() == a.browserList {
			a.app.SetFocus(a.backupList)
		} else {
			a.app.SetFocus(a.browserList)
		}
		return nil
	}

	switch event.Rune() {
	case 'q':
		a.app.Stop()
		return nil
	case 'b':
		a.runBackup()
		return nil
	case 'r':
		a.confirmRestore()
		return nil
	case 'c':
		a.runCleanup()
		return nil
	case 'z':
		a.promptExportZip()
		return nil
	case 'h':
		a.promptExportHTML()
		return nil
	case 's':
		a.showSettings()
		return nil
	}
	return event
}

func (a *App) runBackup() {
	results := a.manager.BackupAll()
	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
			a.showMessage(fmt.Sprintf("[green]%s:[-] %s", r.Browser, r.Message))
		} else {
			a.showMessage(fmt.Sprintf("[red]%s:[-] %s", r.Browser, r.Message))
		}
	}
	a.showMessage(fmt.Sprintf("Backup finished: %d of %d succeeded", ok, len(results)))
	a.reloadBackups()
}

func (a *App) runCleanup() {
	deleted := a.manager.Cleanup(30)
	a.showMessage(fmt.Sprintf("Cleanup removed %d backup(s) older than 30 days", deleted))
	a.reloadBackups()
}

func (a *App) selectedBackup() *models.BackupFile {
	index := a.backupList.GetCurrentItem()
	if index < 0 || index >= len(a.backups) {
		return nil
	}
	return &a.backups[index]
}

func (a *App) confirmRestore() {
	chosen := a.selectedBackup()
	if chosen == nil {
		a.showMessage("[red]No backup selected[-]")
		return
	}

	a.mode = ModeModal
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Restore %s from %s?\nThe current bookmarks file will be kept as a .bak copy.", a.selected, chosen.Name)).
		AddButtons([]string{"Restore", "Cancel"}).
		SetDoneFunc(func(_ int, label string) {
			a.pages.RemovePage("confirm")
			a.mode = ModeNormal
			if label == "Restore" {
				message, err := a.manager.Restore(a.selected, chosen.Path)
				if err != nil {
					a.showMessage(fmt.Sprintf("[red]%v[-]", err))
				} else {
					a.showMessage(message)
				}
			}
		})
	a.pages.AddPage("confirm", modal, true, true)
}

func (a *App) promptExportZip() {
	a.promptPath("Export ZIP", "backups.zip", func(dest string) {
		if err := a.manager.ExportZip(dest, ""); err != nil {
			a.showMessage(fmt.Sprintf("[red]%v[-]", err))
			return
		}
		a.showMessage("Exported backups to " + dest)
	})
}

func (a *App) promptExportHTML() {
	a.promptPath("Export HTML", fmt.Sprintf("bookmarks_%s.html", a.selected), func(dest string) {
		if err := a.manager.ExportHTML(a.selected, dest); err != nil {
			a.showMessage(fmt.Sprintf("[red]%v[-]", err))
			return
		}
		a.showMessage(fmt.Sprintf("Exported %s bookmarks to %s", a.selected, dest))
	})
}

// promptPath shows a one-field form asking for a destination path and
// calls done with the entered value.
func (a *App) promptPath(title, initial string, done func(string)) {
	a.mode = ModeForm
	form := tview.NewForm()
	form.AddInputField("Path", initial, 50, nil, nil)
	form.AddButton("Save", func() {
		dest := form.GetFormItemByLabel("Path").(*tview.InputField).GetText()
		a.pages.RemovePage("prompt")
		a.mode = ModeNormal
		if dest != "" {
			done(dest)
		}
	})
	form.AddButton("Cancel", func() {
		a.pages.RemovePage("prompt")
		a.mode = ModeNormal
	})
	form.SetBorder(true).SetTitle(title)

	a.pages.AddPage("prompt", a.center(form, 60, 7), true, true)
	a.app.SetFocus(form)
}

func (a *App) showSettings() {
	a.mode = ModeForm
	cfg := a.manager.Config()

	form := tview.NewForm()
	form.AddCheckbox("Backup Chrome", cfg.BackupChrome, func(checked bool) { cfg.BackupChrome = checked })
	form.AddCheckbox("Backup Edge", cfg.BackupEdge, func(checked bool) { cfg.BackupEdge = checked })
	form.AddCheckbox("Backup Firefox", cfg.BackupFirefox, func(checked bool) { cfg.BackupFirefox = checked })
	form.AddButton("Save", func() {
		a.pages.RemovePage("settings")
		a.mode = ModeNormal
		if err := a.manager.SetConfig(config.BackupConfig{
			BackupChrome:  cfg.BackupChrome,
			BackupEdge:    cfg.BackupEdge,
			BackupFirefox: cfg.BackupFirefox,
		}); err != nil {
			a.showMessage(fmt.Sprintf("[red]Failed to save settings: %v[-]", err))
			return
		}
		a.showMessage("Settings saved")
	})
	form.AddButton("Cancel", func() {
		a.pages.RemovePage("settings")
		a.mode = ModeNormal
	})
	form.SetBorder(true).SetTitle("Settings")

	a.pages.AddPage("settings", a.center(form, 40, 11), true, true)
	a.app.SetFocus(form)
}

// center wraps a primitive in a flex so it floats over the main page.
func (a *App) center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
