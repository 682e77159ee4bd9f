//go:build fyne

package gui

import (
	"context"
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	l := opts.Config.Logger
	if l == nil {
		l = slog.Default()
	}
	l = l.With("component", "gui")
	l.Info("starting UI")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID("com.github.gardar.phototable")
	w := fyneApp.NewWindow(opts.Config.Labels.Title)
	w.Resize(fyne.NewSize(640, 240))
	w.SetOnClosed(cancel)

	source := widget.NewEntry()
	source.SetText(opts.Source)
	source.SetPlaceHolder("Folder with images")
	output := widget.NewEntry()
	output.SetText(opts.Output)
	output.SetPlaceHolder("Folder for the documents")

	progress := widget.NewProgressBar()
	status := widget.NewLabel("Ready")

	var start *widget.Button
	start = widget.NewButton("Create phototable", func() {
		start.Disable()
		progress.SetValue(0)
		status.SetText("Working…")

		j := job{
			cfg:    opts.Config,
			source: source.Text,
			output: output.Text,
			started: func(total int) {
				fyne.Do(func() {
					progress.Max = float64(max(total, 1))
					progress.SetValue(0)
				})
			},
			progress: func(done, total int) {
				fyne.Do(func() { progress.SetValue(float64(done)) })
			},
		}

		go func() {
			summary, err := j.run(ctx)
			if errors.Is(err, context.Canceled) {
				return
			}
			fyne.Do(func() {
				start.Enable()
				if err != nil {
					l.Error("assembly failed", slog.Any("err", err))
					status.SetText("Failed")
					dialog.ShowError(err, w)
					return
				}
				status.SetText(summary.String())
				dialog.ShowInformation(opts.Config.Labels.Title, summaryText(summary), w)
			})
		}()
	})

	form := widget.NewForm(
		widget.NewFormItem("Source", container.NewBorder(nil, nil, nil, browseButton(w, source), source)),
		widget.NewFormItem("Output", container.NewBorder(nil, nil, nil, browseButton(w, output), output)),
	)
	w.SetContent(container.NewVBox(form, start, progress, status))

	w.ShowAndRun()
	return nil
}

// browseButton opens a folder picker that fills target.
func browseButton(w fyne.Window, target *widget.Entry) *widget.Button {
	return widget.NewButton("Browse…", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uri == nil {
				return
			}
			target.SetText(uri.Path())
		}, w)
	})
}
