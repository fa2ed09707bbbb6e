package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/charts"
	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/charts/axis"
	"github.com/VishRallet/Car-Sales-Analysis-Dashboard/src/salesdata"
)

const defaultFile = "car_sales_financial_data_2022_2024.csv"

// largest window we open; bigger charts are scaled down to fit
const maxWinW, maxWinH = 1400, 900

// light theme wrapper, matching the white-grid chart backgrounds
type lightTheme struct{}

func (l *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (l *lightTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (l *lightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (l *lightTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var file, level string
	flag.StringVar(&file, "file", defaultFile, "Path to the sales table (.csv, .tsv or .xlsx)")
	flag.StringVar(&level, "log", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	if err := salesdata.SetLogLevel(level); err != nil {
		salesdata.Warnf("%v, keeping %s", err, salesdata.GetLogLevel())
	}

	tbl, err := salesdata.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	// Render everything before opening a window so a bad table never yields half a report.
	report, err := charts.RenderAll(tbl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	a := app.NewWithID("com.carsales.dashboard")
	a.Settings().SetTheme(&lightTheme{})
	seq := &sequence{
		n: len(report),
		show: func(i int, next func()) {
			chartWindow(a, report[i], i, len(report), next).Show()
		},
		done: func() {
			salesdata.Debugf("all %d charts dismissed", len(report))
			a.Quit()
		},
	}
	seq.run()
	a.Run()
}

// chartWindow builds the window for one rendered chart. Dismissing it opens the
// next chart before this window goes away, so the app never sees zero windows mid-report.
func chartWindow(a fyne.App, r charts.Rendered, i, n int, next func()) fyne.Window {
	w := a.NewWindow(r.Chart.Title)
	img := canvas.NewImageFromImage(r.Image)
	img.FillMode = canvas.ImageFillContain
	b := r.Image.Bounds()
	cw, ch := axis.FitWithin(b.Dx(), b.Dy(), maxWinW, maxWinH)
	img.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
	footer := widget.NewLabel(fmt.Sprintf("Chart %d of %d. Close this window to continue.", i+1, n))
	w.SetContent(container.NewBorder(nil, footer, nil, nil, img))
	dismiss := func() {
		next()
		w.Close()
	}
	w.SetCloseIntercept(dismiss)
	if canv := w.Canvas(); canv != nil {
		closeWin := func(fyne.Shortcut) { dismiss() }
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, closeWin)
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, closeWin)
		canv.SetOnTypedKey(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeyEscape {
				dismiss()
			}
		})
	}
	salesdata.Infof("showing chart %d/%d: %s", i+1, n, r.Chart.Title)
	return w
}
