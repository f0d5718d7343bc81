package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"zeta/internal/util"
)

// FieldMarker is a small dot next to an entry, red when the entry was
// rejected by the last calculation and invisible otherwise.
type FieldMarker struct {
	widget.BaseWidget
	invalid bool
}

// NewFieldMarker creates a hidden marker.
func NewFieldMarker() *FieldMarker {
	m := &FieldMarker{}
	m.ExtendBaseWidget(m)
	return m
}

// SetInvalid shows or hides the marker.
func (m *FieldMarker) SetInvalid(invalid bool) {
	m.invalid = invalid
	m.Refresh()
}

// Invalid reports whether the marker is shown.
func (m *FieldMarker) Invalid() bool {
	return m.invalid
}

// MinSize returns the minimum size of the marker.
func (m *FieldMarker) MinSize() fyne.Size {
	return fyne.NewSize(16, 16)
}

// CreateRenderer creates the renderer for the widget.
func (m *FieldMarker) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(color.Transparent)
	r := &fieldMarkerRenderer{marker: m, dot: dot}
	r.updateColor()
	return r
}

type fieldMarkerRenderer struct {
	marker *FieldMarker
	dot    *canvas.Circle
}

func (r *fieldMarkerRenderer) Layout(size fyne.Size) {
	d := fyne.NewSize(10, 10)
	r.dot.Move(fyne.NewPos((size.Width-d.Width)/2, (size.Height-d.Height)/2))
	r.dot.Resize(d)
}

func (r *fieldMarkerRenderer) MinSize() fyne.Size {
	return r.marker.MinSize()
}

func (r *fieldMarkerRenderer) updateColor() {
	if r.marker.invalid {
		r.dot.FillColor = util.INVALID
		return
	}
	r.dot.FillColor = color.Transparent
}

func (r *fieldMarkerRenderer) Refresh() {
	r.updateColor()
	canvas.Refresh(r.dot)
}

func (r *fieldMarkerRenderer) Destroy() {}

func (r *fieldMarkerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dot}
}

// NewResultEntry creates a read-only entry bound to data.
func NewResultEntry(data binding.String) *widget.Entry {
	e := widget.NewEntryWithData(data)
	e.Disable()
	return e
}

// NewNumberEntry creates an editable entry bound to data.
func NewNumberEntry(data binding.String, placeholder string) *widget.Entry {
	e := widget.NewEntryWithData(data)
	e.SetPlaceHolder(placeholder)
	return e
}

// TooltipButton is a button that explains itself on hover.
type TooltipButton struct {
	widget.Button
	tooltip string
	popup   *widget.PopUp
}

var _ desktop.Hoverable = (*TooltipButton)(nil)

// NewTooltipButton creates a new button with a tooltip.
func NewTooltipButton(label, tooltip string, onTapped func()) *TooltipButton {
	b := &TooltipButton{tooltip: tooltip}
	b.Text = label
	b.OnTapped = onTapped
	b.ExtendBaseWidget(b)
	return b
}

// MouseIn shows the tooltip below the button.
func (b *TooltipButton) MouseIn(e *desktop.MouseEvent) {
	if b.tooltip == "" || b.Disabled() {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	if c == nil {
		return
	}
	text := canvas.NewText(b.tooltip, theme.Color(theme.ColorNameForeground))
	text.TextSize = theme.CaptionTextSize()
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	b.popup = widget.NewPopUp(container.NewStack(bg, container.NewPadded(text)), c)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	b.popup.ShowAtPosition(fyne.NewPos(pos.X, pos.Y+b.Size().Height+2))
}

// MouseMoved is part of desktop.Hoverable.
func (b *TooltipButton) MouseMoved(e *desktop.MouseEvent) {}

// MouseOut hides the tooltip.
func (b *TooltipButton) MouseOut() {
	if b.popup != nil {
		b.popup.Hide()
		b.popup = nil
	}
}

// StatusLabel is a single line of colored text.
type StatusLabel struct {
	widget.BaseWidget
	text  string
	color color.Color
}

// NewStatusLabel creates a status line.
func NewStatusLabel(text string, col color.Color) *StatusLabel {
	l := &StatusLabel{text: text, color: col}
	l.ExtendBaseWidget(l)
	return l
}

// Set updates text and color.
func (l *StatusLabel) Set(text string, col color.Color) {
	l.text = text
	l.color = col
	l.Refresh()
}

// Text returns the current text.
func (l *StatusLabel) Text() string {
	return l.text
}

// MinSize returns the size of the text.
func (l *StatusLabel) MinSize() fyne.Size {
	return fyne.MeasureText(l.text, theme.TextSize(), fyne.TextStyle{})
}

// CreateRenderer creates the renderer for the label.
func (l *StatusLabel) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(l.text, l.color)
	text.TextSize = theme.TextSize()
	return &statusLabelRenderer{label: l, text: text}
}

type statusLabelRenderer struct {
	label *StatusLabel
	text  *canvas.Text
}

func (r *statusLabelRenderer) Layout(size fyne.Size) {
	r.text.Move(fyne.NewPos(0, 0))
}

func (r *statusLabelRenderer) MinSize() fyne.Size {
	return r.label.MinSize()
}

func (r *statusLabelRenderer) Refresh() {
	r.text.Text = r.label.text
	r.text.Color = r.label.color
	canvas.Refresh(r.text)
}

func (r *statusLabelRenderer) Destroy() {}

func (r *statusLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.text}
}
