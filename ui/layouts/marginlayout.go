package layouts

import "fyne.io/fyne/v2"

var _ fyne.Layout = (*MarginLayout)(nil)

// MarginLayout stretches its children to the available width and
// reserves fixed space above and below them.
type MarginLayout struct {
	MarginTop    float32
	MarginBottom float32
	MarginLeft   float32
	MarginRight  float32
}

func (m *MarginLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w, h := float32(0), float32(0)
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		childSize := o.MinSize()
		w = fyne.Max(w, childSize.Width)
		h = fyne.Max(h, childSize.Height)
	}
	return fyne.NewSize(w+m.MarginLeft+m.MarginRight, h+m.MarginTop+m.MarginBottom)
}

func (m *MarginLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(fyne.NewSize(size.Width-m.MarginLeft-m.MarginRight, size.Height-m.MarginTop-m.MarginBottom))
		o.Move(fyne.NewPos(m.MarginLeft, m.MarginTop))
	}
}
