package notes

// Sidebar is a fixed-width frame around the note list.
type Sidebar struct {
	width  int
	height int
}

func NewSidebar() Sidebar {
	return Sidebar{width: sidebarWidth}
}

func (s *Sidebar) SetHeight(height int) {
	s.height = height
}

// InnerSize is the space available to the hosted view.
func (s Sidebar) InnerSize() (int, int) {
	w, h := sidebarStyle.GetFrameSize()
	return s.width - w, max(s.height-h, 0)
}

func (s Sidebar) Width() int {
	return s.width
}

func (s Sidebar) Render(content string, focused bool) string {
	style := sidebarStyle
	if focused {
		style = focusedSidebarStyle
	}
	w, _ := s.InnerSize()
	style = style.Copy().Width(w)
	if s.height > 0 {
		_, h := s.InnerSize()
		style = style.Height(h).MaxHeight(s.height)
	}
	return style.Render(content)
}
