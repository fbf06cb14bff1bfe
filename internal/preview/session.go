package preview

import "paypage_ai_server/internal/types"

// Session is everything the preview screen holds for one generated page.
type Session struct {
	Editor     *Editor
	Customizer *Customizer
	View       *View
}

func NewSession(page types.GeneratedPage) *Session {
	return &Session{
		Editor:     NewEditor(page),
		Customizer: NewCustomizer(page.Colors),
		View:       NewView(),
	}
}

// Displayed is the page with every edit and the current colors applied.
func (s *Session) Displayed() types.GeneratedPage {
	colors := s.Customizer.Colors()
	return s.Editor.Displayed(&colors)
}
