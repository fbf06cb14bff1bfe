package preview

import "sync"

type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

// View is presentation state only; nothing here changes the page data.
type View struct {
	mu sync.Mutex

	device             Device
	fullscreen         bool
	menuOpen           bool
	fullscreenMenuOpen bool
	expandedFAQ        int
}

// ViewState is a snapshot of View.
type ViewState struct {
	Device             Device `json:"device"`
	Fullscreen         bool   `json:"fullscreen"`
	MenuOpen           bool   `json:"menuOpen"`
	FullscreenMenuOpen bool   `json:"fullscreenMenuOpen"`
	ExpandedFAQ        int    `json:"expandedFaq"`
	MaxWidth           string `json:"maxWidth"`
}

func NewView() *View {
	return &View{device: DeviceDesktop, expandedFAQ: -1}
}

func (v *View) SetDevice(d Device) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if d == DeviceMobile {
		v.device = DeviceMobile
	} else {
		v.device = DeviceDesktop
	}
}

func (v *View) ToggleFullscreen() {
	v.mu.Lock()
	v.fullscreen = !v.fullscreen
	v.mu.Unlock()
}

// ToggleMenu flips the navigation menu of the inline preview or of the
// fullscreen modal. The two menus never affect each other.
func (v *View) ToggleMenu(fullscreen bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if fullscreen {
		v.fullscreenMenuOpen = !v.fullscreenMenuOpen
	} else {
		v.menuOpen = !v.menuOpen
	}
}

// ToggleFAQ expands entry i, or collapses it when it is already expanded.
func (v *View) ToggleFAQ(i int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.expandedFAQ == i {
		v.expandedFAQ = -1
	} else {
		v.expandedFAQ = i
	}
}

func (v *View) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	width := "100%"
	if v.device == DeviceMobile {
		width = "375px"
	}
	return ViewState{
		Device:             v.device,
		Fullscreen:         v.fullscreen,
		MenuOpen:           v.menuOpen,
		FullscreenMenuOpen: v.fullscreenMenuOpen,
		ExpandedFAQ:        v.expandedFAQ,
		MaxWidth:           width,
	}
}
