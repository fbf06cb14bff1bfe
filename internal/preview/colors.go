package preview

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"paypage_ai_server/internal/types"
	"paypage_ai_server/internal/utils"
)

type Channel string

const (
	ChannelPrimary   Channel = "primary"
	ChannelSecondary Channel = "secondary"
	ChannelAccent    Channel = "accent"
)

var (
	ErrInvalidColor   = errors.New("color must be #RRGGBB")
	ErrUnknownPreset  = errors.New("unknown color preset")
	ErrUnknownChannel = errors.New("unknown color channel")
)

type ColorPreset struct {
	Name   string           `json:"name"`
	Colors types.PageColors `json:"colors"`
}

var ColorPresets = []ColorPreset{
	{Name: "Blue", Colors: types.PageColors{Primary: "#3B82F6", Secondary: "#1E40AF", Accent: "#60A5FA"}},
	{Name: "Purple", Colors: types.PageColors{Primary: "#8B5CF6", Secondary: "#7C3AED", Accent: "#A78BFA"}},
	{Name: "Green", Colors: types.PageColors{Primary: "#10B981", Secondary: "#047857", Accent: "#34D399"}},
	{Name: "Orange", Colors: types.PageColors{Primary: "#F59E0B", Secondary: "#D97706", Accent: "#FBB040"}},
	{Name: "Pink", Colors: types.PageColors{Primary: "#EC4899", Secondary: "#DB2777", Accent: "#F472B6"}},
	{Name: "Red", Colors: types.PageColors{Primary: "#EF4444", Secondary: "#DC2626", Accent: "#F87171"}},
}

// ResetColors is what Reset restores, independent of the generated theme.
var ResetColors = ColorPresets[0].Colors

// Customizer holds the current colors of the preview.
type Customizer struct {
	mu     sync.Mutex
	colors types.PageColors
}

func NewCustomizer(initial types.PageColors) *Customizer {
	return &Customizer{colors: initial}
}

func (c *Customizer) Colors() types.PageColors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colors
}

// SetColor changes one channel from a raw picker value.
func (c *Customizer) SetColor(channel Channel, hex string) error {
	if !utils.IsHexColor(hex) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch channel {
	case ChannelPrimary:
		c.colors.Primary = hex
	case ChannelSecondary:
		c.colors.Secondary = hex
	case ChannelAccent:
		c.colors.Accent = hex
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	return nil
}

// ApplyPreset overwrites all three channels at once. Names match case-insensitively.
func (c *Customizer) ApplyPreset(name string) error {
	for _, p := range ColorPresets {
		if strings.EqualFold(p.Name, name) {
			c.mu.Lock()
			c.colors = p.Colors
			c.mu.Unlock()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func (c *Customizer) Reset() {
	c.mu.Lock()
	c.colors = ResetColors
	c.mu.Unlock()
}
