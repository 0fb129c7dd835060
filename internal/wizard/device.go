package wizard

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/tui/components"
)

// DeviceOptions builds picker options keyed by device ID.
func DeviceOptions(devices []core.Device) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(devices))
	for _, d := range devices {
		if d.ID == "" {
			continue
		}
		options = append(options, huh.NewOption(components.DeviceLabel(d), d.ID).Selected(d.Active))
	}
	return options
}

// PickDevice asks the user to choose a playback device. It returns nil
// when the user cancels.
func PickDevice(ctx context.Context, devices []core.Device) (*core.Device, error) {
	var id string
	if active := core.ActiveDevice(devices); active != nil {
		id = active.ID
	}

	ok, err := selectOne(ctx,
		"Transfer playback to",
		"Playback moves to the selected device and keeps playing",
		DeviceOptions(devices), &id)
	if err != nil || !ok {
		return nil, err
	}
	return findDevice(devices, id), nil
}

func findDevice(devices []core.Device, id string) *core.Device {
	for i := range devices {
		if devices[i].ID == id {
			return &devices[i]
		}
	}
	return nil
}
