package components

import (
	"fmt"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

// DeviceLabel renders "icon name (Active) • Volume: N%".
func DeviceLabel(d core.Device) string {
	label := fmt.Sprintf("%s %s", styles.DeviceIcon(d.Type), d.Name)
	if d.Active {
		label += " (Active)"
	}
	return fmt.Sprintf("%s • Volume: %d%%", label, d.Volume)
}

// DeviceLabels renders one label per device.
func DeviceLabels(devices []core.Device) []string {
	labels := make([]string, len(devices))
	for i, d := range devices {
		labels[i] = DeviceLabel(d)
	}
	return labels
}
