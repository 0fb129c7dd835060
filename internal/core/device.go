package core

// DeviceType is the device type tag reported by Spotify.
type DeviceType string

const (
	DeviceTypeComputer   DeviceType = "Computer"
	DeviceTypeSmartphone DeviceType = "Smartphone"
	DeviceTypeSpeaker    DeviceType = "Speaker"
	DeviceTypeTV         DeviceType = "TV"
	DeviceTypeTablet     DeviceType = "Tablet"
	DeviceTypeCastVideo  DeviceType = "CastVideo"
	DeviceTypeCastAudio  DeviceType = "CastAudio"
	DeviceTypeAutomobile DeviceType = "Automobile"
)

// Device represents a Spotify Connect playback device.
type Device struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       DeviceType `json:"type"`
	Active     bool       `json:"active"`
	Volume     int        `json:"volume"`
	Restricted bool       `json:"restricted"`
}

// ActiveDevice returns the single active device, or nil if there is not exactly one.
func ActiveDevice(devices []Device) *Device {
	var active *Device
	count := 0
	for i := range devices {
		if devices[i].Active {
			active = &devices[i]
			count++
		}
	}
	if count == 1 {
		return active
	}
	return nil
}
