package devices

// DefaultMeasurementFrequencySeconds is applied to newly registered devices
// until the owner's physician overrides it.
const DefaultMeasurementFrequencySeconds = 1800

// EffectiveFrequency resolves the authoritative sampling interval for a
// device. The value always lives on the device record and is settable only
// through the physician-gated SetFrequency operation. Client-local patient
// preferences are advisory and never reach this resolver.
func EffectiveFrequency(device *Device) int {
	if device == nil || device.MeasurementFrequencySeconds <= 0 {
		return DefaultMeasurementFrequencySeconds
	}
	return device.MeasurementFrequencySeconds
}
