package gamepad

import "math"

// AxisMapping defines how a raw axis index maps to the logical model:
// either a stick axis or an analog trigger that the source digitalizes
// into button events.
type AxisMapping struct {
	Index     int32
	Stick     Axis
	Trigger   Button
	IsTrigger bool
	Invert    bool
	// For triggers: raw range. Some devices use -32768..32767, others 0..32767.
	RawMin int16
	RawMax int16
}

// ButtonMapping defines how a raw button index maps to a logical button.
type ButtonMapping struct {
	Index  int32
	Button Button
}

// DeviceMapping holds the complete mapping for a specific device type.
type DeviceMapping struct {
	Name    string
	Axes    []AxisMapping
	Buttons []ButtonMapping
	HasHat  bool
}

// NormalizeAxis converts a raw axis value (-32768..32767) to -1.0..1.0.
func NormalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// NormalizeTrigger converts a raw trigger value to 0.0..1.0. The operands
// widen to float64 before subtracting; a full-range span (-32768..32767)
// overflows int16.
func NormalizeTrigger(raw int16, rawMin, rawMax int16) float64 {
	if rawMax == rawMin {
		return 0
	}
	v := (float64(raw) - float64(rawMin)) / (float64(rawMax) - float64(rawMin))
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

// ApplyDeadzone returns 0 unless the value is strictly outside the threshold.
func ApplyDeadzone(v float64, threshold float64) float64 {
	if math.Abs(v) <= threshold {
		return 0
	}
	return v
}

// Built-in mappings for common controllers.

var xboxMapping = &DeviceMapping{
	Name: "xbox",
	Axes: []AxisMapping{
		{Index: 0, Stick: AxisLeftX},
		{Index: 1, Stick: AxisLeftY, Invert: true},
		{Index: 2, Stick: AxisRightX},
		{Index: 3, Stick: AxisRightY, Invert: true},
		{Index: 4, Trigger: ButtonLeftTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Trigger: ButtonRightTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Button: ButtonSouth},
		{Index: 1, Button: ButtonEast},
		{Index: 2, Button: ButtonWest},
		{Index: 3, Button: ButtonNorth},
		{Index: 4, Button: ButtonLeftBumper},
		{Index: 5, Button: ButtonRightBumper},
		{Index: 6, Button: ButtonSelect},
		{Index: 7, Button: ButtonStart},
		{Index: 8, Button: ButtonLeftThumb},
		{Index: 9, Button: ButtonRightThumb},
		{Index: 10, Button: ButtonHome},
	},
	HasHat: true,
}

var playstationMapping = &DeviceMapping{
	Name: "playstation",
	Axes: []AxisMapping{
		{Index: 0, Stick: AxisLeftX},
		{Index: 1, Stick: AxisLeftY, Invert: true},
		{Index: 2, Stick: AxisRightX},
		{Index: 3, Stick: AxisRightY, Invert: true},
		{Index: 4, Trigger: ButtonLeftTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Trigger: ButtonRightTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Button: ButtonSouth},  // Cross (×)
		{Index: 1, Button: ButtonEast},   // Circle (○)
		{Index: 2, Button: ButtonWest},   // Square (□)
		{Index: 3, Button: ButtonNorth},  // Triangle (△)
		{Index: 4, Button: ButtonSelect}, // Share / Create
		{Index: 5, Button: ButtonHome},   // PS button
		{Index: 6, Button: ButtonStart},  // Options
		{Index: 7, Button: ButtonLeftThumb},
		{Index: 8, Button: ButtonRightThumb},
		{Index: 9, Button: ButtonLeftBumper},   // L1
		{Index: 10, Button: ButtonRightBumper}, // R1
	},
	HasHat: true,
}

var switchProMapping = &DeviceMapping{
	Name: "switch_pro",
	Axes: []AxisMapping{
		{Index: 0, Stick: AxisLeftX},
		{Index: 1, Stick: AxisLeftY, Invert: true},
		{Index: 2, Stick: AxisRightX},
		{Index: 3, Stick: AxisRightY, Invert: true},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Button: ButtonSouth},
		{Index: 1, Button: ButtonEast},
		{Index: 2, Button: ButtonWest},
		{Index: 3, Button: ButtonNorth},
		{Index: 4, Button: ButtonLeftBumper},
		{Index: 5, Button: ButtonRightBumper},
		{Index: 6, Button: ButtonSelect},
		{Index: 7, Button: ButtonStart},
		{Index: 8, Button: ButtonLeftThumb},
		{Index: 9, Button: ButtonRightThumb},
		{Index: 10, Button: ButtonHome},
	},
	HasHat: true,
}

var genericMapping = &DeviceMapping{
	Name: "generic",
	Axes: []AxisMapping{
		{Index: 0, Stick: AxisLeftX},
		{Index: 1, Stick: AxisLeftY, Invert: true},
		{Index: 2, Stick: AxisRightX},
		{Index: 3, Stick: AxisRightY, Invert: true},
		{Index: 4, Trigger: ButtonLeftTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Trigger: ButtonRightTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Button: ButtonSouth},
		{Index: 1, Button: ButtonEast},
		{Index: 2, Button: ButtonWest},
		{Index: 3, Button: ButtonNorth},
		{Index: 4, Button: ButtonLeftBumper},
		{Index: 5, Button: ButtonRightBumper},
		{Index: 6, Button: ButtonSelect},
		{Index: 7, Button: ButtonStart},
		{Index: 8, Button: ButtonLeftThumb},
		{Index: 9, Button: ButtonRightThumb},
		{Index: 10, Button: ButtonHome},
	},
	HasHat: true,
}

// Known vendor/product IDs.
type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]*DeviceMapping{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: xboxMapping, // Xbox 360
	{0x045E, 0x02FF}: xboxMapping, // Xbox One
	{0x045E, 0x0B12}: xboxMapping, // Xbox Series X|S
	{0x045E, 0x0B13}: xboxMapping, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{0x054C, 0x0CE6}: playstationMapping, // DualSense
	{0x054C, 0x09CC}: playstationMapping, // DualShock 4 v2
	{0x054C, 0x05C4}: playstationMapping, // DualShock 4 v1
	// Nintendo Switch Pro Controller
	{0x057E, 0x2009}: switchProMapping,
}

// MappingFor returns the appropriate mapping for a device identified by
// vendor/product ID. Falls back to the generic mapping if no specific
// mapping is found.
func MappingFor(vendorID, productID uint16) *DeviceMapping {
	key := deviceKey{VendorID: vendorID, ProductID: productID}
	if m, ok := knownDevices[key]; ok {
		return m
	}
	return genericMapping
}
