// FilePath: internal/models/models.command.go
package models

// CommandCalibrate asks the edge device to re-zero its gas sensors.
const CommandCalibrate = "calibrate"

// DeviceCommand is a frame sent to the edge device. Exactly one field is set:
// an actuator setting (fan drive level) or a named command. The pointer keeps
// an explicit setting of 0 on the wire while calibrate frames omit the field.
type DeviceCommand struct {
	ActuatorSetting *int   `json:"actuator_setting,omitempty"`
	Command         string `json:"command,omitempty"`
}

// FanSpeedCommand builds the closed-loop actuator command.
func FanSpeedCommand(speed int) DeviceCommand {
	return DeviceCommand{ActuatorSetting: &speed}
}

// CalibrateCommand builds the calibration trigger.
func CalibrateCommand() DeviceCommand {
	return DeviceCommand{Command: CommandCalibrate}
}

// Kind names the command for logs and metrics.
func (c DeviceCommand) Kind() string {
	if c.Command != "" {
		return c.Command
	}
	return "actuator_setting"
}

// Dashboard operator command names.
const (
	DashboardCommandCalibrate = "calibrate"
	DashboardCommandManualFan = "manual_fan"
)

// DashboardCommand is a frame received from a dashboard operator.
type DashboardCommand struct {
	Command string `json:"command"`
	Speed   int    `json:"speed"`
}
