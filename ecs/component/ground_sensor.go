package component

// GroundSensor holds the result of the latest grounded probe.
type GroundSensor struct {
	Grounded bool
}

var GroundSensorComponent = NewComponent[GroundSensor]()
