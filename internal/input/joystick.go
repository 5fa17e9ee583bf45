package input

import "strconv"

// AxisDeadzone is the raw threshold under which an axis reads as released.
const AxisDeadzone = 1024

// AxisMax is the nominal raw range of a joystick axis.
const AxisMax = 32767

// AxisToFloat converts a raw joystick axis value to [-1, 1] according to
// the configured range and asymmetric deadzone:
//
//	               (+)      ____
//	         result |      /|
//	                |     / |
//	                |    /  |
//	(-)________ ____|___/___|____(+)
//	           /|   |   |   |    input
//	          / |   |   |   |
//	         /  |   |   |   |
//	   _____/   |   |   |   |
//	        |   |  (-)  |   |
//	       neg  dead-zone  pos
//
// An inverted range (neg > pos) is normalized by swapping both the range
// and the deadzone bounds.
func AxisToFloat(raw, neg, deadNeg, deadPos, pos float64) float64 {
	if neg > pos {
		neg, pos = pos, neg
		deadNeg, deadPos = deadPos, deadNeg
	}

	switch {
	case raw > pos:
		return 1
	case raw > deadPos:
		return (raw - deadPos) / (pos - deadPos)
	case raw < neg:
		return -1
	case raw < deadNeg:
		return -(raw - deadNeg) / (neg - deadNeg)
	default:
		return 0
	}
}

// AxisPressed classifies a raw axis value as pressed when it is outside
// the base deadzone.
func AxisPressed(raw int) bool {
	if raw < 0 {
		raw = -raw
	}
	return raw >= AxisDeadzone
}

// AssignIDs derives stable display identifiers for a set of connected
// joysticks. Duplicate controller names get a numeric suffix starting
// at 2, so two identical pads become "Pad" and "Pad 2".
func AssignIDs(names []string) []string {
	ids := make([]string, 0, len(names))
	seen := make(map[string]int, len(names))

	for _, name := range names {
		seen[name]++
		if n := seen[name]; n > 1 {
			ids = append(ids, name+" "+strconv.Itoa(n))
		} else {
			ids = append(ids, name)
		}
	}

	return ids
}
