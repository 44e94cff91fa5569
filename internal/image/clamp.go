package image

// ClampFloat converts v to a byte, rounding half up and saturating at 0 and 255.
func ClampFloat(v float32) byte {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// ClampInt saturates v to [0, 255].
func ClampInt(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// ClampIndex clamps an integer coordinate to [0, maxVal].
func ClampIndex(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
