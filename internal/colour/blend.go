package colour

// Blend linearly interpolates between c1 and c2 channel by channel.
// A ratio of 0 yields c1 and a ratio of 1 yields c2. Callers clamp the
// ratio to [0, 1]; each channel is truncated to an integer.
func Blend(c1, c2 RGB, ratio float64) RGB {
	return RGB{
		R: blendChannel(c1.R, c2.R, ratio),
		G: blendChannel(c1.G, c2.G, ratio),
		B: blendChannel(c1.B, c2.B, ratio),
	}
}

func blendChannel(a, b uint8, ratio float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*ratio
	return SafeUint8(int(v))
}

// SafeUint8 converts an integer to uint8, clamping to 0-255.
func SafeUint8(val int) uint8 {
	if val < 0 {
		return 0
	}
	if val > 255 {
		return 255
	}
	return uint8(val)
}
