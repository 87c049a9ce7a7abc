package point

import "math"

func int32BitsToFloat32(v int32) float32 {
	return math.Float32frombits(uint32(v))
}

func float32BitsToInt32(v float32) int32 {
	return int32(math.Float32bits(v))
}
