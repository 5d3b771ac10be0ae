package events

import "github.com/go-gl/mathgl/mgl64"

// VectorPayload carries a 2D input axis value
type VectorPayload struct {
	Value mgl64.Vec2
}

// AmountPayload carries a scalar change for health or ammo
type AmountPayload struct {
	Amount float64
}
