// README: Common value types shared across modules.
package types

// ChatID identifies a chat participant on the messaging transport.
type ChatID int64

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}
