// Package pointer turns raw pointer samples into tool invocations.
//
// The Controller owns one gesture at a time: a press starts the active tool
// and captures its drag continuation, move samples are delivered to that
// continuation strictly in arrival order, and release drops all gesture
// state. Moves without an active gesture are ignored.
//
// Device coordinates map to raster cells with floor((device-origin)/scale).
// Between consecutive samples further apart than one device unit the
// controller synthesizes intermediate positions by linear interpolation,
// stepped by max(|dx|,|dy|), so a fast pointer sweep cannot skip over cells.
package pointer
