package core

// Color is the foreground color of a screen cell.
// Renderers map it to a terminal color; plain output ignores it.
type Color uint8

// Palette used by the track and the cars.
const (
	ColorDefault Color = iota
	ColorGray          // plain track
	ColorWhite         // start/finish line
	ColorGreen         // boost
	ColorYellow        // drag
	ColorMagenta       // oil
	ColorCyan          // player car
	ColorRed           // opponent cars
)
