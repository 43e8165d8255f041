package styles

// Backdrop is the surface translucent tokens are composited over.
type Backdrop struct {
	Name  string
	Color string
}

// DarkBackdrop approximates a dark page behind glass surfaces.
var DarkBackdrop = Backdrop{Name: "dark", Color: "#0B0F14"}

// LightBackdrop approximates a light page behind glass surfaces.
var LightBackdrop = Backdrop{Name: "light", Color: "#F5F7FA"}

// Backdrops lists available backdrops by name.
var Backdrops = map[string]Backdrop{
	"dark":  DarkBackdrop,
	"light": LightBackdrop,
}
