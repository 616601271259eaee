package debugdraw

// White returns an opaque white Color.
func White() Color {
	return NewColor(1, 1, 1, 1)
}

// Black returns an opaque black Color.
func Black() Color {
	return NewColor(0, 0, 0, 1)
}

// Gray returns an opaque gray Color.
func Gray() Color {
	return NewColor(0.5, 0.5, 0.5, 1)
}

// DarkGray returns an opaque dark gray Color.
func DarkGray() Color {
	return NewColor(0.2, 0.2, 0.2, 1)
}

// LightGray returns an opaque light gray Color.
func LightGray() Color {
	return NewColor(0.8, 0.8, 0.8, 1)
}

// Red returns an opaque red Color.
func Red() Color {
	return NewColor(1, 0, 0, 1)
}

// Orange returns an opaque orange Color.
func Orange() Color {
	return NewColor(1, 0.5, 0, 1)
}

// Yellow returns an opaque yellow Color.
func Yellow() Color {
	return NewColor(1, 1, 0, 1)
}

// Green returns an opaque green Color.
func Green() Color {
	return NewColor(0, 1, 0, 1)
}

// SkyBlue returns an opaque sky blue Color.
func SkyBlue() Color {
	return NewColor(0, 0.5, 1, 1)
}

// Pink returns an opaque pink Color.
func Pink() Color {
	return NewColor(1, 0, 1, 1)
}
