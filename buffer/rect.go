package buffer

// Rect is a rectangular area of terminal cells
// X, Y are absolute; Width, Height are dimensions
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rect, negative dimensions clamp to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the first column past the rect
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rect
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Area returns cell count
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty reports whether the rect holds no cells
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Sub returns a nested rect with coordinates relative to r, result is clipped to r
func (r Rect) Sub(x, y, w, h int) Rect {
	// Clip to parent bounds
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.Width {
		w = r.Width - x
	}
	if y+h > r.Height {
		h = r.Height - y
	}
	return NewRect(r.X+x, r.Y+y, w, h)
}

// Inset returns a rect shrunk by n cells on all sides
func (r Rect) Inset(n int) Rect {
	return r.Sub(n, n, r.Width-2*n, r.Height-2*n)
}

// Intersect returns the overlap of r and o
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// Row returns the single-row rect at relative row i
func (r Rect) Row(i int) Rect {
	return r.Sub(0, i, r.Width, 1)
}

// Rows returns one rect per row, top to bottom
func (r Rect) Rows() []Rect {
	rows := make([]Rect, 0, r.Height)
	for i := 0; i < r.Height; i++ {
		rows = append(rows, r.Row(i))
	}
	return rows
}
