// ABOUTME: Viewport fitting math for magnified image placement in cell space
// ABOUTME: Centers a pixel-aspect rectangle within terminal cols/rows minus a margin

package termimg

// cellAspect approximates the height:width ratio of a terminal cell.
// A cell is roughly twice as tall as it is wide, so an image spanning
// N columns occupies about N/2 "square" units horizontally.
const cellAspect = 2

// Rect is a placement rectangle in terminal cell coordinates.
type Rect struct {
	Cols int // width in cells
	Rows int // height in cells
	X    int // left offset in cells
	Y    int // top offset in cells
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Cols <= 0 || r.Rows <= 0
}

// Contains reports whether the cell position (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Cols && y >= r.Y && y < r.Y+r.Rows
}

// FitViewport computes the largest centered placement for an image of the
// given intrinsic pixel dimensions inside a viewport of cols x rows cells,
// keeping margin cells free on every edge and preserving aspect ratio.
func FitViewport(dim Dimensions, cols, rows, margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	availCols := cols - 2*margin
	availRows := rows - 2*margin
	if availCols <= 0 || availRows <= 0 || dim.Width <= 0 || dim.Height <= 0 {
		return Rect{}
	}

	// A cell is 1 unit wide and cellAspect units tall, so a C x R cell box
	// has screen aspect C/(R*cellAspect). Solve for rows first.
	fitCols := availCols
	fitRows := fitCols * dim.Height / (dim.Width * cellAspect)
	if fitRows > availRows {
		fitRows = availRows
		fitCols = availRows * cellAspect * dim.Width / dim.Height
		if fitCols > availCols {
			fitCols = availCols
		}
	}
	if fitCols < 1 {
		fitCols = 1
	}
	if fitRows < 1 {
		fitRows = 1
	}

	return Rect{
		Cols: fitCols,
		Rows: fitRows,
		X:    margin + (availCols-fitCols)/2,
		Y:    margin + (availRows-fitRows)/2,
	}
}

// Shrink interpolates rect toward its center for frame out of frames,
// used to step a closing transition. frame 0 returns rect unchanged;
// frame == frames collapses to a 1x1 rectangle at the center.
func Shrink(r Rect, frame, frames int) Rect {
	if frames <= 0 || frame <= 0 {
		return r
	}
	if frame > frames {
		frame = frames
	}
	remain := frames - frame
	cols := 1 + (r.Cols-1)*remain/frames
	rows := 1 + (r.Rows-1)*remain/frames
	return Rect{
		Cols: cols,
		Rows: rows,
		X:    r.X + (r.Cols-cols)/2,
		Y:    r.Y + (r.Rows-rows)/2,
	}
}
