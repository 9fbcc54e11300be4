// ABOUTME: Native-size detection: does the inline cell box already show every pixel?
// ABOUTME: Cell-domain analog of intrinsic-vs-rendered comparison, with a small tolerance

package zoomview

import "github.com/mauromedda/zoomview-go/pkg/termimg"

// nativeSizeTolerancePct allows the intrinsic dimensions to exceed the
// rendered box by a few percent and still count as native size, absorbing
// rounding from aspect fitting.
const nativeSizeTolerancePct = 5

// renderedAtNativeSize reports whether an image with the given intrinsic
// pixel dimensions is fully resolved by the inline cell box. Half-block
// rendering shows one pixel per column and two per row, so magnifying an
// image that already fits that budget reveals nothing new.
func renderedAtNativeSize(intrinsic termimg.Dimensions, box termimg.Rect) bool {
	if box.Empty() || intrinsic.Width <= 0 || intrinsic.Height <= 0 {
		return false
	}
	maxW := box.Cols + box.Cols*nativeSizeTolerancePct/100
	maxH := box.Rows*2 + box.Rows*2*nativeSizeTolerancePct/100
	return intrinsic.Width <= maxW && intrinsic.Height <= maxH
}
