// Package tool implements the five editing tools that translate a pointer
// gesture into raster edits.
//
// Every tool follows the same contract: ID.Start performs the tool's
// immediate edit for the press position and returns a DragFunc for the rest
// of the gesture, or nil when the tool is a one-shot action. The DragFunc is
// invoked once per pointer sample with a fresh editing Context, so tools that
// recompute their shape from the gesture start (rectangle, circle) always
// draw against the pre-drag picture instead of stacking shapes.
//
//	drag := id.Start(pos, ctx, dispatch)
//	if drag != nil {
//	    // feed subsequent samples of the same gesture
//	    drag(next, freshCtx)
//	}
//
// Tools never mutate state directly. They compute an edit list, apply it to
// the picture in the Context, and hand the result to the Dispatch callback as
// a Change. All tools clip their edits to the raster bounds, so pointer math
// at the surface edges cannot produce an out-of-range write.
package tool
