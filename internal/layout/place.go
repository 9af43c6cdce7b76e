package layout

// Place computes the on-screen origin for a panel of the given size anchored
// at anchor. When the panel would overflow the right edge of the viewport it
// flips so that its right edge sits on the anchor instead. The vertical
// position is never adjusted.
func Place(size Size, viewport Size, anchor Point) Point {
	left := anchor.X
	if anchor.X+size.W > viewport.W {
		left = anchor.X - size.W
	}
	return Point{X: left, Y: anchor.Y}
}
