package layout

// Child is the per-child input to Finalize and LayoutStack: the child's
// measured intrinsic size paired with its layout style.
type Child struct {
	Size  Size
	Style Style
}

// Prepared is the result of Prepare: the container's candidate outer size
// and the constraints its children should be measured against.
type Prepared struct {
	// Candidate holds the container's own resolved size, ignoring children.
	// An axis resolves to -1 when the token is content-driven there; Finalize
	// settles it from the measured children.
	Candidate Size

	// Inner is the loose constraint box available to children: the candidate
	// (or the incoming maximum where the candidate is unresolved) minus
	// padding.
	Inner Constraints
}

// StackMeasurement is the per-frame snapshot connecting a container's
// measure phase to its placement phase. It is produced by Finalize and
// consumed by LayoutStack for the same frame; reusing one across frames
// yields stale geometry.
type StackMeasurement struct {
	Axis    Axis
	Padding Edges
	Gap     int
	Justify Justify
	Align   Align

	// Outer is the container's resolved outer size; Inner is Outer minus
	// padding, the box children are placed in.
	Outer Size
	Inner Size

	Children []Child
}

// PlacedItem is one child's final rectangle, in the same order and index
// space as the measurement's children.
type PlacedItem struct {
	Index int
	Rect  Rect
}

// Placement is the result of LayoutStack. Overflow reports the flow-axis
// deficit that shrinking could not resolve within min bounds; it is never
// clipped at this layer — callers decide (a scroll container reads it as
// "needs scrollbars"). FreeSpace is the flow-axis slack left after grow
// distribution, the space justify modes apportion.
type Placement struct {
	Items     []PlacedItem
	Overflow  int
	FreeSpace int
}

// Prepare resolves the container's own width and height tokens against the
// incoming constraints, ignoring children, and derives the constraint box
// children measure against (candidate minus padding).
func Prepare(c Constraints, st Style) Prepared {
	w := resolveOwn(st.Width, c.MinWidth, c.MaxWidth)
	h := resolveOwn(st.Height, c.MinHeight, c.MaxHeight)

	innerW := innerMax(w, c.MaxWidth, st.Padding.Horizontal())
	innerH := innerMax(h, c.MaxHeight, st.Padding.Vertical())

	return Prepared{
		Candidate: Size{Width: w, Height: h},
		Inner:     Constraints{MaxWidth: innerW, MaxHeight: innerH},
	}
}

// resolveOwn resolves a container-level dimension token against one
// constraint axis, or returns -1 when the token needs content to settle.
func resolveOwn(v Value, cmin, cmax int) int {
	switch v.Unit {
	case UnitCells:
		return clampInt(int(v.Amount), cmin, cmax)
	case UnitPercent:
		if cmax >= Unbounded {
			return -1
		}
		return clampInt(int(float64(cmax)*v.Amount/100.0), cmin, cmax)
	case UnitFill:
		if cmax >= Unbounded {
			return -1
		}
		return cmax
	default:
		// Hug, auto and fr settle from content.
		return -1
	}
}

// innerMax computes the child-box maximum for one axis: the resolved
// candidate when known, otherwise the incoming maximum, minus padding.
func innerMax(candidate, cmax, padding int) int {
	base := candidate
	if base < 0 {
		base = cmax
	}
	if base >= Unbounded {
		return Unbounded
	}
	return max(0, base-padding)
}

// Finalize reconciles the container's candidate size with its measured
// children: intrinsic content size (sum of flow sizes plus gaps, max of
// cross sizes) settles content-driven axes, min/max limit tokens apply, and
// the result is clamped into the incoming constraints. With zero children
// the outer size collapses to padding alone.
func Finalize(c Constraints, st Style, candidate Size, children []Child) StackMeasurement {
	axis := st.Axis

	contentFlow := 0
	contentCross := 0
	for _, ch := range children {
		contentFlow += ch.Size.Along(axis)
		contentCross = max(contentCross, ch.Size.Across(axis))
	}
	if n := len(children); n > 1 {
		contentFlow += st.Gap * (n - 1)
	}
	content := SizeAlong(axis, contentFlow, contentCross)

	outer := Size{
		Width:  finalizeAxis(candidate.Width, content.Width+st.Padding.Horizontal(), st.MinWidth, st.MaxWidth, c.MinWidth, c.MaxWidth),
		Height: finalizeAxis(candidate.Height, content.Height+st.Padding.Vertical(), st.MinHeight, st.MaxHeight, c.MinHeight, c.MaxHeight),
	}
	inner := Size{
		Width:  max(0, outer.Width-st.Padding.Horizontal()),
		Height: max(0, outer.Height-st.Padding.Vertical()),
	}

	return StackMeasurement{
		Axis:     axis,
		Padding:  st.Padding,
		Gap:      st.Gap,
		Justify:  st.Justify,
		Align:    st.Align,
		Outer:    outer,
		Inner:    inner,
		Children: children,
	}
}

// finalizeAxis settles one axis of the outer size: candidate if resolved,
// else the intrinsic outer size, bounded by the limit tokens and then by
// the incoming constraints. The minimum wins over the maximum in both
// clamping steps.
func finalizeAxis(candidate, intrinsic int, minTok, maxTok Value, cmin, cmax int) int {
	v := candidate
	if v < 0 {
		v = intrinsic
	}

	minB := resolveLimit(minTok, cmax, 0)
	maxB := resolveLimit(maxTok, cmax, Unbounded)
	if v > maxB {
		v = maxB
	}
	if v < minB {
		v = minB
	}

	return clampInt(v, cmin, cmax)
}

// resolveLimit resolves a min/max limit token. None and content-driven
// tokens resolve to the fallback (0 for minimums, Unbounded for maximums);
// percentages resolve against the available extent when it is bounded.
func resolveLimit(v Value, available, fallback int) int {
	switch v.Unit {
	case UnitCells:
		return int(v.Amount)
	case UnitPercent:
		if available >= Unbounded {
			return fallback
		}
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// LayoutStack places the measured children inside the container box whose
// top-left corner is origin. Flow-axis sizes start from each child's basis,
// then free space is grown into or reclaimed proportionally to the child
// weights with an iterative fixed-point loop that respects min/max bounds.
// Whatever slack survives is apportioned by the justify mode; cross-axis
// size and position follow the child's cross token and the effective
// alignment. Absolute children skip distribution and are placed against the
// padded box by their offsets.
func LayoutStack(origin Point, m StackMeasurement) Placement {
	axis := m.Axis
	cross := axis.Cross()
	innerOrigin := Point{X: origin.X + m.Padding.Left, Y: origin.Y + m.Padding.Top}
	innerFlow := m.Inner.Along(axis)
	innerCross := m.Inner.Across(axis)

	items := make([]PlacedItem, len(m.Children))

	// Collect the in-flow children and resolve basis and weights.
	var flow []int
	for i, ch := range m.Children {
		if ch.Style.Absolute {
			continue
		}
		flow = append(flow, i)
	}

	sizes := make([]int, len(flow))
	mins := make([]int, len(flow))
	maxs := make([]int, len(flow))
	grows := make([]float64, len(flow))
	shrinks := make([]float64, len(flow))
	for k, i := range flow {
		ch := m.Children[i]
		tok := ch.Style.value(axis)

		basis := 0
		switch tok.Unit {
		case UnitCells:
			basis = int(tok.Amount)
		case UnitPercent:
			basis = int(float64(innerFlow) * tok.Amount / 100.0)
		case UnitFr:
			// fr items start from nothing and take their share of free space.
			basis = 0
		default:
			basis = ch.Size.Along(axis)
		}

		mins[k] = resolveLimit(ch.Style.minValue(axis), innerFlow, 0)
		maxs[k] = resolveLimit(ch.Style.maxValue(axis), innerFlow, Unbounded)
		if maxs[k] < mins[k] {
			maxs[k] = mins[k]
		}
		sizes[k] = clampInt(basis, mins[k], maxs[k])
		grows[k] = growWeight(ch.Style, tok)
		shrinks[k] = shrinkWeight(ch.Style, tok)
	}

	gaps := 0
	if len(flow) > 1 {
		gaps = m.Gap * (len(flow) - 1)
	}

	used := 0
	for _, s := range sizes {
		used += s
	}
	free := innerFlow - used - gaps

	overflow := 0
	switch {
	case free > 0:
		free = growPass(sizes, grows, maxs, free)
	case free < 0:
		overflow = shrinkPass(sizes, shrinks, mins, -free)
		free = 0
	}

	leading, extras := justifyOffsets(m.Justify, free, len(flow))

	// Place the in-flow children.
	cur := leading
	for k, i := range flow {
		ch := m.Children[i]
		al := alignFor(m.Align, ch.Style)
		crossSz := resolveCross(ch.Style, cross, ch.Size.Across(axis), innerCross, al)
		crossOff := alignOffset(al, innerCross, crossSz)

		var r Rect
		if axis == AxisX {
			r = Rect{X: innerOrigin.X + cur, Y: innerOrigin.Y + crossOff, Width: sizes[k], Height: crossSz}
		} else {
			r = Rect{X: innerOrigin.X + crossOff, Y: innerOrigin.Y + cur, Width: crossSz, Height: sizes[k]}
		}
		items[i] = PlacedItem{Index: i, Rect: r}

		cur += sizes[k]
		if k < len(flow)-1 {
			cur += m.Gap + extras[k]
		}
	}

	// Place absolute children against the padded box.
	for i, ch := range m.Children {
		if !ch.Style.Absolute {
			continue
		}
		w := absoluteAxis(ch.Style, AxisX, ch.Size.Width, m.Inner.Width)
		h := absoluteAxis(ch.Style, AxisY, ch.Size.Height, m.Inner.Height)
		items[i] = PlacedItem{
			Index: i,
			Rect: Rect{
				X:      innerOrigin.X + ch.Style.Offset.X,
				Y:      innerOrigin.Y + ch.Style.Offset.Y,
				Width:  w,
				Height: h,
			},
		}
	}

	return Placement{Items: items, Overflow: overflow, FreeSpace: free}
}

// growWeight returns the effective grow weight: the explicit style weight
// when set, otherwise derived from the dimension token (fill grows with
// weight 1, fr by its share, everything else stays rigid).
func growWeight(st Style, tok Value) float64 {
	if st.Grow >= 0 {
		return st.Grow
	}
	switch tok.Unit {
	case UnitFill:
		return 1
	case UnitFr:
		return tok.Amount
	default:
		return 0
	}
}

// shrinkWeight returns the effective shrink weight: the explicit style
// weight when set, otherwise derived from the token (fill, percent and fr
// give way with weight 1, everything else stays rigid).
func shrinkWeight(st Style, tok Value) float64 {
	if st.Shrink >= 0 {
		return st.Shrink
	}
	switch tok.Unit {
	case UnitFill, UnitPercent, UnitFr:
		return 1
	default:
		return 0
	}
}

// growPass distributes free space to growable items proportionally to their
// weights. Items saturating at their max bound refund the refused space,
// which is re-offered to the remaining items on the next round; each
// continuing round saturates at least one item, so the loop is bounded by
// the item count. Cells the proportional split cannot divide go to the last
// eligible items first. Returns the space left undistributed.
func growPass(sizes []int, weights []float64, maxs []int, free int) int {
	for round := 0; round < len(sizes) && free > 0; round++ {
		var idx []int
		var total float64
		for i := range sizes {
			if weights[i] > 0 && sizes[i] < maxs[i] {
				idx = append(idx, i)
				total += weights[i]
			}
		}
		if len(idx) == 0 {
			break
		}

		shares := make([]int, len(idx))
		given := 0
		for k, i := range idx {
			shares[k] = int(float64(free) * weights[i] / total)
			given += shares[k]
		}
		for k := len(idx) - 1; k >= 0 && given < free; k-- {
			shares[k]++
			given++
		}

		applied := 0
		for k, i := range idx {
			next := sizes[i] + shares[k]
			if next > maxs[i] {
				next = maxs[i]
			}
			applied += next - sizes[i]
			sizes[i] = next
		}
		if applied == 0 {
			break
		}
		free -= applied
	}
	return free
}

// shrinkPass reclaims deficit from shrinkable items proportionally to their
// weights, never below each item's min bound, iterating like growPass.
// Returns the deficit that could not be reclaimed — the caller's overflow.
func shrinkPass(sizes []int, weights []float64, mins []int, deficit int) int {
	for round := 0; round < len(sizes) && deficit > 0; round++ {
		var idx []int
		var total float64
		for i := range sizes {
			if weights[i] > 0 && sizes[i] > mins[i] {
				idx = append(idx, i)
				total += weights[i]
			}
		}
		if len(idx) == 0 {
			break
		}

		shares := make([]int, len(idx))
		taken := 0
		for k, i := range idx {
			shares[k] = int(float64(deficit) * weights[i] / total)
			taken += shares[k]
		}
		for k := len(idx) - 1; k >= 0 && taken < deficit; k-- {
			shares[k]++
			taken++
		}

		applied := 0
		for k, i := range idx {
			next := sizes[i] - shares[k]
			if next < mins[i] {
				next = mins[i]
			}
			applied += sizes[i] - next
			sizes[i] = next
		}
		if applied == 0 {
			break
		}
		deficit -= applied
	}
	return deficit
}

// justifyOffsets computes the leading flow offset and the per-gap
// augmentation for the leftover free space. Between and around give
// indivisible remainder cells to the last gaps first; this tie-break is
// part of the engine's contract, so renders are cell-identical across
// implementations of the same tree.
func justifyOffsets(j Justify, free, n int) (int, []int) {
	if n == 0 || free <= 0 {
		return 0, make([]int, max(0, n-1))
	}

	extras := make([]int, max(0, n-1))
	switch j {
	case JustifyCenter:
		return free / 2, extras
	case JustifyEnd:
		return free, extras
	case JustifyBetween:
		if n < 2 {
			return 0, extras
		}
		q, r := free/(n-1), free%(n-1)
		for i := range extras {
			extras[i] = q
		}
		for i := n - 2; i >= 0 && r > 0; i-- {
			extras[i]++
			r--
		}
		return 0, extras
	case JustifyAround:
		q, r := free/n, free%n
		for i := range extras {
			extras[i] = q
		}
		for i := n - 2; i >= 0 && r > 0; i-- {
			extras[i]++
			r--
		}
		return q / 2, extras
	default:
		return 0, extras
	}
}

// resolveCross computes a child's cross-axis size. Stretch only applies to
// hug-sized children: auto is content-driven and non-resizing, and explicit
// tokens keep their say.
func resolveCross(st Style, cross Axis, intrinsic, innerCross int, al Align) int {
	tok := st.value(cross)

	var sz int
	switch tok.Unit {
	case UnitCells:
		sz = int(tok.Amount)
	case UnitPercent:
		sz = int(float64(innerCross) * tok.Amount / 100.0)
	case UnitFill, UnitFr:
		sz = innerCross
	case UnitHug:
		if al == AlignStretch {
			sz = innerCross
		} else {
			sz = intrinsic
		}
	default:
		sz = intrinsic
	}

	minB := resolveLimit(st.minValue(cross), innerCross, 0)
	maxB := resolveLimit(st.maxValue(cross), innerCross, Unbounded)
	if maxB < minB {
		maxB = minB
	}
	return max(0, clampInt(sz, minB, maxB))
}

// alignOffset positions a child of size sz inside the cross extent avail.
func alignOffset(al Align, avail, sz int) int {
	switch al {
	case AlignCenter:
		return max(0, (avail-sz)/2)
	case AlignEnd:
		return max(0, avail-sz)
	default:
		return 0
	}
}

// absoluteAxis resolves one axis of an absolutely positioned child against
// the container's padded box.
func absoluteAxis(st Style, a Axis, intrinsic, inner int) int {
	tok := st.value(a)
	sz := tok.Resolve(inner, intrinsic)
	if tok.Unit == UnitFr {
		sz = inner
	}
	minB := resolveLimit(st.minValue(a), inner, 0)
	maxB := resolveLimit(st.maxValue(a), inner, Unbounded)
	if maxB < minB {
		maxB = minB
	}
	return max(0, clampInt(sz, minB, maxB))
}

// clampInt clamps v into [lo, hi] with the minimum winning on conflict.
func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
