/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package pointing

/*****************************************************************************************************************/

// WorkItem is a single unit of the NEST quad-tree descent used by the polygon, ellipse, and
// box query engines: a candidate pixel at a given order (resolution), still to be tested
// against the region and either accepted, rejected, or subdivided into its four children.
type WorkItem struct {
	Pix   int64
	Order int64
}

/*****************************************************************************************************************/

// Stack is a LIFO work-list of WorkItems. Query engines push a region's starting set of
// low-order pixels, then repeatedly pop, test, and either emit or push the four children,
// until the stack drains.
type Stack struct {
	items []WorkItem
}

/*****************************************************************************************************************/

// NewStack returns an empty Stack with capacity reserved for n elements.
func NewStack(n int) *Stack {
	return &Stack{items: make([]WorkItem, 0, n)}
}

/*****************************************************************************************************************/

// Push adds item to the top of the stack.
func (s *Stack) Push(item WorkItem) {
	s.items = append(s.items, item)
}

/*****************************************************************************************************************/

// PushChildren pushes the four NEST children of a pixel at order, i.e. the pixel subdivided
// one level finer.
func (s *Stack) PushChildren(pix, order int64) {
	base := pix * 4

	for c := int64(0); c < 4; c++ {
		s.Push(WorkItem{Pix: base + c, Order: order + 1})
	}
}

/*****************************************************************************************************************/

// Pop removes and returns the item at the top of the stack. ok is false when the stack is
// empty.
func (s *Stack) Pop() (item WorkItem, ok bool) {
	n := len(s.items)

	if n == 0 {
		return WorkItem{}, false
	}

	item = s.items[n-1]
	s.items = s.items[:n-1]

	return item, true
}

/*****************************************************************************************************************/

// Len returns the number of items currently on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

/*****************************************************************************************************************/
