package tracked

import "github.com/sirgallo/durability/pkg/dmerror"


//=========================================== Tracked List


/*
	Tracked List
		ordered container of pending sync writes, strictly ascending by prepare
		seqno. appends always land at the tail, removals happen at any interior
		position as writes are committed or aborted

		cursors into the list are raw element pointers. removal of an element
		leaves every other element untouched, the cursor repositioning for the
		removed element itself is handled by the caller with the predecessor
		returned from Remove
*/

func NewTrackedList() *TrackedList {
	return &TrackedList{}
}

func (tList *TrackedList) Size() int {
	return tList.size
}

func (tList *TrackedList) Front() *Element {
	return tList.head
}

func (tList *TrackedList) Back() *Element {
	return tList.tail
}

/*
	successor of an element, where the nil sentinel precedes the first element
*/

func (tList *TrackedList) Next(elem *Element) *Element {
	if elem == nil { return tList.head }
	return elem.next
}

/*
	append a sync write at the tail and return its element
*/

func (tList *TrackedList) Append(syncWrite *SyncWrite) *Element {
	elem := &Element{ SyncWrite: syncWrite }

	if tList.tail == nil {
		tList.head = elem
		tList.tail = elem
	} else {
		elem.prev = tList.tail
		tList.tail.next = elem
		tList.tail = elem
	}

	tList.size++

	return elem
}

/*
	unlink an element from the list
		1.) removal at the sentinel is a broken invariant
		2.) splice the element out, its neighbors relink around it
		3.) return the predecessor, nil when the element was the head, so the
			caller can reposition any cursor that pointed at the removed element
*/

func (tList *TrackedList) Remove(elem *Element) (*Element, error) {
	if elem == nil { return nil, dmerror.Logic("remove at before-first sentinel") }

	prev := elem.prev

	if elem.prev != nil {
		elem.prev.next = elem.next
	} else { tList.head = elem.next }

	if elem.next != nil {
		elem.next.prev = elem.prev
	} else { tList.tail = elem.prev }

	elem.prev = nil
	elem.next = nil

	tList.size--

	return prev, nil
}
