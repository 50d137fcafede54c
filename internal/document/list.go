package document

// List is a tree of list elements. Order is significant.
type List struct {
	Elements []ListElement
}

// ListElement is one of OrderedItem, UnorderedItem, ChecklistItem or NestedList.
type ListElement interface {
	isListElement()
}

// OrderedItem configures an item of a numbered list.
type OrderedItem struct {
	Number int
	Text   string
	Level  int
}

// UnorderedItem configures an item of a bulleted list.
type UnorderedItem struct {
	Text  string
	Level int
}

// ChecklistItem configures a task list item.
type ChecklistItem struct {
	Checked bool
	Text    string
	Level   int
}

// NestedList is a sub-list that belongs to the element before it.
type NestedList struct {
	List List
}

func (OrderedItem) isListElement()   {}
func (UnorderedItem) isListElement() {}
func (ChecklistItem) isListElement() {}
func (NestedList) isListElement()    {}

// Depth returns the number of list levels in l: 0 for an empty list, 1 for a
// flat list, and one more per level of nesting.
func Depth(l List) int {
	if len(l.Elements) == 0 {
		return 0
	}
	deepest := 0
	for _, el := range l.Elements {
		if nested, ok := el.(NestedList); ok {
			if d := Depth(nested.List); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}

// Len returns the number of items in l, including items of nested lists.
func Len(l List) int {
	n := 0
	for _, el := range l.Elements {
		if nested, ok := el.(NestedList); ok {
			n += Len(nested.List)
			continue
		}
		n++
	}
	return n
}
