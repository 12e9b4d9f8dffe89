package element

import "github.com/kindredlab/gedcom-format/go-gedcom/tag"

// Family is a read-only view over a FAM record.
type Family struct {
	el *Element
}

// AsFamily returns a Family view of e when e bears the FAM tag.
func AsFamily(e *Element) (Family, bool) {
	if KindOf(e.Tag) != FamilyKind {
		return Family{}, false
	}
	return Family{el: e}, true
}

// Element returns the underlying element.
func (f Family) Element() *Element { return f.el }

// HusbandPointer returns the HUSB pointer value, "" when absent.
func (f Family) HusbandPointer() string {
	return childValue(f.el, tag.Husband)
}

// WifePointer returns the WIFE pointer value, "" when absent.
func (f Family) WifePointer() string {
	return childValue(f.el, tag.Wife)
}

// ChildPointers returns the CHIL pointer values in document order.
func (f Family) ChildPointers() []string {
	return childValues(f.el, tag.Child)
}
