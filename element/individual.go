package element

import (
	"strings"

	"github.com/kindredlab/gedcom-format/go-gedcom/tag"
)

// Individual is a read-only view over an INDI record.
type Individual struct {
	el *Element
}

// AsIndividual returns an Individual view of e when e bears the INDI
// tag.
func AsIndividual(e *Element) (Individual, bool) {
	if KindOf(e.Tag) != IndividualKind {
		return Individual{}, false
	}
	return Individual{el: e}, true
}

// Element returns the underlying element.
func (i Individual) Element() *Element { return i.el }

// Name returns the given name and surname from the first NAME child.
// GEDCOM frames the surname in slashes, "Given /Surname/"; when the
// NAME line carries no value the GIVN and SURN sub-lines are consulted
// instead.
func (i Individual) Name() (given, surname string) {
	name := childWithTag(i.el, tag.Name)
	if name == nil {
		return "", ""
	}
	if name.Value != "" {
		parts := strings.SplitN(name.Value, "/", 3)
		given = strings.TrimRight(parts[0], " ")
		if len(parts) > 1 {
			surname = parts[1]
		}
		return given, surname
	}
	return childValue(name, tag.GivenName), childValue(name, tag.Surname)
}

// Sex returns the value of the SEX line, "" when absent.
func (i Individual) Sex() string {
	return childValue(i.el, tag.Sex)
}

// Birth returns the DATE and PLAC carried under BIRT.
func (i Individual) Birth() (date, place string) {
	return i.eventData(tag.Birth)
}

// Death returns the DATE and PLAC carried under DEAT.
func (i Individual) Death() (date, place string) {
	return i.eventData(tag.Death)
}

func (i Individual) eventData(eventTag string) (date, place string) {
	ev := childWithTag(i.el, eventTag)
	if ev == nil {
		return "", ""
	}
	return childValue(ev, tag.Date), childValue(ev, tag.Place)
}

// FamiliesAsSpouse returns the FAMS pointers of the families this
// individual is a spouse in.
func (i Individual) FamiliesAsSpouse() []string {
	return childValues(i.el, tag.FamilySpouse)
}

// FamiliesAsChild returns the FAMC pointers of the families this
// individual is a child in.
func (i Individual) FamiliesAsChild() []string {
	return childValues(i.el, tag.FamilyChild)
}
