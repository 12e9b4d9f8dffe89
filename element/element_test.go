package element

import (
	"testing"

	"github.com/kindredlab/gedcom-format/go-gedcom/tag"

	"github.com/google/go-cmp/cmp"
)

func TestNewChildElement(t *testing.T) {
	root := NewRoot()
	indi := root.NewChildElement(tag.Individual, "@I1@", "")
	if indi.Level != 0 {
		t.Errorf("level %d, want 0", indi.Level)
	}
	if indi.Parent != root {
		t.Error("parent not set")
	}
	if indi.Terminator() != root.Terminator() {
		t.Errorf("terminator %q not inherited", indi.Terminator())
	}
	name := indi.NewChildElement(tag.Name, "", "John /Smith/")
	if name.Level != 1 {
		t.Errorf("level %d, want 1", name.Level)
	}
	if len(indi.Children) != 1 || indi.Children[0] != name {
		t.Error("child not appended")
	}
	if name.Root() != root {
		t.Error("Root did not reach the document root")
	}
}

func TestKindDispatch(t *testing.T) {
	// a recognized record-kind tag and an unknown one get identical
	// tree behavior; only the exposed views differ
	root := NewRoot()
	indi := root.NewChildElement(tag.Individual, "@I1@", "")
	custom := root.NewChildElement("_CUSTOM", "", "x")

	if indi.Kind() != IndividualKind {
		t.Errorf("kind %s", indi.Kind())
	}
	if custom.Kind() != GenericKind {
		t.Errorf("kind %s", custom.Kind())
	}
	if indi.Level != custom.Level {
		t.Errorf("levels differ: %d vs %d", indi.Level, custom.Level)
	}
	if _, ok := AsIndividual(indi); !ok {
		t.Error("AsIndividual refused an INDI record")
	}
	if _, ok := AsIndividual(custom); ok {
		t.Error("AsIndividual accepted a generic element")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		el   *Element
		want string
	}{
		{New(0, "@I1@", "INDI", ""), "0 @I1@ INDI\n"},
		{New(1, "", "NAME", "John /Smith/"), "1 NAME John /Smith/\n"},
		{New(2, "", "DATE", "", WithTerminator("\r\n")), "2 DATE\r\n"},
		{NewRoot(), ""},
	}
	for _, tc := range tests {
		if got := tc.el.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestVisitOrder(t *testing.T) {
	root := NewRoot()
	a := root.NewChildElement("A", "", "")
	a.NewChildElement("B", "", "")
	root.NewChildElement("C", "", "")

	var tags []string
	root.Visit(func(e *Element, isPost bool) (bool, error) {
		if !isPost {
			tags = append(tags, e.Tag)
		}
		return true, nil
	})
	want := []string{tag.Root, "A", "B", "C"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}
}
