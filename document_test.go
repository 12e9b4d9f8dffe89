package gedcom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `0 HEAD
1 GEDC
2 VERS 5.5
1 CHAR UTF-8
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
1 FAMS @F1@
0 @I2@ INDI
1 NAME Jane /Doe/
1 SEX F
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
0 @S1@ SOUR
1 TITL Census Records
1 ABBR Census
0 TRLR
`

func mustDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := FromBytes([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestDocumentRecords(t *testing.T) {
	doc := mustDoc(t)
	if n := len(doc.Records()); n != 6 {
		t.Errorf("records: %d, want 6", n)
	}
	if len(doc.Individuals()) != 2 || len(doc.Families()) != 1 || len(doc.Sources()) != 1 {
		t.Errorf("typed lists: %d %d %d",
			len(doc.Individuals()), len(doc.Families()), len(doc.Sources()))
	}
	hd, ok := doc.Header()
	if !ok {
		t.Fatal("no header")
	}
	if hd.Version() != "5.5" {
		t.Errorf("version %q", hd.Version())
	}
}

func TestDocumentResolve(t *testing.T) {
	doc := mustDoc(t)
	fam := doc.Families()[0]
	husb := doc.Resolve(fam.HusbandPointer())
	if husb == nil {
		t.Fatal("husband not resolved")
	}
	if husb.Pointer != "@I1@" {
		t.Errorf("resolved %q", husb.Pointer)
	}
	if doc.Resolve("@NOPE@") != nil {
		t.Error("resolved a pointer that does not exist")
	}
}

func TestDocumentString(t *testing.T) {
	doc := mustDoc(t)
	if got := doc.String(); got != sampleDoc {
		t.Errorf("round trip:\n%s", got)
	}
}

func TestDocumentFromReader(t *testing.T) {
	doc, err := FromReader(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Records()) != 6 {
		t.Errorf("records: %d", len(doc.Records()))
	}
}

func TestQuery(t *testing.T) {
	doc := mustDoc(t)

	els, err := doc.Query(`tag == "INDI"`)
	if err != nil {
		t.Fatal(err)
	}
	var ptrs []string
	for _, el := range els {
		ptrs = append(ptrs, el.Pointer)
	}
	if diff := cmp.Diff([]string{"@I1@", "@I2@"}, ptrs); diff != "" {
		t.Errorf("INDI query (-want +got):\n%s", diff)
	}

	els, err = doc.Query(`level == 1 && tag == "SEX" && value == "F"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 {
		t.Fatalf("SEX query: %d matches", len(els))
	}
	if els[0].Parent.Pointer != "@I2@" {
		t.Errorf("matched under %q", els[0].Parent.Pointer)
	}

	els, err = doc.Query(`kind == "source"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 || els[0].Pointer != "@S1@" {
		t.Errorf("kind query: %+v", els)
	}
}

func TestQueryBadExpr(t *testing.T) {
	doc := mustDoc(t)
	if _, err := doc.Query(`tag ==`); err == nil {
		t.Error("no error for a bad expression")
	}
}
