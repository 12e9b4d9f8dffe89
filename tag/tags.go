// Package tag defines the GEDCOM tag vocabulary this library recognizes
// structurally, plus the tags the typed record views read. Tags outside
// this set are opaque to the core.
package tag

// MaxLineLen is the maximum rendered length of one GEDCOM line,
// prefix and value included, line terminator excluded.
const MaxLineLen = 255

// Reserved structural tags. Values longer than a line's budget are
// carried on child lines bearing these tags: Concatenation appends to
// the same physical line, Continued starts a new one.
const (
	Concatenation = "CONC"
	Continued     = "CONT"
)

// Root is the tag of the synthetic document root. It never serializes.
const Root = "ROOT"

// Record-kind tags. A top-level line with one of these opens a record.
const (
	Family     = "FAM"
	Individual = "INDI"
	Note       = "NOTE"
	Object     = "OBJE"
	Repository = "REPO"
	Source     = "SOUR"
	Submitter  = "SUBM"
	Submission = "SUBN"
	Header     = "HEAD"
	Trailer    = "TRLR"
)

// Sub-tags read by the record views.
const (
	Abbreviation = "ABBR"
	Author       = "AUTH"
	Birth        = "BIRT"
	Change       = "CHAN"
	CharacterSet = "CHAR"
	Child        = "CHIL"
	Date         = "DATE"
	Death        = "DEAT"
	FamilyChild  = "FAMC"
	FamilySpouse = "FAMS"
	File         = "FILE"
	Format       = "FORM"
	Gedcom       = "GEDC"
	GivenName    = "GIVN"
	Husband      = "HUSB"
	Name         = "NAME"
	Place        = "PLAC"
	Publication  = "PUBL"
	Reference    = "REFN"
	Sex          = "SEX"
	Surname      = "SURN"
	Title        = "TITL"
	Version      = "VERS"
	Wife         = "WIFE"
)
