package annotate

// LinkRule maps a phrase to the reference URL it should link to.
// Matching is case-sensitive substring matching against the full line text.
type LinkRule struct {
	Phrase string
	URL    string
}

// DefaultLinkRules is the fixed phrase table for the link stage. Order
// matters: when several phrases occur in one line, only the first rule in
// this list fires.
var DefaultLinkRules = []LinkRule{
	{
		Phrase: "Forward-Looking Statements",
		URL:    "https://www.sec.gov/education/smallbusiness/goingpublic/forwardlooking",
	},
	{
		Phrase: "Non-GAAP Financial Measures",
		URL:    "https://www.sec.gov/rules/final/33-8176.htm",
	},
	{
		Phrase: "Consolidated Balance Sheet",
		URL:    "https://www.investor.gov/introduction-investing/investing-basics/glossary/balance-sheet",
	},
}

const (
	// ReviewerStamp is the text overlaid on the stamped page range.
	ReviewerStamp = "REVIEWED - FINANCE"

	// NoteToken is matched against whole words, not substrings.
	NoteToken = "Q3"

	// NoteMessage is the body text of the reviewer note.
	NoteMessage = "Verify Q3 figures against the general ledger before sign-off."
)

// Stamp stage page range, inclusive.
const (
	StampFirstPage = 1
	StampLastPage  = 4
)

// Note placement: the matched word's box is shifted this many units on
// both x-edges.
const NoteShiftX = 25.0

// StampOpacity is the opacity of the image stamp.
const StampOpacity = 0.1

// DefaultTextStamp is the reviewer text stamp applied to the stamped range.
var DefaultTextStamp = TextStamp{
	Text:       ReviewerStamp,
	FontName:   "Courier",
	Scale:      0.25,
	OffsetFrac: 0.05,
	Color:      Red,
}

// DefaultLinkStyle is the treatment for keyword links: blue with a
// one-unit underline border.
var DefaultLinkStyle = LinkStyle{
	Color:       Blue,
	BorderWidth: 1,
	Underline:   true,
}

// DefaultNoteStyle is the treatment for the reviewer note.
var DefaultNoteStyle = NoteStyle{
	Color: Yellow,
	Open:  false,
}
