package badge

import (
	"errors"
	"testing"
)

type fruit string

var fruits = NewMapping("fruit", Neutral, map[fruit]Badge{
	"apple":  {Label: "Apple", Tone: ToneRed},
	"banana": {Label: "Banana", Tone: ToneYellow, Icon: "◆"},
})

func TestLookupKnownAndUnknown(t *testing.T) {
	b, err := fruits.Lookup("apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Tone != ToneRed {
		t.Fatalf("expected red, got %s", b.Tone)
	}
	if _, err := fruits.Lookup("kiwi"); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestResolveFallsBackExplicitly(t *testing.T) {
	b := fruits.Resolve("kiwi")
	if b.Label != "kiwi" || b.Tone != ToneGray {
		t.Fatalf("unexpected fallback %+v", b)
	}
}

func TestKnownIsSorted(t *testing.T) {
	known := fruits.Known()
	if len(known) != 2 || known[0] != "apple" || known[1] != "banana" {
		t.Fatalf("unexpected known tags %v", known)
	}
}

func TestCellIncludesIcon(t *testing.T) {
	cell := fruits.Resolve("banana").Cell()
	if cell.Text != "◆ Banana" || cell.Tone != ToneYellow {
		t.Fatalf("unexpected cell %+v", cell)
	}
}

func TestRecordStatuses(t *testing.T) {
	if !RecordStatuses.Valid(StatusActive) || RecordStatuses.Valid("Archived") {
		t.Fatal("unexpected record status validity")
	}
}
