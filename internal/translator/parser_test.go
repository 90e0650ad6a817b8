package translator

import "testing"

func TestParserParseValid(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse("ab|cd"); err != nil {
		t.Fatalf("Parse(\"ab|cd\") failed: %v", err)
	}
}

func TestParserParseInvalid(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse("a("); err == nil {
		t.Fatal("Parse should reject an unbalanced group")
	}
}

func TestParserValidate(t *testing.T) {
	p := NewParser()
	if err := p.Validate("a{2,5}"); err != nil {
		t.Fatalf("Validate(\"a{2,5}\") failed: %v", err)
	}
	if err := p.Validate("[a-"); err == nil {
		t.Fatal("Validate should reject a malformed character class")
	}
}

func TestParserMustParsePanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustParse should panic on an invalid pattern")
		}
	}()
	NewParser().MustParse("a(")
}
