package lexgen

import (
	"strings"
	"testing"
)

// scenario 1 (spec.md §8): zero-or-more wildcard, built directly from a
// SpecNode rather than via regex translation.
func TestZeroOrMoreWildcardSpec(t *testing.T) {
	nfa := BuildFromSpec(StarNode(SingleNode(AnyChar)))
	for _, w := range []string{"", "a", "hello"} {
		if !Simulate(nfa, w).Accepted {
			t.Errorf("%q should be accepted", w)
		}
	}
}

// scenario 2: literal concat "ab", via regex translation.
func TestLiteralConcatAB(t *testing.T) {
	nfa, err := TranslateAndBuild("ab")
	if err != nil {
		t.Fatalf("TranslateAndBuild failed: %v", err)
	}
	if !Simulate(nfa, "ab").Accepted {
		t.Fatal(`"ab" should be accepted`)
	}
	for _, w := range []string{"", "a", "abc", "aab"} {
		if Simulate(nfa, w).Accepted {
			t.Errorf("%q should be rejected", w)
		}
	}
}

// scenario 3: alternation "ab|cd".
func TestAlternationABorCD(t *testing.T) {
	nfa, err := TranslateAndBuild("ab|cd")
	if err != nil {
		t.Fatalf("TranslateAndBuild failed: %v", err)
	}
	for _, w := range []string{"ab", "cd"} {
		if !Simulate(nfa, w).Accepted {
			t.Errorf("%q should be accepted", w)
		}
	}
	for _, w := range []string{"", "a", "abcd"} {
		if Simulate(nfa, w).Accepted {
			t.Errorf("%q should be rejected", w)
		}
	}
}

// scenario 4: repetition lower bound "a{4,}".
func TestRepetitionLowerBound(t *testing.T) {
	nfa, err := TranslateAndBuild("a{4,}")
	if err != nil {
		t.Fatalf("TranslateAndBuild failed: %v", err)
	}
	for _, w := range []string{"aaaa", "aaaaa"} {
		if !Simulate(nfa, w).Accepted {
			t.Errorf("%q should be accepted", w)
		}
	}
	for _, w := range []string{"", "aaa"} {
		if Simulate(nfa, w).Accepted {
			t.Errorf("%q should be rejected", w)
		}
	}
}

// scenario 5: Kleene star of union, built from SpecNodes directly.
func TestKleeneStarOfUnion(t *testing.T) {
	tree := StarNode(UnionNode(SingleNode(Symbol('a')), SingleNode(Symbol('b'))))
	nfa := BuildFromSpec(tree)

	for _, w := range []string{"", "a", "aabb", "bbaa", "aaaaaaaba"} {
		if !Simulate(nfa, w).Accepted {
			t.Errorf("%q should be accepted", w)
		}
	}
	if Simulate(nfa, "aaaaaaabbbbcaaa").Accepted {
		t.Fatal(`"aaaaaaabbbbcaaa" should be rejected`)
	}
}

// scenario 6: multi-rule fuse.
func TestMultiRuleFuse(t *testing.T) {
	ruleA := SingleNode(Symbol('a'))
	ruleB := ConcatNode(SingleNode(Symbol('b')), SingleNode(Symbol('a')))

	nfa := BuildFromSpecs([]*SpecNode{ruleA, ruleB})

	got := Simulate(nfa, "a")
	if !got.Accepted || got.Tag != 0 {
		t.Fatalf(`"a": got %+v, want rule 0`, got)
	}
	got = Simulate(nfa, "ba")
	if !got.Accepted || got.Tag != 1 {
		t.Fatalf(`"ba": got %+v, want rule 1`, got)
	}
	if Simulate(nfa, "baa").Accepted {
		t.Fatal(`"baa" should be rejected`)
	}
}

func TestTranslateAndBuildRulesFuse(t *testing.T) {
	nfa, err := TranslateAndBuildRules([]string{"a", "ba"})
	if err != nil {
		t.Fatalf("TranslateAndBuildRules failed: %v", err)
	}

	got := Simulate(nfa, "a")
	if !got.Accepted || got.Tag != 0 {
		t.Fatalf(`"a": got %+v, want rule 0`, got)
	}
	got = Simulate(nfa, "ba")
	if !got.Accepted || got.Tag != 1 {
		t.Fatalf(`"ba": got %+v, want rule 1`, got)
	}
}

func TestToDFARoundTrip(t *testing.T) {
	nfa, err := TranslateAndBuild("a{2,5}")
	if err != nil {
		t.Fatalf("TranslateAndBuild failed: %v", err)
	}
	dfa := ToDFA(nfa)

	for k := 0; k <= 7; k++ {
		word := ""
		for i := 0; i < k; i++ {
			word += "a"
		}
		want := k >= 2 && k <= 5
		if got := SimulateDFA(dfa, word).Accepted; got != want {
			t.Errorf("k=%d: got %v, want %v", k, got, want)
		}
	}
}

func TestTranslateRejectsUnsupported(t *testing.T) {
	if _, err := Translate("^a$"); err == nil {
		t.Fatal("anchored pattern should be rejected")
	}
	if _, err := Translate("(a)"); err == nil {
		t.Fatal("capture group should be rejected")
	}
}

func TestTranslateRejectsInvalidSyntax(t *testing.T) {
	if _, err := Translate("a("); err == nil {
		t.Fatal("unbalanced group should fail to parse")
	}
}

func TestDumpProducesDigraph(t *testing.T) {
	nfa := BuildFromSpec(SingleNode(Symbol('a')))

	var buf strings.Builder
	if err := Dump(&buf, nfa); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if buf.String() == "" {
		t.Fatal("Dump should write non-empty output")
	}
}
