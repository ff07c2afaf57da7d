package validate

import (
	"testing"

	"github.com/parfait-bio/parfait/pkg/errors"
	"github.com/parfait-bio/parfait/pkg/gfa"
	"github.com/parfait-bio/parfait/pkg/parser"
)

// parse is a test helper; the inputs here are syntactically clean so any
// parse-time finding is a test bug.
func parse(t *testing.T, input string) *gfa.Graph {
	t.Helper()
	g, msgs, err := parser.ParseString(input, parser.Options{})
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	for _, m := range msgs {
		if m.Severity() >= errors.SeverityError {
			t.Fatalf("unexpected parse finding: %v", m)
		}
	}
	return g
}

func TestGraphClean(t *testing.T) {
	g := parse(t, "H\tVN:Z:1.0\nS\ts1\tACGT\nS\ts2\tTTGA\nL\ts1\t+\ts2\t-\t4M\n")
	if msgs := Graph(g, Options{}); len(msgs) != 0 {
		t.Errorf("Graph() = %v, want no findings", msgs)
	}
}

func TestGraphDuplicateSegments(t *testing.T) {
	g := parse(t, "H\tVN:Z:1.0\nS\ts1\tACGT\nS\ts1\tTTGA\nS\ts2\tAC\nL\ts1\t+\ts2\t-\t*\n")
	msgs := Graph(g, Options{})
	if got := msgs.Count(errors.ErrCodeDuplicateSegmentID); got != 1 {
		t.Fatalf("DuplicateSegmentID count = %d, want 1: %v", got, msgs)
	}
	// The finding points at the later duplicate.
	for _, m := range msgs {
		if m.Code == errors.ErrCodeDuplicateSegmentID && m.Line != 3 {
			t.Errorf("duplicate reported at line %d, want 3", m.Line)
		}
	}
}

func TestGraphUnresolvedReferences(t *testing.T) {
	input := "H\tVN:Z:1.0\n" +
		"S\ts1\tACGT\n" +
		"L\ts1\t+\tmissing\t-\t*\n" +
		"P\tp1\ts1+,ghost-\t*\n"
	g := parse(t, input)
	msgs := Graph(g, Options{})

	if got := msgs.Count(errors.ErrCodeUnresolvedReference); got != 2 {
		t.Fatalf("UnresolvedReference count = %d, want 2: %v", got, msgs)
	}

	offenders := make(map[string]bool)
	for _, m := range msgs {
		if m.Code == errors.ErrCodeUnresolvedReference {
			offenders[m.Offender] = true
		}
	}
	if !offenders["missing"] || !offenders["ghost"] {
		t.Errorf("offenders = %v, want missing and ghost", offenders)
	}
}

func TestGraphGroupReferences(t *testing.T) {
	input := "H\tVN:Z:2.0\n" +
		"S\ts1\t4\tACGT\n" +
		"E\te1\ts1+\ts1-\t0\t1\t2\t3\t*\n" +
		"O\to1\ts1+ e1\n" +
		"U\tu1\to1 nothere\n"
	g := parse(t, input)
	msgs := Graph(g, Options{})

	if got := msgs.Count(errors.ErrCodeUnresolvedReference); got != 1 {
		t.Fatalf("UnresolvedReference count = %d, want 1: %v", got, msgs)
	}
}

func TestGraphGroupCycle(t *testing.T) {
	input := "H\tVN:Z:2.0\n" +
		"O\to1\to2\n" +
		"O\to2\to1\n"
	g := parse(t, input)
	msgs := Graph(g, Options{})

	if got := msgs.Count(errors.ErrCodeCyclicGroupReference); got != 1 {
		t.Fatalf("CyclicGroupReference count = %d, want exactly 1: %v", got, msgs)
	}
	var cycle string
	for _, m := range msgs {
		if m.Code == errors.ErrCodeCyclicGroupReference {
			cycle = m.Offender
		}
	}
	if cycle != "o1 -> o2 -> o1" && cycle != "o2 -> o1 -> o2" {
		t.Errorf("cycle = %q, want the two groups named", cycle)
	}
}

func TestGraphGroupSelfCycle(t *testing.T) {
	g := parse(t, "H\tVN:Z:2.0\nU\tu1\tu1\n")
	msgs := Graph(g, Options{})
	if got := msgs.Count(errors.ErrCodeCyclicGroupReference); got != 1 {
		t.Fatalf("CyclicGroupReference count = %d, want 1: %v", got, msgs)
	}
}

func TestGraphNestedGroupsAcyclic(t *testing.T) {
	input := "H\tVN:Z:2.0\n" +
		"S\ts1\t4\tACGT\n" +
		"O\tinner\ts1+\n" +
		"O\touter\tinner s1-\n"
	g := parse(t, input)
	msgs := Graph(g, Options{})
	if got := msgs.Count(errors.ErrCodeCyclicGroupReference); got != 0 {
		t.Errorf("CyclicGroupReference count = %d, want 0: %v", got, msgs)
	}
}

func TestGraphOverlapResurfaced(t *testing.T) {
	input := "H\tVN:Z:1.0\n" +
		"S\ts1\tACGT\n" +
		"S\ts2\tTT\n" +
		"L\ts1\t+\ts2\t-\tnot-a-cigar\n"

	// The parser flags the overlap but keeps the record.
	g, parseMsgs, err := parser.ParseString(input, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := parseMsgs.Count(errors.ErrCodeInvalidOverlap); got != 1 {
		t.Fatalf("parse-time InvalidOverlap count = %d, want 1", got)
	}
	if len(g.Links()) != 1 {
		t.Fatal("link with bad overlap was dropped, want kept")
	}

	// Validation re-surfaces the same classification so its list stands
	// alone.
	msgs := Graph(g, Options{})
	if got := msgs.Count(errors.ErrCodeInvalidOverlap); got != 1 {
		t.Fatalf("InvalidOverlap count = %d, want 1: %v", got, msgs)
	}
	if msgs.HasErrors() {
		t.Errorf("overlap finding should be a warning: %v", msgs)
	}
}

func TestGraphPathOverlapMismatch(t *testing.T) {
	input := "H\tVN:Z:1.0\n" +
		"S\ts1\tACGT\n" +
		"S\ts2\tTT\n" +
		"S\ts3\tGG\n" +
		"P\tp1\ts1+,s2-,s3+\t4M\n" +
		"P\tp2\ts1+,s2-\t*\n"
	g := parse(t, input)
	msgs := Graph(g, Options{})

	if got := msgs.Count(errors.ErrCodePathOverlapMismatch); got != 1 {
		t.Fatalf("PathOverlapMismatch count = %d, want 1: %v", got, msgs)
	}
	for _, m := range msgs {
		if m.Code == errors.ErrCodePathOverlapMismatch && m.Offender != "p1" {
			t.Errorf("mismatch reported for %q, want p1", m.Offender)
		}
	}
}

func TestGraphRanges(t *testing.T) {
	input := "H\tVN:Z:2.0\n" +
		"S\ts1\t4\tACGT\n" +
		"S\ts2\t10\t*\n" +
		"E\te1\ts1+\ts2-\t3\t1\t0\t4\t*\n" +
		"E\te2\ts1+\ts2-\t0\t9\t0\t4\t*\n"
	g := parse(t, input)
	msgs := Graph(g, Options{})

	// e1 has begin > end, e2 ends past s1's length of 4.
	if got := msgs.Count(errors.ErrCodeInvalidRange); got != 2 {
		t.Fatalf("InvalidRange count = %d, want 2: %v", got, msgs)
	}
}

func TestGraphWalkRange(t *testing.T) {
	input := "H\tVN:Z:1.1\n" +
		"S\ts1\tACGT\n" +
		"W\tsample\t1\tchr1\t9\t2\t>s1\n"
	g := parse(t, input)
	msgs := Graph(g, Options{})
	if got := msgs.Count(errors.ErrCodeInvalidRange); got != 1 {
		t.Fatalf("InvalidRange count = %d, want 1: %v", got, msgs)
	}
}

func TestGraphTopologyFindings(t *testing.T) {
	t.Run("self link", func(t *testing.T) {
		g := parse(t, "H\tVN:Z:1.0\nS\ts1\tACGT\nL\ts1\t+\ts1\t-\t*\n")
		msgs := Graph(g, Options{})
		if got := msgs.Count(errors.ErrCodeSelfLink); got != 1 {
			t.Errorf("SelfLink count = %d, want 1: %v", got, msgs)
		}
	})

	t.Run("isolated segment", func(t *testing.T) {
		g := parse(t, "H\tVN:Z:1.0\nS\ts1\tACGT\nS\ts2\tTT\nS\tlonely\tGG\nL\ts1\t+\ts2\t-\t*\n")
		msgs := Graph(g, Options{})
		var isolated []string
		for _, m := range msgs {
			if m.Code == errors.ErrCodeIsolatedSegment {
				isolated = append(isolated, m.Offender)
			}
		}
		if len(isolated) != 1 || isolated[0] != "lonely" {
			t.Errorf("isolated = %v, want [lonely]", isolated)
		}
	})

	t.Run("informational only", func(t *testing.T) {
		g := parse(t, "H\tVN:Z:1.0\nS\ts1\tACGT\nS\tlonely\tGG\nL\ts1\t+\ts1\t-\t*\n")
		msgs := Graph(g, Options{})
		if msgs.HasErrors() {
			t.Errorf("topology findings should not be errors: %v", msgs)
		}
	})
}
