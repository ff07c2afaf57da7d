package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInteger, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInteger {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInteger)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INTEGER: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, cause, "failed to read")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidOverlap, "test"),
			code:     ErrCodeInvalidOverlap,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidOverlap, "test"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeIO, New(ErrCodeInvalidOverlap, "inner"), "outer"),
			code:     ErrCodeIO,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidOverlap,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidOverlap,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnsupportedConversion, "test"),
			expected: ErrCodeUnsupportedConversion,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidHex, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMessageError(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		expected string
	}{
		{
			name:     "line and field",
			msg:      Message{Line: 12, Field: 3, Code: ErrCodeInvalidInteger, Offender: "abc"},
			expected: `line 12, field 3: INVALID_INTEGER: "abc"`,
		},
		{
			name:     "line only",
			msg:      Message{Line: 4, Code: ErrCodeUnrecognizedLine, Offender: "Q"},
			expected: `line 4: INVALID_UNRECOGNIZED_LINE: "Q"`,
		},
		{
			name:     "no position",
			msg:      Message{Code: ErrCodeCyclicGroupReference, Offender: "o1 -> o2 -> o1"},
			expected: `REFERENCE_CYCLIC_GROUP: "o1 -> o2 -> o1"`,
		},
		{
			name:     "no offender",
			msg:      Message{Line: 7, Code: ErrCodeMissingVersion},
			expected: "line 7: VERSION_MISSING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestListSort(t *testing.T) {
	l := List{
		{Line: 9, Field: 1, Code: ErrCodeInvalidTag},
		{Line: 2, Field: 5, Code: ErrCodeInvalidInteger},
		{Line: 2, Field: 3, Code: ErrCodeInvalidFloat},
		{Line: 0, Code: ErrCodeDuplicateSegmentID},
	}
	l.Sort()

	want := []Code{ErrCodeDuplicateSegmentID, ErrCodeInvalidFloat, ErrCodeInvalidInteger, ErrCodeInvalidTag}
	for i, code := range want {
		if l[i].Code != code {
			t.Errorf("l[%d].Code = %v, want %v", i, l[i].Code, code)
		}
	}
}

func TestListFilter(t *testing.T) {
	l := List{
		{Code: ErrCodeIsolatedSegment},
		{Code: ErrCodeSelfLink},
		{Code: ErrCodeInvalidInteger},
	}

	errs := l.Filter(SeverityError)
	if len(errs) != 1 {
		t.Fatalf("Filter(SeverityError) returned %d messages, want 1", len(errs))
	}
	if errs[0].Code != ErrCodeInvalidInteger {
		t.Errorf("Filter(SeverityError)[0].Code = %v, want %v", errs[0].Code, ErrCodeInvalidInteger)
	}

	warns := l.Filter(SeverityWarn)
	if len(warns) != 2 {
		t.Errorf("Filter(SeverityWarn) returned %d messages, want 2", len(warns))
	}
}

func TestListSeverity(t *testing.T) {
	l := List{
		{Code: ErrCodeIsolatedSegment},
		{Code: ErrCodeSelfLink},
	}

	if l.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
	if got := l.MaxSeverity(); got != SeverityWarn {
		t.Errorf("MaxSeverity() = %v, want %v", got, SeverityWarn)
	}

	l = append(l, Message{Code: ErrCodeIO})
	if !l.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if got := l.MaxSeverity(); got != SeverityFatal {
		t.Errorf("MaxSeverity() = %v, want %v", got, SeverityFatal)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev      Severity
		expected string
	}{
		{SeverityInfo, "info"},
		{SeverityWarn, "warn"},
		{SeveritySevere, "severe"},
		{SeverityError, "error"},
		{SeverityFatal, "fatal"},
	}

	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}
}
