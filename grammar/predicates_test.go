package grammar

import "testing"

func TestIsIdentifier(t *testing.T) {
	cases := map[string]bool{
		"foo":     true,
		"Foo_1":   true,
		"_foo":    false,
		"1foo":    false,
		"foo.bar": false,
		"":        false,
	}
	for in, want := range cases {
		if got := IsIdentifier(in); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsFullIdentifier(t *testing.T) {
	cases := map[string]bool{
		"foo":         true,
		"foo.bar":     true,
		"foo.bar.baz": true,
		"foo.":        false,
		".foo":        false,
		"foo..bar":    false,
	}
	for in, want := range cases {
		if got := IsFullIdentifier(in); got != want {
			t.Errorf("IsFullIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsStringLiteral(t *testing.T) {
	cases := map[string]bool{
		`"proto3"`: true,
		"`proto3`": true,
		`"mismatched`: false,
		`proto3`:     false,
		`"`:          false,
	}
	for in, want := range cases {
		if got := IsStringLiteral(in); got != want {
			t.Errorf("IsStringLiteral(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIntegerLiterals(t *testing.T) {
	decimal := []string{"0", "1", "42", "1234567890"}
	for _, s := range decimal {
		if !IsDecimalLiteral(s) || !IsIntegerLiteral(s) {
			t.Errorf("%q should be both decimal and integer", s)
		}
	}

	octal := []string{"01", "017", "0777"}
	for _, s := range octal {
		if IsDecimalLiteral(s) {
			t.Errorf("%q should not be decimal", s)
		}
		if !IsIntegerLiteral(s) {
			t.Errorf("%q should be integer (octal)", s)
		}
	}

	hex := []string{"0x1A", "0XFF", "0xdeadBEEF"}
	for _, s := range hex {
		if IsDecimalLiteral(s) {
			t.Errorf("%q should not be decimal", s)
		}
		if !IsIntegerLiteral(s) {
			t.Errorf("%q should be integer (hex)", s)
		}
	}

	notInteger := []string{"0x", "08", "1.5", "-1", "foo"}
	for _, s := range notInteger {
		if IsIntegerLiteral(s) {
			t.Errorf("%q should not be an integer literal", s)
		}
	}
}

func TestIsBasicTypeAndMapKeyType(t *testing.T) {
	for _, s := range []string{"double", "float", "int32", "bool", "string", "bytes"} {
		if !IsBasicType(s) {
			t.Errorf("IsBasicType(%q) = false, want true", s)
		}
	}
	if IsBasicType("Foo") {
		t.Errorf("IsBasicType(%q) = true, want false", "Foo")
	}

	excluded := []string{"double", "float", "bytes"}
	for _, s := range excluded {
		if IsMapKeyType(s) {
			t.Errorf("IsMapKeyType(%q) = true, want false", s)
		}
	}
	allowed := []string{"int32", "uint64", "string", "bool"}
	for _, s := range allowed {
		if !IsMapKeyType(s) {
			t.Errorf("IsMapKeyType(%q) = false, want true", s)
		}
	}
}

func TestIsFieldStart(t *testing.T) {
	for _, s := range []string{"repeated", "int32", "foo.Bar", "Baz"} {
		if !IsFieldStart(s) {
			t.Errorf("IsFieldStart(%q) = false, want true", s)
		}
	}
	if IsFieldStart("=") {
		t.Errorf("IsFieldStart(%q) = true, want false", "=")
	}
}

func TestExactKeywordPredicates(t *testing.T) {
	type check struct {
		fn   func(string) bool
		want string
	}
	checks := []check{
		{IsRepeated, "repeated"},
		{IsAssignment, "="},
		{IsEmptyStatement, ";"},
		{IsSyntax, "syntax"},
		{IsImport, "import"},
		{IsPackage, "package"},
		{IsOption, "option"},
		{IsEnum, "enum"},
		{IsService, "service"},
		{IsMessage, "message"},
		{IsInlineComment, "//"},
		{IsMultilineCommentOpen, "/*"},
		{IsMultilineCommentClose, "*/"},
	}
	for _, c := range checks {
		if !c.fn(c.want) {
			t.Errorf("predicate failed to match its own keyword %q", c.want)
		}
		if c.fn(c.want + "x") {
			t.Errorf("predicate matched %q, want exact match only", c.want+"x")
		}
	}
}

func TestIsImportModifier(t *testing.T) {
	for _, s := range []string{"weak", "public"} {
		if !IsImportModifier(s) {
			t.Errorf("IsImportModifier(%q) = false, want true", s)
		}
	}
	if IsImportModifier("strong") {
		t.Error("IsImportModifier(\"strong\") = true, want false")
	}
}
