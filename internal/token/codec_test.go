package token

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	plans := []FormPlan{
		{Name: "Kaiser HMO", MonthlyPremium: "480", FamilyDeductible: "3000", FamilyOopMax: "7500", EmployerHSA: "1200"},
		{Name: "", MonthlyPremium: "610.50", FamilyDeductible: "1500", FamilyOopMax: "6000", EmployerHSA: ""},
	}

	tok, err := Encode("February", "2027", plans)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if data.DueMonth != 2 || data.DueYear != 2027 {
		t.Fatalf("due = %d/%d, want 2/2027", data.DueMonth, data.DueYear)
	}
	if len(data.Plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(data.Plans))
	}

	first := data.Plans[0]
	if first.ID != 1 || first.Name != "Kaiser HMO" || first.MonthlyPremium != 480 || first.EmployerHSA != 1200 {
		t.Fatalf("first plan mismatch: %+v", first)
	}

	second := data.Plans[1]
	if second.ID != 2 {
		t.Errorf("second plan id = %d, want 2", second.ID)
	}
	if second.Name != "Plan B" {
		t.Errorf("blank name = %q, want positional default %q", second.Name, "Plan B")
	}
	if second.MonthlyPremium != 610.50 {
		t.Errorf("MonthlyPremium = %v, want 610.50", second.MonthlyPremium)
	}
	if second.EmployerHSA != 0 {
		t.Errorf("empty HSA = %v, want 0", second.EmployerHSA)
	}
}

func TestEncode_LenientCoercion(t *testing.T) {
	plans := []FormPlan{
		{Name: "Messy", MonthlyPremium: "abc", FamilyDeductible: "", FamilyOopMax: "12x", EmployerHSA: "  "},
	}

	tok, err := Encode("August", "2026", plans)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	p := data.Plans[0]
	if p.MonthlyPremium != 0 || p.FamilyDeductible != 0 || p.FamilyOopMax != 0 || p.EmployerHSA != 0 {
		t.Fatalf("unparseable fields not coerced to zero: %+v", p)
	}
}

func TestEncode_RejectsBadMonthAndYear(t *testing.T) {
	if _, err := Encode("Smarch", "2026", []FormPlan{{}}); err == nil {
		t.Fatal("Encode accepted an invalid month name")
	}
	if _, err := Encode("March", "twenty", []FormPlan{{}}); err == nil {
		t.Fatal("Encode accepted an invalid year")
	}
}

func TestDecode_SinglePlanQuickEstimate(t *testing.T) {
	tok, err := Encode("November", "2026", []FormPlan{
		{MonthlyPremium: "300", FamilyOopMax: "4000"},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(data.Plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(data.Plans))
	}
	if data.Plans[0].Name != "Plan A" {
		t.Fatalf("name = %q, want default %q", data.Plans[0].Name, "Plan A")
	}
}

func TestDecode_MalformedToken(t *testing.T) {
	for _, tok := range []string{"not-base64!!!", "%zz", "aGVsbG8="} {
		_, err := Decode(tok)
		if !errors.Is(err, ErrMalformedToken) {
			t.Errorf("Decode(%q) error = %v, want ErrMalformedToken", tok, err)
		}
	}
}

func TestDecode_IncompleteData(t *testing.T) {
	// Structurally valid JSON with no plans.
	tok, err := Encode("May", "2026", nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err = Decode(tok)
	if !errors.Is(err, ErrIncompleteData) {
		t.Fatalf("Decode error = %v, want ErrIncompleteData", err)
	}
}

func TestEncode_TokenIsURLSafe(t *testing.T) {
	tok, err := Encode("December", "2026", []FormPlan{
		{Name: "A & B?", MonthlyPremium: "500", FamilyOopMax: "8000"},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, c := range []string{"+", "/", " ", "&", "?"} {
		if strings.Contains(tok, c) {
			t.Fatalf("token contains unsafe character %q: %s", c, tok)
		}
	}
}
