// Package token encodes calculator scenarios into self-contained URL-safe
// share tokens and back. A token embeds the due month/year and up to a
// handful of plans; decoding needs no external storage.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"dadops/internal/datemath"
)

// Decode failure modes. Callers branch on these to tell a corrupt token
// apart from a structurally valid one with missing fields.
var (
	// ErrMalformedToken means the token could not be decoded at all.
	ErrMalformedToken = errors.New("malformed share token")
	// ErrIncompleteData means the token decoded but required fields are
	// missing: due month, due year, or at least one plan.
	ErrIncompleteData = errors.New("share token is missing required fields")
)

// DefaultPlanNames fill in when a plan arrives without a name.
var DefaultPlanNames = []string{"Plan A", "Plan B", "Plan C"}

// FormPlan carries raw text field values straight from a form or flag.
type FormPlan struct {
	Name             string
	MonthlyPremium   string
	FamilyDeductible string
	FamilyOopMax     string
	EmployerHSA      string
}

// EncodedPlan is a plan after numeric coercion, as stored in the token.
type EncodedPlan struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	MonthlyPremium   float64 `json:"monthlyPremium"`
	FamilyDeductible float64 `json:"familyDeductible"`
	FamilyOopMax     float64 `json:"familyOopMax"`
	EmployerHSA      float64 `json:"employerHsa"`
}

// CalculatorData is the full scenario embedded in a token.
type CalculatorData struct {
	DueMonth int           `json:"dueMonth"`
	DueYear  int           `json:"dueYear"`
	Plans    []EncodedPlan `json:"plans"`
}

// lenientNumber applies the optional-field coercion policy: empty or
// unparseable text becomes 0 rather than an error.
func lenientNumber(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// Encode turns raw form data into a URL-safe token. The month name must
// match the calendar; plan numeric fields are coerced leniently; blank plan
// names get positional defaults; ids are sequential and 1-based.
func Encode(dueMonth, dueYear string, plans []FormPlan) (string, error) {
	monthNum := datemath.MonthNumber(dueMonth)
	if monthNum == 0 {
		return "", fmt.Errorf("invalid month: %q", dueMonth)
	}

	year, err := strconv.Atoi(dueYear)
	if err != nil {
		return "", fmt.Errorf("invalid year: %q", dueYear)
	}

	encoded := make([]EncodedPlan, 0, len(plans))
	for i, plan := range plans {
		name := plan.Name
		if name == "" && i < len(DefaultPlanNames) {
			name = DefaultPlanNames[i]
		}
		encoded = append(encoded, EncodedPlan{
			ID:               i + 1,
			Name:             name,
			MonthlyPremium:   lenientNumber(plan.MonthlyPremium),
			FamilyDeductible: lenientNumber(plan.FamilyDeductible),
			FamilyOopMax:     lenientNumber(plan.FamilyOopMax),
			EmployerHSA:      lenientNumber(plan.EmployerHSA),
		})
	}

	data := CalculatorData{DueMonth: monthNum, DueYear: year, Plans: encoded}
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encoding scenario: %w", err)
	}

	b64 := base64.StdEncoding.EncodeToString(payload)
	return url.QueryEscape(b64), nil
}

// Decode is the inverse of Encode. A single plan is valid (quick-estimate
// mode); the codec enforces no upper bound on plan count.
func Decode(tok string) (CalculatorData, error) {
	var data CalculatorData

	b64, err := url.QueryUnescape(tok)
	if err != nil {
		return data, ErrMalformedToken
	}
	payload, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return data, ErrMalformedToken
	}
	if err := json.Unmarshal(payload, &data); err != nil {
		return data, ErrMalformedToken
	}

	if data.DueMonth == 0 || data.DueYear == 0 || len(data.Plans) == 0 {
		return CalculatorData{}, ErrIncompleteData
	}
	return data, nil
}
