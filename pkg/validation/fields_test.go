package validation

import (
	"strings"
	"testing"
)

func TestFieldValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
		substr  string
	}{
		{name: "NonNegative accepts zero", err: NonNegative("currentPolicies", 0), wantErr: false},
		{name: "NonNegative rejects negative", err: NonNegative("currentPolicies", -5), wantErr: true, substr: "currentPolicies"},
		{name: "Positive rejects zero", err: Positive("leadCostPerLead", 0), wantErr: true, substr: "leadCostPerLead"},
		{name: "Positive accepts positive", err: Positive("leadCostPerLead", 25), wantErr: false},
		{name: "Probability rejects above one", err: Probability("contactRate", 1.5), wantErr: true, substr: "contactRate"},
		{name: "Probability accepts bounds", err: Probability("contactRate", 1.0), wantErr: false},
		{name: "InRange rejects above max", err: InRange("retentionBoost", 0.25, 0, 0.2), wantErr: true, substr: "retentionBoost"},
		{name: "InRange accepts within", err: InRange("retentionBoost", 0.05, 0, 0.2), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr && tt.err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !tt.wantErr && tt.err != nil {
				t.Fatalf("expected no error, got %v", tt.err)
			}
			if tt.wantErr && !strings.Contains(tt.err.Error(), tt.substr) {
				t.Errorf("error %q does not mention field %q", tt.err.Error(), tt.substr)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "report"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v, expected nil", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(\"xml\") = nil, expected error")
	}
}
