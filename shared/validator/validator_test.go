package validator_test

import (
	"strings"
	"testing"

	"guestroom/shared/validator"
)

type stayRequest struct {
	FromDate string `validate:"required,dateonly" json:"from_date"`
	ToDate   string `validate:"required,dateonly" json:"to_date"`
	FromTime string `validate:"required,clock"    json:"from_time"`
	ToTime   string `validate:"required,clock"    json:"to_time"`
	Status   string `validate:"omitempty,oneof=pending confirmed cancelled completed" json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *stayRequest
		expectError bool
	}{
		{
			name: "valid stay",
			data: &stayRequest{
				FromDate: "2024-06-01",
				ToDate:   "2024-06-05",
				FromTime: "14:00",
				ToTime:   "12:00",
			},
			expectError: false,
		},
		{
			name: "missing from_date",
			data: &stayRequest{
				ToDate:   "2024-06-05",
				FromTime: "14:00",
				ToTime:   "12:00",
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &stayRequest{
				FromDate: "01-06-2024",
				ToDate:   "2024-06-05",
				FromTime: "14:00",
				ToTime:   "12:00",
			},
			expectError: true,
		},
		{
			name: "malformed clock time",
			data: &stayRequest{
				FromDate: "2024-06-01",
				ToDate:   "2024-06-05",
				FromTime: "2pm",
				ToTime:   "12:00",
			},
			expectError: true,
		},
		{
			name: "status outside enumeration",
			data: &stayRequest{
				FromDate: "2024-06-01",
				ToDate:   "2024-06-05",
				FromTime: "14:00",
				ToTime:   "12:00",
				Status:   "approved",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got %v", err)
			}
		})
	}
}

func TestValidateFromReader(t *testing.T) {
	body := strings.NewReader(`{"from_date":"2024-06-01","to_date":"2024-06-05","from_time":"14:00","to_time":"12:00"}`)

	req := stayRequest{}
	if err := validator.Validate(body, &req); err != nil {
		t.Fatalf("expected valid body, got %v", err)
	}

	if req.FromDate != "2024-06-01" {
		t.Errorf("expected decoded from_date, got %s", req.FromDate)
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"from_date":`)

	req := stayRequest{}
	if err := validator.Validate(body, &req); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2024-06-01", "dateonly"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("not-a-date", "dateonly"); err == nil {
		t.Error("expected invalid date error, got nil")
	}
}
