package validator_test

import (
	"strings"
	"talent/shared/failure"
	"talent/shared/validator"
	"testing"
)

type bookRequest struct {
	SlotID        string `json:"slot_id"        validate:"required"`
	InterviewType string `json:"interview_type" validate:"required,oneof=online onsite both"`
	Email         string `json:"email"          validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"slot_id":"abc","interview_type":"online","email":"a@b.com"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"interview_type":"online"}`,
			wantErr: true,
		},
		{
			name:    "invalid interview type",
			body:    `{"slot_id":"abc","interview_type":"hybrid"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"slot_id":"abc","interview_type":"onsite","email":"nope"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"slot_id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookRequest{}

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if tt.wantErr && err != nil {
				if failure.GetCode(err) != 400 {
					t.Errorf("expected validation failures to carry code 400, got %d", failure.GetCode(err))
				}
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("online", "oneof=online onsite"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("walk-in", "oneof=online onsite"); err == nil {
		t.Error("expected an error for disallowed value")
	}
}
