package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     feeRequest
		wantErr bool
	}{
		{
			name:    "valid payment",
			req:     feeRequest{Year: 2025, Semester: "Semester 1", Amount: 450000, PaymentDate: "2025-09-01"},
			wantErr: false,
		},
		{
			name:    "missing year",
			req:     feeRequest{Semester: "Semester 1", Amount: 450000, PaymentDate: "2025-09-01"},
			wantErr: true,
		},
		{
			name:    "missing payment date",
			req:     feeRequest{Year: 2025, Semester: "Semester 1", Amount: 450000},
			wantErr: true,
		},
		{
			name:    "zero amount",
			req:     feeRequest{Year: 2025, Semester: "Semester 1", PaymentDate: "2025-09-01"},
			wantErr: true,
		},
		{
			name:    "negative amount",
			req:     feeRequest{Year: 2025, Semester: "Semester 1", Amount: -100, PaymentDate: "2025-09-01"},
			wantErr: true,
		},
		{
			name:    "amount at ceiling is allowed",
			req:     feeRequest{Year: 2025, Semester: "Semester 2", Amount: 500000, PaymentDate: "2025-09-01"},
			wantErr: false,
		},
		{
			name:    "amount above ceiling",
			req:     feeRequest{Year: 2025, Semester: "Semester 2", Amount: 500001, PaymentDate: "2025-09-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.req.validate()
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}
