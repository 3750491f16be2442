package validator

import (
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func validCreateRequest() UserCreateRequest {
	return UserCreateRequest{
		Password:    "secret123",
		FirstName:   "Thandi",
		LastName:    "Nkosi",
		DateOfBirth: "1990-04-12",
		Province:    "Gauteng",
		Gender:      "Female",
		Facilitator: boolPtr(false),
	}
}

func TestValidateUserCreateRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		mutate  func(*UserCreateRequest)
		wantErr string // substring of the failing field, empty means valid
	}{
		{name: "valid", mutate: func(r *UserCreateRequest) {}},
		{
			name:    "facilitator explicitly false is valid",
			mutate:  func(r *UserCreateRequest) { r.Facilitator = boolPtr(false) },
			wantErr: "",
		},
		{
			name:    "unknown province",
			mutate:  func(r *UserCreateRequest) { r.Province = "Narnia" },
			wantErr: "province",
		},
		{
			name:    "unknown gender",
			mutate:  func(r *UserCreateRequest) { r.Gender = "Unspecified" },
			wantErr: "gender",
		},
		{
			name:    "password too long",
			mutate:  func(r *UserCreateRequest) { r.Password = strings.Repeat("x", 21) },
			wantErr: "password",
		},
		{
			name:    "empty password",
			mutate:  func(r *UserCreateRequest) { r.Password = "" },
			wantErr: "password",
		},
		{
			name:    "first name too long",
			mutate:  func(r *UserCreateRequest) { r.FirstName = strings.Repeat("a", 51) },
			wantErr: "first_name",
		},
		{
			name:    "malformed date of birth",
			mutate:  func(r *UserCreateRequest) { r.DateOfBirth = "12/04/1990" },
			wantErr: "date_of_birth",
		},
		{
			name:    "missing facilitator",
			mutate:  func(r *UserCreateRequest) { r.Facilitator = nil },
			wantErr: "facilitator",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			errs := v.Validate(&req)
			if tt.wantErr == "" {
				if errs != nil {
					t.Fatalf("Validate() = %v, want nil", errs)
				}
				return
			}
			if errs == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(errs.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", errs.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateLoginRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{name: "valid", req: LoginRequest{Surname: "Smith", Password: "pw"}},
		{name: "missing surname", req: LoginRequest{Password: "pw"}, wantErr: true},
		{name: "missing password", req: LoginRequest{Surname: "Smith"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if (errs != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}
