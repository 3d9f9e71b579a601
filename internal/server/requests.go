package server

// Request DTOs. Each carries its validation schema as struct tags; the
// validate gate reports violations under the json field names.

type signUpRequest struct {
	FirstName     string `json:"firstName" validate:"required,min=2,max=50"`
	LastName      string `json:"lastName" validate:"required,min=2,max=50"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	RecoveryEmail string `json:"recoveryEmail" validate:"required,email"`
	DOB           string `json:"DOB" validate:"required,datetime=2006-01-02"`
	MobileNumber  string `json:"mobileNumber" validate:"required,e164"`
	Role          string `json:"role" validate:"required,oneof=User Company_HR"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateAccountRequest struct {
	FirstName     string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName      string `json:"lastName" validate:"omitempty,min=2,max=50"`
	Email         string `json:"email" validate:"omitempty,email"`
	RecoveryEmail string `json:"recoveryEmail" validate:"omitempty,email"`
	DOB           string `json:"DOB" validate:"omitempty,datetime=2006-01-02"`
	MobileNumber  string `json:"mobileNumber" validate:"omitempty,e164"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type forgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type companyRequest struct {
	CompanyName       string `json:"companyName" validate:"required,min=2,max=100"`
	Description       string `json:"description" validate:"required"`
	Industry          string `json:"industry" validate:"required"`
	Address           string `json:"address" validate:"required"`
	NumberOfEmployees string `json:"numberOfEmployees" validate:"required"`
	CompanyEmail      string `json:"companyEmail" validate:"required,email"`
}

type updateCompanyRequest struct {
	CompanyName       string `json:"companyName" validate:"omitempty,min=2,max=100"`
	Description       string `json:"description"`
	Industry          string `json:"industry"`
	Address           string `json:"address"`
	NumberOfEmployees string `json:"numberOfEmployees"`
	CompanyEmail      string `json:"companyEmail" validate:"omitempty,email"`
}

type jobRequest struct {
	JobTitle        string   `json:"jobTitle" validate:"required,min=2,max=100"`
	JobLocation     string   `json:"jobLocation" validate:"required,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"workingTime" validate:"required,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniorityLevel" validate:"required,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"jobDescription" validate:"required"`
	TechnicalSkills []string `json:"technicalSkills" validate:"required,min=1,dive,required"`
	SoftSkills      []string `json:"softSkills" validate:"required,min=1,dive,required"`
}

type updateJobRequest struct {
	JobTitle        string   `json:"jobTitle" validate:"omitempty,min=2,max=100"`
	JobLocation     string   `json:"jobLocation" validate:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"workingTime" validate:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniorityLevel" validate:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"jobDescription"`
	TechnicalSkills []string `json:"technicalSkills" validate:"omitempty,dive,required"`
	SoftSkills      []string `json:"softSkills" validate:"omitempty,dive,required"`
}

// idParams validates a path-segment document id before parsing.
type idParams struct {
	ID string `json:"id" validate:"required,len=24,hexadecimal"`
}

type profileQuery struct {
	ID string `json:"id" validate:"required,len=24,hexadecimal"`
}

type recoveryEmailQuery struct {
	RecoveryEmail string `json:"recoveryEmail" validate:"required,email"`
}

type companyNameQuery struct {
	Name string `json:"name" validate:"required"`
}
