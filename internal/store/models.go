package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles. A role is fixed at creation time.
const (
	RoleUser      = "User"
	RoleCompanyHR = "Company_HR"
)

// Account statuses. Sign-in sets online, logout sets offline; an offline
// account is blocked from mutating or reading itself.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// User is an account record. OTP and its expiry form a short-lived single-use
// credential pair for password recovery.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Username      string             `bson:"username" json:"username"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	RecoveryEmail string             `bson:"recoveryEmail" json:"recoveryEmail"`
	DOB           string             `bson:"dob" json:"dob"`
	MobileNumber  string             `bson:"mobileNumber" json:"mobileNumber"`
	Role          string             `bson:"role" json:"role"`
	Status        string             `bson:"status" json:"status"`
	OTP           string             `bson:"otp,omitempty" json:"-"`
	OTPExpire     time.Time          `bson:"otpExpire,omitempty" json:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Company is owned by exactly one HR user via CompanyHR.
type Company struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName       string             `bson:"companyName" json:"companyName"`
	Description       string             `bson:"description" json:"description"`
	Industry          string             `bson:"industry" json:"industry"`
	Address           string             `bson:"address" json:"address"`
	NumberOfEmployees string             `bson:"numberOfEmployees" json:"numberOfEmployees"`
	CompanyEmail      string             `bson:"companyEmail" json:"companyEmail"`
	CompanyHR         primitive.ObjectID `bson:"companyHR" json:"companyHR"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Job is owned by the HR user who added it. AddedBy is the authorization
// anchor; the company is a display-time join only.
type Job struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobTitle        string             `bson:"jobTitle" json:"jobTitle"`
	JobLocation     string             `bson:"jobLocation" json:"jobLocation"`
	WorkingTime     string             `bson:"workingTime" json:"workingTime"`
	SeniorityLevel  string             `bson:"seniorityLevel" json:"seniorityLevel"`
	JobDescription  string             `bson:"jobDescription" json:"jobDescription"`
	TechnicalSkills []string           `bson:"technicalSkills" json:"technicalSkills"`
	SoftSkills      []string           `bson:"softSkills" json:"softSkills"`
	AddedBy         primitive.ObjectID `bson:"addedBy" json:"addedBy"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Application links a job, an applicant, and an uploaded resume asset.
// Created exactly once per submission, never updated.
type Application struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID          primitive.ObjectID `bson:"jobId" json:"jobId"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	UserTechSkills []string           `bson:"userTechSkills" json:"userTechSkills"`
	UserSoftSkills []string           `bson:"userSoftSkills" json:"userSoftSkills"`
	UserResume     string             `bson:"userResume" json:"userResume"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// JobFilter narrows job listings. Zero value matches every job.
type JobFilter struct {
	WorkingTime     string
	JobLocation     string
	SeniorityLevel  string
	JobTitle        string
	TechnicalSkills []string
}
