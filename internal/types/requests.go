package types

import "github.com/go-playground/validator/v10"

// UploadResumeRequest is the payload for submitting a resume for processing.
type UploadResumeRequest struct {
	CandidateName string `json:"candidate_name" validate:"required,min=1"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	Content       string `json:"content" validate:"required,min=1"`
}

// UploadResumesBatchRequest carries multiple resumes in one call.
type UploadResumesBatchRequest struct {
	Resumes []UploadResumeRequest `json:"resumes" validate:"required,min=1,dive"`
}

// UploadJobRequest is the payload for submitting a job description.
type UploadJobRequest struct {
	Title                   string   `json:"title" validate:"required,min=1"`
	Description             string   `json:"description" validate:"required,min=1"`
	RequiredExperienceYears *float64 `json:"required_experience_years,omitempty" validate:"omitempty,gte=0"`
}

// ScreenRequest triggers screening of stored resumes against a stored job.
// When ResumeIDs is empty, every stored resume is screened.
type ScreenRequest struct {
	ResumeIDs []string `json:"resume_ids,omitempty"`
	Threshold *float64 `json:"threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
	TopK      int      `json:"top_k,omitempty" validate:"omitempty,gte=1"`
}

// Validate validates the UploadResumeRequest using the validator.
func (r *UploadResumeRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the UploadResumesBatchRequest using the validator.
func (r *UploadResumesBatchRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the UploadJobRequest using the validator.
func (r *UploadJobRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ScreenRequest using the validator.
func (r *ScreenRequest) Validate() error {
	return validator.New().Struct(r)
}
