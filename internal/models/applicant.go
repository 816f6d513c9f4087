package models

// Applicant is collected once on the details step and immutable for the rest
// of the session.
type Applicant struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LoanAmount int64  `json:"loanAmount"`
}
