package models

// BankVerificationResult is produced exactly once per successful verification
// and held read-only until the session is reset. Pointer fields render as
// JSON null when the upstream omits them.
type BankVerificationResult struct {
	VPA             *string `json:"vpa"`
	BankName        string  `json:"bankName"`
	BankColor       string  `json:"bankColor"`
	RegisteredName  string  `json:"registeredName"`
	AccountNumber   *string `json:"accountNumber"`
	AccountType     *string `json:"accountType"`
	IFSCCode        *string `json:"ifscCode"`
	BranchName      *string `json:"branchName,omitempty"`
	AccountStatus   string  `json:"accountStatus"`
	AccountVerified bool    `json:"accountVerified"`
	FundAccountID   *string `json:"fundAccountId"`
	ValidationID    string  `json:"validationId"`
	UTR             *string `json:"utr"`
}
