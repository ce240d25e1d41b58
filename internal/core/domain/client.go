package domain

// ClientType distinguishes individual clients from companies.
type ClientType string

const (
	ClientIndividual ClientType = "individual"
	ClientCompany    ClientType = "company"
)

// Client is a billable party. Clients are never deleted, only deactivated,
// because issued documents keep referencing them.
type Client struct {
	ClientID    string     `json:"clientID"`
	CompanyID   int64      `json:"companyID"` // Owning tenant scope
	Name        string     `json:"name"`
	CompanyName string     `json:"companyName"` // Optional; preferred over Name on rendered documents
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Type        ClientType `json:"type"`
	IsActive    bool       `json:"isActive"`
	AuditFields
}
