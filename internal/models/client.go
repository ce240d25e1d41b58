package models

// ClientType distinguishes individual clients from companies.
type ClientType string

const (
	ClientIndividual ClientType = "individual"
	ClientCompany    ClientType = "company"
)

// Client mirrors one row of the clients table.
type Client struct {
	ClientID    string     `json:"clientID"`
	CompanyID   int64      `json:"companyID"`
	Name        string     `json:"name"`
	CompanyName string     `json:"companyName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Type        ClientType `json:"type"`
	IsActive    bool       `json:"isActive"`
	AuditFields
}
