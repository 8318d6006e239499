package domain

// DateLayout 所有 provider 輸出的日期格式
const DateLayout = "2006-01-02"

type Registrar struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// WhoisRecord 各 provider 正規化後的統一查詢結果
// Success=false 時只會帶 Domain 與 Error
type WhoisRecord struct {
	Domain           string     `json:"domain"`
	Success          bool       `json:"success"`
	Registered       *bool      `json:"registered,omitempty"`
	RegistrationDate string     `json:"registration_date,omitempty"`
	ExpiryDate       string     `json:"expiry_date,omitempty"`
	LastUpdated      string     `json:"last_updated,omitempty"`
	Registrar        *Registrar `json:"registrar,omitempty"`
	Nameservers      []string   `json:"nameservers,omitempty"`
	Status           []string   `json:"status,omitempty"`
	DNSSEC           string     `json:"dnssec,omitempty"`
	Raw              any        `json:"raw,omitempty"`
	Provider         string     `json:"provider,omitempty"`
	Error            string     `json:"error,omitempty"`
}

// FailedWhois 建立失敗結果 (不帶任何查詢欄位)
func FailedWhois(name, provider string, err error) WhoisRecord {
	return WhoisRecord{Domain: name, Provider: provider, Success: false, Error: err.Error()}
}

// Bool 取址用的小工具
func Bool(b bool) *bool {
	return &b
}
