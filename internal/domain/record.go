package domain

import "time"

// 狀態常數 (儀表板用)
const (
	StatusActive  = "active"
	StatusWarning = "warning"
	StatusExpired = "expired"
)

const (
	DefaultCategoryID = "default"
	DefaultNotifyDays = 30
)

type CycleUnit string

const (
	UnitYear  CycleUnit = "year"
	UnitMonth CycleUnit = "month"
	UnitDay   CycleUnit = "day"
)

// RenewCycle 續費週期，例如 {1, year}、{3, month}
type RenewCycle struct {
	Value int       `bson:"value" json:"value" validate:"gte=1"`
	Unit  CycleUnit `bson:"unit" json:"unit" validate:"oneof=year month day"`
}

type NotifySettings struct {
	UseGlobalSettings bool `bson:"use_global_settings" json:"use_global_settings"`
	Enabled           bool `bson:"enabled" json:"enabled"`
	NotifyDays        int  `bson:"notify_days" json:"notify_days" validate:"gte=0"`
}

func DefaultNotifySettings() NotifySettings {
	return NotifySettings{UseGlobalSettings: true, Enabled: true, NotifyDays: DefaultNotifyDays}
}

type DomainRecord struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`

	RegistrationDate time.Time `bson:"registration_date" json:"registration_date"`
	ExpiryDate       time.Time `bson:"expiry_date" json:"expiry_date"`

	Registrar         string `bson:"registrar" json:"registrar"`
	RegisteredAccount string `bson:"registered_account" json:"registered_account"`
	CategoryID        string `bson:"category_id" json:"category_id"`
	CustomNote        string `bson:"custom_note" json:"custom_note"`
	NoteColor         string `bson:"note_color" json:"note_color"`
	RenewLink         string `bson:"renew_link" json:"renew_link"`
	Price             string `bson:"price,omitempty" json:"price,omitempty"`

	// 續費資訊
	RenewCycle         *RenewCycle `bson:"renew_cycle,omitempty" json:"renew_cycle,omitempty"`
	LastRenewed        *time.Time  `bson:"last_renewed,omitempty" json:"last_renewed,omitempty"`
	LastRenewPeriod    *RenewCycle `bson:"last_renew_period,omitempty" json:"last_renew_period,omitempty"`
	RenewedFromExpired bool        `bson:"renewed_from_expired" json:"renewed_from_expired"`
	RenewStartDate     *time.Time  `bson:"renew_start_date,omitempty" json:"renew_start_date,omitempty"`

	// nil 代表沿用預設 (跟隨全域、啟用)
	NotifySettings *NotifySettings `bson:"notify_settings,omitempty" json:"notify_settings,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Notify 回傳實際生效的通知設定
func (d DomainRecord) Notify() NotifySettings {
	if d.NotifySettings == nil {
		return DefaultNotifySettings()
	}
	return *d.NotifySettings
}

// DomainView 列表回傳用，附帶計算欄位
type DomainView struct {
	DomainRecord `bson:",inline"`
	DaysLeft     int    `json:"days_left"`
	Progress     int    `json:"progress"`
	Status       string `json:"status"`
}
