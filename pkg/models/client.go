package models

// Client is a delivery customer. Locality is one of the service zones
// (Pocitos, Carrasco, Solymar/La Tahona) but is stored as free text.
type Client struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(200);not null" json:"name"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Address  string `gorm:"type:varchar(300)" json:"address"`
	Locality string `gorm:"type:varchar(100);index" json:"locality"`
}

func (Client) TableName() string {
	return "clients"
}
