package models

// Venue represents a performance location
type Venue struct {
	ID                 uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string `json:"name" gorm:"type:varchar(255);not null;index:idx_venue_name"`
	NameKey            string `json:"-" gorm:"type:varchar(255);not null;default:'';index:idx_venue_name_key"`
	City               string `json:"city" gorm:"type:varchar(120);index:idx_venue_location"`
	State              string `json:"state" gorm:"type:varchar(120);index:idx_venue_location"`
	Address            string `json:"address" gorm:"type:varchar(120)"`
	Phone              string `json:"phone" gorm:"type:varchar(120)"`
	ImageLink          string `json:"image_link" gorm:"type:varchar(500)"`
	FacebookLink       string `json:"facebook_link" gorm:"type:varchar(120)"`
	Genres             Genres `json:"genres" gorm:"type:varchar(500)"`
	Website            string `json:"website" gorm:"type:varchar(120)"`
	SeekingTalent      bool   `json:"seeking_talent" gorm:"not null"`
	SeekingDescription string `json:"seeking_description" gorm:"type:varchar(500)"`
	Shows              []Show `json:"-" gorm:"foreignKey:VenueID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Venue) TableName() string {
	return "Venue"
}

// VenueEditableColumns lists every column an edit rewrites.
var VenueEditableColumns = []string{
	"name", "name_key", "city", "state", "address", "phone", "image_link",
	"facebook_link", "genres", "website", "seeking_talent", "seeking_description",
}
