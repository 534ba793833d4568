package models

// Artist represents a performer who can be booked at venues
type Artist struct {
	ID                 uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string `json:"name" gorm:"type:varchar(255);not null;index:idx_artist_name"`
	NameKey            string `json:"-" gorm:"type:varchar(255);not null;default:'';index:idx_artist_name_key"`
	City               string `json:"city" gorm:"type:varchar(120)"`
	State              string `json:"state" gorm:"type:varchar(120)"`
	Phone              string `json:"phone" gorm:"type:varchar(120)"`
	Genres             Genres `json:"genres" gorm:"type:varchar(500)"`
	ImageLink          string `json:"image_link" gorm:"type:varchar(500)"`
	FacebookLink       string `json:"facebook_link" gorm:"type:varchar(120)"`
	Website            string `json:"website" gorm:"type:varchar(120)"`
	SeekingVenue       bool   `json:"seeking_venue" gorm:"not null"`
	SeekingDescription string `json:"seeking_description" gorm:"type:varchar(500)"`
	Shows              []Show `json:"-" gorm:"foreignKey:ArtistID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Artist) TableName() string {
	return "Artist"
}

// ArtistEditableColumns lists every column an edit rewrites.
var ArtistEditableColumns = []string{
	"name", "name_key", "city", "state", "phone", "genres", "image_link",
	"facebook_link", "website", "seeking_venue", "seeking_description",
}
