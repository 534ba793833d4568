package models

import "time"

// Show is a booking of one artist at one venue at one time.
// Whether it is past or upcoming is never stored; see IsUpcoming.
type Show struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	StartTime time.Time `json:"start_time" gorm:"not null;index:idx_show_start_time"`
	ArtistID  uint      `json:"artist_id" gorm:"not null;index:idx_show_artist_id"`
	VenueID   uint      `json:"venue_id" gorm:"not null;index:idx_show_venue_id"`

	Artist *Artist `json:"-" gorm:"foreignKey:ArtistID;references:ID"`
	Venue  *Venue  `json:"-" gorm:"foreignKey:VenueID;references:ID"`
}

func (Show) TableName() string {
	return "Show"
}

// IsUpcoming reports whether the show starts at or after now.
// Shows starting exactly at now count as upcoming.
func (s Show) IsUpcoming(now time.Time) bool {
	return !s.StartTime.Before(now)
}
