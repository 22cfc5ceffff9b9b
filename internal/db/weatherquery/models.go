package weatherquery

import (
	"time"
)

type WeatherQuery struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Location        string    `json:"location" gorm:"index:idx_location;index:idx_location_created_at"`
	StatusCode      int       `json:"status_code" gorm:"column:status_code"`
	UpstreamMessage string    `json:"upstream_message,omitempty" gorm:"column:upstream_message"`
	CreatedAt       time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_location_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
