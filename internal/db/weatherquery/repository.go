package weatherquery

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogWeatherQuery(location string, statusCode int, upstreamMessage string) error
	GetRecentWeatherQuery(location string) (*WeatherQuery, error)
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

func (r *WeatherSQLRepository) LogWeatherQuery(location string, statusCode int, upstreamMessage string) error {
	query := WeatherQuery{
		Location:        location,
		StatusCode:      statusCode,
		UpstreamMessage: upstreamMessage,
		CreatedAt:       time.Now(),
	}

	return r.db.Create(&query).Error
}

func (r *WeatherSQLRepository) GetRecentWeatherQuery(location string) (*WeatherQuery, error) {
	var query WeatherQuery
	err := r.db.Where("location = ?", location).Order("created_at DESC").First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
