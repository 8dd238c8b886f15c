package request

import "time"

// QuoteRequest asks for the flat-rate price of a trade before a job exists.
type QuoteRequest struct {
	Trade string `json:"trade" binding:"required"`
}

type CreateJobRequest struct {
	Trade       string     `json:"trade" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Photos      []string   `json:"photos"`
	Address     string     `json:"address" binding:"required"`
	Lat         *float64   `json:"lat" binding:"required"`
	Lng         *float64   `json:"lng" binding:"required"`
	IsASAP      bool       `json:"is_asap"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
