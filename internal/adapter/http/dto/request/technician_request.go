package request

type TechnicianOnlineRequest struct {
	Online *bool `json:"online" binding:"required"`
}

type TechnicianLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// NearbyTechniciansRequest is bound from query parameters.
type NearbyTechniciansRequest struct {
	Lat      *float64 `form:"lat" binding:"required"`
	Lng      *float64 `form:"lng" binding:"required"`
	Trade    string   `form:"trade"`
	RadiusKm float64  `form:"radius_km"`
	Limit    int      `form:"limit"`
}
