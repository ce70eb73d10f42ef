package rate

type UpsertRateTierRequest struct {
	DistanceKm int    `json:"distance_km" binding:"min=0,max=200"`
	BaseAmount string `json:"base_amount" binding:"required"`
}

type RateTierResponse struct {
	ID         string `json:"id"`
	Year       int    `json:"year"`
	DistanceKm int    `json:"distance_km"`
	BaseAmount string `json:"base_amount"`
	Active     bool   `json:"active"`
}

type UpsertConfigurationRequest struct {
	UpliftCoefficient         string `json:"uplift_coefficient" binding:"required"`
	HourlyWaitingRate         string `json:"hourly_waiting_rate" binding:"required"`
	LinearRateBeyondThreshold string `json:"linear_rate_beyond_threshold" binding:"required"`
}

type ConfigurationResponse struct {
	Year                      int    `json:"year"`
	UpliftCoefficient         string `json:"uplift_coefficient"`
	HourlyWaitingRate         string `json:"hourly_waiting_rate"`
	LinearRateBeyondThreshold string `json:"linear_rate_beyond_threshold"`
	ThresholdKm               int    `json:"threshold_km"`
}
