package model

// ImpactStats are the session's aggregate impact counters. They only grow
// as donations land: meals and CO2 use a fixed linear approximation of the
// donated quantity, independent of the oracle's own meal estimate.
type ImpactStats struct {
	TotalMealsSaved   int     `json:"total_meals_saved"`
	CO2ReducedKg      float64 `json:"co2_reduced_kg"`
	ActiveDonors      int     `json:"active_donors"`
	CommunitiesServed int     `json:"communities_served"`
}
