package domain

// Service is one entry of the studio's offering catalog. The catalog is
// reference data: loaded once at boot, refreshed in the background, never
// mutated by the intake flow.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}
