package response_models

import "anuncia/internal/models/db_models"

// FooterAdResponse is the currently showing sponsor slot. Remaining counts
// down in ticks so the client can render the dismiss countdown without its
// own timer state.
type FooterAdResponse struct {
	Listing   *db_models.Listing `json:"listing"`
	Remaining int                `json:"remaining"`
	State     string             `json:"state"`
}
