package response_models

type CheckoutLinkResponse struct {
	PlanID      string `json:"plan_id"`
	CheckoutURL string `json:"checkout_url"`
}
