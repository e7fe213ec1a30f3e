package request_models

type AddTestimonialRequest struct {
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}
