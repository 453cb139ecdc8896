package learn

type LearnRequest struct {
	Task Task   `json:"task"`
	Text string `json:"text"`
}

type LearnResponse struct {
	Message string `json:"message"`
}
