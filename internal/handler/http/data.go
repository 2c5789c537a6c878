package http

// signUpRequest is the payload for POST /api/users/signup.
type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the payload for POST /api/users/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// noteRequest is the payload for note create and update. An omitted text on
// update clears the note body (full replace).
type noteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status string `json:"status"`
}
