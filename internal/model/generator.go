package model

// GenerateRequest asks for a password of Length characters. Zero selects the default length.
type GenerateRequest struct {
	Length int `json:"length"`
}

// GenerateResponse carries a generated password.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
