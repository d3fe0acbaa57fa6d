package domain

type CreateLinkRequest struct {
	LongURL string  `json:"long_url"`
	Name    *string `json:"name"`
}

type LinkResponse struct {
	ShortenedURL string               `json:"shortened_url"`
	ShortURL     string               `json:"short_url"`
	LongURL      string               `json:"long_url"`
	Metadata     LinkMetadataResponse `json:"metadata"`
}

type LinkMetadataResponse struct {
	CustomName *string `json:"custom_name"`
	Clicks     int64   `json:"clicks"`
	LastIP     *string `json:"last_ip"`
}

type RedirectResponse struct {
	Message string `json:"message"`
	LongURL string `json:"long_url"`
}

type ClickResponse struct {
	Ref       string  `json:"ref"`
	ClientIP  *string `json:"client_ip"`
	UserAgent string  `json:"user_agent"`
	Timestamp string  `json:"timestamp"`
}

type ClickLogResponse struct {
	LinkID string          `json:"link_id"`
	Clicks []ClickResponse `json:"clicks"`
}

type SuggestRequest struct {
	LongURL string `json:"long_url" query:"long_url"`
	Count   int    `json:"count" query:"count"`
}

type SuggestResponse struct {
	SuggestedAliases []string `json:"suggested_aliases"`
	TimeTaken        float64  `json:"time_taken"`
}

type AliasAvailabilityResponse struct {
	Alias       string `json:"alias"`
	IsAvailable bool   `json:"is_available"`
	Message     string `json:"message"`
}

type URLExistenceResponse struct {
	Exists  bool   `json:"exists"`
	LongURL string `json:"long_url"`
	Message string `json:"message"`
}
