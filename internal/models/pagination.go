package models

type Link struct {
	Href string `json:"href"`
}

type PageLinks struct {
	Self Link  `json:"self"`
	Prev *Link `json:"prev,omitempty"`
	Next *Link `json:"next,omitempty"`
}

type PaginatedResponse struct {
	Data   any       `json:"data"`
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Links  PageLinks `json:"_links"`
}
