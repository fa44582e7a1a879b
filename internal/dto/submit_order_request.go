package dto

type SubmitOrderRequest struct {
	FullName   string         `json:"fullName"`
	Phone      string         `json:"phone"`
	Address    string         `json:"address"`
	Note       string         `json:"note"`
	SleeveType string         `json:"sleeveType"`
	Quantities map[string]int `json:"quantities"`
}
